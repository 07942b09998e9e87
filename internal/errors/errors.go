package errors

import (
	"errors"
	"fmt"
)

// Common error types for the BoviCare client
var (
	// Authentication errors
	ErrAuthentication  = errors.New("authentication rejected")
	ErrTokenDecode     = errors.New("access token payload could not be decoded")
	ErrRoleUnsupported = errors.New("role not supported on this client")
	ErrSessionCleared  = errors.New("session cleared while the call was in flight")
	ErrNoSession       = errors.New("no active session")

	// API errors
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")

	// Navigation errors
	ErrRouteNotFound = errors.New("route not found")
	ErrAccessDenied  = errors.New("access denied")

	// General errors
	ErrInternal = errors.New("internal error")
)

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
