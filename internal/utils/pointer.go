// Package utils carries the pointer helpers used around the API models,
// where optional fields are pointers.
package utils

// Value dereferences v, or returns the zero value when v is nil.
func Value[T any](v *T) T {
	var zero T
	if v == nil {
		return zero
	}
	return *v
}

// Ptr returns a pointer to v. Handy for literals in upsert payloads.
func Ptr[T any](v T) *T {
	return &v
}
