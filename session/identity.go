package session

import (
	"github.com/bovicare/bovicare-cli/api"
)

// Identity is the client's local, unverified record of who is logged in.
// It is built from the access token claims at login and refined by a
// follow-up /auth/me fetch.
type Identity struct {
	ID       int64   `json:"id"`
	Email    string  `json:"email"`
	FullName string  `json:"full_name"`
	Role     Role    `json:"role"`
	Phone    *string `json:"phone,omitempty"`
	Active   *bool   `json:"is_active,omitempty"`
}

// mergeProfile overlays the fetched profile onto the identity. Fields are
// merged, never replaced wholesale: absent profile fields keep the values
// decoded from the token.
func mergeProfile(identity Identity, profile api.User) Identity {
	if profile.ID != 0 {
		identity.ID = profile.ID
	}
	if profile.Email != "" {
		identity.Email = profile.Email
	}
	if profile.FullName != "" {
		identity.FullName = profile.FullName
	}
	if role := ParseRole(profile.Role); role != RoleUnknown {
		identity.Role = role
	}
	if profile.Phone != nil {
		identity.Phone = profile.Phone
	}
	if profile.Active != nil {
		identity.Active = profile.Active
	}
	return identity
}
