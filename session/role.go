package session

import "strings"

// Role is the closed set of platform roles. Roles are normalized to upper
// case before comparison or storage; strings outside the set parse to
// RoleUnknown.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleAgronome Role = "AGRONOME"
	// RoleEleveur exists on the platform but is only served by the mobile
	// client; logging in with it here forces an immediate logout.
	RoleEleveur Role = "ELEVEUR"
	RoleUnknown Role = ""
)

// Client-side route paths, mirrored by the navigator's route table.
const (
	LoginRoute           = "/login"
	AdminLandingRoute    = "/admin/dashboard"
	AgronomeLandingRoute = "/agronome/dashboard"
)

// ParseRole normalizes raw to the canonical upper-case form.
func ParseRole(raw string) Role {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case string(RoleAdmin):
		return RoleAdmin
	case string(RoleAgronome):
		return RoleAgronome
	case string(RoleEleveur):
		return RoleEleveur
	default:
		return RoleUnknown
	}
}

func (r Role) String() string {
	if r == RoleUnknown {
		return "UNKNOWN"
	}
	return string(r)
}

// LandingRoute returns the landing view for a role, or "" when the role has
// no landing on this client (ELEVEUR and unknown roles).
func LandingRoute(role Role) string {
	switch role {
	case RoleAdmin:
		return AdminLandingRoute
	case RoleAgronome:
		return AgronomeLandingRoute
	case RoleEleveur:
		return ""
	default:
		return ""
	}
}
