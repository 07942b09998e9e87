// Package guard holds the pair of checks run before a protected view is
// entered: one verifies a session exists, the other that its role matches
// the view's requirement. Both are synchronous and never touch the network.
package guard

import (
	"github.com/bovicare/bovicare-cli/session"
	"github.com/rs/zerolog"
)

// Requirement is the static authorization metadata attached to a protected
// route: the single role required to enter it.
type Requirement struct {
	Role session.Role
}

// Decision is the outcome of a check. When entry is denied, Redirect names
// the view to send the user to instead.
type Decision struct {
	Allowed  bool
	Redirect string
}

var allowed = Decision{Allowed: true}

// Gate evaluates requirements against the current identity.
type Gate struct {
	sessions *session.Manager
	log      zerolog.Logger
}

func New(sessions *session.Manager, log zerolog.Logger) *Gate {
	return &Gate{sessions: sessions, log: log}
}

// Check runs the presence check then the role check. A nil requirement
// marks a public route and always admits.
func (g *Gate) Check(requirement *Requirement) Decision {
	if requirement == nil {
		return allowed
	}
	if decision := g.CheckSession(); !decision.Allowed {
		return decision
	}
	return g.CheckRole(requirement.Role)
}

// CheckSession denies entry when no identity is present.
func (g *Gate) CheckSession() Decision {
	if g.sessions.CurrentIdentity() == nil {
		g.log.Debug().Msg("gate: no session, back to login")
		return Decision{Redirect: session.LoginRoute}
	}
	return allowed
}

// CheckRole admits iff the identity's role equals the required role. On
// denial an authenticated user is sent to their own landing view when one
// exists, so a wrong-role navigation cannot loop through login; roles
// without a landing go to login.
func (g *Gate) CheckRole(required session.Role) Decision {
	identity := g.sessions.CurrentIdentity()
	if identity == nil {
		return Decision{Redirect: session.LoginRoute}
	}
	if identity.Role == required {
		return allowed
	}

	g.log.Debug().
		Stringer("role", identity.Role).
		Stringer("required", required).
		Msg("gate: role not authorized")

	if landing := session.LandingRoute(identity.Role); landing != "" {
		return Decision{Redirect: landing}
	}
	return Decision{Redirect: session.LoginRoute}
}
