// Package nav is the client's router: a static route table, the gate run in
// front of every protected view, and the redirects that follow a denial.
package nav

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/bovicare/bovicare-cli/guard"
	errs "github.com/bovicare/bovicare-cli/internal/errors"
	"github.com/bovicare/bovicare-cli/session"
	"github.com/rs/zerolog"
)

const (
	outcomeMounted    = "MOUNTED"
	outcomeDenied     = "DENIED"
	outcomeRedirected = "REDIRECT"
	outcomeUnknown    = "UNKNOWN"
)

// A denial redirect lands on a route that admits, so one hop suffices; the
// cap only protects against a miswired route table.
const maxRedirectHops = 4

// View is a mountable screen.
type View interface {
	Render(ctx context.Context, w io.Writer) error
}

// Route pairs a path with its authorization requirement and view. Requires
// is nil for public routes.
type Route struct {
	Path     string
	Title    string
	Requires *guard.Requirement
	View     View
}

// Navigator commits navigation attempts: gate first, then mount.
type Navigator struct {
	gate *guard.Gate
	log  zerolog.Logger
	out  io.Writer
	env  string

	mu      sync.Mutex
	routes  map[string]Route
	order   []string
	current string
}

func New(gate *guard.Gate, log zerolog.Logger, out io.Writer, env string) *Navigator {
	return &Navigator{
		gate:   gate,
		log:    log,
		out:    out,
		env:    env,
		routes: make(map[string]Route),
	}
}

// Register adds a route to the table. Routes are static: registered at
// startup, never mutated afterwards.
func (n *Navigator) Register(route Route) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if _, exists := n.routes[route.Path]; !exists {
		n.order = append(n.order, route.Path)
	}
	n.routes[route.Path] = route
}

// Navigate runs the gate for path and mounts its view when admitted. Denied
// or unknown paths redirect (wildcard behavior: unknown goes to login).
func (n *Navigator) Navigate(ctx context.Context, path string) error {
	return n.navigate(ctx, path, 0)
}

func (n *Navigator) navigate(ctx context.Context, path string, hops int) error {
	if hops >= maxRedirectHops {
		return errs.Wrapf(errs.ErrAccessDenied, "redirect loop at %q", path)
	}

	n.mu.Lock()
	route, exists := n.routes[path]
	n.mu.Unlock()

	if !exists {
		n.logNav(outcomeUnknown, path)
		return n.navigate(ctx, session.LoginRoute, hops+1)
	}

	if decision := n.gate.Check(route.Requires); !decision.Allowed {
		n.logNav(outcomeDenied, path)
		n.logNav(outcomeRedirected, decision.Redirect)
		return n.navigate(ctx, decision.Redirect, hops+1)
	}

	n.mu.Lock()
	n.current = path
	n.mu.Unlock()
	n.logNav(outcomeMounted, path)

	if route.View == nil {
		return nil
	}
	if err := route.View.Render(ctx, n.out); err != nil {
		return errs.Wrapf(err, "render %q", path)
	}
	return nil
}

// RedirectTo implements session.Redirector. Errors surface through the
// mounted view, not the redirect itself.
func (n *Navigator) RedirectTo(path string) {
	if err := n.Navigate(context.Background(), path); err != nil {
		n.log.Error().Err(err).Str("path", path).Msg("redirect failed")
	}
}

// Current returns the path of the last mounted view.
func (n *Navigator) Current() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

// Routes returns the table in registration order.
func (n *Navigator) Routes() []Route {
	n.mu.Lock()
	defer n.mu.Unlock()
	routes := make([]Route, 0, len(n.order))
	for _, path := range n.order {
		routes = append(routes, n.routes[path])
	}
	return routes
}

func (n *Navigator) logNav(outcome, path string) {
	if n.env != "DEV" {
		return
	}
	displayOutcome := outcome
	if color, ok := outcomeColors[outcome]; ok {
		displayOutcome = color + fmt.Sprintf("%-8s", outcome) + ResetColor
	}
	n.log.Debug().Msgf("[%s] %s", displayOutcome, path)
}
