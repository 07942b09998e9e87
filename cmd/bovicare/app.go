package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/bovicare/bovicare-cli/api"
	"github.com/bovicare/bovicare-cli/guard"
	"github.com/bovicare/bovicare-cli/internal/config"
	"github.com/bovicare/bovicare-cli/nav"
	"github.com/bovicare/bovicare-cli/session"
	"github.com/bovicare/bovicare-cli/tokenstore"
	"github.com/bovicare/bovicare-cli/transport"
	"github.com/bovicare/bovicare-cli/views"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// app owns the wired component graph. The session manager is built once
// here and injected by reference everywhere: no ambient session state.
type app struct {
	log       zerolog.Logger
	store     tokenstore.Store
	apiClient *api.Client
	sessions  *session.Manager
	navigator *nav.Navigator
}

func newApp(c config.Config, logger zerolog.Logger) (*app, error) {
	store, err := tokenstore.NewFileStore(c.GetDataFolder())
	if err != nil {
		return nil, errors.Wrap(err, "[newApp] token store")
	}

	// The middleware wraps every outbound call, including login itself (it
	// simply observes no token there).
	authTransport := transport.New(store, logger)
	httpClient := &http.Client{
		Transport: authTransport,
		Timeout:   time.Duration(c.GetHTTPTimeoutSeconds()) * time.Second,
	}
	apiClient := api.New(c.GetAPIBaseURL(), httpClient)

	sessions, err := session.NewManager(store, apiClient.Auth(), logger)
	if err != nil {
		return nil, errors.Wrap(err, "[newApp] session manager")
	}

	gate := guard.New(sessions, logger)
	navigator := nav.New(gate, logger, os.Stdout, c.GetEnv())
	registerRoutes(navigator, apiClient)

	sessions.SetRedirector(navigator)
	authTransport.SetOnUnauthorized(sessions.Logout)

	return &app{
		log:       logger,
		store:     store,
		apiClient: apiClient,
		sessions:  sessions,
		navigator: navigator,
	}, nil
}

// registerRoutes mirrors the platform's route table: admin screens require
// ADMIN, the agronome dashboard requires AGRONOME, login is public. No route
// requires ELEVEUR, the role is not served by this client.
func registerRoutes(navigator *nav.Navigator, apiClient *api.Client) {
	adminOnly := &guard.Requirement{Role: session.RoleAdmin}
	agronomeOnly := &guard.Requirement{Role: session.RoleAgronome}

	navigator.Register(nav.Route{
		Path: session.LoginRoute, Title: "Login", View: views.LoginView{},
	})
	navigator.Register(nav.Route{
		Path: session.AdminLandingRoute, Title: "Dashboard", Requires: adminOnly,
		View: views.AdminDashboardView{Users: apiClient.Users()},
	})
	navigator.Register(nav.Route{
		Path: "/admin/users", Title: "Gestion des utilisateurs", Requires: adminOnly,
		View: views.UserListView{Users: apiClient.Users()},
	})
	navigator.Register(nav.Route{
		Path: "/admin/cows", Title: "Gestion du troupeau", Requires: adminOnly,
		View: views.CowListView{Cows: apiClient.Cows(), Page: 1, PageSize: 20},
	})
	navigator.Register(nav.Route{
		Path: "/admin/alerts", Title: "Gestion des alertes", Requires: adminOnly,
		View: views.AlertListView{Alerts: apiClient.Alerts()},
	})
	navigator.Register(nav.Route{
		Path: session.AgronomeLandingRoute, Title: "Dashboard", Requires: agronomeOnly,
		View: views.AgronomeDashboardView{
			Cows: apiClient.Cows(), Alerts: apiClient.Alerts(), Measures: apiClient.Measures(),
		},
	})
	navigator.Register(nav.Route{
		Path: "/agronome/health", Title: "Suivi sanitaire", Requires: agronomeOnly,
		View: views.HerdHealthView{
			Cows: apiClient.Cows(), Measures: apiClient.Measures(), Page: 1, PageSize: 20,
		},
	})
}

// start lands the user on the right first view: a restored session goes to
// its role's landing page, everything else to login.
func (a *app) start() {
	if identity := a.sessions.CurrentIdentity(); identity != nil && a.sessions.IsAuthenticated() {
		if err := a.sessions.RedirectByRole(identity.Role); err != nil {
			a.log.Warn().Err(err).Msg("restored session not usable here")
		}
		return
	}
	_ = a.navigator.Navigate(context.Background(), session.LoginRoute)
}
