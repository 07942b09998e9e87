// Package session owns the identity/token pair: it is the only component
// allowed to create, replace or destroy it.
package session

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/bovicare/bovicare-cli/api"
	errs "github.com/bovicare/bovicare-cli/internal/errors"
	"github.com/bovicare/bovicare-cli/tokenstore"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

const profileRefineTimeout = 10 * time.Second

// Redirector moves the user to another view. The navigator implements it.
type Redirector interface {
	RedirectTo(path string)
}

// AuthClient is the slice of the API the manager needs.
type AuthClient interface {
	Login(ctx context.Context, username, password string) (api.TokenPair, error)
	Me(ctx context.Context) (api.User, error)
}

// Manager is the single source of truth for who is logged in.
type Manager struct {
	store tokenstore.Store
	auth  AuthClient
	log   zerolog.Logger

	mu         sync.Mutex
	identity   *Identity
	generation uint64 // bumped on every login commit and logout
	subs       map[int]chan *Identity
	nextSubID  int
	redirector Redirector
}

// NewManager restores any persisted identity from the store, so a restarted
// client comes back in the state it was left in.
func NewManager(store tokenstore.Store, auth AuthClient, log zerolog.Logger) (*Manager, error) {
	if store == nil {
		return nil, errors.New("[NewManager] store is required")
	}
	if auth == nil {
		return nil, errors.New("[NewManager] auth client is required")
	}

	m := &Manager{
		store: store,
		auth:  auth,
		log:   log,
		subs:  make(map[int]chan *Identity),
	}

	if record := store.Identity(); len(record) > 0 {
		var identity Identity
		if err := json.Unmarshal(record, &identity); err == nil {
			identity.Role = ParseRole(string(identity.Role))
			m.identity = &identity
		}
	}
	return m, nil
}

// SetRedirector wires the navigator in after construction. A nil redirector
// is valid: redirects are skipped (useful in tests).
func (m *Manager) SetRedirector(r Redirector) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.redirector = r
}

// Login submits the credentials and, on success, replaces the identity/token
// pair atomically. The new identity is published to all subscribers before
// the role-based redirect fires.
//
// Errors: ErrAuthentication when the API rejects the credentials,
// ErrTokenDecode when the issued token payload cannot be parsed,
// ErrRoleUnsupported for roles this client does not serve,
// ErrSessionCleared when a logout raced the in-flight call. In every error
// case but ErrRoleUnsupported no session state survives the call.
func (m *Manager) Login(ctx context.Context, email, password string) (*Identity, error) {
	m.mu.Lock()
	startGen := m.generation
	m.mu.Unlock()

	pair, err := m.auth.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	tokenClaims := decodeToken(pair.AccessToken)
	if tokenClaims == nil || tokenClaims.Role == "" {
		m.log.Error().Str("email", email).Msg("access token payload undecodable, no identity created")
		return nil, errs.ErrTokenDecode
	}

	identity := &Identity{
		ID:       tokenClaims.UserID,
		Email:    tokenClaims.Email,
		FullName: tokenClaims.FullName,
		Role:     ParseRole(tokenClaims.Role),
	}
	if identity.Email == "" {
		identity.Email = email
	}
	if identity.FullName == "" {
		identity.FullName = "User"
	}

	m.mu.Lock()
	if m.generation != startGen {
		// A logout (or another login) resolved first; it wins
		m.mu.Unlock()
		return nil, errs.ErrSessionCleared
	}
	if err := m.store.SetTokens(pair.AccessToken, pair.RefreshToken); err != nil {
		m.mu.Unlock()
		return nil, errors.Wrap(err, "[Manager.Login] persist tokens")
	}
	record, err := json.Marshal(identity)
	if err == nil {
		err = m.store.SetIdentity(record)
	}
	if err != nil {
		m.mu.Unlock()
		return nil, errors.Wrap(err, "[Manager.Login] persist identity")
	}
	m.identity = identity
	m.generation++
	currentGen := m.generation
	m.publishLocked(identity)
	m.mu.Unlock()

	m.log.Info().Str("email", identity.Email).Stringer("role", identity.Role).Msg("logged in")

	// Fire-and-forget profile refinement; a logout in the meantime makes it
	// a no-op via the generation check.
	go m.refineProfile(currentGen)

	if err := m.RedirectByRole(identity.Role); err != nil {
		return nil, err
	}
	return identity, nil
}

// Logout clears the token store, publishes a nil identity and returns to the
// login view. Idempotent, and it always wins over in-flight calls.
func (m *Manager) Logout() {
	m.mu.Lock()
	if err := m.store.Clear(); err != nil {
		m.log.Warn().Err(err).Msg("failed to clear token store")
	}
	m.identity = nil
	m.generation++
	m.publishLocked(nil)
	m.mu.Unlock()

	m.redirect(LoginRoute)
}

// CurrentIdentity returns the last published identity, or nil. Synchronous,
// never touches the network: the gate calls this on every navigation.
func (m *Manager) CurrentIdentity() *Identity {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.identity == nil {
		return nil
	}
	identity := *m.identity
	return &identity
}

// IsAuthenticated reports whether an access token is present in the store.
// Presence only: the token may well be expired.
func (m *Manager) IsAuthenticated() bool {
	return m.store.AccessToken() != ""
}

// Identities returns a replay-last-value stream of identity changes and an
// unsubscribe function. The current value is delivered immediately; a slow
// reader only ever misses intermediate values, never the latest one.
func (m *Manager) Identities() (<-chan *Identity, func()) {
	m.mu.Lock()
	id := m.nextSubID
	m.nextSubID++
	ch := make(chan *Identity, 1)
	ch <- m.identity
	m.subs[id] = ch
	m.mu.Unlock()

	unsubscribe := func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.subs, id)
	}
	return ch, unsubscribe
}

// RedirectByRole sends the user to the landing view for role. ELEVEUR is not
// served by this client: the session is cleared on the spot and
// ErrRoleUnsupported tells the caller to point the user at the mobile app.
func (m *Manager) RedirectByRole(role Role) error {
	switch role {
	case RoleAdmin, RoleAgronome:
		m.redirect(LandingRoute(role))
		return nil
	case RoleEleveur:
		m.log.Warn().Msg("eleveur account, mobile client required")
		m.Logout()
		return errs.ErrRoleUnsupported
	default:
		m.log.Error().Stringer("role", role).Msg("unknown role")
		m.redirect(LoginRoute)
		return nil
	}
}

// refineProfile merges the full profile into the identity created at login.
// startGen pins the session it belongs to: if a logout (or another login)
// bumped the generation since, the result is discarded instead of
// resurrecting a cleared session.
func (m *Manager) refineProfile(startGen uint64) {
	ctx, cancel := context.WithTimeout(context.Background(), profileRefineTimeout)
	defer cancel()

	profile, err := m.auth.Me(ctx)
	if err != nil {
		m.log.Debug().Err(err).Msg("profile refinement failed")
		return
	}

	m.mu.Lock()
	if m.generation != startGen || m.identity == nil {
		m.mu.Unlock()
		return
	}
	merged := mergeProfile(*m.identity, profile)
	m.identity = &merged
	if record, err := json.Marshal(merged); err == nil {
		if err := m.store.SetIdentity(record); err != nil {
			m.log.Warn().Err(err).Msg("failed to persist refined identity")
		}
	}
	m.publishLocked(&merged)
	m.mu.Unlock()
}

// publishLocked delivers identity to every subscriber with drop-oldest
// semantics, so a stalled subscriber always sees the latest value and never
// blocks the manager. Caller must hold the mutex: delivering inside the
// commit's critical section keeps the stream in generation order, so a
// logout's nil cannot be overtaken by the login or refinement it interrupted.
func (m *Manager) publishLocked(identity *Identity) {
	for _, ch := range m.subs {
		select {
		case ch <- identity:
			continue
		default:
		}
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- identity:
		default:
		}
	}
}

func (m *Manager) redirect(path string) {
	m.mu.Lock()
	r := m.redirector
	m.mu.Unlock()
	if r == nil {
		return
	}
	r.RedirectTo(path)
}
