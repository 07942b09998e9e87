package api

import (
	"context"

	errs "github.com/bovicare/bovicare-cli/internal/errors"
	"github.com/pkg/errors"
	"golang.org/x/oauth2"
)

// AuthAPI wraps the /auth endpoints.
type AuthAPI struct {
	c *Client
}

// TokenPair is the credential pair issued at login. The refresh token is
// persisted but never exchanged by this client.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	TokenType    string
}

// RegisterRequest is the payload for /auth/register.
type RegisterRequest struct {
	Email    string  `json:"email"`
	Password string  `json:"password"`
	FullName string  `json:"full_name"`
	Phone    *string `json:"phone,omitempty"`
	Role     string  `json:"role"`
}

// Login submits the credentials as an OAuth2 password grant: a form-encoded
// POST to {base}/auth/login with username/password fields. A non-2xx
// response maps to ErrAuthentication.
func (a *AuthAPI) Login(ctx context.Context, username, password string) (TokenPair, error) {
	conf := &oauth2.Config{
		Endpoint: oauth2.Endpoint{
			TokenURL:  a.c.baseURL + "/auth/login",
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}

	// Route the grant through the shared client so the request middleware
	// sees the login call like any other.
	ctx = context.WithValue(ctx, oauth2.HTTPClient, a.c.http)

	token, err := conf.PasswordCredentialsToken(ctx, username, password)
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) {
			return TokenPair{}, errs.Wrapf(errs.ErrAuthentication,
				"login rejected with status %d", retrieveErr.Response.StatusCode)
		}
		return TokenPair{}, errors.Wrap(err, "[AuthAPI.Login] PasswordCredentialsToken")
	}

	return TokenPair{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		TokenType:    token.TokenType,
	}, nil
}

// Me fetches the full profile of the logged-in account.
func (a *AuthAPI) Me(ctx context.Context) (User, error) {
	var user User
	if err := a.c.get(ctx, "/auth/me", nil, &user); err != nil {
		return User{}, err
	}
	return user, nil
}

// Register creates a new account. Pass-through, the session is not touched.
func (a *AuthAPI) Register(ctx context.Context, req RegisterRequest) (User, error) {
	var user User
	if err := a.c.post(ctx, "/auth/register", req, &user); err != nil {
		return User{}, err
	}
	return user, nil
}
