// Package tokenstore persists the bearer token pair and the serialized
// identity record across client restarts. It is pure key/value persistence,
// the session manager is the only writer.
package tokenstore

// Store holds three independent string-valued entries: the access token, the
// refresh token and the serialized identity record. All three are cleared
// together on logout.
type Store interface {
	AccessToken() string
	RefreshToken() string
	Identity() []byte

	SetTokens(accessToken, refreshToken string) error
	SetIdentity(record []byte) error

	// Clear removes all entries. Clearing an empty store is not an error.
	Clear() error
}
