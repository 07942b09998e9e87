package session

import (
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// claims is what this client reads out of the access token payload. The
// token is treated as authoritative only for its embedded claims: the
// payload is decoded, the signature is never verified.
type claims struct {
	UserID   int64
	Email    string
	FullName string
	Role     string
}

// decodeToken splits the token into its three dot-separated segments,
// base64url-decodes the payload and parses it as JSON. Any failure at any
// step yields nil, never an error or a panic.
func decodeToken(raw string) *claims {
	mapClaims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, mapClaims); err != nil {
		return nil
	}

	c := &claims{
		Email:    claimString(mapClaims, "email"),
		FullName: claimString(mapClaims, "full_name"),
		Role:     claimString(mapClaims, "role"),
	}

	// The API puts the numeric id in "sub"; older tokens used "user_id"
	if id, ok := claimInt64(mapClaims, "sub"); ok {
		c.UserID = id
	} else if id, ok := claimInt64(mapClaims, "user_id"); ok {
		c.UserID = id
	}
	return c
}

func claimString(mapClaims jwt.MapClaims, key string) string {
	if value, ok := mapClaims[key].(string); ok {
		return value
	}
	return ""
}

func claimInt64(mapClaims jwt.MapClaims, key string) (int64, bool) {
	switch value := mapClaims[key].(type) {
	case float64:
		return int64(value), true
	case string:
		id, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return 0, false
		}
		return id, true
	default:
		return 0, false
	}
}
