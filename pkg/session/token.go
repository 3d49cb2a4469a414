package session

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/mitchellh/mapstructure"
)

var (
	// ErrNoToken means there is no token, either stored or in a login response.
	ErrNoToken = errors.New("no session token")

	// ErrNotJWT means the token is opaque and carries no readable claims.
	ErrNotJWT = errors.New("token is not a JWT")
)

// loginFields are the object fields a login response may carry the token in.
type loginFields struct {
	Token       string `mapstructure:"token"`
	AccessToken string `mapstructure:"accessToken"`
	JWT         string `mapstructure:"jwt"`
}

// ExtractToken pulls the bearer token out of a decoded login response.
//
// The login endpoint has no fixed response envelope. Precedence is:
// a "token" field, a bare string body, an "accessToken" field, a "jwt" field.
func ExtractToken(payload any) (string, error) {
	switch v := payload.(type) {
	case map[string]any:
		var fields loginFields
		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			Result:           &fields,
			WeaklyTypedInput: true,
			MatchName: func(mapKey, fieldName string) bool {
				return mapKey == fieldName
			},
		})
		if err != nil {
			return "", err
		}
		if err := decoder.Decode(v); err != nil {
			return "", fmt.Errorf("%w: unreadable login response: %v", ErrNoToken, err)
		}

		switch {
		case fields.Token != "":
			return fields.Token, nil
		case fields.AccessToken != "":
			return fields.AccessToken, nil
		case fields.JWT != "":
			return fields.JWT, nil
		}

	case string:
		if token := strings.TrimSpace(v); token != "" {
			return token, nil
		}
	}

	return "", ErrNoToken
}

// Claims are the registered claims of a JWT session token.
type Claims struct {
	Subject   string
	Issuer    string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Expired reports whether the token's exp claim is before now. Tokens
// without exp never expire client-side.
func (c *Claims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && now.After(c.ExpiresAt)
}

// ParseClaims reads the claims of token without verifying its signature.
// Verification belongs to the server; this is for display only.
func ParseClaims(token string) (*Claims, error) {
	var rc jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &rc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotJWT, err)
	}

	c := &Claims{
		Subject: rc.Subject,
		Issuer:  rc.Issuer,
	}
	if rc.IssuedAt != nil {
		c.IssuedAt = rc.IssuedAt.Time
	}
	if rc.ExpiresAt != nil {
		c.ExpiresAt = rc.ExpiresAt.Time
	}
	return c, nil
}
