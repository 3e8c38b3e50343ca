package auth

import (
	"crypto/subtle"
	"errors"

	"github.com/labstack/echo/v4"
)

var _ Authenticator = &SharedSecretAuthenticator{}

// SharedSecretAuthenticator accepts requests bearing the single secret
// the tracker's webhook is configured with. Comparison is constant time.
type SharedSecretAuthenticator struct {
	Secret string
}

func (a *SharedSecretAuthenticator) Authorize(c echo.Context) error {
	if a.Secret == "" {
		return errors.New("authenticator has no secret configured")
	}
	token, err := GetTokenFromRequest(c)
	if err != nil {
		return err
	}
	if subtle.ConstantTimeCompare([]byte(token), []byte(a.Secret)) != 1 {
		return errors.New("invalid webhook token")
	}
	return nil
}
