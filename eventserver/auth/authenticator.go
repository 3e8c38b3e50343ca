package auth

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"
)

// Authenticator decides whether an inbound webhook request may be
// processed.
type Authenticator interface {
	Authorize(c echo.Context) error
}

// GetTokenFromRequest extracts the bearer token from the Authorization
// header.
func GetTokenFromRequest(c echo.Context) (string, error) {
	t := c.Request().Header.Get(echo.HeaderAuthorization)
	if t == "" {
		return "", errors.New("no bearer token in request")
	}
	parts := strings.Split(t, " ")
	if len(parts) != 2 {
		return "", errors.New("invalid Authorization header")
	}
	if strings.ToLower(parts[0]) != "bearer" {
		return "", errors.New("unsupported Authorization header type")
	}
	if parts[1] == "" {
		return "", errors.New("missing Authorization Bearer token data")
	}
	return parts[1], nil
}
