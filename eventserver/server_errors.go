package eventserver

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/makerlabs/print-billing/eventio"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// errorHandler maps the error taxonomy onto HTTP statuses: caller mistakes
// to 4xx, upstream failures to 502, everything else to 500.
func errorHandler(err error, c echo.Context) {
	code := http.StatusInternalServerError
	resp := ErrorResponse{
		Error: "internal server error",
	}

	var (
		httpErr       *echo.HTTPError
		validationErr *eventio.ValidationError
		conflictErr   *eventio.ConflictError
		authErr       *eventio.AuthError
		fetchErr      *eventio.FetchError
		billingErr    *eventio.BillingPostError
	)
	switch {
	case errors.As(err, &httpErr):
		code = httpErr.Code
		resp.Error = fmt.Sprintf("%s", httpErr.Message)
	case errors.As(err, &validationErr):
		code = http.StatusBadRequest
		resp.Error = validationErr.Error()
	case errors.As(err, &conflictErr):
		code = http.StatusConflict
		resp.Error = conflictErr.Error()
	case errors.As(err, &authErr), errors.As(err, &fetchErr), errors.As(err, &billingErr):
		code = http.StatusBadGateway
		resp.Error = err.Error()
	}

	c.Logger().Error(err)
	if err := c.JSON(code, resp); err != nil {
		c.Logger().Error(err)
	}
}
