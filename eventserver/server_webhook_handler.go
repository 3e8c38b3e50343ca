package eventserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/makerlabs/print-billing/eventio"
	"github.com/makerlabs/print-billing/eventserver/auth"
)

// UsageWebhookHandler decodes one tracker notification and runs it through
// the reconciler, returning the reconcile result as the acknowledgment
// body. Irrelevant notification kinds are acknowledged as ignored.
func UsageWebhookHandler(reconciler eventio.Reconciler, authenticator auth.Authenticator) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := authenticator.Authorize(c); err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
		}

		var notification eventio.Notification
		if err := c.Bind(&notification); err != nil {
			return &eventio.ValidationError{Reason: "malformed notification payload"}
		}

		result, err := reconciler.Reconcile(c.Request().Context(), notification)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, result)
	}
}
