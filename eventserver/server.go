package eventserver

import (
	"context"
	"net/http"
	"time"

	"code.cloudfoundry.org/lager"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/makerlabs/print-billing/eventio"
	"github.com/makerlabs/print-billing/eventserver/auth"
	"github.com/prometheus/client_golang/prometheus"
)

const metricsSubsystem = "print_billing"

type Config struct {
	// Authenticator guards the webhook endpoint (required)
	Authenticator auth.Authenticator
	// Reconciler drives each notification to its terminal outcome (required)
	Reconciler eventio.Reconciler
	// Logger sets the request logger
	Logger lager.Logger
	// MetricsRegistry overrides the default prometheus registry
	MetricsRegistry *prometheus.Registry
	// EnablePanic will cause the server to crash on panic if set to true
	EnablePanic bool
}

// New creates a new server. Use ListenAndServe to start accepting connections.
func New(cfg Config) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = errorHandler

	if !cfg.EnablePanic {
		e.Use(middleware.Recover())
	}

	if cfg.Logger != nil {
		e.Logger = NewLogger(cfg.Logger)
	}

	if cfg.MetricsRegistry != nil {
		e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
			Subsystem:  metricsSubsystem,
			Registerer: cfg.MetricsRegistry,
		}))
		e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
			Gatherer: cfg.MetricsRegistry,
		}))
	} else {
		e.Use(echoprometheus.NewMiddleware(metricsSubsystem))
		e.GET("/metrics", echoprometheus.NewHandler())
	}

	e.POST("/webhooks/usage", UsageWebhookHandler(cfg.Reconciler, cfg.Authenticator))

	e.GET("/", status)

	return e
}

func status(c echo.Context) error {
	return c.JSONPretty(http.StatusOK, map[string]bool{
		"ok": true,
	}, "  ")
}

func ListenAndServe(ctx context.Context, logger lager.Logger, e *echo.Echo, addr string) error {

	ctx, shutdown := context.WithCancel(ctx)

	go func() {
		defer shutdown()
		logger.Info("started", lager.Data{
			"addr": addr,
		})
		if err := e.Start(addr); err != nil {
			select {
			case <-ctx.Done():
				return
			default:
				e.Logger.Error("listen-and-serve-error", err)
			}
		}
	}()

	// Wait for parent context to get cancelled then drain with a 10s timeout
	<-ctx.Done()
	e.Logger.Info("stopping")
	drainCtx, cancelDrain := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelDrain()
	return e.Shutdown(drainCtx)
}
