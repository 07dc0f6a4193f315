package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v4"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/Additional-Code/orderdesk/internal/config"
	"github.com/Additional-Code/orderdesk/internal/observability"
	"github.com/Additional-Code/orderdesk/pkg/errorbank"
)

// Module exposes the HTTP server lifecycle to Fx.
var Module = fx.Module("http_server",
	fx.Provide(NewEcho),
	fx.Invoke(Run),
)

// NewEcho configures the Echo router with basic middleware, the liveness
// endpoint, and an error handler that renders the API error shape.
func NewEcho(cfg config.Config, obs *observability.Manager, logger *zap.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = errorHandler(logger)

	if obs != nil && obs.TracingEnabled() {
		e.Use(otelecho.Middleware(cfg.Observability.ServiceName))
	}

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"status":    "OK",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	if obs != nil && obs.MetricsEnabled() && obs.MetricsHandler() != nil {
		e.GET(cfg.Observability.PrometheusPath, echo.WrapHandler(obs.MetricsHandler()))
	}

	return e
}

// errorHandler renders errors that escape the handlers: unmatched routes,
// bind failures, and anything a middleware rejects. Handlers themselves
// respond through the response builder and return nil.
func errorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		payload := echo.Map{
			"error":   errorbank.CodeStorageError,
			"message": "internal error",
		}

		if he, ok := err.(*echo.HTTPError); ok {
			status = he.Code
			switch status {
			case http.StatusNotFound:
				payload["error"] = errorbank.CodeRouteNotFound
				payload["message"] = "route not found"
			case http.StatusMethodNotAllowed:
				payload["error"] = errorbank.CodeRouteNotFound
				payload["message"] = "method not allowed"
			default:
				payload["error"] = errorbank.CodeInvalidPayload
				payload["message"] = fmt.Sprintf("%v", he.Message)
			}
		} else if appErr := errorbank.From(err); appErr != nil {
			status = appErr.StatusCode()
			payload["error"] = appErr.Code()
			payload["message"] = appErr.Message()
			if details := appErr.Details(); len(details) > 0 {
				payload["details"] = details
			}
		}

		if status >= http.StatusInternalServerError {
			logger.Error("http request failed", zap.Error(err))
		}

		if writeErr := c.JSON(status, payload); writeErr != nil {
			logger.Error("write error response", zap.Error(writeErr))
		}
	}
}

// Run starts the HTTP server and ties it to the Fx lifecycle.
func Run(lc fx.Lifecycle, cfg config.Config, e *echo.Echo, logger *zap.Logger) {
	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)

	server := &http.Server{
		Addr:    addr,
		Handler: e,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("starting HTTP server", zap.String("addr", addr))
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Fatal("http server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping HTTP server")
			return server.Shutdown(ctx)
		},
	})
}
