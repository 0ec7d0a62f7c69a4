package api

import (
	"net/http"
	"strings"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/bookmarks/account/docs"
	"github.com/bookmarks/account/internal/api/forms"
	"github.com/bookmarks/account/internal/api/handler"
	"github.com/bookmarks/account/internal/api/metrics"
	"github.com/bookmarks/account/internal/api/middleware"
	"github.com/bookmarks/account/internal/core/ports"
)

// Deps are the collaborators the router wires into handlers.
type Deps struct {
	Logger   zerolog.Logger
	Renderer echo.Renderer

	Auth     ports.AuthService
	Accounts ports.AccountService
	Sessions ports.SessionStore
	Cookie   *middleware.SessionCookie

	LoginURL      string
	MaxPhotoBytes int64

	// Checks are run by the readiness probe, keyed by dependency name.
	Checks map[string]handler.DependencyCheck
	// Registry receives the HTTP and account metrics. Nil uses the default
	// Prometheus registry.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger)
	e.Renderer = d.Renderer
	e.Validator = forms.NewValidator()

	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if d.Registry != nil {
		registerer, gatherer = d.Registry, d.Registry
	}

	// --- Global middleware ---
	e.Pre(echomiddleware.AddTrailingSlashWithConfig(echomiddleware.TrailingSlashConfig{
		RedirectCode: http.StatusPermanentRedirect,
		Skipper: func(c echo.Context) bool {
			return !strings.HasPrefix(c.Request().URL.Path, "/account")
		},
	}))
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(d.Logger))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "account",
		Registerer: registerer,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	}))

	// --- Dependencies ---
	accountHandler := handler.NewAccountHandler(d.Auth, d.Accounts, d.Sessions, d.Cookie, metrics.New(registerer), d.Logger)
	accountHandler.MaxPhotoBytes = d.MaxPhotoBytes
	loginRequired := middleware.LoginRequired(d.Cookie, d.Sessions, d.Auth, d.LoginURL)

	// --- Account pages ---
	getPost := []string{http.MethodGet, http.MethodPost}
	account := e.Group("/account")
	account.GET("/", accountHandler.Dashboard, loginRequired)
	account.Match(getPost, "/login/", accountHandler.Login)
	account.Match(getPost, "/logout/", accountHandler.Logout)
	account.Match(getPost, "/edit/", accountHandler.Edit, loginRequired)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(d.Checks)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operations ---
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

// requestLogger writes one zerolog line per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			evt := log.Info()
			if v.Error != nil {
				evt = log.Error().Err(v.Error)
			}
			evt.
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("remote_ip", v.RemoteIP).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
