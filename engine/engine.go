package engine

import (
	"context"
	"log/slog"
	"net/http"
	"path"
	"path/filepath"

	"github.com/drummonds/goSidebar/config"
	"github.com/drummonds/goSidebar/webapp"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Logger is global since we will need it everywhere
var Logger *slog.Logger

// ServerHandler will inject the variables needed into routes
type ServerHandler struct {
	Echo         *echo.Echo
	ServerConfig config.ServerConfig
	AppHandler   http.Handler
}

// NewServerHandler creates the echo instance and the go-app handler for cfg
func NewServerHandler(cfg config.ServerConfig) *ServerHandler {
	e := echo.New()
	e.HideBanner = true
	return &ServerHandler{
		Echo:         e,
		ServerConfig: cfg,
		AppHandler: webapp.Handler(webapp.Branding{
			Title: cfg.Title,
			Logo:  cfg.LogoPath,
		}),
	}
}

// RegisterRoutes wires middleware, static assets, the API and the go-app
// catch-all. The catch-all must stay last.
func (serverHandler *ServerHandler) RegisterRoutes() {
	e := serverHandler.Echo
	cfg := serverHandler.ServerConfig

	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.DefaultCORSConfig))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogMethod:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger := Logger
			if logger == nil {
				logger = slog.Default()
			}
			level := slog.LevelDebug
			if v.Error != nil {
				level = slog.LevelError
			}
			logger.LogAttrs(context.Background(), level, "request",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.Any("error", v.Error),
			)
			return nil
		},
	}))

	// Serve wasm_exec.js (go-app expects it here)
	e.GET("/wasm_exec.js", func(c echo.Context) error {
		return c.File(filepath.Join(cfg.WebDir, "wasm_exec.js"))
	})

	// Register go-app specific resources
	e.GET("/app.js", echo.WrapHandler(serverHandler.AppHandler))
	e.GET("/app.css", echo.WrapHandler(serverHandler.AppHandler))
	e.GET("/manifest.webmanifest", echo.WrapHandler(serverHandler.AppHandler))

	// Serve static assets
	e.Static("/web", cfg.WebDir)
	e.File("/webapp/webapp.css", "webapp/webapp.css")
	e.File(cfg.LogoPath, filepath.Join(cfg.UploadsDir, path.Base(cfg.LogoPath)))

	e.GET("/api/health", serverHandler.GetHealth)
	e.GET("/api/about", serverHandler.GetAboutInfo)

	// Serve go-app handler for all other routes (must be last)
	e.Any("/*", echo.WrapHandler(serverHandler.AppHandler))
}
