package engine

import (
	"net/http"

	"github.com/drummonds/goSidebar/nav"
	"github.com/labstack/echo/v4"
)

// Version is set at build time via ldflags
var Version = "dev"

// AboutInfo describes the running server
type AboutInfo struct {
	Name    string   `json:"name"`
	Title   string   `json:"title"`
	Version string   `json:"version"`
	Routes  []string `json:"routes"`
}

// GetHealth reports that the server is up
func (serverHandler *ServerHandler) GetHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// GetAboutInfo returns information about the application configuration
func (serverHandler *ServerHandler) GetAboutInfo(c echo.Context) error {
	title := serverHandler.ServerConfig.Title
	if title == "" {
		title = nav.Title
	}
	return c.JSON(http.StatusOK, AboutInfo{
		Name:    "goSidebar",
		Title:   title,
		Version: Version,
		Routes:  nav.Paths(),
	})
}
