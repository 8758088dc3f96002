package webapp

import (
	"github.com/drummonds/goSidebar/nav"
	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

const (
	envTitle = "SIDEBAR_TITLE"
	envLogo  = "SIDEBAR_LOGO"
)

// Branding overrides the title and logo shown in the sidebar
type Branding struct {
	Title string
	Logo  string
}

// branding is set by Handler on the server and from the app environment in
// the browser
var branding Branding

// Register routes every sidebar destination to the shell
func Register() {
	for _, path := range nav.Paths() {
		app.Route(path, func() app.Composer { return &Shell{} })
	}
}

// RunClient starts the app in the browser. It is a no-op on the server.
func RunClient() {
	branding = Branding{
		Title: app.Getenv(envTitle),
		Logo:  app.Getenv(envLogo),
	}
	Register()
	app.RunWhenOnBrowser()
}

// Handler returns an HTTP handler for the web app
func Handler(b Branding) *app.Handler {
	branding = b
	Register()

	name := b.Title
	if name == "" {
		name = nav.Title
	}

	// app.wasm is served from /web/app.wasm by Echo
	return &app.Handler{
		Name:        name,
		Title:       name,
		Description: "Navigation sidebar",
		Icon: app.Icon{
			Default: "/favicon.ico",
		},
		Styles: []string{
			"/webapp/webapp.css",
		},
		RawHeaders: []string{
			`<meta name="viewport" content="width=device-width, initial-scale=1">`,
		},
		Env: map[string]string{
			envTitle: b.Title,
			envLogo:  b.Logo,
		},
	}
}
