package webapp

import (
	"github.com/drummonds/goSidebar/nav"
	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

// Shell is the root component of the application. Every sidebar route
// renders it; the page area only shows where the user is.
type Shell struct {
	app.Compo
	route string
}

// OnPreRender is called when the page is rendered on the server
func (a *Shell) OnPreRender(ctx app.Context) {
	a.route = ctx.Page().URL().Path
	ctx.Page().SetTitle(a.pageTitle())
}

// OnNav is called when navigation occurs
func (a *Shell) OnNav(ctx app.Context) {
	a.route = ctx.Page().URL().Path
	ctx.Page().SetTitle(a.pageTitle())
}

// Render renders the app
func (a *Shell) Render() app.UI {
	return app.Div().
		Class("app-container").
		Body(
			&Sidebar{Logo: branding.Logo, Title: branding.Title},
			app.Main().Body(
				app.Div().Class("content").Body(
					app.H2().Text(a.heading()),
				),
			),
		)
}

func (a *Shell) heading() string {
	e, _ := nav.Lookup(a.route)
	return e.Label
}

func (a *Shell) pageTitle() string {
	title := branding.Title
	if title == "" {
		title = nav.Title
	}
	return a.heading() + " - " + title
}
