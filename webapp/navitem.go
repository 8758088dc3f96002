package webapp

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

// NavEntry is a top-level sidebar row. OnClick is supplied by the owning
// sidebar, which is updated along with the row after the click.
type NavEntry struct {
	app.Compo
	Icon     string
	Label    string
	Active   bool
	New      bool
	Dropdown bool
	OnClick  func(ctx app.Context)
}

// Render renders the row
func (n *NavEntry) Render() app.UI {
	class := "sidebar-item"
	iconClass := "sidebar-icon"
	if n.Active {
		class += " sidebar-item-active"
		iconClass += " sidebar-icon-active"
	}

	body := []app.UI{
		app.Div().Class(iconClass).Body(Icon(n.Icon)),
		app.Span().Class("sidebar-label").Text(n.Label),
	}
	if n.New {
		body = append(body, app.Span().Class("sidebar-badge").Text("NEW"))
	}
	if n.Dropdown {
		chevron := "chevron-right"
		if n.Active {
			chevron = "chevron-down"
		}
		body = append(body, app.Span().Class("sidebar-chevron").Body(Icon(chevron)))
	}

	return app.Button().
		Class(class).
		Type("button").
		OnClick(n.onClick).
		Body(body...)
}

func (n *NavEntry) onClick(ctx app.Context, e app.Event) {
	if n.OnClick != nil {
		n.OnClick(ctx)
	}
}

// SubEntry is an indented row inside an open group
type SubEntry struct {
	app.Compo
	Icon     string
	Label    string
	Active   bool
	External bool
	OnClick  func(ctx app.Context)
}

// Render renders the row
func (s *SubEntry) Render() app.UI {
	class := "sidebar-subitem"
	textClass := "sidebar-sublabel"
	if s.Active {
		class += " sidebar-item-active"
		textClass += " sidebar-sublabel-active"
	}

	body := []app.UI{
		app.Div().Class("sidebar-icon").Body(Icon(s.Icon)),
		app.Span().Class(textClass).Text(s.Label),
	}
	if s.External {
		body = append(body, app.Span().Class("sidebar-external").Body(Icon("external")))
	}

	return app.Button().
		Class(class).
		Type("button").
		OnClick(s.onClick).
		Body(body...)
}

func (s *SubEntry) onClick(ctx app.Context, e app.Event) {
	if s.OnClick != nil {
		s.OnClick(ctx)
	}
}
