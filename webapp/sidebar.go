package webapp

import (
	"github.com/drummonds/goSidebar/nav"
	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

// Sidebar is the collapsible navigation component. Its open and collapsed
// flags live only as long as the mounted instance.
type Sidebar struct {
	app.Compo
	Logo  string
	Title string

	state     nav.State
	route     string
	navigator func(ctx app.Context) nav.Navigator
}

// pageNavigator adapts a go-app context to nav.Navigator
type pageNavigator struct {
	ctx app.Context
}

func (p pageNavigator) Navigate(path string) {
	app.Logf("sidebar: navigating to %s", path)
	p.ctx.Navigate(path)
}

// OnPreRender is called when the page is rendered on the server
func (s *Sidebar) OnPreRender(ctx app.Context) {
	s.route = ctx.Page().URL().Path
}

// OnMount is called when the component is mounted
func (s *Sidebar) OnMount(ctx app.Context) {
	s.route = ctx.Page().URL().Path
}

// OnNav is called when navigation occurs
func (s *Sidebar) OnNav(ctx app.Context) {
	s.route = ctx.Page().URL().Path
}

// Render renders the sidebar
func (s *Sidebar) Render() app.UI {
	v := nav.Build(s.state, s.route, nav.Options{Logo: s.Logo, Title: s.Title})
	if v.Collapsed {
		return s.renderRail(v)
	}

	body := []app.UI{
		s.renderHeader(v),
		s.renderUpgrade(v.Upgrade),
	}

	entries := make([]app.UI, 0, len(v.Entries))
	for _, row := range v.Entries {
		entries = append(entries, s.renderEntry(row))
	}
	body = append(body, app.Div().Class("sidebar-entries").Body(entries...))

	groups := make([]app.UI, 0, len(v.Groups))
	for _, g := range v.Groups {
		groups = append(groups, s.renderGroup(g))
	}
	body = append(body, app.Div().Class("sidebar-groups").Body(groups...))

	return app.Aside().
		Class("sidebar").
		Body(body...)
}

func (s *Sidebar) renderRail(v nav.View) app.UI {
	return app.Aside().
		Class("sidebar sidebar-collapsed").
		Body(
			app.Div().Class("sidebar-logo").Body(
				app.Img().Src(v.Logo).Alt("Logo").Class("logo"),
			),
			app.Button().
				Class("sidebar-rail-toggle sidebar-rail-expand").
				Type("button").
				Title("Expand sidebar").
				OnClick(s.actionHandler(v.Rail)).
				Body(Icon("chevron-right")),
		)
}

func (s *Sidebar) renderHeader(v nav.View) app.UI {
	return app.Div().
		Class("sidebar-header").
		Body(
			app.Div().Class("sidebar-brand").Body(
				app.Img().Src(v.Logo).Alt("Logo").Class("logo"),
				app.Span().Class("sidebar-title").Text(v.Title),
			),
			app.Button().
				Class("sidebar-rail-toggle").
				Type("button").
				Title("Collapse sidebar").
				OnClick(s.actionHandler(v.Rail)).
				Body(Icon("chevron-right")),
		)
}

func (s *Sidebar) renderUpgrade(row nav.Row) app.UI {
	class := "sidebar-upgrade"
	if row.Active {
		class += " sidebar-upgrade-ring"
	}
	return app.Div().
		Class("sidebar-cta").
		Body(
			app.Button().
				Class(class).
				Type("button").
				OnClick(s.actionHandler(row.Action)).
				Body(
					Icon(row.Icon),
					app.Text(row.Label),
				),
		)
}

func (s *Sidebar) renderEntry(row nav.Row) app.UI {
	return &NavEntry{
		Icon:     row.Icon,
		Label:    row.Label,
		Active:   row.Active,
		New:      row.New,
		Dropdown: row.Expandable,
		OnClick:  s.activate(row.Action),
	}
}

func (s *Sidebar) renderGroup(g nav.GroupView) app.UI {
	body := []app.UI{s.renderEntry(g.Header)}
	if g.Open {
		items := make([]app.UI, 0, len(g.Items))
		for _, row := range g.Items {
			items = append(items, &SubEntry{
				Icon:     row.Icon,
				Label:    row.Label,
				Active:   row.Active,
				External: row.External,
				OnClick:  s.activate(row.Action),
			})
		}
		body = append(body, app.Div().Class("sidebar-dropdown").Body(items...))
	}
	return app.Div().Class("sidebar-group").Body(body...)
}

// activate returns the callback handed to child rows
func (s *Sidebar) activate(a nav.Action) func(ctx app.Context) {
	return func(ctx app.Context) {
		s.state.Activate(a, s.navigatorFor(ctx))
	}
}

// actionHandler binds an action to a click on an element the sidebar owns
func (s *Sidebar) actionHandler(a nav.Action) app.EventHandler {
	return func(ctx app.Context, e app.Event) {
		s.state.Activate(a, s.navigatorFor(ctx))
	}
}

func (s *Sidebar) navigatorFor(ctx app.Context) nav.Navigator {
	if s.navigator != nil {
		return s.navigator(ctx)
	}
	return pageNavigator{ctx: ctx}
}
