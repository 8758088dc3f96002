package webapp

import (
	"strings"
	"testing"

	"github.com/drummonds/goSidebar/nav"
	"github.com/maxence-charriere/go-app/v10/pkg/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// navRecorder captures every navigation request
type navRecorder struct {
	paths []string
}

func (r *navRecorder) Navigate(path string) {
	r.paths = append(r.paths, path)
}

func recordingSidebar(rec *navRecorder) *Sidebar {
	return &Sidebar{
		navigator: func(app.Context) nav.Navigator { return rec },
	}
}

func renderSidebar(state nav.State, route string) string {
	s := &Sidebar{state: state, route: route}
	return app.HTMLString(s.Render())
}

func TestNavEntryMarkup(t *testing.T) {
	html := app.HTMLString((&NavEntry{Icon: "users", Label: "Characters", New: true}).Render())
	assert.Contains(t, html, "Characters")
	assert.Contains(t, html, "sidebar-badge")
	assert.Contains(t, html, "NEW")
	assert.NotContains(t, html, "sidebar-item-active")
	assert.NotContains(t, html, "sidebar-chevron")

	html = app.HTMLString((&NavEntry{Icon: "home", Label: "Home", Active: true}).Render())
	assert.Contains(t, html, "sidebar-item-active")
	assert.Contains(t, html, "sidebar-icon-active")
	assert.NotContains(t, html, "NEW")
}

func TestNavEntryChevronFollowsActive(t *testing.T) {
	html := app.HTMLString((&NavEntry{Icon: "users", Label: "My stuff", Dropdown: true}).Render())
	assert.Contains(t, html, "icon-chevron-right")
	assert.NotContains(t, html, "icon-chevron-down")

	html = app.HTMLString((&NavEntry{Icon: "users", Label: "My stuff", Dropdown: true, Active: true}).Render())
	assert.Contains(t, html, "icon-chevron-down")
	assert.NotContains(t, html, "icon-chevron-right")
}

func TestSubEntryMarkup(t *testing.T) {
	html := app.HTMLString((&SubEntry{Icon: "bookmark", Label: "Bookmarks", Active: true}).Render())
	assert.Contains(t, html, "sidebar-subitem")
	assert.Contains(t, html, "sidebar-sublabel-active")
	assert.Contains(t, html, "Bookmarks")
	assert.NotContains(t, html, "sidebar-external")

	html = app.HTMLString((&SubEntry{Icon: "book-open", Label: "Docs", External: true}).Render())
	assert.Contains(t, html, "sidebar-external")
	assert.Contains(t, html, "↗")
	assert.NotContains(t, html, "sidebar-item-active")
}

func TestRowClickCallsOwner(t *testing.T) {
	var ctx app.Context
	var e app.Event

	calls := 0
	(&NavEntry{OnClick: func(app.Context) { calls++ }}).onClick(ctx, e)
	(&SubEntry{OnClick: func(app.Context) { calls++ }}).onClick(ctx, e)
	assert.Equal(t, 2, calls)

	assert.NotPanics(t, func() {
		(&NavEntry{}).onClick(ctx, e)
		(&SubEntry{}).onClick(ctx, e)
	})
}

func TestSidebarInitialMarkup(t *testing.T) {
	html := renderSidebar(nav.State{}, nav.PathHome)

	assert.NotContains(t, html, "sidebar-collapsed")
	assert.Contains(t, html, "sidebar-header")
	for _, e := range nav.Entries {
		assert.Contains(t, html, e.Label)
	}
	assert.Equal(t, len(nav.Entries)+len(nav.Groups), strings.Count(html, "sidebar-label"))
	assert.NotContains(t, html, "sidebar-subitem")
	assert.NotContains(t, html, "sidebar-dropdown")
}

func TestSidebarCollapsedMarkup(t *testing.T) {
	html := renderSidebar(nav.State{Collapsed: true, MyStuffOpen: true}, nav.PathCharacters)

	assert.Contains(t, html, "sidebar-collapsed")
	assert.Contains(t, html, nav.LogoPath)
	assert.Contains(t, html, "sidebar-rail-toggle")
	assert.NotContains(t, html, "sidebar-item")
	assert.NotContains(t, html, "sidebar-upgrade")
	assert.NotContains(t, html, "Characters")
	assert.NotContains(t, html, "NEW")
	assert.NotContains(t, html, "Bookmarks")
}

func TestSidebarExactActiveMarkup(t *testing.T) {
	html := renderSidebar(nav.State{}, nav.PathCharacters)
	assert.Equal(t, 1, strings.Count(html, "sidebar-item-active"))
	assert.NotContains(t, html, "sidebar-upgrade-ring")
}

func TestSidebarGroupActiveMarkup(t *testing.T) {
	html := renderSidebar(nav.State{MyStuffOpen: true}, nav.PathBookmarks)

	assert.Contains(t, html, "sidebar-dropdown")
	assert.Contains(t, html, "Creation History")
	assert.Contains(t, html, "Liked")
	assert.NotContains(t, html, "Tutorials")
	// the "My stuff" header by prefix and the Bookmarks row by exact match
	assert.Equal(t, 2, strings.Count(html, "sidebar-item-active"))
	assert.Equal(t, 1, strings.Count(html, "sidebar-sublabel-active"))
	assert.Contains(t, html, "icon-chevron-down")
}

func TestSidebarUpgradeRing(t *testing.T) {
	html := renderSidebar(nav.State{}, nav.PathUpgrade)
	assert.Contains(t, html, "sidebar-upgrade-ring")
	assert.NotContains(t, html, "sidebar-item-active")
}

func TestSidebarNewBadgeOnlyOnCharacters(t *testing.T) {
	for _, route := range append(nav.Paths(), "/unknown") {
		html := renderSidebar(nav.State{MyStuffOpen: true, ResourcesOpen: true}, route)
		assert.Equal(t, 1, strings.Count(html, "sidebar-badge"), route)
	}
}

func TestSidebarActivateNavigates(t *testing.T) {
	rec := &navRecorder{}
	s := recordingSidebar(rec)
	var ctx app.Context

	s.activate(nav.Action{Kind: nav.ActionNavigate, Path: nav.PathLiked})(ctx)
	require.Equal(t, []string{nav.PathLiked}, rec.paths)
	assert.Equal(t, nav.State{}, s.state)
}

func TestSidebarToggles(t *testing.T) {
	rec := &navRecorder{}
	s := recordingSidebar(rec)
	var ctx app.Context
	var e app.Event

	s.activate(nav.Action{Kind: nav.ActionToggleGroup, Group: nav.Resources})(ctx)
	assert.True(t, s.state.ResourcesOpen)
	assert.False(t, s.state.MyStuffOpen)

	s.actionHandler(nav.Action{Kind: nav.ActionToggleRail})(ctx, e)
	assert.True(t, s.state.Collapsed)
	s.actionHandler(nav.Action{Kind: nav.ActionToggleRail})(ctx, e)
	assert.False(t, s.state.Collapsed)
	assert.True(t, s.state.ResourcesOpen)

	assert.Empty(t, rec.paths)
}

func TestShellHeading(t *testing.T) {
	assert.Equal(t, "Liked", (&Shell{route: nav.PathLiked}).heading())
	assert.Equal(t, "Upgrade Plan - OpenArt", (&Shell{route: nav.PathUpgrade}).pageTitle())
}
