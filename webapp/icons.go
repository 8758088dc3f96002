package webapp

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

// glyphs maps icon names used by the menu to text glyphs
var glyphs = map[string]string{
	"home":          "🏠",
	"users":         "👥",
	"image":         "🖼️",
	"edit":          "✏️",
	"palette":       "🎨",
	"grid":          "▦",
	"layout-grid":   "▤",
	"crown":         "👑",
	"clock":         "🕒",
	"bookmark":      "🔖",
	"heart":         "♥",
	"book-open":     "📖",
	"help-circle":   "❔",
	"chevron-right": "›",
	"chevron-down":  "⌄",
	"external":      "↗",
}

// Icon renders a named glyph. Unknown names render an empty span so the row
// layout stays aligned.
func Icon(name string) app.UI {
	return app.Span().
		Class("icon icon-" + name).
		Aria("hidden", "true").
		Text(glyphs[name])
}
