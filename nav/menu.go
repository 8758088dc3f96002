package nav

// Title is shown next to the logo in the expanded sidebar
const Title = "OpenArt"

// LogoPath is the default location of the sidebar logo
const LogoPath = "/lovable-uploads/407e5ec8-9b67-42ee-acf0-b238e194aa64.png"

// Route constants for every sidebar destination
const (
	PathUpgrade      = "/upgrade-plan"
	PathHome         = "/"
	PathCharacters   = "/characters"
	PathCreate       = "/create"
	PathEdit         = "/edit"
	PathStyleProfile = "/style-profile"
	PathPhotoDumps   = "/photo-dumps"
	PathStore        = "/store"

	PrefixMyStuff = "/my"
	PathHistory   = "/my/history"
	PathBookmarks = "/my/bookmarks"
	PathLiked     = "/my/liked"

	PrefixResources = "/resources"
	PathTutorials   = "/resources/tutorials"
	PathHelp        = "/resources/help"
)

// Entry is a single static menu row
type Entry struct {
	Icon     string
	Label    string
	Path     string
	New      bool
	External bool
}

// GroupID identifies one of the expandable groups
type GroupID int

const (
	MyStuff GroupID = iota + 1
	Resources
)

// Group is an expandable header with nested entries
type Group struct {
	ID     GroupID
	Label  string
	Prefix string
	Items  []Entry
}

// Upgrade is the call-to-action shown above the entries
var Upgrade = Entry{Icon: "crown", Label: "Upgrade Plan", Path: PathUpgrade}

// Entries are the top-level rows in display order
var Entries = []Entry{
	{Icon: "home", Label: "Home", Path: PathHome},
	{Icon: "users", Label: "Characters", Path: PathCharacters, New: true},
	{Icon: "image", Label: "Create Image", Path: PathCreate},
	{Icon: "edit", Label: "Edit Image", Path: PathEdit},
	{Icon: "palette", Label: "Style Profile", Path: PathStyleProfile},
	{Icon: "grid", Label: "Photo Dumps", Path: PathPhotoDumps},
	{Icon: "layout-grid", Label: "Store", Path: PathStore},
}

// Groups are the expandable sections below the entries
var Groups = []Group{
	{
		ID:     MyStuff,
		Label:  "My stuff",
		Prefix: PrefixMyStuff,
		Items: []Entry{
			{Icon: "clock", Label: "Creation History", Path: PathHistory},
			{Icon: "bookmark", Label: "Bookmarks", Path: PathBookmarks},
			{Icon: "heart", Label: "Liked", Path: PathLiked},
		},
	},
	{
		ID:     Resources,
		Label:  "Resources",
		Prefix: PrefixResources,
		Items: []Entry{
			{Icon: "book-open", Label: "Tutorials", Path: PathTutorials},
			{Icon: "help-circle", Label: "Help Center", Path: PathHelp},
		},
	},
}

// Paths returns every path the sidebar can navigate to
func Paths() []string {
	paths := []string{Upgrade.Path}
	for _, e := range Entries {
		paths = append(paths, e.Path)
	}
	for _, g := range Groups {
		for _, e := range g.Items {
			paths = append(paths, e.Path)
		}
	}
	return paths
}

// Lookup finds the entry whose path equals path exactly
func Lookup(path string) (Entry, bool) {
	if path == Upgrade.Path {
		return Upgrade, true
	}
	for _, e := range Entries {
		if e.Path == path {
			return e, true
		}
	}
	for _, g := range Groups {
		for _, e := range g.Items {
			if e.Path == path {
				return e, true
			}
		}
	}
	return Entry{}, false
}
