package nav

// Row is one rendered, clickable line of the sidebar
type Row struct {
	Icon       string
	Label      string
	Path       string
	Active     bool
	New        bool
	External   bool
	Expandable bool
	Action     Action
}

// GroupView is a group header plus its items. Items is empty while the group
// is closed.
type GroupView struct {
	ID     GroupID
	Open   bool
	Header Row
	Items  []Row
}

// View is everything the sidebar draws for one state and route. When
// Collapsed is set only Logo and Rail are meaningful.
type View struct {
	Collapsed bool
	Logo      string
	Title     string
	Rail      Action
	Upgrade   Row
	Entries   []Row
	Groups    []GroupView
}

// Options overrides the static branding
type Options struct {
	Logo  string
	Title string
}

// Build derives the view from the state and the current route. Active flags
// are recomputed here on every call and never stored.
func Build(s State, route string, opts Options) View {
	v := View{
		Collapsed: s.Collapsed,
		Logo:      opts.Logo,
		Title:     opts.Title,
		Rail:      Action{Kind: ActionToggleRail},
	}
	if v.Logo == "" {
		v.Logo = LogoPath
	}
	if v.Title == "" {
		v.Title = Title
	}
	if s.Collapsed {
		return v
	}

	v.Upgrade = entryRow(Upgrade, route)
	for _, e := range Entries {
		v.Entries = append(v.Entries, entryRow(e, route))
	}
	for _, g := range Groups {
		open := s.IsOpen(g.ID)
		icon := "chevron-right"
		if open {
			icon = "chevron-down"
		}
		gv := GroupView{
			ID:   g.ID,
			Open: open,
			Header: Row{
				Icon:       icon,
				Label:      g.Label,
				Active:     HasPrefix(route, g.Prefix),
				Expandable: true,
				Action:     Action{Kind: ActionToggleGroup, Group: g.ID},
			},
		}
		if open {
			for _, e := range g.Items {
				gv.Items = append(gv.Items, entryRow(e, route))
			}
		}
		v.Groups = append(v.Groups, gv)
	}
	return v
}

func entryRow(e Entry, route string) Row {
	return Row{
		Icon:     e.Icon,
		Label:    e.Label,
		Path:     e.Path,
		Active:   IsActive(route, e.Path),
		New:      e.New,
		External: e.External,
		Action:   Action{Kind: ActionNavigate, Path: e.Path},
	}
}
