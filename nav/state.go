package nav

import "strings"

// Navigator moves the application to another route
type Navigator interface {
	Navigate(path string)
}

// State is the local UI state of one mounted sidebar. The zero value is the
// initial state: expanded, both groups closed.
type State struct {
	Collapsed     bool
	MyStuffOpen   bool
	ResourcesOpen bool
}

// ToggleRail switches between the full sidebar and the icon-only rail
func (s *State) ToggleRail() {
	s.Collapsed = !s.Collapsed
}

// ToggleGroup opens or closes one group and leaves the other alone
func (s *State) ToggleGroup(id GroupID) {
	switch id {
	case MyStuff:
		s.MyStuffOpen = !s.MyStuffOpen
	case Resources:
		s.ResourcesOpen = !s.ResourcesOpen
	}
}

// IsOpen reports whether the group is expanded
func (s State) IsOpen(id GroupID) bool {
	switch id {
	case MyStuff:
		return s.MyStuffOpen
	case Resources:
		return s.ResourcesOpen
	}
	return false
}

// ActionKind says what clicking a row does
type ActionKind int

const (
	ActionNavigate ActionKind = iota + 1
	ActionToggleGroup
	ActionToggleRail
)

// Action is bound to every clickable row of the view
type Action struct {
	Kind  ActionKind
	Path  string
	Group GroupID
}

// Activate applies a click. Navigation goes through n and never touches the
// state; toggles never navigate.
func (s *State) Activate(a Action, n Navigator) {
	switch a.Kind {
	case ActionNavigate:
		n.Navigate(a.Path)
	case ActionToggleGroup:
		s.ToggleGroup(a.Group)
	case ActionToggleRail:
		s.ToggleRail()
	}
}

// IsActive reports an exact route match
func IsActive(route, path string) bool {
	return route == path
}

// HasPrefix reports whether route falls under a group prefix. This is a plain
// string prefix test, so "/myself" is under "/my".
func HasPrefix(route, prefix string) bool {
	return strings.HasPrefix(route, prefix)
}
