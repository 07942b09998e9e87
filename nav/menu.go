package nav

import "github.com/bovicare/bovicare-cli/session"

// MenuEntry is one navigable item. The menu is a read-only projection of the
// identity and the route table, nothing authoritative.
type MenuEntry struct {
	Path  string
	Title string
}

// Menu lists the routes the identity may enter. With no identity only the
// public routes remain.
func (n *Navigator) Menu(identity *session.Identity) []MenuEntry {
	entries := make([]MenuEntry, 0)
	for _, route := range n.Routes() {
		if route.Title == "" {
			continue
		}
		if route.Requires == nil {
			entries = append(entries, MenuEntry{Path: route.Path, Title: route.Title})
			continue
		}
		if identity != nil && identity.Role == route.Requires.Role {
			entries = append(entries, MenuEntry{Path: route.Path, Title: route.Title})
		}
	}
	return entries
}
