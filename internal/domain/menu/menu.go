package menu

import "github.com/cmlabs-hris/hris-console-go/internal/domain/access"

// DefaultSection groups descriptors that do not name a section.
const DefaultSection = "Lainnya"

// Section is one menu group with its entries in route-table order.
type Section struct {
	Name  string
	Items []access.RouteDescriptor
}

// Menu is the navigation structure for one session. Sections are ordered by the
// first appearance of their name in the route table.
type Menu struct {
	Sections []Section
}

// BuildMenu filters the route table for the session and groups the surviving
// menu entries by section. The partition is stable: entries keep their relative
// table order inside a section. The result shares no slices with the input.
func BuildMenu(routes []access.RouteDescriptor, session access.Session) Menu {
	index := make(map[string]int)
	var m Menu

	for _, route := range routes {
		if !route.IsMenuEntry() {
			continue
		}
		if !route.CanAccess(session) {
			continue
		}

		name := route.Section
		if name == "" {
			name = DefaultSection
		}

		i, ok := index[name]
		if !ok {
			i = len(m.Sections)
			index[name] = i
			m.Sections = append(m.Sections, Section{Name: name})
		}
		m.Sections[i].Items = append(m.Sections[i].Items, route)
	}

	return m
}
