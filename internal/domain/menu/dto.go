package menu

type MenuItemResponse struct {
	Path  string `json:"path"`
	Label string `json:"label"`
}

type MenuSectionResponse struct {
	Name  string             `json:"name"`
	Items []MenuItemResponse `json:"items"`
}

type MenuResponse struct {
	Sections []MenuSectionResponse `json:"sections"`
}

// ToResponse converts a menu to its JSON shape.
func (m Menu) ToResponse() MenuResponse {
	resp := MenuResponse{Sections: make([]MenuSectionResponse, 0, len(m.Sections))}
	for _, s := range m.Sections {
		section := MenuSectionResponse{Name: s.Name, Items: make([]MenuItemResponse, 0, len(s.Items))}
		for _, item := range s.Items {
			section.Items = append(section.Items, MenuItemResponse{Path: item.Path, Label: item.Label})
		}
		resp.Sections = append(resp.Sections, section)
	}
	return resp
}
