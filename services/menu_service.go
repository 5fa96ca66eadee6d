package services

import "github.com/yashtrivedi1234/rinku-hotel-taste-of-home/entity"

// MenuService serves the seeded catalog. Read-only after startup.
type MenuService struct {
	items []entity.MenuItem
}

func NewMenuService(items []entity.MenuItem) *MenuService {
	return &MenuService{items: items}
}

// List returns all items, or only the given category when non-empty.
func (s *MenuService) List(category entity.MenuCategory) []entity.MenuItem {
	if category == "" || category == "all" {
		out := make([]entity.MenuItem, len(s.items))
		copy(out, s.items)
		return out
	}
	var out []entity.MenuItem
	for _, it := range s.items {
		if it.Category == category {
			out = append(out, it)
		}
	}
	return out
}

func (s *MenuService) Get(id string) (entity.MenuItem, bool) {
	for _, it := range s.items {
		if it.ID == id {
			return it, true
		}
	}
	return entity.MenuItem{}, false
}
