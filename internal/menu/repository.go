package menu

import "context"

// Source supplies the catalog items at startup.
type Source interface {
	List(ctx context.Context) ([]Item, error)
}

// StaticSource serves a fixed list, normally DefaultItems.
type StaticSource struct {
	items []Item
}

func NewStaticSource(items []Item) *StaticSource {
	return &StaticSource{items: items}
}

func (s *StaticSource) List(ctx context.Context) ([]Item, error) {
	out := make([]Item, len(s.items))
	for i, it := range s.items {
		out[i] = it.clone()
	}
	return out, nil
}

// Load reads the source once and builds the catalog from it.
func Load(ctx context.Context, src Source) (*Catalog, error) {
	items, err := src.List(ctx)
	if err != nil {
		return nil, err
	}
	return NewCatalog(items)
}
