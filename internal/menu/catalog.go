package menu

import "strings"

// AllCategories is the pseudo-category that matches every item.
const AllCategories = "All"

// Catalog is the read-only, process-wide list of menu items.
// Accessors hand out copies so callers cannot mutate it.
type Catalog struct {
	items []Item
	byID  map[int]int
}

func NewCatalog(items []Item) (*Catalog, error) {
	if err := ValidateItems(items); err != nil {
		return nil, err
	}

	c := &Catalog{
		items: make([]Item, len(items)),
		byID:  make(map[int]int, len(items)),
	}
	for i, it := range items {
		c.items[i] = it.clone()
		c.byID[it.ID] = i
	}
	return c, nil
}

func (c *Catalog) Items() []Item {
	out := make([]Item, len(c.items))
	for i, it := range c.items {
		out[i] = it.clone()
	}
	return out
}

func (c *Catalog) Len() int {
	return len(c.items)
}

func (c *Catalog) Find(id int) (Item, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return Item{}, false
	}
	return c.items[idx].clone(), true
}

// Categories returns "All" followed by each category in first-seen order.
func (c *Catalog) Categories() []string {
	out := []string{AllCategories}
	seen := make(map[string]bool)
	for _, it := range c.items {
		if seen[it.Category] {
			continue
		}
		seen[it.Category] = true
		out = append(out, it.Category)
	}
	return out
}

// Filter returns the items in category; "All" or "" returns everything.
func (c *Catalog) Filter(category string) []Item {
	if category == "" || strings.EqualFold(category, AllCategories) {
		return c.Items()
	}

	var out []Item
	for _, it := range c.items {
		if strings.EqualFold(it.Category, category) {
			out = append(out, it.clone())
		}
	}
	return out
}

// MatchCategory resolves want against categories case-insensitively and
// returns the canonical spelling. Empty means AllCategories.
func MatchCategory(want string, categories []string) (string, bool) {
	want = strings.TrimSpace(want)
	if want == "" {
		return AllCategories, true
	}
	for _, c := range categories {
		if strings.EqualFold(c, want) {
			return c, true
		}
	}
	return "", false
}

// Projection is the compact form handed to the recommendation prompt.
func (c *Catalog) Projection() []string {
	out := make([]string, len(c.items))
	for i, it := range c.items {
		out[i] = it.Summary()
	}
	return out
}

// WithImageResolver returns a copy whose image refs have been passed through
// resolve. Absolute http(s) refs are kept as they are.
func (c *Catalog) WithImageResolver(resolve func(ref string) string) *Catalog {
	out := &Catalog{
		items: make([]Item, len(c.items)),
		byID:  make(map[int]int, len(c.items)),
	}
	for i, it := range c.items {
		it = it.clone()
		if it.ImageRef != "" && !isAbsoluteURL(it.ImageRef) {
			it.ImageRef = resolve(it.ImageRef)
		}
		out.items[i] = it
		out.byID[it.ID] = i
	}
	return out
}

func isAbsoluteURL(ref string) bool {
	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://")
}
