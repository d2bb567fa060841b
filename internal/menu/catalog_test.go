package menu

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	if c.Len() != 7 {
		t.Fatalf("expected 7 items, got %d", c.Len())
	}

	want := []string{"All", "Starters", "Mains", "Desserts"}
	if got := c.Categories(); !reflect.DeepEqual(got, want) {
		t.Errorf("Categories() = %v, want %v", got, want)
	}

	lamb, ok := c.Find(4)
	if !ok {
		t.Fatal("expected item 4 to exist")
	}
	if lamb.Name != "Herb-Crusted Lamb Rack" || !lamb.Price.Equal(decimal.NewFromInt(34)) {
		t.Errorf("unexpected item 4: %+v", lamb)
	}
}

func TestFilter(t *testing.T) {
	c := Default()

	tests := []struct {
		category string
		want     int
	}{
		{"All", 7},
		{"", 7},
		{"Starters", 2},
		{"Mains", 3},
		{"desserts", 2},
		{"Drinks", 0},
	}
	for _, tt := range tests {
		if got := len(c.Filter(tt.category)); got != tt.want {
			t.Errorf("Filter(%q) returned %d items, want %d", tt.category, got, tt.want)
		}
	}
}

func TestMatchCategory(t *testing.T) {
	cats := Default().Categories()
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"", AllCategories, true},
		{"all", AllCategories, true},
		{"MAINS", "Mains", true},
		{" Desserts ", "Desserts", true},
		{"Drinks", "", false},
	}
	for _, tt := range tests {
		got, ok := MatchCategory(tt.in, cats)
		if got != tt.want || ok != tt.ok {
			t.Errorf("MatchCategory(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestProjectionWithholdsPrices(t *testing.T) {
	c := Default()
	p := c.Projection()

	if p[0] != "Truffle Arancini (Vegetarian,Crispy)" {
		t.Errorf("unexpected projection entry: %q", p[0])
	}
	for i, it := range c.Items() {
		want := it.Name + " (" + strings.Join(it.Tags, ",") + ")"
		if p[i] != want {
			t.Errorf("projection[%d] = %q, want %q", i, p[i], want)
		}
		if strings.Contains(p[i], "$") || strings.Contains(p[i], it.Price.String()) {
			t.Errorf("projection leaks price: %q", p[i])
		}
	}
}

func TestCatalogIsImmutable(t *testing.T) {
	c := Default()

	items := c.Items()
	items[0].Name = "Changed"
	items[0].Tags[0] = "Changed"

	first, _ := c.Find(1)
	if first.Name != "Truffle Arancini" || first.Tags[0] != "Vegetarian" {
		t.Fatalf("catalog was mutated through a copy: %+v", first)
	}
}

func TestNewCatalogValidation(t *testing.T) {
	base := func() []Item {
		return []Item{
			{ID: 1, Category: "Mains", Name: "A", Price: decimal.NewFromInt(1)},
			{ID: 2, Category: "Mains", Name: "B", Price: decimal.NewFromInt(2)},
		}
	}

	tests := []struct {
		name   string
		mutate func([]Item) []Item
	}{
		{"empty", func([]Item) []Item { return nil }},
		{"duplicate id", func(in []Item) []Item { in[1].ID = 1; return in }},
		{"missing name", func(in []Item) []Item { in[0].Name = ""; return in }},
		{"missing category", func(in []Item) []Item { in[0].Category = ""; return in }},
		{"negative price", func(in []Item) []Item { in[0].Price = decimal.NewFromInt(-1); return in }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCatalog(tt.mutate(base()))
			if !errors.Is(err, ErrInvalidCatalog) {
				t.Fatalf("expected ErrInvalidCatalog, got %v", err)
			}
		})
	}
}

func TestWithImageResolver(t *testing.T) {
	c, err := NewCatalog([]Item{
		{ID: 1, Category: "Mains", Name: "A", ImageRef: "menu/a.jpg"},
		{ID: 2, Category: "Mains", Name: "B", ImageRef: "https://cdn.example.com/b.jpg"},
		{ID: 3, Category: "Mains", Name: "C"},
	})
	if err != nil {
		t.Fatal(err)
	}

	resolved := c.WithImageResolver(func(ref string) string {
		return "https://assets.example.com/" + ref
	})

	a, _ := resolved.Find(1)
	b, _ := resolved.Find(2)
	cc, _ := resolved.Find(3)
	if a.ImageRef != "https://assets.example.com/menu/a.jpg" {
		t.Errorf("relative ref not resolved: %q", a.ImageRef)
	}
	if b.ImageRef != "https://cdn.example.com/b.jpg" {
		t.Errorf("absolute ref changed: %q", b.ImageRef)
	}
	if cc.ImageRef != "" {
		t.Errorf("empty ref changed: %q", cc.ImageRef)
	}

	orig, _ := c.Find(1)
	if orig.ImageRef != "menu/a.jpg" {
		t.Errorf("original catalog changed: %q", orig.ImageRef)
	}
}

type fakeObjects map[string][]byte

func (f fakeObjects) GetObject(ctx context.Context, key string) ([]byte, error) {
	raw, ok := f[key]
	if !ok {
		return nil, errors.New("no such key")
	}
	return raw, nil
}

func TestObjectSourceRoundTrip(t *testing.T) {
	raw, err := EncodeDocument(DefaultItems())
	if err != nil {
		t.Fatal(err)
	}

	src := NewObjectSource(fakeObjects{"catalog.json": raw}, "catalog.json")
	c, err := Load(context.Background(), src)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Len() != 7 {
		t.Fatalf("expected 7 items, got %d", c.Len())
	}

	tart, _ := c.Find(7)
	if !tart.Price.Equal(decimal.NewFromInt(12)) {
		t.Errorf("price lost in round trip: %s", tart.Price)
	}
}

func TestObjectSourceMissingKey(t *testing.T) {
	src := NewObjectSource(fakeObjects{}, "catalog.json")
	if _, err := Load(context.Background(), src); err == nil {
		t.Fatal("expected an error for a missing object")
	}
}

func TestDecodeDocumentAcceptsNumericPrices(t *testing.T) {
	items, err := DecodeDocument([]byte(`{"items":[{"id":9,"category":"Mains","name":"Soup","price":7.5,"tags":["Warm"]}]}`))
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 1 || items[0].Price.String() != "7.5" {
		t.Fatalf("unexpected items: %+v", items)
	}
}
