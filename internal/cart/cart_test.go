package cart

import (
	"math"
	"math/rand"
	"testing"

	"lumiere/internal/menu"

	"github.com/shopspring/decimal"
)

func item(id int, price int64) menu.Item {
	return menu.Item{ID: id, Category: "Mains", Name: "Dish", Price: decimal.NewFromInt(price)}
}

func TestAddItemTwiceMergesLine(t *testing.T) {
	c := New()
	c.AddItem(item(3, 28))
	c.AddItem(item(3, 28))

	lines := c.Lines()
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].ID != 3 || lines[0].Quantity != 2 {
		t.Errorf("unexpected line: %+v", lines[0])
	}
	if !c.Total().Equal(decimal.NewFromInt(56)) {
		t.Errorf("expected total 56, got %s", c.Total())
	}
	if c.Count() != 2 {
		t.Errorf("expected count 2, got %d", c.Count())
	}
}

func TestAddItemKeepsFirstAddOrder(t *testing.T) {
	c := New()
	c.AddItem(item(4, 34))
	c.AddItem(item(1, 12))
	c.AddItem(item(4, 34))

	lines := c.Lines()
	if lines[0].ID != 4 || lines[1].ID != 1 {
		t.Fatalf("unexpected order: %+v", lines)
	}
}

func TestAddItemSnapshotsPrice(t *testing.T) {
	c := New()
	c.AddItem(item(3, 28))

	// the menu price changes after the line exists
	c.AddItem(item(3, 30))

	if got := c.Lines()[0].Price; !got.Equal(decimal.NewFromInt(28)) {
		t.Fatalf("expected snapshot price 28, got %s", got)
	}
	if !c.Total().Equal(decimal.NewFromInt(56)) {
		t.Fatalf("expected total 56, got %s", c.Total())
	}
}

func TestSetQuantity(t *testing.T) {
	tests := []struct {
		name     string
		start    int
		delta    int
		wantQty  int
		wantLine bool
	}{
		{"decrement to zero removes", 1, -1, 0, false},
		{"large negative removes", 2, -10, 0, false},
		{"increment", 1, 2, 3, true},
		{"decrement", 3, -1, 2, true},
		{"zero delta", 2, 0, 2, true},
		{"increment saturates at max", 2, MaxQuantity, MaxQuantity, true},
		{"max int delta saturates", 1, math.MaxInt, MaxQuantity, true},
		{"min int delta removes", 3, math.MinInt, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			for i := 0; i < tt.start; i++ {
				c.AddItem(item(1, 12))
			}

			c.SetQuantity(1, tt.delta)

			if got := c.Quantity(1); got != tt.wantQty {
				t.Errorf("Quantity(1) = %d, want %d", got, tt.wantQty)
			}
			if (c.Len() == 1) != tt.wantLine {
				t.Errorf("line present = %v, want %v", c.Len() == 1, tt.wantLine)
			}
		})
	}
}

func TestQuantityStaysInRangeAtIntBoundaries(t *testing.T) {
	c := New()
	c.AddItem(item(1, 12))
	c.SetQuantity(1, math.MaxInt-1)
	c.AddItem(item(1, 12))
	c.AddItem(item(2, 10))

	if got := c.Quantity(1); got != MaxQuantity {
		t.Fatalf("Quantity(1) = %d, want %d", got, MaxQuantity)
	}
	if got := c.Count(); got != MaxQuantity+1 {
		t.Fatalf("Count() = %d, want %d", got, MaxQuantity+1)
	}
	want := decimal.NewFromInt(int64(MaxQuantity*12 + 10))
	if !c.Total().Equal(want) {
		t.Fatalf("Total() = %s, want %s", c.Total(), want)
	}

	c.SetQuantity(1, math.MaxInt)
	if c.Len() != 2 || c.Quantity(1) != MaxQuantity {
		t.Fatalf("line should stay at max, got %+v", c.Lines())
	}
}

func TestSetQuantityUnknownIDIsNoop(t *testing.T) {
	c := New()
	c.AddItem(item(1, 12))

	c.SetQuantity(42, 5)
	c.SetQuantity(42, -5)

	if c.Len() != 1 || c.Quantity(1) != 1 {
		t.Fatalf("cart changed: %+v", c.Lines())
	}
}

func TestClear(t *testing.T) {
	c := New()
	c.AddItem(item(1, 12))
	c.AddItem(item(2, 18))
	c.Clear()

	if !c.IsEmpty() || c.Count() != 0 || !c.Total().IsZero() {
		t.Fatalf("cart not empty after Clear: %+v", c.Snapshot())
	}
}

func TestLinesReturnsCopy(t *testing.T) {
	c := New()
	c.AddItem(item(1, 12))

	lines := c.Lines()
	lines[0].Quantity = 99

	if c.Quantity(1) != 1 {
		t.Fatal("cart mutated through Lines()")
	}
}

func TestSnapshotOfEmptyCart(t *testing.T) {
	s := New().Snapshot()
	if s.Lines == nil || len(s.Lines) != 0 {
		t.Errorf("expected empty non-nil lines, got %#v", s.Lines)
	}
	if !s.Total.IsZero() || s.Count != 0 {
		t.Errorf("unexpected snapshot: %+v", s)
	}
}

// Random add/setQuantity sequences must keep every invariant.
func TestInvariantsUnderRandomOperations(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	catalog := menu.DefaultItems()

	for round := 0; round < 200; round++ {
		c := New()
		for step := 0; step < 50; step++ {
			it := catalog[rng.Intn(len(catalog))]
			if rng.Intn(2) == 0 {
				c.AddItem(it)
			} else {
				c.SetQuantity(it.ID, rng.Intn(7)-4)
			}

			wantTotal := decimal.Zero
			wantCount := 0
			seen := map[int]bool{}
			for _, l := range c.Lines() {
				if l.Quantity < 1 || l.Quantity > MaxQuantity {
					t.Fatalf("round %d step %d: line %d has quantity %d", round, step, l.ID, l.Quantity)
				}
				if seen[l.ID] {
					t.Fatalf("round %d step %d: duplicate line for %d", round, step, l.ID)
				}
				seen[l.ID] = true
				wantTotal = wantTotal.Add(l.Price.Mul(decimal.NewFromInt(int64(l.Quantity))))
				wantCount += l.Quantity
			}

			if !c.Total().Equal(wantTotal) {
				t.Fatalf("round %d step %d: total %s, want %s", round, step, c.Total(), wantTotal)
			}
			if c.Count() != wantCount || c.Count() < 0 {
				t.Fatalf("round %d step %d: count %d, want %d", round, step, c.Count(), wantCount)
			}
		}
	}
}
