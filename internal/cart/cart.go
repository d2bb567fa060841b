package cart

import (
	"lumiere/internal/menu"

	"github.com/shopspring/decimal"
)

// Line is one item in the cart. Name and Price are copied from the menu
// when the item is first added and are not refreshed afterwards.
type Line struct {
	ID       int             `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

func (l Line) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// MaxQuantity caps a single line. Adds and increments past it saturate.
const MaxQuantity = 999

// Cart keeps lines in first-add order, at most one line per item id,
// every quantity >= 1. It is not safe for concurrent use.
type Cart struct {
	lines []Line
}

func New() *Cart {
	return &Cart{}
}

// AddItem bumps the existing line for item.ID or appends a new one.
func (c *Cart) AddItem(item menu.Item) {
	if i := c.index(item.ID); i >= 0 {
		if c.lines[i].Quantity < MaxQuantity {
			c.lines[i].Quantity++
		}
		return
	}
	c.lines = append(c.lines, Line{
		ID:       item.ID,
		Name:     item.Name,
		Price:    item.Price,
		Quantity: 1,
	})
}

// SetQuantity applies delta to the line for id, clamping to
// [0, MaxQuantity] and dropping the line when it reaches zero. Unknown ids
// are ignored.
func (c *Cart) SetQuantity(id, delta int) {
	i := c.index(id)
	if i < 0 {
		return
	}

	// compare before adding so extreme deltas cannot wrap
	cur := c.lines[i].Quantity
	switch {
	case delta <= -cur:
		c.lines = append(c.lines[:i], c.lines[i+1:]...)
	case delta >= MaxQuantity-cur:
		c.lines[i].Quantity = MaxQuantity
	default:
		c.lines[i].Quantity = cur + delta
	}
}

func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

func (c *Cart) Count() int {
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

func (c *Cart) Clear() {
	c.lines = nil
}

func (c *Cart) Lines() []Line {
	return append([]Line(nil), c.lines...)
}

func (c *Cart) Len() int {
	return len(c.lines)
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Quantity returns 0 when id is not in the cart.
func (c *Cart) Quantity(id int) int {
	if i := c.index(id); i >= 0 {
		return c.lines[i].Quantity
	}
	return 0
}

// Snapshot is the JSON shape of a cart with its derived values.
type Snapshot struct {
	Lines []Line          `json:"lines"`
	Total decimal.Decimal `json:"total"`
	Count int             `json:"count"`
}

func (c *Cart) Snapshot() Snapshot {
	lines := c.Lines()
	if lines == nil {
		lines = []Line{}
	}
	return Snapshot{Lines: lines, Total: c.Total(), Count: c.Count()}
}

func (c *Cart) index(id int) int {
	for i, l := range c.lines {
		if l.ID == id {
			return i
		}
	}
	return -1
}
