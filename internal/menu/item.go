package menu

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Item is one orderable entry on the menu.
type Item struct {
	ID          int             `json:"id"`
	Category    string          `json:"category"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageRef    string          `json:"image"`
	Tags        []string        `json:"tags"`
}

// Summary renders the item as "name (tag,tag,...)" with the price left out.
func (i Item) Summary() string {
	return i.Name + " (" + strings.Join(i.Tags, ",") + ")"
}

func (i Item) clone() Item {
	out := i
	out.Tags = append([]string(nil), i.Tags...)
	return out
}
