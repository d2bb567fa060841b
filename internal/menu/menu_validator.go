package menu

import (
	"fmt"

	"github.com/pkg/errors"
)

var ErrInvalidCatalog = errors.New("invalid catalog")

// ValidateItems checks the catalog invariants: unique ids, a name and a
// category on every item, and no negative prices.
func ValidateItems(items []Item) error {
	if len(items) == 0 {
		return errors.Wrap(ErrInvalidCatalog, "no items")
	}

	seen := make(map[int]bool, len(items))
	for _, it := range items {
		if seen[it.ID] {
			return errors.Wrap(ErrInvalidCatalog, fmt.Sprintf("duplicate item id %d", it.ID))
		}
		seen[it.ID] = true

		if it.Name == "" {
			return errors.Wrap(ErrInvalidCatalog, fmt.Sprintf("item %d has no name", it.ID))
		}
		if it.Category == "" {
			return errors.Wrap(ErrInvalidCatalog, fmt.Sprintf("item %d has no category", it.ID))
		}
		if it.Price.IsNegative() {
			return errors.Wrap(ErrInvalidCatalog, fmt.Sprintf("item %d has a negative price", it.ID))
		}
	}
	return nil
}
