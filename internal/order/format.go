package order

import (
	"fmt"
	"strings"

	"lumiere/internal/cart"

	"github.com/shopspring/decimal"
)

const rule = "----------------------------"

// DefaultRestaurant names the restaurant in the message header.
const DefaultRestaurant = "Lumière Dining"

// Format renders the order summary sent through the handoff link.
// It refuses to build a message for an empty cart or incomplete customer
// details; those failures match ErrValidation.
func Format(lines []cart.Line, total decimal.Decimal, customer Customer, t Type, restaurant string) (string, error) {
	if len(lines) == 0 {
		return "", ErrEmptyCart
	}
	if err := customer.Validate(); err != nil {
		return "", err
	}
	if restaurant == "" {
		restaurant = DefaultRestaurant
	}

	var b strings.Builder
	fmt.Fprintf(&b, "*🍽️ New Order @ %s*\n", restaurant)
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "*Type:* %s\n", t.Label())
	fmt.Fprintf(&b, "*Name:* %s\n", strings.TrimSpace(customer.Name))
	fmt.Fprintf(&b, "*Info:* %s\n", strings.TrimSpace(customer.LocationOrTable))
	b.WriteString(rule + "\n\n")
	b.WriteString("*Order Details:*\n")

	for _, l := range lines {
		fmt.Fprintf(&b, "▫️ %dx %s ($%s)\n", l.Quantity, l.Name, l.Price.String())
	}

	fmt.Fprintf(&b, "\n*💰 Total Amount: $%s*\n", total.String())
	if notes := strings.TrimSpace(customer.Notes); notes != "" {
		fmt.Fprintf(&b, "\n*📝 Notes:* %s", notes)
	}

	return b.String(), nil
}

// FormatCart formats the current contents of c.
func FormatCart(c *cart.Cart, customer Customer, t Type, restaurant string) (string, error) {
	return Format(c.Lines(), c.Total(), customer, t, restaurant)
}

// Lines is what Checkout needs from a cart.
type Lines interface {
	Lines() []cart.Line
	Total() decimal.Decimal
}
