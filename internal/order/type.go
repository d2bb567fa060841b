package order

import (
	"strings"

	"github.com/pkg/errors"
)

// Type is how the order reaches the customer.
type Type string

const (
	Delivery Type = "delivery"
	Pickup   Type = "pickup"
	DineIn   Type = "dine-in"
)

var ErrUnknownType = errors.New("unknown order type")

// Types lists the order types in the order the checkout form shows them.
func Types() []Type {
	return []Type{Delivery, Pickup, DineIn}
}

// ParseType is case-insensitive; the empty string means Delivery.
func ParseType(s string) (Type, error) {
	switch Type(strings.ToLower(strings.TrimSpace(s))) {
	case "", Delivery:
		return Delivery, nil
	case Pickup:
		return Pickup, nil
	case DineIn:
		return DineIn, nil
	}
	return "", errors.Wrapf(ErrUnknownType, "%q", s)
}

func (t Type) Label() string {
	return strings.ToUpper(string(t))
}

// LocationLabel names what the location field holds for this order type.
func (t Type) LocationLabel() string {
	if t == DineIn {
		return "Table Number"
	}
	return "Delivery Address"
}

// Option is one choice on the checkout form.
type Option struct {
	Value         Type   `json:"value"`
	Label         string `json:"label"`
	LocationLabel string `json:"locationLabel"`
}

// Options describes every order type with the labels the form shows.
func Options() []Option {
	types := Types()
	out := make([]Option, len(types))
	for i, t := range types {
		out[i] = Option{Value: t, Label: t.Label(), LocationLabel: t.LocationLabel()}
	}
	return out
}
