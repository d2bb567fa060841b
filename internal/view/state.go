package view

import (
	"lumiere/internal/menu"
	"lumiere/internal/order"

	"github.com/pkg/errors"
)

var ErrCheckoutEmptyCart = errors.New("cannot open checkout with an empty cart")

// Recommendation tracks the latest "ask the chef" exchange. Seq grows by one
// per request; only the response carrying the latest Seq is kept.
type Recommendation struct {
	Seq     uint64 `json:"seq"`
	Prompt  string `json:"prompt"`
	Text    string `json:"text"`
	Loading bool   `json:"loading"`
}

// State is everything the storefront page needs besides the menu and cart.
type State struct {
	CartOpen       bool           `json:"cartOpen"`
	ShowCheckout   bool           `json:"showCheckout"`
	ActiveCategory string         `json:"activeCategory"`
	OrderType      order.Type     `json:"orderType"`
	Customer       order.Customer `json:"customer"`
	Notice         string         `json:"notice,omitempty"`
	Recommendation Recommendation `json:"recommendation"`
}

func New() State {
	return State{
		ActiveCategory: menu.AllCategories,
		OrderType:      order.Delivery,
	}
}

// BeginRecommendation records a new request and returns its sequence number.
func (s *State) BeginRecommendation(prompt string) uint64 {
	s.Recommendation.Seq++
	s.Recommendation.Prompt = prompt
	s.Recommendation.Text = ""
	s.Recommendation.Loading = true
	return s.Recommendation.Seq
}

// CompleteRecommendation stores text if seq is still the latest request.
// Stale responses are dropped and false is returned.
func (s *State) CompleteRecommendation(seq uint64, text string) bool {
	if seq != s.Recommendation.Seq {
		return false
	}
	s.Recommendation.Text = text
	s.Recommendation.Loading = false
	return true
}

// ItemAdded sets the toast shown after an add.
func (s *State) ItemAdded(name string) {
	s.Notice = "Added " + name + " to order"
}

// Patch carries the optional view changes a client can request.
type Patch struct {
	CartOpen       *bool   `json:"cartOpen"`
	ShowCheckout   *bool   `json:"showCheckout"`
	ActiveCategory *string `json:"activeCategory"`
	OrderType      *string `json:"orderType"`
	ClearNotice    bool    `json:"clearNotice"`
}

// Apply validates the whole patch before changing anything.
func (s *State) Apply(p Patch, categories []string, cartEmpty bool) error {
	next := *s

	if p.CartOpen != nil {
		next.CartOpen = *p.CartOpen
		if !next.CartOpen {
			next.ShowCheckout = false
		}
	}
	if p.ShowCheckout != nil {
		if *p.ShowCheckout && cartEmpty {
			return ErrCheckoutEmptyCart
		}
		next.ShowCheckout = *p.ShowCheckout
	}
	if p.ActiveCategory != nil {
		cat, ok := menu.MatchCategory(*p.ActiveCategory, categories)
		if !ok {
			return errors.Errorf("unknown category %q", *p.ActiveCategory)
		}
		next.ActiveCategory = cat
	}
	if p.OrderType != nil {
		t, err := order.ParseType(*p.OrderType)
		if err != nil {
			return err
		}
		next.OrderType = t
	}
	if p.ClearNotice {
		next.Notice = ""
	}

	*s = next
	return nil
}
