package order

import (
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrValidation      = errors.New("order validation failed")
	ErrEmptyCart       = validationError("cart is empty")
	ErrMissingName     = validationError("name is required")
	ErrMissingLocation = validationError("location or table is required")
)

type validation struct {
	msg string
}

func validationError(msg string) error {
	return &validation{msg: msg}
}

func (v *validation) Error() string { return v.msg }

// Is lets errors.Is(err, ErrValidation) match every validation failure.
func (v *validation) Is(target error) bool {
	return target == ErrValidation
}

type Customer struct {
	Name            string `json:"name"`
	LocationOrTable string `json:"locationOrTable"`
	Notes           string `json:"notes,omitempty"`
}

func (c Customer) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrMissingName
	}
	if strings.TrimSpace(c.LocationOrTable) == "" {
		return ErrMissingLocation
	}
	return nil
}
