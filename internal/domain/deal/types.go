package deal

import "dealhub/internal/pkg/errs"

func invalid(msg string) error {
	return errs.Mark(errs.New(msg), errs.ErrDomainValidation)
}

var (
	ErrEmptyStoreName  = invalid("store name cannot be empty")
	ErrEmptyTitle      = invalid("title cannot be empty")
	ErrEmptyImage      = invalid("image cannot be empty")
	ErrInvalidCategory = invalid("category must be one of restaurant, grocery, gas, coffee")
	ErrInvalidDiscount = invalid("discount must be between 0 and 100")
	ErrInvalidBadge    = invalid("badge must be one of great-deal, ends-soon, trending, new")
	ErrNegativePrice   = invalid("price cannot be negative")
	ErrInvalidItem     = invalid("invalid deal item")
	ErrTooManyItems    = invalid("too many deal items")
	ErrFieldTooLong    = invalid("field exceeds maximum length")
)
