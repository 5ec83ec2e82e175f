package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidEmail       = errors.New("invalid email")
	ErrInvalidPassword    = errors.New("invalid password")
	ErrInvalidProductName = errors.New("invalid product name")
	ErrLongDescription    = errors.New("description is too long")
	ErrNegativePrice      = errors.New("price cannot be negative")
	ErrNegativeQuantity   = errors.New("quantity cannot be negative")
	ErrInvalidCategory    = errors.New("invalid product category")
	ErrNoFieldsToUpdate   = errors.New("at least one field must be provided for update")
)
