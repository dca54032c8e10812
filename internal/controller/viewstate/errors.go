package viewstate

import (
	"errors"

	"storefront/internal/entities"
)

// ErrValidation is the root of every input error rejected before a request is sent.
var ErrValidation = errors.New("validation failed")

type Kind int

const (
	KindGeneric Kind = iota
	KindValidation
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	default:
		return "generic"
	}
}

func Classify(err error) Kind {
	switch {
	case errors.Is(err, ErrValidation):
		return KindValidation
	case errors.Is(err, entities.ErrNotFound):
		return KindNotFound
	default:
		return KindGeneric
	}
}
