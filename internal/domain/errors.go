package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownType is matched by every UnknownTypeError.
	ErrUnknownType = errors.New("unknown type")
	// ErrInvalidItem is returned when an item breaks the PricedItem contract.
	ErrInvalidItem = errors.New("invalid priced item")
	// ErrDuplicate is returned when a label or topping name is registered twice.
	ErrDuplicate = errors.New("already registered")
)

// Kinds reported by UnknownTypeError.
const (
	KindPizza   = "pizza"
	KindTopping = "topping"
)

// UnknownTypeError reports a label that matches no registered entry.
type UnknownTypeError struct {
	Kind  string // KindPizza or KindTopping
	Label string // as given by the caller, before normalization
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown %s type %q", e.Kind, e.Label)
}

// Is lets errors.Is(err, ErrUnknownType) match any UnknownTypeError.
func (e *UnknownTypeError) Is(target error) bool { return target == ErrUnknownType }
