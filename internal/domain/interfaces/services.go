package interfaces

import domaintypes "pizzeria/internal/domain/types"

// CatalogService turns a label into a fully-formed priced item.
type CatalogService interface {
	Build(label string) (PricedItem, error)
	Labels() []string
}

// ToppingService wraps priced items in named layers.
type ToppingService interface {
	Apply(item PricedItem, names ...string) (PricedItem, error)
	Names() []string
}

// Listener receives every status the kitchen broadcasts.
type Listener interface {
	Notify(status domaintypes.Status) error
}

// Broadcaster holds a status and pushes each change to its listeners.
type Broadcaster interface {
	Register(l Listener)
	SetStatus(status domaintypes.Status) error
	Status() domaintypes.Status
}
