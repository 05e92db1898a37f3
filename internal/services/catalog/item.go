package catalog

import (
	"github.com/shopspring/decimal"

	"pizzeria/internal/domain"
)

// Item is an immutable base pizza with a fixed description and cost.
type Item struct {
	description string
	cost        decimal.Decimal
}

// NewItem returns a base item. Validation happens when the catalog builds it.
func NewItem(description string, cost decimal.Decimal) Item {
	return Item{description: description, cost: cost}
}

// Description returns the fixed description.
func (i Item) Description() string { return i.description }

// Cost returns the fixed cost.
func (i Item) Cost() decimal.Decimal { return i.cost }

// Margarita returns the "Pizza Margarita" base item.
func Margarita() domain.PricedItem {
	return NewItem("Pizza Margarita", decimal.NewFromInt(50))
}

// Peperoni returns the "Pizza Peperoni" base item.
func Peperoni() domain.PricedItem {
	return NewItem("Pizza Peperoni", decimal.NewFromInt(60))
}

var _ domain.PricedItem = Item{}
