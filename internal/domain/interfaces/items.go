package interfaces

import "github.com/shopspring/decimal"

// PricedItem is anything on an order that has a description and a cost.
//
// Implementations must keep Cost non-negative and Description non-empty.
type PricedItem interface {
	Description() string
	Cost() decimal.Decimal
}
