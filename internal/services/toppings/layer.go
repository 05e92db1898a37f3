package toppings

import (
	"github.com/shopspring/decimal"

	"pizzeria/internal/domain"
)

// Separator joins an inner description and a layer suffix.
const Separator = ", with "

// Layer is a priced item wrapped with one extra feature.
type Layer struct {
	inner  domain.PricedItem
	suffix string
	delta  decimal.Decimal
}

// Wrap returns inner wrapped in a layer adding suffix and delta.
func Wrap(inner domain.PricedItem, suffix string, delta decimal.Decimal) *Layer {
	return &Layer{inner: inner, suffix: suffix, delta: delta}
}

// Description returns the inner description followed by this layer's suffix.
func (l *Layer) Description() string {
	return l.inner.Description() + Separator + l.suffix
}

// Cost returns the inner cost plus this layer's delta.
func (l *Layer) Cost() decimal.Decimal {
	return l.inner.Cost().Add(l.delta)
}

// Inner returns the wrapped item.
func (l *Layer) Inner() domain.PricedItem { return l.inner }

// QuesoExtra adds extra cheese for 10.00.
func QuesoExtra(item domain.PricedItem) domain.PricedItem {
	return Wrap(item, "Queso Extra", decimal.NewFromInt(10))
}

// BordeRelleno adds a stuffed crust for 15.00.
func BordeRelleno(item domain.PricedItem) domain.PricedItem {
	return Wrap(item, "Borde Relleno", decimal.NewFromInt(15))
}

var _ domain.PricedItem = (*Layer)(nil)
