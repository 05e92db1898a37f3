package types

import "github.com/shopspring/decimal"

// Label selects a catalog entry, e.g. "peperoni".
type Label string

// String returns the string form of the label.
func (l Label) String() string { return string(l) }

// ToppingName selects a registered layer, e.g. "queso-extra".
type ToppingName string

// String returns the string form of the topping name.
func (n ToppingName) String() string { return string(n) }

// Status is the order status broadcast by the kitchen. The zero value means
// no status has been set yet.
type Status string

// String returns the string form of the status.
func (s Status) String() string { return string(s) }

// IsZero reports whether no status has been set.
func (s Status) IsZero() bool { return s == "" }

// FormatMoney renders an amount with exactly two decimals.
func FormatMoney(d decimal.Decimal) string { return d.StringFixed(2) }
