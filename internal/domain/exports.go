package domain

import (
	interfaces "pizzeria/internal/domain/interfaces"
	types "pizzeria/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Label       = types.Label
	ToppingName = types.ToppingName
	Status      = types.Status
	Ticket      = types.Ticket
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	PricedItem     = interfaces.PricedItem
	Listener       = interfaces.Listener
	CatalogService = interfaces.CatalogService
	ToppingService = interfaces.ToppingService
	Broadcaster    = interfaces.Broadcaster
)

// FormatMoney renders an amount with exactly two decimals.
var FormatMoney = types.FormatMoney
