// Package catalog builds priced items from a type label.
//
// Callers ask for a pizza by label ("margarita", "peperoni") and get back a
// domain.PricedItem without knowing the concrete variant. Entries live in a
// label -> constructor map, so adding a pizza is one Register call. Labels
// are compared after Unicode case folding; surrounding whitespace is
// significant.
package catalog
