// Package toppings wraps priced items in layers that extend their
// description and cost.
//
// A Layer owns exactly one inner item and adds ", with <suffix>" and a fixed
// delta on top of it. Layers nest in any order and any number of times; every
// wrap is a separate charge. Values are recomputed on each call.
//
// Service keeps a registry of named layers so callers (the CLI, the order
// service) can apply toppings by name.
package toppings
