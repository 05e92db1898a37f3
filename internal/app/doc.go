// Package app wires application dependencies for the CLI.
//
// Config is read from the environment; NewWire builds the catalog, topping
// registry and order service from it (applying any menu file first) and hands
// out kitchens configured with the chosen listener failure policy.
package app
