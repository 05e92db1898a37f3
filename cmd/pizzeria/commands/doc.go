// Package commands defines the pizzeria CLI and wires dependencies for subcommands.
//
// Commands
//
//   - demo     Order a peperoni with toppings and follow it through the kitchen
//   - menu     List pizzas and toppings with their prices
//   - order    Place an order for one pizza with optional toppings
//   - track    Subscribe customers to the kitchen and drive it through statuses
//
// Running pizzeria without a subcommand is the same as running demo.
//
// # Configuration
//
// The root command reads PIZZERIA_MENU, PIZZERIA_NOTIFY_POLICY and
// PIZZERIA_VERBOSE from the environment; the matching --menu, --notify-policy
// and --verbose flags take precedence. An unknown pizza or topping ends the
// run with a non-zero exit status.
package commands
