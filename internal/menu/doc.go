// Package menu loads catalog extensions from a YAML file.
//
// A menu file adds pizzas and toppings on top of the built-in ones:
//
//	pizzas:
//	  - label: hawaiana
//	    description: Pizza Hawaiana
//	    cost: "65.00"
//	toppings:
//	  - name: jalapenos
//	    suffix: Jalapeños
//	    delta: "5.50"
//
// Amounts are decimal strings. Negative amounts and empty fields are
// rejected before anything is registered.
package menu
