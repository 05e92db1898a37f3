// Package order places pizza orders.
//
// It builds the base pizza through the catalog, layers the requested toppings
// on top, and stamps the result with a UUID and a short ticket code. Orders
// are not stored anywhere.
package order
