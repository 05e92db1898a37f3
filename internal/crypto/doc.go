// Package crypto holds the hashing helpers used by the order service.
//
// TicketCode derives the short code printed on an order ticket from the
// order's UUID, so a kitchen can call an order out without reading the full
// identifier.
package crypto
