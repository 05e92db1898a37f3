package types

import "github.com/google/uuid"

// Ticket identifies a placed order.
type Ticket struct {
	ID   uuid.UUID `json:"id"`
	Code string    `json:"code"` // short code called out by the kitchen
}
