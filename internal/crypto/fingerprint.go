package crypto

import (
	"encoding/hex"

	"github.com/google/uuid"
	"golang.org/x/crypto/blake2b"
)

// TicketCodeLen is the number of hex characters in a ticket code.
const TicketCodeLen = 8

// TicketCode returns a short hex code for an order ID.
//
// It hashes with BLAKE2b-256 and truncates to 4 bytes (8 hex chars).
func TicketCode(id uuid.UUID) string {
	sum := blake2b.Sum256(id[:])
	return hex.EncodeToString(sum[:TicketCodeLen/2])
}
