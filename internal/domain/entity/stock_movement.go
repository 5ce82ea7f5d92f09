package entity

import "time"

// Movement types. IN and ADJUSTMENT add to the balance, OUT subtracts.
const (
	MovementTypeIn         = "IN"
	MovementTypeOut        = "OUT"
	MovementTypeAdjustment = "ADJUSTMENT"
)

// ValidMovementType reports whether t is one of the three ledger movement types.
func ValidMovementType(t string) bool {
	return t == MovementTypeIn || t == MovementTypeOut || t == MovementTypeAdjustment
}

// SignedQuantity returns the effect of a movement on the stock balance.
func SignedQuantity(movementType string, quantity int) int {
	if movementType == MovementTypeOut {
		return -quantity
	}
	return quantity
}

// StockMovement is one entry in the append-only stock ledger. Movements are
// never updated or deleted individually, only cascade-deleted with their product.
type StockMovement struct {
	ID        string
	ProductID string
	Type      string // IN, OUT, ADJUSTMENT
	Quantity  int    // always positive; Type carries the sign
	Platform  string
	OrderID   string
	Notes     string
	CreatedAt time.Time
}
