package inventory

import "fmt"

// InsufficientStockError is returned when an outgoing movement would drive
// stock below zero. It carries the quantities so callers can report exactly
// how short the branch is.
type InsufficientStockError struct {
	Available int64
	Requested int64
}

// Error implements the error interface
func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock: %d available, %d requested", e.Available, e.Requested)
}

// Shortfall returns how many units are missing
func (e *InsufficientStockError) Shortfall() int64 {
	return e.Requested - e.Available
}
