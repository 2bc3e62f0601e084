package service

import "errors"

// Sentinel errors whose messages are part of the wire contract: handlers write
// them verbatim as plain-text response bodies.
var (
	ErrTableNotFound     = errors.New("Table with given ID doesn't exist")
	ErrTableFull         = errors.New("Table is already full")
	ErrDuplicateNumber   = errors.New("Table with given number already exists")
	ErrNumberNotPositive = errors.New("Table number must be a positive value")
	ErrSeatsNotPositive  = errors.New("Seats must be a positive value")

	ErrGuestNotFound   = errors.New("Guest with given ID doesn't exist")
	ErrGuestNameLength = errors.New("Name must be at most 50 characters")
	ErrNegativeMoney   = errors.New("Money must be a non-negative value")

	ErrItemNotFound    = errors.New("Item with given ID doesn't exist")
	ErrItemNameLength  = errors.New("Name must be at most 80 characters")
	ErrNegativePrice   = errors.New("Price must be a non-negative value")
	ErrUnknownCategory = errors.New("Unknown menu category")

	ErrWaiterNotFound = errors.New("Waiter with given ID doesn't exist")

	ErrOrderNotFound   = errors.New("Order with given ID doesn't exist")
	ErrQuantityInvalid = errors.New("Quantity must be a positive value")
	ErrOrderNotDone    = errors.New("Order is not completed")
	ErrNegativeTip     = errors.New("Tip must be a non-negative value")
)
