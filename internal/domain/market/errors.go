package market

import "errors"

var (
	// ErrResourceNotTraded is returned when a resource has no market price
	ErrResourceNotTraded = errors.New("resource not traded on the market")

	// ErrOrderNotFound is returned when an order id is unknown
	ErrOrderNotFound = errors.New("order not found")

	// ErrOrderClosed is returned when fulfilling an order that is already
	// completed or expired
	ErrOrderClosed = errors.New("order already completed or expired")

	// ErrInvalidPrice is returned when a base price is not positive
	ErrInvalidPrice = errors.New("base price must be positive")
)
