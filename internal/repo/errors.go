package repo

import "errors"

// Sentinel errors returned by the repositories. All are recoverable
// conditions; callers match them with errors.Is and translate them at the
// boundary.
var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrDriverNotFound   = errors.New("driver not found")
	ErrVehicleNotFound  = errors.New("vehicle not found")
	ErrOrderNotFound    = errors.New("order not found")
	ErrUserNotFound     = errors.New("user not found")

	// ErrInvalidOrderQuantity rejects non-positive order quantities.
	ErrInvalidOrderQuantity = errors.New("order quantity must be positive")

	// ErrInsufficientStock rejects orders exceeding the product's stock on
	// hand at the time of the call.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrInvalidQuantityChange rejects restock adjustments that would drive
	// a product's quantity negative.
	ErrInvalidQuantityChange = errors.New("quantity cannot become negative")

	ErrDuplicatedValueUnique = errors.New("duplicated value for unique field")
)
