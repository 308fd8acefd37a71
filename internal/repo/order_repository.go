package repo

import "github.com/rogerio-castellano/inventory-ledger/internal/models"

// OrderRepository is the order ledger. PlaceOrder is the only way an order
// comes into existence: it validates the quantity, resolves both
// references, and performs the stock check and decrement as one atomic
// unit, so two concurrent callers can never both pass the check against
// the same stock.
//
// Delete removes the order record only. Stock is NOT restored on deletion;
// this reproduces the behavior of the system this ledger replaces, where
// cancelled orders permanently consume stock.
type OrderRepository interface {
	PlaceOrder(productID, customerID, quantity int) (models.Order, error)
	GetAll() ([]models.OrderDetail, error)
	GetByID(id int) (models.Order, error)
	Delete(id int) error
}
