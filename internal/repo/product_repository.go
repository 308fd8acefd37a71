package repo

import "github.com/rogerio-castellano/inventory-ledger/internal/models"

// ProductRepository defines the catalog operations for products. GetAll
// returns products in insertion order.
type ProductRepository interface {
	Create(product models.Product) (models.Product, error)
	GetAll() ([]models.Product, error)
	GetByID(id int) (models.Product, error)
	GetByName(name string) (models.Product, error)
	Update(product models.Product) (models.Product, error)
	Delete(id int) error

	// AdjustQuantity applies a restock (or manual correction) delta
	// atomically, failing with ErrInvalidQuantityChange if the result would
	// be negative. Order placement does not go through here; the ledger
	// owns its own decrement.
	AdjustQuantity(productID int, delta int) (models.Product, error)
}
