package repo

import "github.com/rogerio-castellano/inventory-ledger/internal/models"

// CustomerRepository defines the catalog operations for customers.
// Deleting a customer does not cascade to orders referencing it.
type CustomerRepository interface {
	Create(customer models.Customer) (models.Customer, error)
	GetAll() ([]models.Customer, error)
	GetByID(id int) (models.Customer, error)
	Delete(id int) error
}
