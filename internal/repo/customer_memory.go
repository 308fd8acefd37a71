package repo

import (
	"sync"

	"github.com/rogerio-castellano/inventory-ledger/internal/models"
)

// InMemoryCustomerRepository is an in-memory implementation of
// CustomerRepository.
type InMemoryCustomerRepository struct {
	mu        sync.Mutex
	customers []models.Customer
	nextID    int
}

func NewInMemoryCustomerRepository() *InMemoryCustomerRepository {
	return &InMemoryCustomerRepository{
		customers: []models.Customer{},
		nextID:    1,
	}
}

func (r *InMemoryCustomerRepository) Create(customer models.Customer) (models.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	customer.ID = r.nextID
	r.nextID++
	r.customers = append(r.customers, customer)
	return customer, nil
}

func (r *InMemoryCustomerRepository) GetAll() ([]models.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Customer, len(r.customers))
	copy(out, r.customers)
	return out, nil
}

func (r *InMemoryCustomerRepository) GetByID(id int) (models.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.customers {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Customer{}, ErrCustomerNotFound
}

// Delete removes a customer by ID. Orders referencing the customer are
// left in place.
func (r *InMemoryCustomerRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, c := range r.customers {
		if c.ID == id {
			r.customers = append(r.customers[:i], r.customers[i+1:]...)
			return nil
		}
	}
	return ErrCustomerNotFound
}

func (r *InMemoryCustomerRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.customers = []models.Customer{}
}
