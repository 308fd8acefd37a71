package repo

import (
	"sync"
	"time"

	"github.com/rogerio-castellano/inventory-ledger/internal/models"
)

// InMemoryOrderRepository is an in-memory order ledger over the in-memory
// catalog repositories. The stock check and decrement happen under the
// product repository's lock, so concurrent PlaceOrder calls against the
// same product cannot both pass the check.
type InMemoryOrderRepository struct {
	mu        sync.Mutex
	orders    []models.Order
	nextID    int
	products  *InMemoryProductRepository
	customers *InMemoryCustomerRepository
}

func NewInMemoryOrderRepository(products *InMemoryProductRepository, customers *InMemoryCustomerRepository) *InMemoryOrderRepository {
	return &InMemoryOrderRepository{
		orders:    []models.Order{},
		nextID:    1,
		products:  products,
		customers: customers,
	}
}

// PlaceOrder implements OrderRepository.
func (r *InMemoryOrderRepository) PlaceOrder(productID, customerID, quantity int) (models.Order, error) {
	if quantity <= 0 {
		return models.Order{}, ErrInvalidOrderQuantity
	}
	if _, err := r.customers.GetByID(customerID); err != nil {
		return models.Order{}, err
	}
	if _, err := r.products.decrementStock(productID, quantity); err != nil {
		return models.Order{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	order := models.Order{
		ID:         r.nextID,
		ProductID:  productID,
		CustomerID: customerID,
		Quantity:   quantity,
		CreatedAt:  time.Now().UTC(),
	}
	r.nextID++
	r.orders = append(r.orders, order)
	return order, nil
}

// GetAll returns all orders in insertion order, resolved with product and
// customer names. A dangling reference resolves to an empty name.
func (r *InMemoryOrderRepository) GetAll() ([]models.OrderDetail, error) {
	r.mu.Lock()
	orders := make([]models.Order, len(r.orders))
	copy(orders, r.orders)
	r.mu.Unlock()

	details := make([]models.OrderDetail, len(orders))
	for i, o := range orders {
		d := models.OrderDetail{Order: o}
		if p, err := r.products.GetByID(o.ProductID); err == nil {
			d.ProductName = p.Name
		}
		if c, err := r.customers.GetByID(o.CustomerID); err == nil {
			d.CustomerName = c.Name
		}
		details[i] = d
	}
	return details, nil
}

func (r *InMemoryOrderRepository) GetByID(id int) (models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, o := range r.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return models.Order{}, ErrOrderNotFound
}

// Delete removes the order record. The product's stock is deliberately not
// restored.
func (r *InMemoryOrderRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, o := range r.orders {
		if o.ID == id {
			r.orders = append(r.orders[:i], r.orders[i+1:]...)
			return nil
		}
	}
	return ErrOrderNotFound
}

func (r *InMemoryOrderRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders = []models.Order{}
}
