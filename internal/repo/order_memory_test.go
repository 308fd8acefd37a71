package repo

import (
	"errors"
	"testing"

	"github.com/rogerio-castellano/inventory-ledger/internal/models"
)

func newTestLedger() (*InMemoryProductRepository, *InMemoryCustomerRepository, *InMemoryOrderRepository) {
	products := NewInMemoryProductRepository()
	customers := NewInMemoryCustomerRepository()
	orders := NewInMemoryOrderRepository(products, customers)
	return products, customers, orders
}

func TestPlaceOrder_DecrementsStock(t *testing.T) {
	products, customers, orders := newTestLedger()

	coffee, _ := products.Create(models.Product{Name: "Coffee", Price: 7.5, Quantity: 50})
	alice, _ := customers.Create(models.Customer{Name: "Alice"})

	order, err := orders.PlaceOrder(coffee.ID, alice.ID, 10)
	if err != nil {
		t.Fatalf("unexpected error placing order: %v", err)
	}
	if order.Quantity != 10 {
		t.Errorf("expected order quantity 10, got %d", order.Quantity)
	}

	got, _ := products.GetByID(coffee.ID)
	if got.Quantity != 40 {
		t.Errorf("expected stock 40 after order, got %d", got.Quantity)
	}
}

func TestPlaceOrder_InsufficientStockLeavesStateUntouched(t *testing.T) {
	products, customers, orders := newTestLedger()

	coffee, _ := products.Create(models.Product{Name: "Coffee", Price: 7.5, Quantity: 40})
	alice, _ := customers.Create(models.Customer{Name: "Alice"})

	_, err := orders.PlaceOrder(coffee.ID, alice.ID, 100)
	if !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}

	got, _ := products.GetByID(coffee.ID)
	if got.Quantity != 40 {
		t.Errorf("expected stock unchanged at 40, got %d", got.Quantity)
	}
	all, _ := orders.GetAll()
	if len(all) != 0 {
		t.Errorf("expected no order recorded, got %d", len(all))
	}
}

func TestPlaceOrder_ExactStockIsAllowed(t *testing.T) {
	products, customers, orders := newTestLedger()

	tea, _ := products.Create(models.Product{Name: "Tea", Quantity: 5})
	bob, _ := customers.Create(models.Customer{Name: "Bob"})

	if _, err := orders.PlaceOrder(tea.ID, bob.ID, 5); err != nil {
		t.Fatalf("expected order for the full stock to succeed, got %v", err)
	}
	got, _ := products.GetByID(tea.ID)
	if got.Quantity != 0 {
		t.Errorf("expected stock 0, got %d", got.Quantity)
	}
}

func TestPlaceOrder_UnknownProductOrCustomer(t *testing.T) {
	products, customers, orders := newTestLedger()

	coffee, _ := products.Create(models.Product{Name: "Coffee", Quantity: 10})
	alice, _ := customers.Create(models.Customer{Name: "Alice"})

	if _, err := orders.PlaceOrder(999, alice.ID, 1); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}
	if _, err := orders.PlaceOrder(coffee.ID, 999, 1); !errors.Is(err, ErrCustomerNotFound) {
		t.Errorf("expected ErrCustomerNotFound, got %v", err)
	}

	got, _ := products.GetByID(coffee.ID)
	if got.Quantity != 10 {
		t.Errorf("expected stock unchanged at 10, got %d", got.Quantity)
	}
}

func TestPlaceOrder_NonPositiveQuantity(t *testing.T) {
	products, customers, orders := newTestLedger()

	coffee, _ := products.Create(models.Product{Name: "Coffee", Quantity: 10})
	alice, _ := customers.Create(models.Customer{Name: "Alice"})

	for _, quantity := range []int{0, -3} {
		if _, err := orders.PlaceOrder(coffee.ID, alice.ID, quantity); !errors.Is(err, ErrInvalidOrderQuantity) {
			t.Errorf("quantity %d: expected ErrInvalidOrderQuantity, got %v", quantity, err)
		}
	}
}

func TestGetAll_ResolvesNames(t *testing.T) {
	products, customers, orders := newTestLedger()

	coffee, _ := products.Create(models.Product{Name: "Coffee", Quantity: 10})
	alice, _ := customers.Create(models.Customer{Name: "Alice"})
	orders.PlaceOrder(coffee.ID, alice.ID, 2)

	all, err := orders.GetAll()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 order, got %d", len(all))
	}
	if all[0].ProductName != "Coffee" || all[0].CustomerName != "Alice" {
		t.Errorf("expected resolved names Coffee/Alice, got %q/%q", all[0].ProductName, all[0].CustomerName)
	}
}

func TestGetAll_DanglingReferencesResolveEmpty(t *testing.T) {
	products, customers, orders := newTestLedger()

	coffee, _ := products.Create(models.Product{Name: "Coffee", Quantity: 10})
	alice, _ := customers.Create(models.Customer{Name: "Alice"})
	orders.PlaceOrder(coffee.ID, alice.ID, 2)

	products.Delete(coffee.ID)
	customers.Delete(alice.ID)

	all, _ := orders.GetAll()
	if len(all) != 1 {
		t.Fatalf("expected the order to survive catalog deletes, got %d orders", len(all))
	}
	if all[0].ProductName != "" || all[0].CustomerName != "" {
		t.Errorf("expected empty names for dangling references, got %q/%q", all[0].ProductName, all[0].CustomerName)
	}
}

func TestDeleteOrder_DoesNotRestoreStock(t *testing.T) {
	products, customers, orders := newTestLedger()

	coffee, _ := products.Create(models.Product{Name: "Coffee", Quantity: 50})
	alice, _ := customers.Create(models.Customer{Name: "Alice"})
	order, _ := orders.PlaceOrder(coffee.ID, alice.ID, 10)

	if err := orders.Delete(order.ID); err != nil {
		t.Fatalf("unexpected error deleting order: %v", err)
	}

	got, _ := products.GetByID(coffee.ID)
	if got.Quantity != 40 {
		t.Errorf("expected stock to stay at 40 after order delete, got %d", got.Quantity)
	}
	if _, err := orders.GetByID(order.ID); !errors.Is(err, ErrOrderNotFound) {
		t.Errorf("expected ErrOrderNotFound after delete, got %v", err)
	}
}

func TestDeleteOrder_Unknown(t *testing.T) {
	_, _, orders := newTestLedger()

	if err := orders.Delete(42); !errors.Is(err, ErrOrderNotFound) {
		t.Errorf("expected ErrOrderNotFound, got %v", err)
	}
}
