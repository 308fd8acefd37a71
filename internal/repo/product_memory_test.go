package repo

import (
	"errors"
	"testing"

	"github.com/rogerio-castellano/inventory-ledger/internal/models"
)

func TestAdjustQuantity(t *testing.T) {
	products := NewInMemoryProductRepository()
	p, _ := products.Create(models.Product{Name: "Coffee", Quantity: 10})

	updated, err := products.AdjustQuantity(p.ID, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Quantity != 15 {
		t.Errorf("expected quantity 15, got %d", updated.Quantity)
	}

	updated, err = products.AdjustQuantity(p.ID, -15)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Quantity != 0 {
		t.Errorf("expected quantity 0, got %d", updated.Quantity)
	}
}

func TestAdjustQuantity_RejectsNegativeResult(t *testing.T) {
	products := NewInMemoryProductRepository()
	p, _ := products.Create(models.Product{Name: "Coffee", Quantity: 10})

	if _, err := products.AdjustQuantity(p.ID, -11); !errors.Is(err, ErrInvalidQuantityChange) {
		t.Fatalf("expected ErrInvalidQuantityChange, got %v", err)
	}

	got, _ := products.GetByID(p.ID)
	if got.Quantity != 10 {
		t.Errorf("expected quantity unchanged at 10, got %d", got.Quantity)
	}
}

func TestAdjustQuantity_UnknownProduct(t *testing.T) {
	products := NewInMemoryProductRepository()

	if _, err := products.AdjustQuantity(99, 1); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}
}

func TestGetByName(t *testing.T) {
	products := NewInMemoryProductRepository()
	products.Create(models.Product{Name: "Coffee"})
	products.Create(models.Product{Name: "Tea"})

	p, err := products.GetByName("Tea")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name != "Tea" {
		t.Errorf("expected Tea, got %q", p.Name)
	}

	if _, err := products.GetByName("Cocoa"); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}
}
