package report

import (
	"testing"
	"time"

	"github.com/rogerio-castellano/inventory-ledger/internal/models"
	"github.com/rogerio-castellano/inventory-ledger/internal/repo"
)

func newTestReporter() (*repo.InMemoryProductRepository, *repo.InMemoryCustomerRepository, *repo.InMemoryOrderRepository, *MemoryReporter) {
	products := repo.NewInMemoryProductRepository()
	customers := repo.NewInMemoryCustomerRepository()
	orders := repo.NewInMemoryOrderRepository(products, customers)
	return products, customers, orders, NewMemoryReporter(products, customers, orders)
}

func TestProductSales_SumsAndSorts(t *testing.T) {
	products, customers, orders, reporter := newTestReporter()

	coffee, _ := products.Create(models.Product{Name: "Coffee", Quantity: 100})
	tea, _ := products.Create(models.Product{Name: "Tea", Quantity: 100})
	cocoa, _ := products.Create(models.Product{Name: "Cocoa", Quantity: 100})
	alice, _ := customers.Create(models.Customer{Name: "Alice"})

	orders.PlaceOrder(tea.ID, alice.ID, 3)
	orders.PlaceOrder(coffee.ID, alice.ID, 5)
	orders.PlaceOrder(tea.ID, alice.ID, 4)

	rows, err := reporter.ProductSales(Window{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}

	if rows[0].Name != "Tea" || rows[0].TotalSold != 7 {
		t.Errorf("expected Tea with 7 first, got %s with %d", rows[0].Name, rows[0].TotalSold)
	}
	if rows[1].Name != "Coffee" || rows[1].TotalSold != 5 {
		t.Errorf("expected Coffee with 5 second, got %s with %d", rows[1].Name, rows[1].TotalSold)
	}
	if rows[2].ID != cocoa.ID || rows[2].TotalSold != 0 {
		t.Errorf("expected Cocoa with 0 last, got %s with %d", rows[2].Name, rows[2].TotalSold)
	}
}

func TestProductSales_TiesKeepCatalogOrder(t *testing.T) {
	products, customers, orders, reporter := newTestReporter()

	coffee, _ := products.Create(models.Product{Name: "Coffee", Quantity: 100})
	tea, _ := products.Create(models.Product{Name: "Tea", Quantity: 100})
	alice, _ := customers.Create(models.Customer{Name: "Alice"})

	// Same totals through orders placed in the opposite direction.
	orders.PlaceOrder(tea.ID, alice.ID, 5)
	orders.PlaceOrder(coffee.ID, alice.ID, 5)

	rows, err := reporter.ProductSales(Window{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rows[0].ID != coffee.ID || rows[1].ID != tea.ID {
		t.Errorf("expected catalog order Coffee, Tea on tie, got %s, %s", rows[0].Name, rows[1].Name)
	}
}

func TestCustomerSales(t *testing.T) {
	products, customers, orders, reporter := newTestReporter()

	coffee, _ := products.Create(models.Product{Name: "Coffee", Quantity: 100})
	alice, _ := customers.Create(models.Customer{Name: "Alice"})
	bob, _ := customers.Create(models.Customer{Name: "Bob"})
	customers.Create(models.Customer{Name: "Carol"})

	orders.PlaceOrder(coffee.ID, alice.ID, 2)
	orders.PlaceOrder(coffee.ID, bob.ID, 9)
	orders.PlaceOrder(coffee.ID, alice.ID, 1)

	rows, err := reporter.CustomerSales(Window{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[0].Name != "Bob" || rows[0].TotalSold != 9 {
		t.Errorf("expected Bob with 9 first, got %s with %d", rows[0].Name, rows[0].TotalSold)
	}
	if rows[1].Name != "Alice" || rows[1].TotalSold != 3 {
		t.Errorf("expected Alice with 3 second, got %s with %d", rows[1].Name, rows[1].TotalSold)
	}
	if rows[2].Name != "Carol" || rows[2].TotalSold != 0 {
		t.Errorf("expected Carol with 0 last, got %s with %d", rows[2].Name, rows[2].TotalSold)
	}
}

func TestProductSales_Window(t *testing.T) {
	products, customers, orders, reporter := newTestReporter()

	coffee, _ := products.Create(models.Product{Name: "Coffee", Quantity: 100})
	alice, _ := customers.Create(models.Customer{Name: "Alice"})
	orders.PlaceOrder(coffee.ID, alice.ID, 5)

	future := time.Now().Add(24 * time.Hour)
	rows, err := reporter.ProductSales(Window{Since: &future})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rows[0].TotalSold != 0 {
		t.Errorf("expected no sales inside a future window, got %d", rows[0].TotalSold)
	}

	past := time.Now().Add(-24 * time.Hour)
	rows, err = reporter.ProductSales(Window{Since: &past, Until: &future})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rows[0].TotalSold != 5 {
		t.Errorf("expected 5 sales inside the window, got %d", rows[0].TotalSold)
	}
}

func TestLowStock(t *testing.T) {
	products, _, _, reporter := newTestReporter()

	products.Create(models.Product{Name: "Coffee", Quantity: 3})
	products.Create(models.Product{Name: "Tea", Quantity: 10})
	products.Create(models.Product{Name: "Cocoa", Quantity: 11})

	report, err := reporter.LowStock(10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.CatalogEmpty {
		t.Error("expected CatalogEmpty to be false")
	}
	if len(report.Products) != 2 {
		t.Fatalf("expected 2 low-stock products, got %d", len(report.Products))
	}
	if report.Products[0].Name != "Coffee" || report.Products[1].Name != "Tea" {
		t.Errorf("expected Coffee, Tea in catalog order, got %s, %s", report.Products[0].Name, report.Products[1].Name)
	}
}

func TestLowStock_EmptyCatalog(t *testing.T) {
	_, _, _, reporter := newTestReporter()

	report, err := reporter.LowStock(10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !report.CatalogEmpty {
		t.Error("expected CatalogEmpty to be true for an empty catalog")
	}
	if len(report.Products) != 0 {
		t.Errorf("expected no products, got %d", len(report.Products))
	}
}

func TestDashboard(t *testing.T) {
	products, customers, orders, reporter := newTestReporter()

	coffee, _ := products.Create(models.Product{Name: "Coffee", Quantity: 50, Threshold: 10})
	products.Create(models.Product{Name: "Tea", Quantity: 2, Threshold: 10})
	alice, _ := customers.Create(models.Customer{Name: "Alice"})
	orders.PlaceOrder(coffee.ID, alice.ID, 5)

	d, err := reporter.Dashboard()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.TotalProducts != 2 || d.TotalCustomers != 1 || d.TotalOrders != 1 {
		t.Errorf("unexpected counters: %+v", d)
	}
	if d.LowStockCount != 1 {
		t.Errorf("expected 1 low-stock product, got %d", d.LowStockCount)
	}
	if d.TopProduct.Name != "Coffee" || d.TopProduct.TotalSold != 5 {
		t.Errorf("expected Coffee with 5 as top product, got %s with %d", d.TopProduct.Name, d.TopProduct.TotalSold)
	}
}

func TestDashboard_NoSalesLeavesTopProductEmpty(t *testing.T) {
	products, _, _, reporter := newTestReporter()
	products.Create(models.Product{Name: "Coffee", Quantity: 50})

	d, err := reporter.Dashboard()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.TopProduct != (SalesRow{}) {
		t.Errorf("expected empty top product, got %+v", d.TopProduct)
	}
}

func TestExportProductSales(t *testing.T) {
	rows := []SalesRow{
		{ID: 1, Name: "Coffee", TotalSold: 7},
		{ID: 2, Name: "Tea", TotalSold: 0},
	}

	out := ExportProductSales(rows)
	if len(out) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d", len(out))
	}
	if out[0][0] != "product_name" || out[0][1] != "quantity_sold" {
		t.Errorf("unexpected header: %v", out[0])
	}
	if out[1][0] != "Coffee" || out[1][1] != "7" {
		t.Errorf("unexpected first row: %v", out[1])
	}
	if out[2][0] != "Tea" || out[2][1] != "0" {
		t.Errorf("unexpected second row: %v", out[2])
	}
}
