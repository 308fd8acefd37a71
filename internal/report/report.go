package report

import (
	"strconv"
	"time"

	"github.com/rogerio-castellano/inventory-ledger/internal/models"
)

// DefaultLowStockThreshold is used when the caller does not supply one.
const DefaultLowStockThreshold = 10

// SalesRow is one line of a sales report: total units ordered for a
// product or customer. Rows are sorted by TotalSold descending; ties keep
// the catalog insertion order.
type SalesRow struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	TotalSold int    `json:"total_sold"`
}

// Window restricts a sales report to orders created inside the given
// bounds. Nil bounds are open.
type Window struct {
	Since *time.Time
	Until *time.Time
}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	if w.Since != nil && t.Before(*w.Since) {
		return false
	}
	if w.Until != nil && t.After(*w.Until) {
		return false
	}
	return true
}

// LowStockReport lists the products at or below the threshold, in catalog
// insertion order. CatalogEmpty distinguishes an empty catalog from a
// catalog where no product is below the threshold.
type LowStockReport struct {
	Products     []models.Product `json:"products"`
	CatalogEmpty bool             `json:"catalog_empty"`
}

// Dashboard carries the aggregate counters for the admin view.
type Dashboard struct {
	TotalProducts  int      `json:"total_products"`
	TotalCustomers int      `json:"total_customers"`
	TotalOrders    int      `json:"total_orders"`
	LowStockCount  int      `json:"low_stock_count"`
	TopProduct     SalesRow `json:"top_product"`
}

// Reporter is the read-only reporting engine over the catalog and the
// order ledger. Implementations never mutate state.
type Reporter interface {
	ProductSales(w Window) ([]SalesRow, error)
	CustomerSales(w Window) ([]SalesRow, error)
	LowStock(threshold int) (LowStockReport, error)
	Dashboard() (Dashboard, error)
}

// ExportHeader is the header row of the product sales export.
var ExportHeader = []string{"product_name", "quantity_sold"}

// ExportProductSales renders sales rows into the row-oriented form used by
// spreadsheet downloads: a header row followed by one row per product, in
// report order. Serialization is the transport layer's business.
func ExportProductSales(rows []SalesRow) [][]string {
	out := make([][]string, 0, len(rows)+1)
	out = append(out, ExportHeader)
	for _, r := range rows {
		out = append(out, []string{r.Name, strconv.Itoa(r.TotalSold)})
	}
	return out
}
