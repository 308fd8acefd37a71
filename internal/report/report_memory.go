package report

import (
	"sort"

	"github.com/rogerio-castellano/inventory-ledger/internal/repo"
)

// MemoryReporter aggregates snapshots taken through the repository
// interfaces. It works against any store but is primarily used with the
// in-memory repositories in tests and single-process deployments.
type MemoryReporter struct {
	products  repo.ProductRepository
	customers repo.CustomerRepository
	orders    repo.OrderRepository
}

func NewMemoryReporter(products repo.ProductRepository, customers repo.CustomerRepository, orders repo.OrderRepository) *MemoryReporter {
	return &MemoryReporter{products: products, customers: customers, orders: orders}
}

// ProductSales implements Reporter. Every product gets a row, including
// products never ordered.
func (r *MemoryReporter) ProductSales(w Window) ([]SalesRow, error) {
	products, err := r.products.GetAll()
	if err != nil {
		return nil, err
	}
	orders, err := r.orders.GetAll()
	if err != nil {
		return nil, err
	}

	sold := make(map[int]int, len(products))
	for _, o := range orders {
		if w.Contains(o.CreatedAt) {
			sold[o.ProductID] += o.Quantity
		}
	}

	rows := make([]SalesRow, len(products))
	for i, p := range products {
		rows[i] = SalesRow{ID: p.ID, Name: p.Name, TotalSold: sold[p.ID]}
	}
	sortSalesRows(rows)
	return rows, nil
}

// CustomerSales implements Reporter.
func (r *MemoryReporter) CustomerSales(w Window) ([]SalesRow, error) {
	customers, err := r.customers.GetAll()
	if err != nil {
		return nil, err
	}
	orders, err := r.orders.GetAll()
	if err != nil {
		return nil, err
	}

	bought := make(map[int]int, len(customers))
	for _, o := range orders {
		if w.Contains(o.CreatedAt) {
			bought[o.CustomerID] += o.Quantity
		}
	}

	rows := make([]SalesRow, len(customers))
	for i, c := range customers {
		rows[i] = SalesRow{ID: c.ID, Name: c.Name, TotalSold: bought[c.ID]}
	}
	sortSalesRows(rows)
	return rows, nil
}

// sortSalesRows orders by TotalSold descending; the stable sort preserves
// catalog insertion order for ties.
func sortSalesRows(rows []SalesRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalSold > rows[j].TotalSold
	})
}

// LowStock implements Reporter.
func (r *MemoryReporter) LowStock(threshold int) (LowStockReport, error) {
	products, err := r.products.GetAll()
	if err != nil {
		return LowStockReport{}, err
	}

	out := LowStockReport{CatalogEmpty: len(products) == 0}
	for _, p := range products {
		if p.Quantity <= threshold {
			out.Products = append(out.Products, p)
		}
	}
	return out, nil
}

// Dashboard implements Reporter.
func (r *MemoryReporter) Dashboard() (Dashboard, error) {
	products, err := r.products.GetAll()
	if err != nil {
		return Dashboard{}, err
	}
	customers, err := r.customers.GetAll()
	if err != nil {
		return Dashboard{}, err
	}
	orders, err := r.orders.GetAll()
	if err != nil {
		return Dashboard{}, err
	}

	d := Dashboard{
		TotalProducts:  len(products),
		TotalCustomers: len(customers),
		TotalOrders:    len(orders),
	}
	for _, p := range products {
		if p.Quantity <= p.Threshold {
			d.LowStockCount++
		}
	}

	rows, err := r.ProductSales(Window{})
	if err != nil {
		return Dashboard{}, err
	}
	if len(rows) > 0 && rows[0].TotalSold > 0 {
		d.TopProduct = rows[0]
	}
	return d, nil
}
