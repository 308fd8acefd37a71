package report

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rogerio-castellano/inventory-ledger/internal/models"
)

// PostgresReporter computes the reports in SQL. The LEFT JOIN keeps
// never-ordered products and customers in the result with a zero total,
// and the window bounds live in the join condition for the same reason.
type PostgresReporter struct {
	db *sql.DB
}

func NewPostgresReporter(db *sql.DB) *PostgresReporter {
	return &PostgresReporter{db: db}
}

func windowConditions(alias string, w Window) (string, []any) {
	cond := ""
	args := []any{}
	argIdx := 1
	if w.Since != nil {
		cond += fmt.Sprintf(" AND %s.created_at >= $%d", alias, argIdx)
		args = append(args, *w.Since)
		argIdx++
	}
	if w.Until != nil {
		cond += fmt.Sprintf(" AND %s.created_at <= $%d", alias, argIdx)
		args = append(args, *w.Until)
	}
	return cond, args
}

// ProductSales implements Reporter.
func (r *PostgresReporter) ProductSales(w Window) ([]SalesRow, error) {
	cond, args := windowConditions("o", w)
	query := `
		SELECT p.id, p.name, COALESCE(SUM(o.quantity), 0) AS total_sold
		FROM products p
		LEFT JOIN orders o ON o.product_id = p.id` + cond + `
		GROUP BY p.id, p.name
		ORDER BY total_sold DESC, p.id
	`
	return r.querySalesRows(query, args)
}

// CustomerSales implements Reporter.
func (r *PostgresReporter) CustomerSales(w Window) ([]SalesRow, error) {
	cond, args := windowConditions("o", w)
	query := `
		SELECT c.id, c.name, COALESCE(SUM(o.quantity), 0) AS total_sold
		FROM customers c
		LEFT JOIN orders o ON o.customer_id = c.id` + cond + `
		GROUP BY c.id, c.name
		ORDER BY total_sold DESC, c.id
	`
	return r.querySalesRows(query, args)
}

func (r *PostgresReporter) querySalesRows(query string, args []any) ([]SalesRow, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []SalesRow{}
	for rows.Next() {
		var sr SalesRow
		if err := rows.Scan(&sr.ID, &sr.Name, &sr.TotalSold); err != nil {
			return nil, err
		}
		out = append(out, sr)
	}
	return out, rows.Err()
}

// LowStock implements Reporter.
func (r *PostgresReporter) LowStock(threshold int) (LowStockReport, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&total); err != nil {
		return LowStockReport{}, err
	}
	out := LowStockReport{CatalogEmpty: total == 0}
	if out.CatalogEmpty {
		return out, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, price, quantity, threshold
		FROM products
		WHERE quantity <= $1
		ORDER BY id
	`, threshold)
	if err != nil {
		return LowStockReport{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Quantity, &p.Threshold); err != nil {
			return LowStockReport{}, err
		}
		out.Products = append(out.Products, p)
	}
	return out, rows.Err()
}

// Dashboard implements Reporter.
func (r *PostgresReporter) Dashboard() (Dashboard, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var d Dashboard
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&d.TotalProducts); err != nil {
		return Dashboard{}, err
	}
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM customers`).Scan(&d.TotalCustomers); err != nil {
		return Dashboard{}, err
	}
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM orders`).Scan(&d.TotalOrders); err != nil {
		return Dashboard{}, err
	}
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products WHERE quantity <= threshold`).Scan(&d.LowStockCount); err != nil {
		return Dashboard{}, err
	}

	err := r.db.QueryRowContext(ctx, `
		SELECT p.id, p.name, SUM(o.quantity) AS total_sold
		FROM orders o
		JOIN products p ON p.id = o.product_id
		GROUP BY p.id, p.name
		ORDER BY total_sold DESC, p.id
		LIMIT 1
	`).Scan(&d.TopProduct.ID, &d.TopProduct.Name, &d.TopProduct.TotalSold)
	if err != nil && err != sql.ErrNoRows {
		return Dashboard{}, err
	}
	return d, nil
}
