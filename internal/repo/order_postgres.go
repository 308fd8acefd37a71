package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rogerio-castellano/inventory-ledger/internal/models"
)

// PostgresOrderRepository is the order ledger backed by Postgres. The
// stock check and decrement run in a single transaction; the guarded
// UPDATE makes the check-then-decrement one atomic statement, so a
// concurrent caller can never see stock it has already lost.
type PostgresOrderRepository struct {
	db *sql.DB
}

func NewPostgresOrderRepository(db *sql.DB) *PostgresOrderRepository {
	return &PostgresOrderRepository{db: db}
}

// PlaceOrder implements OrderRepository.
func (r *PostgresOrderRepository) PlaceOrder(productID, customerID, quantity int) (models.Order, error) {
	if quantity <= 0 {
		return models.Order{}, ErrInvalidOrderQuantity
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Order{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var exists int
	err = tx.QueryRowContext(ctx, `SELECT id FROM customers WHERE id = $1`, customerID).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Order{}, ErrCustomerNotFound
	}
	if err != nil {
		return models.Order{}, fmt.Errorf("failed to resolve customer: %w", err)
	}

	res, err := tx.ExecContext(ctx, `
		UPDATE products
		SET quantity = quantity - $1, updated_at = $2
		WHERE id = $3 AND quantity >= $1
	`, quantity, time.Now().UTC().Format(time.RFC3339), productID)
	if err != nil {
		return models.Order{}, fmt.Errorf("failed to decrement stock: %w", err)
	}
	if rowsAffected, _ := res.RowsAffected(); rowsAffected == 0 {
		err = tx.QueryRowContext(ctx, `SELECT id FROM products WHERE id = $1`, productID).Scan(&exists)
		if errors.Is(err, sql.ErrNoRows) {
			return models.Order{}, ErrProductNotFound
		}
		if err != nil {
			return models.Order{}, fmt.Errorf("failed to resolve product: %w", err)
		}
		return models.Order{}, ErrInsufficientStock
	}

	order := models.Order{
		ProductID:  productID,
		CustomerID: customerID,
		Quantity:   quantity,
		CreatedAt:  time.Now().UTC(),
	}
	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (product_id, customer_id, quantity, created_at)
		VALUES ($1, $2, $3, $4) RETURNING id
	`, order.ProductID, order.CustomerID, order.Quantity, order.CreatedAt).Scan(&order.ID)
	if err != nil {
		return models.Order{}, fmt.Errorf("failed to insert order: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return models.Order{}, fmt.Errorf("failed to commit order: %w", err)
	}
	return order, nil
}

// GetAll returns all orders in insertion order, resolved with product and
// customer names for display. Dangling references resolve to empty names.
func (r *PostgresOrderRepository) GetAll() ([]models.OrderDetail, error) {
	query := `
		SELECT o.id, o.product_id, o.customer_id, o.quantity, o.created_at,
		       COALESCE(p.name, ''), COALESCE(c.name, '')
		FROM orders o
		LEFT JOIN products p ON p.id = o.product_id
		LEFT JOIN customers c ON c.id = o.customer_id
		ORDER BY o.id
	`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var details []models.OrderDetail
	for rows.Next() {
		var d models.OrderDetail
		if err := rows.Scan(&d.ID, &d.ProductID, &d.CustomerID, &d.Quantity, &d.CreatedAt, &d.ProductName, &d.CustomerName); err != nil {
			return nil, err
		}
		details = append(details, d)
	}
	return details, rows.Err()
}

func (r *PostgresOrderRepository) GetByID(id int) (models.Order, error) {
	query := `SELECT id, product_id, customer_id, quantity, created_at FROM orders WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var o models.Order
	err := r.db.QueryRowContext(ctx, query, id).Scan(&o.ID, &o.ProductID, &o.CustomerID, &o.Quantity, &o.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Order{}, ErrOrderNotFound
	}
	return o, err
}

// Delete removes the order row only; the stock consumed by the order stays
// consumed.
func (r *PostgresOrderRepository) Delete(id int) error {
	query := `DELETE FROM orders WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrOrderNotFound
	}
	return nil
}
