package models

import "time"

// Order records a quantity of a product sold to a customer. Orders are
// created only through the ledger's PlaceOrder and are never mutated
// afterwards.
type Order struct {
	ID         int       `json:"id"`
	ProductID  int       `json:"product_id"`
	CustomerID int       `json:"customer_id"`
	Quantity   int       `json:"quantity"`
	CreatedAt  time.Time `json:"created_at"`
}

// OrderDetail is an order resolved with its product and customer names for
// display. Names are empty when the referenced record no longer exists.
type OrderDetail struct {
	Order
	ProductName  string `json:"product_name"`
	CustomerName string `json:"customer_name"`
}
