package handlers

import "time"

type ProductRequest struct {
	Id        int     `json:"id,omitempty"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Threshold int     `json:"threshold"`
}

type ProductResponse struct {
	Id        int     `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Threshold int     `json:"threshold"`
	LowStock  bool    `json:"low_stock,omitempty"`
}

type CustomerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

type CustomerResponse struct {
	Id    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

type DriverRequest struct {
	Name          string `json:"name"`
	LicenseNumber string `json:"license_number,omitempty"`
}

type VehicleRequest struct {
	RegistrationNumber string     `json:"registration_number"`
	DriverID           *int       `json:"driver_id,omitempty"`
	LicenseExpiry      *time.Time `json:"license_expiry,omitempty"`
	InsuranceExpiry    *time.Time `json:"insurance_expiry,omitempty"`
	MOTExpiry          *time.Time `json:"mot_expiry,omitempty"`
}

type OrderRequest struct {
	ProductID  int `json:"product_id"`
	CustomerID int `json:"customer_id"`
	Quantity   int `json:"quantity"`
}

type OrderResponse struct {
	Id           int       `json:"id"`
	ProductID    int       `json:"product_id"`
	CustomerID   int       `json:"customer_id"`
	Quantity     int       `json:"quantity"`
	ProductName  string    `json:"product_name,omitempty"`
	CustomerName string    `json:"customer_name,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type QuantityAdjustmentRequest struct {
	Delta int `json:"delta"` // can be positive or negative
}

type LowStockResponse struct {
	Products     []ProductResponse `json:"products"`
	CatalogEmpty bool              `json:"catalog_empty"`
}

type UserLogin struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResult struct {
	Token string `json:"token"`
}

type RegisterResult struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}
