package handlers

import (
	"strings"
)

type ValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func validateProduct(p ProductRequest) []ValidationError {
	errs := []ValidationError{}
	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, ValidationError{Field: "Name", Description: "Name is required"})
	}
	if p.Price < 0 {
		errs = append(errs, ValidationError{Field: "Price", Description: "Price cannot be negative"})
	}
	if p.Quantity < 0 {
		errs = append(errs, ValidationError{Field: "Quantity", Description: "Quantity cannot be negative"})
	}
	if p.Threshold < 0 {
		errs = append(errs, ValidationError{Field: "Threshold", Description: "Threshold cannot be negative"})
	}
	return errs
}

func validateCustomer(c CustomerRequest) []ValidationError {
	errs := []ValidationError{}
	if strings.TrimSpace(c.Name) == "" {
		errs = append(errs, ValidationError{Field: "Name", Description: "Name is required"})
	}
	if c.Email != "" && !strings.Contains(c.Email, "@") {
		errs = append(errs, ValidationError{Field: "Email", Description: "Email is not valid"})
	}
	return errs
}

func validateDriver(d DriverRequest) []ValidationError {
	errs := []ValidationError{}
	if strings.TrimSpace(d.Name) == "" {
		errs = append(errs, ValidationError{Field: "Name", Description: "Name is required"})
	}
	return errs
}

func validateVehicle(v VehicleRequest) []ValidationError {
	errs := []ValidationError{}
	if strings.TrimSpace(v.RegistrationNumber) == "" {
		errs = append(errs, ValidationError{Field: "RegistrationNumber", Description: "Registration number is required"})
	}
	return errs
}

func validateOrder(o OrderRequest) []ValidationError {
	errs := []ValidationError{}
	if o.ProductID <= 0 {
		errs = append(errs, ValidationError{Field: "ProductID", Description: "Product id is required"})
	}
	if o.CustomerID <= 0 {
		errs = append(errs, ValidationError{Field: "CustomerID", Description: "Customer id is required"})
	}
	if o.Quantity <= 0 {
		errs = append(errs, ValidationError{Field: "Quantity", Description: "Quantity must be greater than zero"})
	}
	return errs
}
