package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rogerio-castellano/inventory-ledger/internal/models"
	"github.com/rogerio-castellano/inventory-ledger/internal/repo"
)

// CreateCustomerHandler godoc
// @Summary Create a new customer
// @Tags customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param customer body CustomerRequest true "Customer to add"
// @Success 201 {object} CustomerResponse
// @Failure 400 {array} ValidationError
// @Router /customers [post]
func CreateCustomerHandler(w http.ResponseWriter, r *http.Request) {
	var req CustomerRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateCustomer(req)
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(validationErrors)
		return
	}

	customer := models.Customer{
		Name:      req.Name,
		Email:     req.Email,
		CreatedAt: time.Now().Format(time.RFC3339),
	}
	created, err := customerRepo.Create(customer)
	if err != nil {
		http.Error(w, "could not create customer", http.StatusInternalServerError)
		return
	}
	invalidateReports(r.Context())

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(CustomerResponse{Id: created.ID, Name: created.Name, Email: created.Email})
}

// GetCustomersHandler godoc
// @Summary List all customers
// @Tags customers
// @Produce json
// @Success 200 {array} CustomerResponse
// @Failure 500 {string} string "Internal error"
// @Router /customers [get]
func GetCustomersHandler(w http.ResponseWriter, r *http.Request) {
	customers, err := customerRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch customers", http.StatusInternalServerError)
		return
	}
	response := make([]CustomerResponse, len(customers))
	for i, c := range customers {
		response[i] = CustomerResponse{Id: c.ID, Name: c.Name, Email: c.Email}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// GetCustomerByIDHandler godoc
// @Summary Get customer by ID
// @Tags customers
// @Produce json
// @Param id path int true "Customer ID"
// @Success 200 {object} CustomerResponse
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Router /customers/{id} [get]
func GetCustomerByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid customer ID", http.StatusBadRequest)
		return
	}

	customer, err := customerRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrCustomerNotFound) {
			http.Error(w, "customer not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch customer", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(CustomerResponse{Id: customer.ID, Name: customer.Name, Email: customer.Email})
}

// DeleteCustomerHandler godoc
// @Summary Delete a customer
// @Description Removes the customer. Orders referencing it are kept.
// @Tags customers
// @Param id path int true "Customer ID"
// @Success 204 "Deleted successfully"
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Router /customers/{id} [delete]
// @Security BearerAuth
func DeleteCustomerHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid customer ID", http.StatusBadRequest)
		return
	}
	if err := customerRepo.Delete(id); err != nil {
		if errors.Is(err, repo.ErrCustomerNotFound) {
			http.Error(w, "customer not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not delete customer", http.StatusInternalServerError)
		return
	}
	invalidateReports(r.Context())
	w.WriteHeader(http.StatusNoContent)
}
