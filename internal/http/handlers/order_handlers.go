package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rogerio-castellano/inventory-ledger/internal/repo"
)

// PlaceOrderHandler godoc
// @Summary Place an order
// @Description Creates an order and decrements the product's stock in the same atomic step
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param order body OrderRequest true "Order to place"
// @Success 201 {object} OrderResponse
// @Failure 400 {array} ValidationError
// @Failure 404 {string} string "Product or customer not found"
// @Failure 409 {string} string "Insufficient stock"
// @Router /orders [post]
func PlaceOrderHandler(w http.ResponseWriter, r *http.Request) {
	var req OrderRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateOrder(req)
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(validationErrors)
		return
	}

	order, err := orderRepo.PlaceOrder(req.ProductID, req.CustomerID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrInvalidOrderQuantity):
			http.Error(w, "quantity must be greater than zero", http.StatusBadRequest)
		case errors.Is(err, repo.ErrProductNotFound):
			http.Error(w, "product not found", http.StatusNotFound)
		case errors.Is(err, repo.ErrCustomerNotFound):
			http.Error(w, "customer not found", http.StatusNotFound)
		case errors.Is(err, repo.ErrInsufficientStock):
			http.Error(w, "insufficient stock", http.StatusConflict)
		default:
			http.Error(w, "could not place order", http.StatusInternalServerError)
		}
		return
	}
	invalidateReports(r.Context())

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(OrderResponse{
		Id:         order.ID,
		ProductID:  order.ProductID,
		CustomerID: order.CustomerID,
		Quantity:   order.Quantity,
		CreatedAt:  order.CreatedAt,
	})
}

// GetOrdersHandler godoc
// @Summary List all orders with resolved product and customer names
// @Tags orders
// @Produce json
// @Success 200 {array} OrderResponse
// @Failure 500 {string} string "Internal error"
// @Router /orders [get]
func GetOrdersHandler(w http.ResponseWriter, r *http.Request) {
	orders, err := orderRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch orders", http.StatusInternalServerError)
		return
	}
	response := make([]OrderResponse, len(orders))
	for i, o := range orders {
		response[i] = OrderResponse{
			Id:           o.ID,
			ProductID:    o.ProductID,
			CustomerID:   o.CustomerID,
			Quantity:     o.Quantity,
			ProductName:  o.ProductName,
			CustomerName: o.CustomerName,
			CreatedAt:    o.CreatedAt,
		}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// DeleteOrderHandler godoc
// @Summary Delete an order
// @Description Removes the order record. The stock consumed by the order is not restored.
// @Tags orders
// @Param id path int true "Order ID"
// @Success 204 "Deleted successfully"
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Router /orders/{id} [delete]
// @Security BearerAuth
func DeleteOrderHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid order ID", http.StatusBadRequest)
		return
	}
	if err := orderRepo.Delete(id); err != nil {
		if errors.Is(err, repo.ErrOrderNotFound) {
			http.Error(w, "order not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not delete order", http.StatusInternalServerError)
		return
	}
	invalidateReports(r.Context())
	w.WriteHeader(http.StatusNoContent)
}
