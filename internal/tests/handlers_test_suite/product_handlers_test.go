package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	api "github.com/rogerio-castellano/inventory-ledger/internal/http"
	handler "github.com/rogerio-castellano/inventory-ledger/internal/http/handlers"
)

func TestCreateProductHandler_Valid(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	w := createProduct(r, handler.ProductRequest{Name: "Coffee", Price: 7.5, Quantity: 50})

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}

	var resp handler.ProductResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}

	if resp.Name != "Coffee" {
		t.Errorf("expected name 'Coffee', got %v", resp.Name)
	}
	if resp.Price != 7.5 {
		t.Errorf("expected price 7.5, got %v", resp.Price)
	}
	if resp.Quantity != 50 {
		t.Errorf("expected quantity 50, got %v", resp.Quantity)
	}
}

func TestCreateProductHandler_MalformedBody(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	bodies := []struct {
		name string
		body string
	}{
		{name: "not JSON", body: `{"name":`},
		{name: "trailing second document", body: `{"name":"Coffee","price":7.5,"quantity":50}{"name":"Tea"}`},
	}
	for _, tt := range bodies {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(tt.body))
			req.Header.Set("Authorization", "Bearer "+token)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400 Bad Request, got %d", w.Code)
			}
		})
	}
}

func TestCreateProductHandler_Invalid(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	tests := []struct {
		name           string
		payload        handler.ProductRequest
		expectCode     int
		expectedErrors []string
	}{
		{
			name:           "Empty name and negative price",
			payload:        handler.ProductRequest{Name: "", Price: -1.0},
			expectCode:     http.StatusBadRequest,
			expectedErrors: []string{"Name", "Price"},
		},
		{
			name:           "Empty name only",
			payload:        handler.ProductRequest{Name: "", Price: 100.0},
			expectCode:     http.StatusBadRequest,
			expectedErrors: []string{"Name"},
		},
		{
			name:           "Negative quantity",
			payload:        handler.ProductRequest{Name: "Tea", Price: 4.0, Quantity: -1},
			expectCode:     http.StatusBadRequest,
			expectedErrors: []string{"Quantity"},
		},
		{
			name:           "Negative threshold",
			payload:        handler.ProductRequest{Name: "Tea", Price: 4.0, Threshold: -1},
			expectCode:     http.StatusBadRequest,
			expectedErrors: []string{"Threshold"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := createProduct(r, tt.payload)

			if w.Code != tt.expectCode {
				t.Errorf("expected status %d, got %d", tt.expectCode, w.Code)
			}

			var resp []handler.ValidationError
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("error decoding response: %v", err)
			}

			for _, field := range tt.expectedErrors {
				found := false
				for _, err := range resp {
					if strings.EqualFold(err.Field, field) {
						found = true
						break
					}
				}
				if !found {
					t.Errorf("expected error for field %q, but not found", field)
				}
			}
		})
	}
}

func TestCreateProductHandler_MalformedJSON(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	badJSON := `{Name: "Invalid" Price: 100 "}` // missing comma
	req := httptest.NewRequest(http.MethodPost, "/products", bytes.NewBufferString(badJSON))
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400 Bad Request, got %d", w.Code)
	}
}

func TestCreateProductHandler_RequiresToken(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	body, _ := json.Marshal(handler.ProductRequest{Name: "Coffee", Price: 7.5})
	req := httptest.NewRequest(http.MethodPost, "/products", bytes.NewReader(body))
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 Unauthorized without a token, got %d", w.Code)
	}
}

func TestGetProductsHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	mustCreateProduct(r, handler.ProductRequest{Name: "Coffee", Price: 7.5, Quantity: 50})
	mustCreateProduct(r, handler.ProductRequest{Name: "Tea", Price: 4.0, Quantity: 20})

	w := get(r, "/products")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp []handler.ProductResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 products, got %d", len(resp))
	}
	if resp[0].Name != "Coffee" || resp[1].Name != "Tea" {
		t.Errorf("expected insertion order Coffee, Tea, got %s, %s", resp[0].Name, resp[1].Name)
	}
}

func TestGetProductByIDHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	created := mustCreateProduct(r, handler.ProductRequest{Name: "Coffee", Price: 7.5, Quantity: 50})

	w := get(r, fmt.Sprintf("/products/%d", created.Id))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp handler.ProductResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Id != created.Id || resp.Name != "Coffee" {
		t.Errorf("unexpected product: %+v", resp)
	}

	if w := get(r, "/products/999"); w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown product, got %d", w.Code)
	}
}

func TestUpdateProductHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	created := mustCreateProduct(r, handler.ProductRequest{Name: "Coffee", Price: 7.5, Quantity: 50})

	body, _ := json.Marshal(handler.ProductRequest{Name: "Coffee Beans", Price: 8.0, Quantity: 45})
	req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/products/%d", created.Id), bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp handler.ProductResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Name != "Coffee Beans" || resp.Price != 8.0 || resp.Quantity != 45 {
		t.Errorf("unexpected updated product: %+v", resp)
	}
}

func TestDeleteProductHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	created := mustCreateProduct(r, handler.ProductRequest{Name: "Coffee", Price: 7.5, Quantity: 50})

	w := del(r, fmt.Sprintf("/products/%d", created.Id))
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204 No Content, got %d", w.Code)
	}

	if w := get(r, fmt.Sprintf("/products/%d", created.Id)); w.Code != http.StatusNotFound {
		t.Errorf("expected 404 after delete, got %d", w.Code)
	}

	if w := del(r, "/products/999"); w.Code != http.StatusNotFound {
		t.Errorf("expected 404 deleting unknown product, got %d", w.Code)
	}
}

func TestAdjustQuantityHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	created := mustCreateProduct(r, handler.ProductRequest{Name: "Coffee", Price: 7.5, Quantity: 50})

	w := adjustProduct(r, created.Id, handler.QuantityAdjustmentRequest{Delta: 25})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var resp handler.ProductResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Quantity != 75 {
		t.Errorf("expected quantity 75, got %d", resp.Quantity)
	}

	w = adjustProduct(r, created.Id, handler.QuantityAdjustmentRequest{Delta: -100})
	if w.Code != http.StatusConflict {
		t.Errorf("expected 409 when quantity would go negative, got %d", w.Code)
	}
}

func TestProductResponse_LowStockFlag(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	created := mustCreateProduct(r, handler.ProductRequest{Name: "Coffee", Price: 7.5, Quantity: 5, Threshold: 10})
	if !created.LowStock {
		t.Error("expected low_stock to be true for quantity below threshold")
	}

	created = mustCreateProduct(r, handler.ProductRequest{Name: "Tea", Price: 4.0, Quantity: 50, Threshold: 10})
	if created.LowStock {
		t.Error("expected low_stock to be false for quantity above threshold")
	}
}
