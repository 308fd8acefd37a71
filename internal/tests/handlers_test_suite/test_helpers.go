package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"

	api "github.com/rogerio-castellano/inventory-ledger/internal/http"
	handler "github.com/rogerio-castellano/inventory-ledger/internal/http/handlers"
	rl "github.com/rogerio-castellano/inventory-ledger/internal/http/rate_limiter"
	"github.com/rogerio-castellano/inventory-ledger/internal/models"
	"github.com/rogerio-castellano/inventory-ledger/internal/repo"
	"github.com/rogerio-castellano/inventory-ledger/internal/report"
	"golang.org/x/crypto/bcrypt"
)

var (
	token        string
	productRepo  *repo.InMemoryProductRepository
	customerRepo *repo.InMemoryCustomerRepository
	orderRepo    *repo.InMemoryOrderRepository
	driverRepo   *repo.InMemoryDriverRepository
	vehicleRepo  *repo.InMemoryVehicleRepository
)

func init() {
	setupTestRepos("secret")
	rl.CleanupAllVisitors()
	r := api.NewRouter()

	var err error
	token, err = generateToken(r, "admin", "secret")
	if err != nil {
		panic(fmt.Sprintf("error generating token: %v", err))
	}
}

func setupTestRepos(password string) {
	productRepo = repo.NewInMemoryProductRepository()
	handler.SetProductRepo(productRepo)

	customerRepo = repo.NewInMemoryCustomerRepository()
	handler.SetCustomerRepo(customerRepo)

	orderRepo = repo.NewInMemoryOrderRepository(productRepo, customerRepo)
	handler.SetOrderRepo(orderRepo)

	driverRepo = repo.NewInMemoryDriverRepository()
	handler.SetDriverRepo(driverRepo)

	vehicleRepo = repo.NewInMemoryVehicleRepository()
	handler.SetVehicleRepo(vehicleRepo)

	userRepo := repo.NewInMemoryUserRepository()
	handler.SetUserRepo(userRepo)

	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	userRepo.CreateUser(models.User{
		Username:     "admin",
		PasswordHash: string(hash),
	})

	handler.SetReporter(report.NewMemoryReporter(productRepo, customerRepo, orderRepo))
	handler.SetLowStockThreshold(report.DefaultLowStockThreshold)
}

func clearAll() {
	productRepo.Clear()
	customerRepo.Clear()
	orderRepo.Clear()
	driverRepo.Clear()
	vehicleRepo.Clear()
	// Every httptest request shares one RemoteAddr; reset the limiter so
	// tests never eat into each other's per-IP budget.
	rl.CleanupAllVisitors()
}

func generateToken(r http.Handler, username, password string) (string, error) {
	payload := handler.UserLogin{Username: username, Password: password}
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp handler.LoginResult
	err := json.NewDecoder(w.Body).Decode(&resp)
	if err != nil {
		return "", fmt.Errorf("token decoding failed: %v", err)
	}
	return resp.Token, nil
}

func postJSON(r http.Handler, path string, payload any) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func del(r http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodDelete, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createProduct(r http.Handler, p handler.ProductRequest) *httptest.ResponseRecorder {
	return postJSON(r, "/products", p)
}

func createCustomer(r http.Handler, c handler.CustomerRequest) *httptest.ResponseRecorder {
	return postJSON(r, "/customers", c)
}

func placeOrder(r http.Handler, o handler.OrderRequest) *httptest.ResponseRecorder {
	return postJSON(r, "/orders", o)
}

func adjustProduct(r http.Handler, productID int, adj handler.QuantityAdjustmentRequest) *httptest.ResponseRecorder {
	return postJSON(r, fmt.Sprintf("/products/%d/adjust", productID), adj)
}

func mustCreateProduct(r http.Handler, p handler.ProductRequest) handler.ProductResponse {
	w := createProduct(r, p)
	if w.Code != http.StatusCreated {
		panic(fmt.Sprintf("product setup failed with status %d", w.Code))
	}
	var resp handler.ProductResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		panic(fmt.Sprintf("error decoding product response: %v", err))
	}
	return resp
}

func mustCreateCustomer(r http.Handler, c handler.CustomerRequest) handler.CustomerResponse {
	w := createCustomer(r, c)
	if w.Code != http.StatusCreated {
		panic(fmt.Sprintf("customer setup failed with status %d", w.Code))
	}
	var resp handler.CustomerResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		panic(fmt.Sprintf("error decoding customer response: %v", err))
	}
	return resp
}
