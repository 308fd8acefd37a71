package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/rogerio-castellano/inventory-ledger/docs"
	"github.com/rogerio-castellano/inventory-ledger/internal/http/handlers"
	rl "github.com/rogerio-castellano/inventory-ledger/internal/http/rate_limiter"
)

func NewRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(rl.Middleware)

	r.Post("/register", handlers.RegisterHandler)
	r.Post("/login", handlers.LoginHandler)

	// Reads are public; anything that mutates state sits behind the
	// auth middleware below.
	r.Get("/products", handlers.GetProductsHandler)
	r.Get("/products/{id}", handlers.GetProductByIDHandler)
	r.Get("/customers", handlers.GetCustomersHandler)
	r.Get("/customers/{id}", handlers.GetCustomerByIDHandler)
	r.Get("/orders", handlers.GetOrdersHandler)
	r.Get("/drivers", handlers.GetDriversHandler)
	r.Get("/vehicles", handlers.GetVehiclesHandler)

	r.Get("/reports/products", handlers.GetProductSalesReportHandler)
	r.Get("/reports/products/export", handlers.ExportProductSalesHandler)
	r.Get("/reports/customers", handlers.GetCustomerSalesReportHandler)
	r.Get("/reports/low-stock", handlers.GetLowStockReportHandler)
	r.Get("/reports/dashboard", handlers.GetDashboardHandler)
	r.Get("/alerts/expiry", handlers.GetExpiryAlertsHandler)

	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware)

		r.Post("/products", handlers.CreateProductHandler)
		r.Put("/products/{id}", handlers.UpdateProductHandler)
		r.Delete("/products/{id}", handlers.DeleteProductHandler)
		r.Post("/products/{id}/adjust", handlers.AdjustQuantityHandler)

		r.Post("/customers", handlers.CreateCustomerHandler)
		r.Delete("/customers/{id}", handlers.DeleteCustomerHandler)

		r.Post("/orders", handlers.PlaceOrderHandler)
		r.Delete("/orders/{id}", handlers.DeleteOrderHandler)

		r.Post("/drivers", handlers.CreateDriverHandler)
		r.Delete("/drivers/{id}", handlers.DeleteDriverHandler)
		r.Post("/vehicles", handlers.CreateVehicleHandler)
		r.Delete("/vehicles/{id}", handlers.DeleteVehicleHandler)
	})

	r.Get("/swagger/*", httpSwagger.Handler())

	return r
}
