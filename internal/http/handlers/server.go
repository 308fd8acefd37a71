package handlers

import (
	"context"

	"github.com/rogerio-castellano/inventory-ledger/internal/repo"
	"github.com/rogerio-castellano/inventory-ledger/internal/report"
)

var (
	productRepo  repo.ProductRepository
	customerRepo repo.CustomerRepository
	driverRepo   repo.DriverRepository
	vehicleRepo  repo.VehicleRepository
	orderRepo    repo.OrderRepository
	userRepo     repo.UserRepository

	reporter report.Reporter

	reportInvalidator ReportInvalidator

	lowStockThreshold = report.DefaultLowStockThreshold
)

// ReportInvalidator drops cached report payloads after a mutation. The
// redis-backed reporter implements it; plain reporters leave it unset.
type ReportInvalidator interface {
	Invalidate(ctx context.Context)
}

func SetProductRepo(r repo.ProductRepository) {
	productRepo = r
}

func SetCustomerRepo(r repo.CustomerRepository) {
	customerRepo = r
}

func SetDriverRepo(r repo.DriverRepository) {
	driverRepo = r
}

func SetVehicleRepo(r repo.VehicleRepository) {
	vehicleRepo = r
}

func SetOrderRepo(r repo.OrderRepository) {
	orderRepo = r
}

func SetUserRepo(r repo.UserRepository) {
	userRepo = r
}

func SetReporter(r report.Reporter) {
	reporter = r
	if inv, ok := r.(ReportInvalidator); ok {
		reportInvalidator = inv
	} else {
		reportInvalidator = nil
	}
}

func SetLowStockThreshold(threshold int) {
	lowStockThreshold = threshold
}

func invalidateReports(ctx context.Context) {
	if reportInvalidator != nil {
		reportInvalidator.Invalidate(ctx)
	}
}
