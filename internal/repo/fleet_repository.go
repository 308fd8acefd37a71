package repo

import "github.com/rogerio-castellano/inventory-ledger/internal/models"

// DriverRepository defines the catalog operations for fleet drivers.
type DriverRepository interface {
	Create(driver models.Driver) (models.Driver, error)
	GetAll() ([]models.Driver, error)
	GetByID(id int) (models.Driver, error)
	Delete(id int) error
}

// VehicleRepository defines the catalog operations for fleet vehicles.
// GetAll returns vehicles in insertion order, which is also the order the
// expiry alert view reports them in.
type VehicleRepository interface {
	Create(vehicle models.Vehicle) (models.Vehicle, error)
	GetAll() ([]models.Vehicle, error)
	GetByID(id int) (models.Vehicle, error)
	Delete(id int) error
}
