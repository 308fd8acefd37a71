package repo

import (
	"sync"

	"github.com/rogerio-castellano/inventory-ledger/internal/models"
)

// InMemoryDriverRepository is an in-memory implementation of DriverRepository.
type InMemoryDriverRepository struct {
	mu      sync.Mutex
	drivers []models.Driver
	nextID  int
}

func NewInMemoryDriverRepository() *InMemoryDriverRepository {
	return &InMemoryDriverRepository{
		drivers: []models.Driver{},
		nextID:  1,
	}
}

func (r *InMemoryDriverRepository) Create(driver models.Driver) (models.Driver, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	driver.ID = r.nextID
	r.nextID++
	r.drivers = append(r.drivers, driver)
	return driver, nil
}

func (r *InMemoryDriverRepository) GetAll() ([]models.Driver, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Driver, len(r.drivers))
	copy(out, r.drivers)
	return out, nil
}

func (r *InMemoryDriverRepository) GetByID(id int) (models.Driver, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, d := range r.drivers {
		if d.ID == id {
			return d, nil
		}
	}
	return models.Driver{}, ErrDriverNotFound
}

func (r *InMemoryDriverRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, d := range r.drivers {
		if d.ID == id {
			r.drivers = append(r.drivers[:i], r.drivers[i+1:]...)
			return nil
		}
	}
	return ErrDriverNotFound
}

func (r *InMemoryDriverRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.drivers = []models.Driver{}
}

// InMemoryVehicleRepository is an in-memory implementation of VehicleRepository.
type InMemoryVehicleRepository struct {
	mu       sync.Mutex
	vehicles []models.Vehicle
	nextID   int
}

func NewInMemoryVehicleRepository() *InMemoryVehicleRepository {
	return &InMemoryVehicleRepository{
		vehicles: []models.Vehicle{},
		nextID:   1,
	}
}

func (r *InMemoryVehicleRepository) Create(vehicle models.Vehicle) (models.Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	vehicle.ID = r.nextID
	r.nextID++
	r.vehicles = append(r.vehicles, vehicle)
	return vehicle, nil
}

func (r *InMemoryVehicleRepository) GetAll() ([]models.Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Vehicle, len(r.vehicles))
	copy(out, r.vehicles)
	return out, nil
}

func (r *InMemoryVehicleRepository) GetByID(id int) (models.Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, v := range r.vehicles {
		if v.ID == id {
			return v, nil
		}
	}
	return models.Vehicle{}, ErrVehicleNotFound
}

func (r *InMemoryVehicleRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, v := range r.vehicles {
		if v.ID == id {
			r.vehicles = append(r.vehicles[:i], r.vehicles[i+1:]...)
			return nil
		}
	}
	return ErrVehicleNotFound
}

func (r *InMemoryVehicleRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.vehicles = []models.Vehicle{}
}
