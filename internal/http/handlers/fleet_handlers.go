package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rogerio-castellano/inventory-ledger/internal/alert"
	"github.com/rogerio-castellano/inventory-ledger/internal/models"
	"github.com/rogerio-castellano/inventory-ledger/internal/repo"
)

// CreateDriverHandler godoc
// @Summary Create a new driver
// @Tags fleet
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param driver body DriverRequest true "Driver to add"
// @Success 201 {object} models.Driver
// @Failure 400 {array} ValidationError
// @Router /drivers [post]
func CreateDriverHandler(w http.ResponseWriter, r *http.Request) {
	var req DriverRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateDriver(req)
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(validationErrors)
		return
	}

	created, err := driverRepo.Create(models.Driver{Name: req.Name, LicenseNumber: req.LicenseNumber})
	if err != nil {
		http.Error(w, "could not create driver", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

// GetDriversHandler godoc
// @Summary List all drivers
// @Tags fleet
// @Produce json
// @Success 200 {array} models.Driver
// @Router /drivers [get]
func GetDriversHandler(w http.ResponseWriter, r *http.Request) {
	drivers, err := driverRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch drivers", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(drivers)
}

// DeleteDriverHandler godoc
// @Summary Delete a driver
// @Tags fleet
// @Param id path int true "Driver ID"
// @Success 204 "Deleted successfully"
// @Failure 404 {string} string "Not found"
// @Router /drivers/{id} [delete]
// @Security BearerAuth
func DeleteDriverHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid driver ID", http.StatusBadRequest)
		return
	}
	if err := driverRepo.Delete(id); err != nil {
		if errors.Is(err, repo.ErrDriverNotFound) {
			http.Error(w, "driver not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not delete driver", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CreateVehicleHandler godoc
// @Summary Create a new vehicle
// @Tags fleet
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param vehicle body VehicleRequest true "Vehicle to add"
// @Success 201 {object} models.Vehicle
// @Failure 400 {array} ValidationError
// @Router /vehicles [post]
func CreateVehicleHandler(w http.ResponseWriter, r *http.Request) {
	var req VehicleRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateVehicle(req)
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(validationErrors)
		return
	}

	created, err := vehicleRepo.Create(models.Vehicle{
		RegistrationNumber: req.RegistrationNumber,
		DriverID:           req.DriverID,
		LicenseExpiry:      req.LicenseExpiry,
		InsuranceExpiry:    req.InsuranceExpiry,
		MOTExpiry:          req.MOTExpiry,
	})
	if err != nil {
		http.Error(w, "could not create vehicle", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

// GetVehiclesHandler godoc
// @Summary List all vehicles
// @Tags fleet
// @Produce json
// @Success 200 {array} models.Vehicle
// @Router /vehicles [get]
func GetVehiclesHandler(w http.ResponseWriter, r *http.Request) {
	vehicles, err := vehicleRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch vehicles", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(vehicles)
}

// DeleteVehicleHandler godoc
// @Summary Delete a vehicle
// @Tags fleet
// @Param id path int true "Vehicle ID"
// @Success 204 "Deleted successfully"
// @Failure 404 {string} string "Not found"
// @Router /vehicles/{id} [delete]
// @Security BearerAuth
func DeleteVehicleHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid vehicle ID", http.StatusBadRequest)
		return
	}
	if err := vehicleRepo.Delete(id); err != nil {
		if errors.Is(err, repo.ErrVehicleNotFound) {
			http.Error(w, "vehicle not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not delete vehicle", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetExpiryAlertsHandler godoc
// @Summary Vehicle documents expiring within the alert window
// @Tags fleet
// @Produce json
// @Success 200 {array} alert.Alert
// @Failure 500 {string} string "Internal error"
// @Router /alerts/expiry [get]
func GetExpiryAlertsHandler(w http.ResponseWriter, r *http.Request) {
	vehicles, err := vehicleRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch vehicles", http.StatusInternalServerError)
		return
	}

	alerts := alert.FleetExpiryAlerts(vehicles, time.Now())
	if alerts == nil {
		alerts = []alert.Alert{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(alerts)
}
