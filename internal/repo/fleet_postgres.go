package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/rogerio-castellano/inventory-ledger/internal/models"
)

type PostgresDriverRepository struct {
	db *sql.DB
}

func NewPostgresDriverRepository(db *sql.DB) *PostgresDriverRepository {
	return &PostgresDriverRepository{db: db}
}

func (r *PostgresDriverRepository) Create(d models.Driver) (models.Driver, error) {
	query := `INSERT INTO drivers (name, license_number) VALUES ($1, $2) RETURNING id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := r.db.QueryRowContext(ctx, query, d.Name, d.LicenseNumber).Scan(&d.ID)
	return d, err
}

func (r *PostgresDriverRepository) GetAll() ([]models.Driver, error) {
	query := `SELECT id, name, license_number FROM drivers ORDER BY id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var drivers []models.Driver
	for rows.Next() {
		var d models.Driver
		if err := rows.Scan(&d.ID, &d.Name, &d.LicenseNumber); err != nil {
			return nil, err
		}
		drivers = append(drivers, d)
	}
	return drivers, rows.Err()
}

func (r *PostgresDriverRepository) GetByID(id int) (models.Driver, error) {
	query := `SELECT id, name, license_number FROM drivers WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var d models.Driver
	err := r.db.QueryRowContext(ctx, query, id).Scan(&d.ID, &d.Name, &d.LicenseNumber)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Driver{}, ErrDriverNotFound
	}
	return d, err
}

func (r *PostgresDriverRepository) Delete(id int) error {
	query := `DELETE FROM drivers WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrDriverNotFound
	}
	return nil
}

type PostgresVehicleRepository struct {
	db *sql.DB
}

func NewPostgresVehicleRepository(db *sql.DB) *PostgresVehicleRepository {
	return &PostgresVehicleRepository{db: db}
}

func (r *PostgresVehicleRepository) Create(v models.Vehicle) (models.Vehicle, error) {
	query := `INSERT INTO vehicles (registration_number, driver_id, license_expiry, insurance_expiry, mot_expiry)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := r.db.QueryRowContext(ctx, query, v.RegistrationNumber, v.DriverID, v.LicenseExpiry, v.InsuranceExpiry, v.MOTExpiry).Scan(&v.ID)
	return v, err
}

func (r *PostgresVehicleRepository) GetAll() ([]models.Vehicle, error) {
	query := `SELECT id, registration_number, driver_id, license_expiry, insurance_expiry, mot_expiry FROM vehicles ORDER BY id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vehicles []models.Vehicle
	for rows.Next() {
		var v models.Vehicle
		if err := rows.Scan(&v.ID, &v.RegistrationNumber, &v.DriverID, &v.LicenseExpiry, &v.InsuranceExpiry, &v.MOTExpiry); err != nil {
			return nil, err
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, rows.Err()
}

func (r *PostgresVehicleRepository) GetByID(id int) (models.Vehicle, error) {
	query := `SELECT id, registration_number, driver_id, license_expiry, insurance_expiry, mot_expiry FROM vehicles WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var v models.Vehicle
	err := r.db.QueryRowContext(ctx, query, id).Scan(&v.ID, &v.RegistrationNumber, &v.DriverID, &v.LicenseExpiry, &v.InsuranceExpiry, &v.MOTExpiry)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Vehicle{}, ErrVehicleNotFound
	}
	return v, err
}

func (r *PostgresVehicleRepository) Delete(id int) error {
	query := `DELETE FROM vehicles WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrVehicleNotFound
	}
	return nil
}
