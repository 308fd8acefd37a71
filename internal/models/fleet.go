package models

import "time"

// Driver represents a fleet driver.
type Driver struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	LicenseNumber string `json:"license_number,omitempty"`
}

// Vehicle represents a fleet vehicle. The three expiry dates feed the
// near-expiry alerts; a nil date means the document is not tracked and
// never alerts.
type Vehicle struct {
	ID                 int        `json:"id"`
	RegistrationNumber string     `json:"registration_number"`
	DriverID           *int       `json:"driver_id,omitempty"`
	LicenseExpiry      *time.Time `json:"license_expiry,omitempty"`
	InsuranceExpiry    *time.Time `json:"insurance_expiry,omitempty"`
	MOTExpiry          *time.Time `json:"mot_expiry,omitempty"`
}
