// Package alert holds the pure predicates behind the low-stock and
// document-expiry warnings. Nothing here touches storage; callers pass
// snapshots and a reference date.
package alert

import (
	"time"

	"github.com/rogerio-castellano/inventory-ledger/internal/models"
)

// ExpiryWindowDays is the look-ahead for document expiry warnings: a
// document expiring within this many calendar days (or already expired)
// alerts.
const ExpiryWindowDays = 14

// Alert is one near-expiry warning for a single vehicle document.
type Alert struct {
	Field              string    `json:"field"`
	RegistrationNumber string    `json:"registration_number"`
	ExpiresOn          time.Time `json:"expires_on"`
	DaysLeft           int       `json:"days_left"`
}

// Document field labels, in the order alerts are emitted per vehicle.
const (
	FieldLicense   = "license"
	FieldInsurance = "insurance"
	FieldMOT       = "mot"
)

// ExpiryAlerts evaluates one vehicle against today. A nil expiry date
// never alerts. The comparison is in calendar days: a date exactly
// ExpiryWindowDays away alerts, one day further does not.
func ExpiryAlerts(v models.Vehicle, today time.Time) []Alert {
	var alerts []Alert
	fields := []struct {
		label string
		date  *time.Time
	}{
		{FieldLicense, v.LicenseExpiry},
		{FieldInsurance, v.InsuranceExpiry},
		{FieldMOT, v.MOTExpiry},
	}
	for _, f := range fields {
		if f.date == nil {
			continue
		}
		days := daysUntil(today, *f.date)
		if days <= ExpiryWindowDays {
			alerts = append(alerts, Alert{
				Field:              f.label,
				RegistrationNumber: v.RegistrationNumber,
				ExpiresOn:          *f.date,
				DaysLeft:           days,
			})
		}
	}
	return alerts
}

// FleetExpiryAlerts flattens the per-vehicle alerts, keeping fleet
// insertion order.
func FleetExpiryAlerts(vehicles []models.Vehicle, today time.Time) []Alert {
	var alerts []Alert
	for _, v := range vehicles {
		alerts = append(alerts, ExpiryAlerts(v, today)...)
	}
	return alerts
}

// LowStock reports whether a product is at or below the threshold.
func LowStock(p models.Product, threshold int) bool {
	return p.Quantity <= threshold
}

// daysUntil counts whole calendar days from a to b, ignoring the time of
// day on either side.
func daysUntil(a, b time.Time) int {
	a = time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	b = time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}
