package alert

import (
	"testing"
	"time"

	"github.com/rogerio-castellano/inventory-ledger/internal/models"
)

var today = time.Date(2025, time.March, 1, 9, 30, 0, 0, time.UTC)

func datePtr(t time.Time) *time.Time { return &t }

func TestExpiryAlerts_WindowBoundary(t *testing.T) {
	onBoundary := today.AddDate(0, 0, ExpiryWindowDays)
	beyond := today.AddDate(0, 0, ExpiryWindowDays+1)

	v := models.Vehicle{RegistrationNumber: "AB12 CDE", LicenseExpiry: datePtr(onBoundary)}
	alerts := ExpiryAlerts(v, today)
	if len(alerts) != 1 {
		t.Fatalf("expected an alert exactly %d days out, got %d alerts", ExpiryWindowDays, len(alerts))
	}
	if alerts[0].DaysLeft != ExpiryWindowDays {
		t.Errorf("expected %d days left, got %d", ExpiryWindowDays, alerts[0].DaysLeft)
	}

	v.LicenseExpiry = datePtr(beyond)
	if alerts := ExpiryAlerts(v, today); len(alerts) != 0 {
		t.Errorf("expected no alert one day beyond the window, got %d", len(alerts))
	}
}

func TestExpiryAlerts_AlreadyExpired(t *testing.T) {
	v := models.Vehicle{
		RegistrationNumber: "AB12 CDE",
		InsuranceExpiry:    datePtr(today.AddDate(0, 0, -3)),
	}

	alerts := ExpiryAlerts(v, today)
	if len(alerts) != 1 {
		t.Fatalf("expected an alert for an expired document, got %d", len(alerts))
	}
	if alerts[0].Field != FieldInsurance {
		t.Errorf("expected field %q, got %q", FieldInsurance, alerts[0].Field)
	}
	if alerts[0].DaysLeft != -3 {
		t.Errorf("expected -3 days left, got %d", alerts[0].DaysLeft)
	}
}

func TestExpiryAlerts_NilDatesNeverAlert(t *testing.T) {
	v := models.Vehicle{RegistrationNumber: "AB12 CDE"}
	if alerts := ExpiryAlerts(v, today); len(alerts) != 0 {
		t.Errorf("expected no alerts for a vehicle without expiry dates, got %d", len(alerts))
	}
}

func TestExpiryAlerts_MultipleFieldsInOrder(t *testing.T) {
	soon := datePtr(today.AddDate(0, 0, 2))
	v := models.Vehicle{
		RegistrationNumber: "AB12 CDE",
		LicenseExpiry:      soon,
		InsuranceExpiry:    soon,
		MOTExpiry:          soon,
	}

	alerts := ExpiryAlerts(v, today)
	if len(alerts) != 3 {
		t.Fatalf("expected 3 alerts, got %d", len(alerts))
	}
	want := []string{FieldLicense, FieldInsurance, FieldMOT}
	for i, field := range want {
		if alerts[i].Field != field {
			t.Errorf("alert %d: expected field %q, got %q", i, field, alerts[i].Field)
		}
	}
}

func TestExpiryAlerts_IgnoresTimeOfDay(t *testing.T) {
	// Expiry late in the evening of the boundary day still counts as
	// ExpiryWindowDays away.
	expiry := today.AddDate(0, 0, ExpiryWindowDays)
	expiry = time.Date(expiry.Year(), expiry.Month(), expiry.Day(), 23, 59, 0, 0, time.UTC)

	v := models.Vehicle{RegistrationNumber: "AB12 CDE", MOTExpiry: datePtr(expiry)}
	alerts := ExpiryAlerts(v, today)
	if len(alerts) != 1 {
		t.Fatalf("expected 1 alert, got %d", len(alerts))
	}
	if alerts[0].DaysLeft != ExpiryWindowDays {
		t.Errorf("expected %d days left, got %d", ExpiryWindowDays, alerts[0].DaysLeft)
	}
}

func TestFleetExpiryAlerts(t *testing.T) {
	soon := datePtr(today.AddDate(0, 0, 5))
	far := datePtr(today.AddDate(0, 1, 0))
	fleet := []models.Vehicle{
		{RegistrationNumber: "AA11 AAA", LicenseExpiry: far},
		{RegistrationNumber: "BB22 BBB", InsuranceExpiry: soon},
		{RegistrationNumber: "CC33 CCC", MOTExpiry: soon, LicenseExpiry: soon},
	}

	alerts := FleetExpiryAlerts(fleet, today)
	if len(alerts) != 3 {
		t.Fatalf("expected 3 alerts across the fleet, got %d", len(alerts))
	}
	if alerts[0].RegistrationNumber != "BB22 BBB" {
		t.Errorf("expected BB22 BBB first, got %s", alerts[0].RegistrationNumber)
	}
	// Per-vehicle field order: license before mot.
	if alerts[1].Field != FieldLicense || alerts[2].Field != FieldMOT {
		t.Errorf("expected license then mot for CC33 CCC, got %s then %s", alerts[1].Field, alerts[2].Field)
	}
}

func TestLowStock(t *testing.T) {
	tests := []struct {
		quantity  int
		threshold int
		want      bool
	}{
		{quantity: 0, threshold: 10, want: true},
		{quantity: 10, threshold: 10, want: true},
		{quantity: 11, threshold: 10, want: false},
	}
	for _, tt := range tests {
		p := models.Product{Quantity: tt.quantity}
		if got := LowStock(p, tt.threshold); got != tt.want {
			t.Errorf("LowStock(quantity=%d, threshold=%d) = %v, want %v", tt.quantity, tt.threshold, got, tt.want)
		}
	}
}
