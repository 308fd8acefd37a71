package handlers

import (
	"encoding/csv"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/rogerio-castellano/inventory-ledger/internal/report"
)

// parseReportDate accepts the RFC3339 form used by API clients and the
// bare date form used by the report filter UI. dateOnly reports which
// form matched.
func parseReportDate(s string) (ts time.Time, dateOnly bool, err error) {
	if ts, err = time.Parse(time.RFC3339, s); err == nil {
		return ts, false, nil
	}
	ts, err = time.Parse("2006-01-02", s)
	return ts, true, err
}

func reportWindow(r *http.Request) (report.Window, bool) {
	var w report.Window

	if sinceStr := r.URL.Query().Get("since"); sinceStr != "" {
		ts, _, err := parseReportDate(sinceStr)
		if err != nil {
			return report.Window{}, false
		}
		w.Since = &ts
	}
	if untilStr := r.URL.Query().Get("until"); untilStr != "" {
		ts, dateOnly, err := parseReportDate(untilStr)
		if err != nil {
			return report.Window{}, false
		}
		// A bare date as the upper bound means the whole of that day,
		// not midnight at its start.
		if dateOnly {
			ts = ts.Add(24*time.Hour - time.Nanosecond)
		}
		w.Until = &ts
	}
	return w, true
}

// GetProductSalesReportHandler godoc
// @Summary Units sold per product
// @Description Totals are sorted descending; products never ordered appear with zero
// @Tags reports
// @Produce json
// @Param since query string false "Count orders from this date (RFC3339 or YYYY-MM-DD)"
// @Param until query string false "Count orders until this date (RFC3339 or YYYY-MM-DD)"
// @Success 200 {array} report.SalesRow
// @Failure 400 {string} string "Invalid date"
// @Failure 500 {string} string "Internal error"
// @Router /reports/products [get]
func GetProductSalesReportHandler(w http.ResponseWriter, r *http.Request) {
	window, ok := reportWindow(r)
	if !ok {
		http.Error(w, "invalid date format", http.StatusBadRequest)
		return
	}

	rows, err := reporter.ProductSales(window)
	if err != nil {
		log.Printf("could not compute product sales report: %v", err)
		http.Error(w, "could not compute report", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

// GetCustomerSalesReportHandler godoc
// @Summary Units bought per customer
// @Tags reports
// @Produce json
// @Param since query string false "Count orders from this date (RFC3339 or YYYY-MM-DD)"
// @Param until query string false "Count orders until this date (RFC3339 or YYYY-MM-DD)"
// @Success 200 {array} report.SalesRow
// @Failure 400 {string} string "Invalid date"
// @Failure 500 {string} string "Internal error"
// @Router /reports/customers [get]
func GetCustomerSalesReportHandler(w http.ResponseWriter, r *http.Request) {
	window, ok := reportWindow(r)
	if !ok {
		http.Error(w, "invalid date format", http.StatusBadRequest)
		return
	}

	rows, err := reporter.CustomerSales(window)
	if err != nil {
		log.Printf("could not compute customer sales report: %v", err)
		http.Error(w, "could not compute report", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

// GetLowStockReportHandler godoc
// @Summary Products at or below the stock threshold
// @Description catalog_empty distinguishes an empty catalog from no products below the threshold
// @Tags reports
// @Produce json
// @Param threshold query int false "Stock threshold (default 10)"
// @Success 200 {object} LowStockResponse
// @Failure 400 {string} string "Invalid threshold"
// @Failure 500 {string} string "Internal error"
// @Router /reports/low-stock [get]
func GetLowStockReportHandler(w http.ResponseWriter, r *http.Request) {
	threshold := lowStockThreshold
	if thresholdStr := r.URL.Query().Get("threshold"); thresholdStr != "" {
		v, err := strconv.Atoi(thresholdStr)
		if err != nil || v < 0 {
			http.Error(w, "invalid threshold", http.StatusBadRequest)
			return
		}
		threshold = v
	}

	lowStock, err := reporter.LowStock(threshold)
	if err != nil {
		log.Printf("could not compute low stock report: %v", err)
		http.Error(w, "could not compute report", http.StatusInternalServerError)
		return
	}

	resp := LowStockResponse{
		Products:     make([]ProductResponse, len(lowStock.Products)),
		CatalogEmpty: lowStock.CatalogEmpty,
	}
	for i, p := range lowStock.Products {
		resp.Products[i] = toProductResponse(p)
	}
	writeJSON(w, http.StatusOK, resp)
}

// ExportProductSalesHandler godoc
// @Summary Download the product sales report as CSV
// @Tags reports
// @Produce text/csv
// @Success 200 {file} file
// @Failure 500 {string} string "Internal error"
// @Router /reports/products/export [get]
func ExportProductSalesHandler(w http.ResponseWriter, r *http.Request) {
	rows, err := reporter.ProductSales(report.Window{})
	if err != nil {
		log.Printf("could not compute product sales report: %v", err)
		http.Error(w, "could not compute report", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="product_sales.csv"`)

	csvWriter := csv.NewWriter(w)
	for _, row := range report.ExportProductSales(rows) {
		_ = csvWriter.Write(row)
	}
	csvWriter.Flush()
}

// GetDashboardHandler godoc
// @Summary Aggregate counters for the admin dashboard
// @Tags reports
// @Produce json
// @Success 200 {object} report.Dashboard
// @Failure 500 {string} string "Internal error"
// @Router /reports/dashboard [get]
func GetDashboardHandler(w http.ResponseWriter, r *http.Request) {
	d, err := reporter.Dashboard()
	if err != nil {
		http.Error(w, "could not compute dashboard", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(d); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}
