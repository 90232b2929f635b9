package handlers

import (
	"net/http"

	"github.com/omercengiz/warehouse-pro/internal/alert"
)

// TestAlertHandler godoc
// @Summary Send a test message through the alert channel
// @Tags alerts
// @Produce json
// @Success 200 {object} AlertOutcomeResponse
// @Failure 502 {object} AlertOutcomeResponse
// @Router /alerts/test [post]
// @Security BearerAuth
func TestAlertHandler(w http.ResponseWriter, r *http.Request) {
	out := dispatcher.SendTest(r.Context())

	status := http.StatusOK
	if out.Status == alert.StatusFailed {
		status = http.StatusBadGateway
	}
	writeJSON(w, status, AlertOutcomeResponse{Status: out.Status, Reason: out.Reason})
}

// ResendAlertsHandler godoc
// @Summary Re-send stock-out alerts for every out-of-stock item
// @Description Best-effort bulk dispatch with a mandatory delay between messages; one failure does not abort the rest
// @Tags alerts
// @Produce json
// @Success 200 {object} ResendAlertsResult
// @Failure 500 {string} string "Internal error"
// @Router /alerts/resend [post]
// @Security BearerAuth
func ResendAlertsHandler(w http.ResponseWriter, r *http.Request) {
	items, err := inventorySvc.ZeroQuantityItems()
	if err != nil {
		http.Error(w, "could not fetch items", http.StatusInternalServerError)
		return
	}

	sent := dispatcher.SendAllZeroStockAlerts(r.Context(), items)
	writeJSON(w, http.StatusOK, ResendAlertsResult{Total: len(items), Sent: sent})
}
