package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/omercengiz/warehouse-pro/internal/alert"
	api "github.com/omercengiz/warehouse-pro/internal/http"
	handler "github.com/omercengiz/warehouse-pro/internal/http/handlers"
	"github.com/omercengiz/warehouse-pro/internal/inventory"
	"github.com/omercengiz/warehouse-pro/internal/search"
)

func TestTestAlertHandler_Sent(t *testing.T) {
	t.Cleanup(func() { setupTestRepos("secret") })
	r := api.NewRouter()

	w := authorizedRequest(r, http.MethodPost, "/alerts/test", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp handler.AlertOutcomeResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Status != alert.StatusSent {
		t.Errorf("expected status %q, got %q", alert.StatusSent, resp.Status)
	}
	if got := len(sender.Messages()); got != 1 {
		t.Errorf("expected one message through the channel, got %d", got)
	}
}

func TestTestAlertHandler_SkippedWhenUnauthorized(t *testing.T) {
	t.Cleanup(func() { setupTestRepos("secret") })
	r := api.NewRouter()

	sender.Authorized = false

	w := authorizedRequest(r, http.MethodPost, "/alerts/test", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp handler.AlertOutcomeResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Status != alert.StatusSkipped || resp.Reason != alert.ReasonUnauthorized {
		t.Errorf("expected skipped/unauthorized, got %q/%q", resp.Status, resp.Reason)
	}
}

func TestResendAlertsHandler(t *testing.T) {
	t.Cleanup(func() { setupTestRepos("secret") })
	r := api.NewRouter()

	createItem(r, handler.ItemRequest{Name: "Cardboard Boxes", Weight: 2.5, Quantity: 0})
	createItem(r, handler.ItemRequest{Name: "Bubble Wrap Roll", Weight: 1.2, Quantity: 0})
	createItem(r, handler.ItemRequest{Name: "Tape Dispenser", Weight: 0.4, Quantity: 3})

	w := authorizedRequest(r, http.MethodPost, "/alerts/resend", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp handler.ResendAlertsResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Total != 2 || resp.Sent != 2 {
		t.Errorf("expected 2/2 out-of-stock alerts sent, got %d/%d", resp.Sent, resp.Total)
	}
	if got := len(sender.Messages()); got != 2 {
		t.Errorf("expected 2 messages through the channel, got %d", got)
	}
}

func TestResendAlertsHandler_NoOutOfStockItems(t *testing.T) {
	t.Cleanup(func() { setupTestRepos("secret") })
	r := api.NewRouter()

	createItem(r, handler.ItemRequest{Name: "Tape Dispenser", Weight: 0.4, Quantity: 3})

	w := authorizedRequest(r, http.MethodPost, "/alerts/resend", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp handler.ResendAlertsResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Total != 0 || resp.Sent != 0 {
		t.Errorf("expected 0/0, got %d/%d", resp.Sent, resp.Total)
	}
}

func TestAlertHandlers_RequireAuth(t *testing.T) {
	r := api.NewRouter()

	for _, target := range []string{"/alerts/test", "/alerts/resend"} {
		req := httptest.NewRequest(http.MethodPost, target, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s: expected 401 without a token, got %d", target, w.Code)
		}
	}
}

// Full pipeline through the API: decrements on an item dispatch exactly one
// stock-out alert when the quantity crosses zero.
func TestQuantityMutation_TriggersStockOutAlert(t *testing.T) {
	setupTestRepos("secret")
	t.Cleanup(func() { setupTestRepos("secret") })

	d := alert.NewDispatcher(sender, "5551234567", time.Millisecond, 0, nil)
	handler.SetDispatcher(d)

	debouncer := alert.NewDebouncer(10*time.Millisecond, d, nil)
	t.Cleanup(debouncer.Close)
	handler.SetInventoryService(inventory.NewService(itemRepo, search.NewIndex(), debouncer))

	r := api.NewRouter()
	item := createItemWithQuantity(t, r, "Cardboard Boxes", 2)

	changeQuantity(r, item.Id, "decrement", nil)
	changeQuantity(r, item.Id, "decrement", nil)

	deadline := time.After(2 * time.Second)
	for len(sender.Messages()) == 0 {
		select {
		case <-deadline:
			t.Fatal("stock-out alert never dispatched")
		case <-time.After(10 * time.Millisecond):
		}
	}

	// Give any spurious second dispatch a moment to show up.
	time.Sleep(50 * time.Millisecond)
	if got := len(sender.Messages()); got != 1 {
		t.Errorf("expected exactly one stock-out alert, got %d", got)
	}
}
