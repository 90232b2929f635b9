package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	api "github.com/omercengiz/warehouse-pro/internal/http"
	handler "github.com/omercengiz/warehouse-pro/internal/http/handlers"
)

func createItemWithQuantity(t *testing.T, r http.Handler, name string, quantity int) handler.ItemResponse {
	t.Helper()
	w := createItem(r, handler.ItemRequest{Name: name, Weight: 1.0, Quantity: quantity})
	if w.Code != http.StatusCreated {
		t.Fatalf("item setup failed with status %d", w.Code)
	}
	var resp handler.ItemResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding created item: %v", err)
	}
	return resp
}

func decodeQuantityChange(t *testing.T, w *httptest.ResponseRecorder) handler.QuantityChangeResponse {
	t.Helper()
	var resp handler.QuantityChangeResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	return resp
}

func TestIncrementQuantityHandler(t *testing.T) {
	t.Cleanup(clearAllItems)
	r := api.NewRouter()
	item := createItemWithQuantity(t, r, "Cardboard Boxes", 4)

	w := changeQuantity(r, item.Id, "increment", handler.QuantityChangeRequest{By: 3})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	resp := decodeQuantityChange(t, w)
	if resp.OldQuantity != 4 || resp.NewQuantity != 7 {
		t.Errorf("expected 4 -> 7, got %d -> %d", resp.OldQuantity, resp.NewQuantity)
	}
	if resp.OutOfStock {
		t.Error("item with positive quantity reported out of stock")
	}
}

func TestIncrementQuantityHandler_EmptyBodyDefaultsToOne(t *testing.T) {
	t.Cleanup(clearAllItems)
	r := api.NewRouter()
	item := createItemWithQuantity(t, r, "Cardboard Boxes", 4)

	w := changeQuantity(r, item.Id, "increment", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	resp := decodeQuantityChange(t, w)
	if resp.NewQuantity != 5 {
		t.Errorf("expected default increment of 1, got %d -> %d", resp.OldQuantity, resp.NewQuantity)
	}
}

func TestDecrementQuantityHandler_ToZero(t *testing.T) {
	t.Cleanup(clearAllItems)
	r := api.NewRouter()
	item := createItemWithQuantity(t, r, "Cardboard Boxes", 1)

	w := changeQuantity(r, item.Id, "decrement", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	resp := decodeQuantityChange(t, w)
	if resp.NewQuantity != 0 {
		t.Errorf("expected quantity 0, got %d", resp.NewQuantity)
	}
	if !resp.OutOfStock {
		t.Error("expected out_of_stock to be true at zero")
	}
}

func TestDecrementQuantityHandler_BelowZero(t *testing.T) {
	t.Cleanup(clearAllItems)
	r := api.NewRouter()
	item := createItemWithQuantity(t, r, "Cardboard Boxes", 0)

	w := changeQuantity(r, item.Id, "decrement", nil)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 Conflict, got %d", w.Code)
	}

	// Quantity must be untouched after the rejection.
	w2 := changeQuantity(r, item.Id, "increment", nil)
	resp := decodeQuantityChange(t, w2)
	if resp.OldQuantity != 0 {
		t.Errorf("rejected decrement changed the quantity: %d", resp.OldQuantity)
	}
}

func TestQuantityHandlers_NotFound(t *testing.T) {
	t.Cleanup(clearAllItems)
	r := api.NewRouter()

	for _, op := range []string{"increment", "decrement"} {
		w := changeQuantity(r, 9999, op, nil)
		if w.Code != http.StatusNotFound {
			t.Errorf("%s: expected 404 Not Found, got %d", op, w.Code)
		}
	}
}

func TestSetQuantityHandler(t *testing.T) {
	t.Cleanup(clearAllItems)
	r := api.NewRouter()
	item := createItemWithQuantity(t, r, "Cardboard Boxes", 7)

	w := changeQuantity(r, item.Id, "quantity", handler.SetQuantityRequest{Value: 0})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	resp := decodeQuantityChange(t, w)
	if resp.OldQuantity != 7 || resp.NewQuantity != 0 {
		t.Errorf("expected 7 -> 0, got %d -> %d", resp.OldQuantity, resp.NewQuantity)
	}
	if !resp.OutOfStock {
		t.Error("expected out_of_stock to be true at zero")
	}
}

func TestSetQuantityHandler_Negative(t *testing.T) {
	t.Cleanup(clearAllItems)
	r := api.NewRouter()
	item := createItemWithQuantity(t, r, "Cardboard Boxes", 7)

	w := changeQuantity(r, item.Id, "quantity", handler.SetQuantityRequest{Value: -1})
	if w.Code != http.StatusConflict {
		t.Errorf("expected 409 Conflict, got %d", w.Code)
	}
}

func TestSetQuantityHandler_AboveCeiling(t *testing.T) {
	t.Cleanup(clearAllItems)
	r := api.NewRouter()
	item := createItemWithQuantity(t, r, "Cardboard Boxes", 7)

	w := changeQuantity(r, item.Id, "quantity", handler.SetQuantityRequest{Value: 100001})
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422 Unprocessable Entity, got %d", w.Code)
	}
}
