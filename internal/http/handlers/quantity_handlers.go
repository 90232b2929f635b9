package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	repo "github.com/omercengiz/warehouse-pro/internal/repo"
)

// IncrementQuantityHandler godoc
// @Summary Increase an item's quantity
// @Tags inventory
// @Accept json
// @Produce json
// @Param id path int true "Item ID"
// @Param change body QuantityChangeRequest false "Amount, defaults to 1"
// @Success 200 {object} QuantityChangeResponse
// @Failure 404 {string} string "Not found"
// @Failure 422 {string} string "Quantity ceiling exceeded"
// @Router /items/{id}/increment [post]
// @Security BearerAuth
func IncrementQuantityHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(w, r)
	if !ok {
		return
	}

	req := quantityChange(w, r)
	if req == nil {
		return
	}

	old, newQty, err := inventorySvc.Increment(id, req.By)
	writeQuantityResult(w, id, old, newQty, err)
}

// DecrementQuantityHandler godoc
// @Summary Decrease an item's quantity
// @Description Rejected, not clamped, when the decrement would go below zero
// @Tags inventory
// @Accept json
// @Produce json
// @Param id path int true "Item ID"
// @Param change body QuantityChangeRequest false "Amount, defaults to 1"
// @Success 200 {object} QuantityChangeResponse
// @Failure 404 {string} string "Not found"
// @Failure 409 {string} string "Quantity cannot be negative"
// @Router /items/{id}/decrement [post]
// @Security BearerAuth
func DecrementQuantityHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(w, r)
	if !ok {
		return
	}

	req := quantityChange(w, r)
	if req == nil {
		return
	}

	old, newQty, err := inventorySvc.Decrement(id, req.By)
	writeQuantityResult(w, id, old, newQty, err)
}

// SetQuantityHandler godoc
// @Summary Set an item's quantity directly
// @Description Manual correction path; emits the same events as increment/decrement
// @Tags inventory
// @Accept json
// @Produce json
// @Param id path int true "Item ID"
// @Param change body SetQuantityRequest true "New quantity"
// @Success 200 {object} QuantityChangeResponse
// @Failure 404 {string} string "Not found"
// @Failure 409 {string} string "Quantity cannot be negative"
// @Failure 422 {string} string "Quantity ceiling exceeded"
// @Router /items/{id}/quantity [post]
// @Security BearerAuth
func SetQuantityHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(w, r)
	if !ok {
		return
	}

	var req SetQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	old, newQty, err := inventorySvc.SetQuantity(id, req.Value)
	writeQuantityResult(w, id, old, newQty, err)
}

func quantityChange(w http.ResponseWriter, r *http.Request) *QuantityChangeRequest {
	req := QuantityChangeRequest{}
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid input", http.StatusBadRequest)
			return nil
		}
	}
	return &req
}

func writeQuantityResult(w http.ResponseWriter, id, old, newQty int, err error) {
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrItemNotFound):
			http.Error(w, "item not found", http.StatusNotFound)
		case errors.Is(err, repo.ErrInvalidQuantityChange):
			http.Error(w, "quantity cannot be negative", http.StatusConflict)
		case errors.Is(err, repo.ErrQuantityOutOfRange):
			http.Error(w, "quantity exceeds maximum", http.StatusUnprocessableEntity)
		default:
			http.Error(w, "could not update quantity", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(QuantityChangeResponse{
		Id:          id,
		OldQuantity: old,
		NewQuantity: newQty,
		OutOfStock:  newQty == 0,
	})
}
