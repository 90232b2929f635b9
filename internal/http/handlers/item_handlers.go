package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/omercengiz/warehouse-pro/internal/inventory"
	"github.com/omercengiz/warehouse-pro/internal/models"
	repo "github.com/omercengiz/warehouse-pro/internal/repo"
)

func toItemResponse(it models.Item) ItemResponse {
	return ItemResponse{
		Id:           it.ID,
		Name:         it.Name,
		Weight:       it.Weight,
		Quantity:     it.Quantity,
		Notes:        it.Notes,
		DisplayNotes: it.DisplayNotes(),
		OutOfStock:   it.OutOfStock(),
		UpdatedAt:    it.UpdatedAt,
	}
}

// CreateItemHandler godoc
// @Summary Create a new inventory item
// @Description Adds an item to the warehouse inventory
// @Tags items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param item body ItemRequest true "Item to add"
// @Success 201 {object} ItemResponse
// @Failure 400 {array} inventory.FieldError
// @Router /items [post]
func CreateItemHandler(w http.ResponseWriter, r *http.Request) {
	var req ItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	created, err := inventorySvc.AddItem(models.Item{
		Name:     req.Name,
		Weight:   req.Weight,
		Quantity: req.Quantity,
		Notes:    req.Notes,
	})
	if err != nil {
		var verr *inventory.ValidationError
		if errors.As(err, &verr) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(verr.Fields)
			return
		}
		http.Error(w, "could not create item", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(toItemResponse(created))
}

// GetItemsHandler godoc
// @Summary List all inventory items sorted by name
// @Tags items
// @Produce json
// @Success 200 {array} ItemResponse
// @Failure 500 {string} string "Internal error"
// @Router /items [get]
func GetItemsHandler(w http.ResponseWriter, r *http.Request) {
	items, err := inventorySvc.ListItems()
	if err != nil {
		http.Error(w, "could not fetch items", http.StatusInternalServerError)
		return
	}
	response := make([]ItemResponse, len(items))
	for i, it := range items {
		response[i] = toItemResponse(it)
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// GetItemByIDHandler godoc
// @Summary Get item by ID
// @Tags items
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} ItemResponse
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Router /items/{id} [get]
func GetItemByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(w, r)
	if !ok {
		return
	}

	item, err := inventorySvc.GetItem(id)
	if err != nil {
		if errors.Is(err, repo.ErrItemNotFound) {
			http.Error(w, "item not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch item", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(toItemResponse(item))
}

// UpdateItemHandler godoc
// @Summary Update an item's fields
// @Description Partial update of name, weight and notes. Quantity changes go through the quantity endpoints.
// @Tags items
// @Accept json
// @Produce json
// @Param id path int true "Item ID"
// @Param item body ItemUpdateRequest true "Fields to update"
// @Success 200 {object} ItemResponse
// @Failure 400 {array} inventory.FieldError
// @Failure 404 {string} string "Not found"
// @Router /items/{id} [put]
// @Security BearerAuth
func UpdateItemHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(w, r)
	if !ok {
		return
	}

	var req ItemUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	updated, err := inventorySvc.UpdateItem(id, inventory.ItemUpdate{
		Name:   req.Name,
		Weight: req.Weight,
		Notes:  req.Notes,
	})
	if err != nil {
		var verr *inventory.ValidationError
		if errors.As(err, &verr) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(verr.Fields)
			return
		}
		if errors.Is(err, repo.ErrItemNotFound) {
			http.Error(w, "item not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not update item", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(toItemResponse(updated))
}

// DeleteItemHandler godoc
// @Summary Delete an item
// @Description Removes the item permanently and drops any pending notification for it
// @Tags items
// @Param id path int true "Item ID"
// @Success 204 "Deleted successfully"
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Router /items/{id} [delete]
// @Security BearerAuth
func DeleteItemHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(w, r)
	if !ok {
		return
	}

	if err := inventorySvc.DeleteItem(id); err != nil {
		if errors.Is(err, repo.ErrItemNotFound) {
			http.Error(w, "item not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not delete item", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SearchItemsHandler godoc
// @Summary Search items by name or notes
// @Description Case-insensitive substring match. A blank query returns all items in name order.
// @Tags items
// @Produce json
// @Param q query string false "Search query"
// @Success 200 {object} ItemsSearchResult
// @Router /items/search [get]
func SearchItemsHandler(w http.ResponseWriter, r *http.Request) {
	// Surrounding whitespace is presentation noise, trimmed here so the
	// index can match queries literally.
	items := inventorySvc.Search(strings.TrimSpace(r.URL.Query().Get("q")))

	resp := ItemsSearchResult{
		Data: make([]ItemResponse, len(items)),
		Meta: Meta{TotalCount: len(items)},
	}
	for i, it := range items {
		resp.Data[i] = toItemResponse(it)
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

// GetStatsHandler godoc
// @Summary Inventory summary counters
// @Tags items
// @Produce json
// @Success 200 {object} StatsResponse
// @Failure 500 {string} string "Internal error"
// @Router /items/stats [get]
func GetStatsHandler(w http.ResponseWriter, r *http.Request) {
	total, outOfStock, err := inventorySvc.Stats()
	if err != nil {
		http.Error(w, "could not compute stats", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(StatsResponse{TotalItems: total, OutOfStockItems: outOfStock})
}

func itemID(w http.ResponseWriter, r *http.Request) (int, bool) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "invalid item ID", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}
