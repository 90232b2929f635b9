package models

import (
	"fmt"
	"strings"
	"time"
)

// Bounds enforced on inventory items. Values outside them are rejected,
// never clamped.
const (
	MinNameLen  = 2
	MaxNameLen  = 200
	MaxWeightKg = 10000.0
	MaxQuantity = 100000
)

// Item represents a single warehouse inventory record.
type Item struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Weight    float64   `json:"weight"`
	Quantity  int       `json:"quantity"`
	Notes     string    `json:"notes"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OutOfStock reports whether the item has no stock left.
func (i Item) OutOfStock() bool {
	return i.Quantity == 0
}

// FormattedWeight renders the weight with its implicit unit, e.g. "2.5 kg".
func (i Item) FormattedWeight() string {
	return fmt.Sprintf("%.1f kg", i.Weight)
}

// DisplayNotes substitutes a sentinel for empty notes. Presentation only;
// the stored value stays raw.
func (i Item) DisplayNotes() string {
	if strings.TrimSpace(i.Notes) == "" {
		return "No notes"
	}
	return i.Notes
}
