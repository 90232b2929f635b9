package inventory

import "github.com/omercengiz/warehouse-pro/internal/models"

// QuantityChanged is emitted after every successful quantity mutation.
type QuantityChanged struct {
	Item   models.Item
	OldQty int
	NewQty int
}

// EventSink receives mutation events from the service. For a single item the
// calls arrive in the same order the mutations were applied.
type EventSink interface {
	// QuantityChanged is called on every successful mutation.
	QuantityChanged(e QuantityChanged)

	// ZeroCrossing is called exactly once per transition from a positive
	// quantity to zero, after the matching QuantityChanged.
	ZeroCrossing(item models.Item)

	// ItemDeleted is called after an item is removed, so pending
	// notifications for it can be dropped.
	ItemDeleted(id int)
}
