package repo

import "github.com/omercengiz/warehouse-pro/internal/models"

// ItemRepository defines the interface for inventory item data operations.
// GetAll returns items in name order with ID as tiebreaker; every write
// operation bumps UpdatedAt on the touched record.
type ItemRepository interface {
	Create(item models.Item) (models.Item, error)
	GetAll() ([]models.Item, error)
	GetByID(id int) (models.Item, error)
	Update(item models.Item) (models.Item, error)
	Delete(id int) error

	// AdjustQuantity applies a relative change and returns the item after
	// the change together with the quantity before it. The change is
	// rejected, not clamped, when it would leave the allowed range.
	AdjustQuantity(id, delta int) (models.Item, int, error)

	// SetQuantity overwrites the quantity and returns the item after the
	// change together with the quantity before it.
	SetQuantity(id, value int) (models.Item, int, error)

	// ZeroQuantityItems returns all out-of-stock items in list order.
	ZeroQuantityItems() ([]models.Item, error)
}
