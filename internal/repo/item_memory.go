package repo

import (
	"sort"
	"sync"
	"time"

	"github.com/omercengiz/warehouse-pro/internal/models"
)

// InMemoryItemRepository is an in-memory implementation of ItemRepository.
// A single mutex serializes all mutations, so concurrent adjustments on the
// same item never lose updates.
type InMemoryItemRepository struct {
	mu     sync.Mutex
	items  []models.Item
	nextID int
}

// NewInMemoryItemRepository creates a new instance of InMemoryItemRepository.
func NewInMemoryItemRepository() *InMemoryItemRepository {
	return &InMemoryItemRepository{
		items:  []models.Item{},
		nextID: 1,
	}
}

// Create adds a new item to the repository and assigns it a fresh ID.
func (r *InMemoryItemRepository) Create(item models.Item) (models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item.ID = r.nextID
	r.nextID++
	item.UpdatedAt = time.Now().UTC()
	r.items = append(r.items, item)
	return item, nil
}

// GetAll retrieves all items sorted by name, ties broken by ID.
func (r *InMemoryItemRepository) GetAll() ([]models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Item, len(r.items))
	copy(out, r.items)
	sortItems(out)
	return out, nil
}

// GetByID retrieves an item by its ID.
func (r *InMemoryItemRepository) GetByID(id int) (models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, it := range r.items {
		if it.ID == id {
			return it, nil
		}
	}
	return models.Item{}, ErrItemNotFound
}

// Update modifies an item's descriptive fields. The stored quantity is
// authoritative: quantity changes go only through AdjustQuantity or
// SetQuantity, so a stale caller snapshot can never overwrite a concurrent
// quantity mutation.
func (r *InMemoryItemRepository) Update(item models.Item) (models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, it := range r.items {
		if it.ID == item.ID {
			it.Name = item.Name
			it.Weight = item.Weight
			it.Notes = item.Notes
			it.UpdatedAt = time.Now().UTC()
			r.items[i] = it
			return it, nil
		}
	}
	return models.Item{}, ErrItemNotFound
}

// Delete removes an item from the repository by its ID. IDs are never reused.
func (r *InMemoryItemRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, it := range r.items {
		if it.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return ErrItemNotFound
}

// AdjustQuantity implements ItemRepository.
func (r *InMemoryItemRepository) AdjustQuantity(id, delta int) (models.Item, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, it := range r.items {
		if it.ID == id {
			old := it.Quantity
			if old+delta < 0 {
				return models.Item{}, 0, ErrInvalidQuantityChange
			}
			if old+delta > models.MaxQuantity {
				return models.Item{}, 0, ErrQuantityOutOfRange
			}
			it.Quantity = old + delta
			it.UpdatedAt = time.Now().UTC()
			r.items[i] = it
			return it, old, nil
		}
	}
	return models.Item{}, 0, ErrItemNotFound
}

// SetQuantity implements ItemRepository.
func (r *InMemoryItemRepository) SetQuantity(id, value int) (models.Item, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if value < 0 {
		return models.Item{}, 0, ErrInvalidQuantityChange
	}
	if value > models.MaxQuantity {
		return models.Item{}, 0, ErrQuantityOutOfRange
	}

	for i, it := range r.items {
		if it.ID == id {
			old := it.Quantity
			it.Quantity = value
			it.UpdatedAt = time.Now().UTC()
			r.items[i] = it
			return it, old, nil
		}
	}
	return models.Item{}, 0, ErrItemNotFound
}

// ZeroQuantityItems implements ItemRepository.
func (r *InMemoryItemRepository) ZeroQuantityItems() ([]models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Item
	for _, it := range r.items {
		if it.Quantity == 0 {
			out = append(out, it)
		}
	}
	sortItems(out)
	return out, nil
}

// Clear removes all items. Used by tests.
func (r *InMemoryItemRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = []models.Item{}
}

func sortItems(items []models.Item) {
	sort.SliceStable(items, func(a, b int) bool {
		if items[a].Name != items[b].Name {
			return items[a].Name < items[b].Name
		}
		return items[a].ID < items[b].ID
	})
}
