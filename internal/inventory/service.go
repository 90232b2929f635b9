package inventory

import (
	"fmt"
	"log"
	"strings"

	"github.com/omercengiz/warehouse-pro/internal/models"
	"github.com/omercengiz/warehouse-pro/internal/repo"
	"github.com/omercengiz/warehouse-pro/internal/search"
)

// ItemUpdate is a partial field update. Nil fields are left unchanged.
// Quantity is deliberately absent: all quantity changes go through the
// mutation operations so zero-crossing detection has a single code path.
type ItemUpdate struct {
	Name   *string
	Weight *float64
	Notes  *string
}

// ValidationError reports field-level constraint violations on item input.
type ValidationError struct {
	Fields []FieldError `json:"errors"`
}

type FieldError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = fmt.Sprintf("%s: %s", f.Field, f.Description)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Service owns all mutations of the item record set and emits quantity
// events to the configured sink. The search index it maintains is a derived
// projection and never a source of truth.
type Service struct {
	repo  repo.ItemRepository
	index *search.Index
	sink  EventSink
}

func NewService(r repo.ItemRepository, index *search.Index, sink EventSink) *Service {
	s := &Service{repo: r, index: index, sink: sink}
	s.reindex()
	return s
}

// AddItem validates and persists a new item, returning it with a fresh ID.
func (s *Service) AddItem(item models.Item) (models.Item, error) {
	if verr := validateItem(item); verr != nil {
		return models.Item{}, verr
	}

	created, err := s.repo.Create(item)
	if err != nil {
		return models.Item{}, err
	}
	s.reindex()
	return created, nil
}

func (s *Service) GetItem(id int) (models.Item, error) {
	return s.repo.GetByID(id)
}

// ListItems returns all items sorted by name, ties broken by ID.
func (s *Service) ListItems() ([]models.Item, error) {
	return s.repo.GetAll()
}

// UpdateItem applies a partial field update, revalidating touched fields.
func (s *Service) UpdateItem(id int, upd ItemUpdate) (models.Item, error) {
	item, err := s.repo.GetByID(id)
	if err != nil {
		return models.Item{}, err
	}

	if upd.Name != nil {
		item.Name = *upd.Name
	}
	if upd.Weight != nil {
		item.Weight = *upd.Weight
	}
	if upd.Notes != nil {
		item.Notes = *upd.Notes
	}

	if verr := validateItem(item); verr != nil {
		return models.Item{}, verr
	}

	updated, err := s.repo.Update(item)
	if err != nil {
		return models.Item{}, err
	}
	s.reindex()
	return updated, nil
}

// DeleteItem removes an item. Deletion is terminal: the ID is never reused
// and any pending debounced notification for it is dropped.
func (s *Service) DeleteItem(id int) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	if s.sink != nil {
		s.sink.ItemDeleted(id)
	}
	s.reindex()
	return nil
}

// Search returns items whose name or notes contain the query,
// case-insensitively. An empty query returns all items in list order.
func (s *Service) Search(query string) []models.Item {
	return s.index.Query(query)
}

// Increment raises the quantity by the given amount (1 if by is zero).
func (s *Service) Increment(id, by int) (int, int, error) {
	if by == 0 {
		by = 1
	}
	if by < 0 {
		return 0, 0, repo.ErrInvalidQuantityChange
	}
	return s.applyChange(func() (models.Item, int, error) {
		return s.repo.AdjustQuantity(id, by)
	})
}

// Decrement lowers the quantity by the given amount (1 if by is zero).
// A decrement below zero is rejected and the quantity is left unchanged.
func (s *Service) Decrement(id, by int) (int, int, error) {
	if by == 0 {
		by = 1
	}
	if by < 0 {
		return 0, 0, repo.ErrInvalidQuantityChange
	}
	return s.applyChange(func() (models.Item, int, error) {
		return s.repo.AdjustQuantity(id, -by)
	})
}

// SetQuantity overwrites the quantity, e.g. for a manual correction.
func (s *Service) SetQuantity(id, value int) (int, int, error) {
	return s.applyChange(func() (models.Item, int, error) {
		return s.repo.SetQuantity(id, value)
	})
}

// Stats summarizes the record set for the presentation layer.
func (s *Service) Stats() (total, outOfStock int, err error) {
	items, err := s.repo.GetAll()
	if err != nil {
		return 0, 0, err
	}
	for _, it := range items {
		if it.OutOfStock() {
			outOfStock++
		}
	}
	return len(items), outOfStock, nil
}

// ZeroQuantityItems returns all out-of-stock items in list order.
func (s *Service) ZeroQuantityItems() ([]models.Item, error) {
	return s.repo.ZeroQuantityItems()
}

func (s *Service) applyChange(change func() (models.Item, int, error)) (int, int, error) {
	item, old, err := change()
	if err != nil {
		return 0, 0, err
	}
	s.reindex()
	s.emit(item, old)
	return old, item.Quantity, nil
}

// emit publishes QuantityChanged for every successful mutation and
// ZeroCrossing only when the quantity transitions from positive to zero.
// A quantity that was already zero never re-emits a crossing.
func (s *Service) emit(item models.Item, old int) {
	if s.sink == nil {
		return
	}
	s.sink.QuantityChanged(QuantityChanged{Item: item, OldQty: old, NewQty: item.Quantity})
	if item.Quantity == 0 && old > 0 {
		s.sink.ZeroCrossing(item)
	}
}

// RebuildIndex loads every item and rebuilds the search index from scratch.
// Called once at startup; afterwards every mutation reindexes on its own.
func (s *Service) RebuildIndex() error {
	if s.index == nil {
		return nil
	}
	items, err := s.repo.GetAll()
	if err != nil {
		return err
	}
	s.index.Rebuild(items)
	return nil
}

func (s *Service) reindex() {
	if s.index == nil {
		return
	}
	items, err := s.repo.GetAll()
	if err != nil {
		log.Printf("could not rebuild search index: %v", err)
		return
	}
	s.index.Rebuild(items)
}

func validateItem(item models.Item) *ValidationError {
	errs := []FieldError{}
	name := strings.TrimSpace(item.Name)
	if len(name) < models.MinNameLen || len(name) > models.MaxNameLen {
		errs = append(errs, FieldError{Field: "Name", Description: fmt.Sprintf("Name must be %d-%d characters", models.MinNameLen, models.MaxNameLen)})
	}
	if item.Weight <= 0 {
		errs = append(errs, FieldError{Field: "Weight", Description: "Weight must be greater than zero"})
	} else if item.Weight > models.MaxWeightKg {
		errs = append(errs, FieldError{Field: "Weight", Description: fmt.Sprintf("Weight cannot exceed %.0f", models.MaxWeightKg)})
	}
	if item.Quantity < 0 {
		errs = append(errs, FieldError{Field: "Quantity", Description: "Quantity cannot be negative"})
	} else if item.Quantity > models.MaxQuantity {
		errs = append(errs, FieldError{Field: "Quantity", Description: fmt.Sprintf("Quantity cannot exceed %d", models.MaxQuantity)})
	}
	if len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	return nil
}
