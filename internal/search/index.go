// Package search holds a derived, disposable projection of the item list for
// substring lookups. It is rebuilt in full on every repository change:
// inventories are small, so correctness wins over incremental patching.
package search

import (
	"sort"
	"strings"
	"sync"

	"github.com/omercengiz/warehouse-pro/internal/models"
)

type Index struct {
	mu    sync.RWMutex
	items []models.Item
}

func NewIndex() *Index {
	return &Index{}
}

// Rebuild replaces the projection with a sorted copy of the given items.
func (ix *Index) Rebuild(items []models.Item) {
	sorted := make([]models.Item, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(a, b int) bool {
		if sorted[a].Name != sorted[b].Name {
			return sorted[a].Name < sorted[b].Name
		}
		return sorted[a].ID < sorted[b].ID
	})

	ix.mu.Lock()
	ix.items = sorted
	ix.mu.Unlock()
}

// Query returns items whose name or notes contain the query,
// case-insensitively, in the same order as the full list. An empty query
// returns all items. The query is matched literally, whitespace included;
// any normalization belongs to the caller.
func (ix *Index) Query(query string) []models.Item {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	q := strings.ToLower(query)
	if q == "" {
		out := make([]models.Item, len(ix.items))
		copy(out, ix.items)
		return out
	}

	var out []models.Item
	for _, it := range ix.items {
		if strings.Contains(strings.ToLower(it.Name), q) ||
			strings.Contains(strings.ToLower(it.Notes), q) {
			out = append(out, it)
		}
	}
	return out
}

// Len reports the number of indexed items.
func (ix *Index) Len() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return len(ix.items)
}
