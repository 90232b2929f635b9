package search

import (
	"testing"

	"github.com/omercengiz/warehouse-pro/internal/models"
)

func testItems() []models.Item {
	return []models.Item{
		{ID: 1, Name: "Cardboard Boxes", Notes: "brown, medium"},
		{ID: 2, Name: "Bubble Wrap Roll", Notes: ""},
		{ID: 3, Name: "Tape Dispenser", Notes: "handle with care"},
	}
}

func TestQuery_MatchesNameSubstring(t *testing.T) {
	ix := NewIndex()
	ix.Rebuild(testItems())

	got := ix.Query("box")
	if len(got) != 1 {
		t.Fatalf("expected 1 match, got %d", len(got))
	}
	if got[0].Name != "Cardboard Boxes" {
		t.Errorf("expected Cardboard Boxes, got %q", got[0].Name)
	}
}

func TestQuery_MatchesNotes(t *testing.T) {
	ix := NewIndex()
	ix.Rebuild(testItems())

	got := ix.Query("CARE")
	if len(got) != 1 || got[0].Name != "Tape Dispenser" {
		t.Errorf("expected Tape Dispenser via notes match, got %+v", got)
	}
}

func TestQuery_EmptyReturnsAllSorted(t *testing.T) {
	ix := NewIndex()
	ix.Rebuild(testItems())

	got := ix.Query("")
	if len(got) != 3 {
		t.Fatalf("expected all 3 items, got %d", len(got))
	}
	want := []string{"Bubble Wrap Roll", "Cardboard Boxes", "Tape Dispenser"}
	for i, name := range want {
		if got[i].Name != name {
			t.Errorf("position %d: expected %q, got %q", i, name, got[i].Name)
		}
	}
}

func TestQuery_WhitespaceMatchesLiterally(t *testing.T) {
	ix := NewIndex()
	ix.Rebuild([]models.Item{
		{ID: 1, Name: "Pallet"},
		{ID: 2, Name: "Pallet Jack"},
	})

	got := ix.Query(" ")
	if len(got) != 1 || got[0].Name != "Pallet Jack" {
		t.Errorf("expected a single-space query to match only names containing a space, got %+v", got)
	}
}

func TestQuery_NoMatch(t *testing.T) {
	ix := NewIndex()
	ix.Rebuild(testItems())

	if got := ix.Query("forklift"); len(got) != 0 {
		t.Errorf("expected no matches, got %+v", got)
	}
}

func TestRebuild_ReplacesContents(t *testing.T) {
	ix := NewIndex()
	ix.Rebuild(testItems())
	ix.Rebuild([]models.Item{{ID: 9, Name: "Shrink Wrap"}})

	if ix.Len() != 1 {
		t.Errorf("expected 1 item after rebuild, got %d", ix.Len())
	}
	if got := ix.Query("box"); len(got) != 0 {
		t.Errorf("stale item survived rebuild: %+v", got)
	}
}

func TestQuery_EmptyIndex(t *testing.T) {
	ix := NewIndex()
	if got := ix.Query("box"); len(got) != 0 {
		t.Errorf("expected no matches on empty index, got %+v", got)
	}
}
