package alert

import (
	"strings"
	"testing"
	"time"

	"github.com/omercengiz/warehouse-pro/internal/models"
)

func TestBuildZeroStockMessage(t *testing.T) {
	at := time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC)
	item := models.Item{ID: 1, Name: "Cardboard Boxes", Weight: 2.5, Notes: "brown, medium"}

	got := BuildZeroStockMessage(item, at)
	want := "WAREHOUSE ALERT\n" +
		"ITEM OUT OF STOCK!\n\n" +
		"Item: Cardboard Boxes\n" +
		"Quantity: 0\n" +
		"Weight: 2.5 kg\n" +
		"Notes: brown, medium\n\n" +
		"Action Required: Reorder immediately\n" +
		"Time: Mar 14, 2026 09:30\n\n" +
		"- Warehouse Pro System"

	if got != want {
		t.Errorf("unexpected message:\n%s", got)
	}

	// Same inputs, same output.
	if again := BuildZeroStockMessage(item, at); again != got {
		t.Error("message is not deterministic")
	}
}

func TestBuildZeroStockMessage_NoNotes(t *testing.T) {
	at := time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC)
	item := models.Item{ID: 1, Name: "Cardboard Boxes", Weight: 2.5, Notes: "   "}

	got := BuildZeroStockMessage(item, at)
	if strings.Contains(got, "Notes:") {
		t.Errorf("blank notes rendered a Notes line:\n%s", got)
	}
}

func TestSplitMessage(t *testing.T) {
	tests := []struct {
		name      string
		message   string
		limit     int
		wantParts int
	}{
		{"short fits in one part", "hello", 160, 1},
		{"exact limit stays whole", strings.Repeat("a", 160), 160, 1},
		{"one over the limit splits", strings.Repeat("a", 161), 160, 2},
		{"long message splits evenly", strings.Repeat("a", 400), 160, 3},
		{"non-positive limit never splits", strings.Repeat("a", 400), 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parts := SplitMessage(tt.message, tt.limit)
			if len(parts) != tt.wantParts {
				t.Fatalf("expected %d parts, got %d", tt.wantParts, len(parts))
			}
			if strings.Join(parts, "") != tt.message {
				t.Error("joined parts do not reassemble the message")
			}
		})
	}
}

func TestSplitMessage_MultibyteRunes(t *testing.T) {
	message := strings.Repeat("⚠", 200)
	parts := SplitMessage(message, 160)

	if len(parts) != 2 {
		t.Fatalf("expected 2 parts, got %d", len(parts))
	}
	for i, p := range parts {
		if n := len([]rune(p)); n > 160 {
			t.Errorf("part %d has %d runes", i, n)
		}
	}
	if strings.Join(parts, "") != message {
		t.Error("joined parts do not reassemble the message")
	}
}
