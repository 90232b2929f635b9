package alert

import (
	"fmt"
	"strings"
	"time"

	"github.com/omercengiz/warehouse-pro/internal/models"
)

// BuildZeroStockMessage renders the out-of-stock alert body. The output is
// deterministic for a given item and timestamp.
func BuildZeroStockMessage(item models.Item, at time.Time) string {
	var b strings.Builder

	b.WriteString("WAREHOUSE ALERT\n")
	b.WriteString("ITEM OUT OF STOCK!\n\n")
	fmt.Fprintf(&b, "Item: %s\n", item.Name)
	b.WriteString("Quantity: 0\n")
	fmt.Fprintf(&b, "Weight: %s\n", item.FormattedWeight())

	if strings.TrimSpace(item.Notes) != "" {
		fmt.Fprintf(&b, "Notes: %s\n", item.Notes)
	}

	b.WriteString("\nAction Required: Reorder immediately\n")
	fmt.Fprintf(&b, "Time: %s", at.Format("Jan 02, 2006 15:04"))
	b.WriteString("\n\n- Warehouse Pro System")

	return b.String()
}

// BuildTestMessage renders the probe message used to verify the channel.
func BuildTestMessage(at time.Time) string {
	return fmt.Sprintf("Warehouse Pro SMS Test\n\nThis is a test message to verify SMS functionality is working correctly.\n\nTime: %s", at.Format("Jan 02, 2006 15:04"))
}

// SplitMessage divides a message into ordered parts no longer than limit
// runes each.
func SplitMessage(message string, limit int) []string {
	if limit <= 0 {
		return []string{message}
	}
	runes := []rune(message)
	if len(runes) <= limit {
		return []string{message}
	}

	var parts []string
	for len(runes) > 0 {
		n := min(limit, len(runes))
		parts = append(parts, string(runes[:n]))
		runes = runes[n:]
	}
	return parts
}
