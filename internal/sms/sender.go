// Package sms abstracts the outbound notification channel. The core talks to
// the Sender interface only; the concrete gateway is supplied by wiring.
package sms

import (
	"context"
	"regexp"
	"strings"
)

// MaxMessageLen is the size limit of a single message part.
const MaxMessageLen = 160

// Sender delivers message parts to a destination number. Delivery is
// best-effort: one attempt per call, no delivery guarantee.
type Sender interface {
	// IsAuthorized reports whether the channel may be used at all.
	IsAuthorized() bool

	// Send delivers the ordered parts of one message. All parts must be
	// delivered for the call to succeed.
	Send(ctx context.Context, destination string, parts []string) error
}

var digitsOnly = regexp.MustCompile(`^\d{7,15}$`)

// IsValidPhoneNumber reports whether the number is plausible after stripping
// common formatting characters: 7 to 15 digits.
func IsValidPhoneNumber(number string) bool {
	clean := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "", "+", "").Replace(number)
	return digitsOnly.MatchString(clean)
}

// FormatPhoneNumber renders a 10-digit number as (123) 456-7890 and returns
// anything else unchanged.
func FormatPhoneNumber(number string) string {
	var digits strings.Builder
	for _, r := range number {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	d := digits.String()
	if len(d) != 10 {
		return number
	}
	return "(" + d[:3] + ") " + d[3:6] + "-" + d[6:]
}
