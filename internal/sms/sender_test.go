package sms

import (
	"context"
	"errors"
	"net/smtp"
	"strings"
	"testing"
)

func TestIsValidPhoneNumber(t *testing.T) {
	tests := []struct {
		number string
		want   bool
	}{
		{"5551234567", true},
		{"555-123-4567", true},
		{"(555) 123-4567", true},
		{"+90 555 123 4567", true},
		{"1234567", true},
		{"123456789012345", true},
		{"123456", false},
		{"1234567890123456", false},
		{"555-123-456a", false},
		{"", false},
		{"call me", false},
	}

	for _, tt := range tests {
		t.Run(tt.number, func(t *testing.T) {
			if got := IsValidPhoneNumber(tt.number); got != tt.want {
				t.Errorf("IsValidPhoneNumber(%q) = %v, want %v", tt.number, got, tt.want)
			}
		})
	}
}

func TestFormatPhoneNumber(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"5551234567", "(555) 123-4567"},
		{"555-123-4567", "(555) 123-4567"},
		{"1234567", "1234567"},
		{"+90 555 123 4567", "+90 555 123 4567"},
	}

	for _, tt := range tests {
		if got := FormatPhoneNumber(tt.in); got != tt.want {
			t.Errorf("FormatPhoneNumber(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSMTPGateway_IsAuthorized(t *testing.T) {
	tests := []struct {
		name    string
		gateway *SMTPGateway
		want    bool
	}{
		{"fully configured", &SMTPGateway{Enabled: true, Server: "smtp.local", GatewayDomain: "txt.carrier.com"}, true},
		{"disabled", &SMTPGateway{Enabled: false, Server: "smtp.local", GatewayDomain: "txt.carrier.com"}, false},
		{"no server", &SMTPGateway{Enabled: true, GatewayDomain: "txt.carrier.com"}, false},
		{"no gateway domain", &SMTPGateway{Enabled: true, Server: "smtp.local"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.gateway.IsAuthorized(); got != tt.want {
				t.Errorf("IsAuthorized() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSMTPGateway_SendAddressesGateway(t *testing.T) {
	g := NewSMTPGateway(true, "txt.carrier.com", "alerts@warehouse.local", "smtp.local", "587", "", "", true)

	var gotAddr string
	var gotTo []string
	var bodies []string
	g.sendMail = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr = addr
		gotTo = to
		bodies = append(bodies, string(msg))
		return nil
	}

	err := g.Send(context.Background(), "5551234567", []string{"part one", "part two"})
	if err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	if gotAddr != "smtp.local:587" {
		t.Errorf("wrong SMTP address: %q", gotAddr)
	}
	if len(gotTo) != 1 || gotTo[0] != "5551234567@txt.carrier.com" {
		t.Errorf("wrong recipient: %v", gotTo)
	}
	if len(bodies) != 2 {
		t.Fatalf("expected one mail per part, got %d", len(bodies))
	}
	if !strings.HasSuffix(bodies[1], "part two") {
		t.Errorf("unexpected second part body: %q", bodies[1])
	}
}

func TestSMTPGateway_SendPartFailureAborts(t *testing.T) {
	g := NewSMTPGateway(true, "txt.carrier.com", "alerts@warehouse.local", "smtp.local", "587", "", "", true)

	calls := 0
	g.sendMail = func(string, smtp.Auth, string, []string, []byte) error {
		calls++
		if calls == 2 {
			return errors.New("connection reset")
		}
		return nil
	}

	err := g.Send(context.Background(), "5551234567", []string{"a", "b", "c"})
	if err == nil {
		t.Fatal("expected error when a part fails")
	}
	if calls != 2 {
		t.Errorf("expected delivery to stop at the failed part, got %d calls", calls)
	}
}

func TestSMTPGateway_SendCancelledContext(t *testing.T) {
	g := NewSMTPGateway(true, "txt.carrier.com", "alerts@warehouse.local", "smtp.local", "587", "", "", true)
	g.sendMail = func(string, smtp.Auth, string, []string, []byte) error {
		t.Fatal("sendMail called despite cancelled context")
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := g.Send(ctx, "5551234567", []string{"a"}); err == nil {
		t.Error("expected error for cancelled context")
	}
}
