package sms

import (
	"context"
	"fmt"
	"net/smtp"
)

// SMTPGateway sends texts through a carrier email-to-SMS gateway: the
// destination number becomes the local part of the recipient address.
type SMTPGateway struct {
	Enabled       bool
	GatewayDomain string
	From          string
	Server        string
	Port          string
	User          string
	Password      string
	AuthDisabled  bool

	// sendMail is swapped in tests.
	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewSMTPGateway(enabled bool, gatewayDomain, from, server, port, user, password string, authDisabled bool) *SMTPGateway {
	return &SMTPGateway{
		Enabled:       enabled,
		GatewayDomain: gatewayDomain,
		From:          from,
		Server:        server,
		Port:          port,
		User:          user,
		Password:      password,
		AuthDisabled:  authDisabled,
		sendMail:      smtp.SendMail,
	}
}

func (g *SMTPGateway) IsAuthorized() bool {
	return g.Enabled && g.Server != "" && g.GatewayDomain != ""
}

func (g *SMTPGateway) Send(ctx context.Context, destination string, parts []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	to := fmt.Sprintf("%s@%s", destination, g.GatewayDomain)
	addr := fmt.Sprintf("%s:%s", g.Server, g.Port)

	var auth smtp.Auth
	if !g.AuthDisabled {
		auth = smtp.PlainAuth("", g.User, g.Password, g.Server)
	}

	for i, part := range parts {
		msg := fmt.Sprintf("From: %s\r\nTo: %s\r\n\r\n%s", g.From, to, part)
		if err := g.sendMail(addr, auth, g.From, []string{to}, []byte(msg)); err != nil {
			return fmt.Errorf("failed to send part %d/%d: %w", i+1, len(parts), err)
		}
	}
	return nil
}
