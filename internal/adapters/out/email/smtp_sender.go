// Package email sends transactional mail over SMTP with gomail.
package email

import (
	"context"
	"strings"

	"shop/internal/pkg/errs"

	"gopkg.in/gomail.v2"
)

type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPSender implements ports.EmailSender. Each Send opens its own connection.
type SMTPSender struct {
	dialer dialer
	from   string
}

// NewSMTPSender validates the connection settings. No connection is made until
// the first send.
func NewSMTPSender(host string, port int, username, password, from string) (*SMTPSender, error) {
	if strings.TrimSpace(host) == "" {
		return nil, errs.NewValueIsRequiredError("smtp host")
	}
	if port <= 0 || port > 65535 {
		return nil, errs.NewValueIsOutOfRangeError("smtp port", port, 1, 65535)
	}
	if strings.TrimSpace(from) == "" {
		return nil, errs.NewValueIsRequiredError("smtp from")
	}

	return &SMTPSender{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}, nil
}

func (s *SMTPSender) Send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(to) == "" {
		return errs.NewValueIsRequiredError("email recipient")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	return s.dialer.DialAndSend(m)
}
