package email

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"shop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

type recordingDialer struct {
	sent []*gomail.Message
	err  error
}

func (d *recordingDialer) DialAndSend(m ...*gomail.Message) error {
	d.sent = append(d.sent, m...)
	return d.err
}

func TestSMTPSender_Send_BuildsMessage(t *testing.T) {
	d := &recordingDialer{}
	sender := &SMTPSender{dialer: d, from: "shop@example.com"}

	err := sender.Send(t.Context(), "admin@example.com", "New Order Placed - #1", "Customer placed order #1")

	require.NoError(t, err)
	require.Len(t, d.sent, 1)
	m := d.sent[0]
	assert.Equal(t, []string{"shop@example.com"}, m.GetHeader("From"))
	assert.Equal(t, []string{"admin@example.com"}, m.GetHeader("To"))
	assert.Equal(t, []string{"New Order Placed - #1"}, m.GetHeader("Subject"))

	var raw bytes.Buffer
	_, err = m.WriteTo(&raw)
	require.NoError(t, err)
	assert.Contains(t, raw.String(), "Customer placed order #1")
}

func TestSMTPSender_Send_PropagatesTransportError(t *testing.T) {
	sender := &SMTPSender{dialer: &recordingDialer{err: errors.New("535 auth failed")}, from: "shop@example.com"}

	err := sender.Send(t.Context(), "admin@example.com", "s", "b")

	require.EqualError(t, err, "535 auth failed")
}

func TestSMTPSender_Send_RejectsMissingRecipientAndCancelledContext(t *testing.T) {
	d := &recordingDialer{}
	sender := &SMTPSender{dialer: d, from: "shop@example.com"}

	require.ErrorIs(t, sender.Send(t.Context(), " ", "s", "b"), errs.ErrValueIsRequired)

	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	require.ErrorIs(t, sender.Send(ctx, "admin@example.com", "s", "b"), context.Canceled)

	assert.Empty(t, d.sent)
}

func TestNewSMTPSender_Validation(t *testing.T) {
	_, err := NewSMTPSender("", 587, "", "", "shop@example.com")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = NewSMTPSender("smtp.example.com", 0, "", "", "shop@example.com")
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = NewSMTPSender("smtp.example.com", 587, "", "", "")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	sender, err := NewSMTPSender("smtp.example.com", 587, "user", "secret", "shop@example.com")
	require.NoError(t, err)
	assert.NotNil(t, sender)
}
