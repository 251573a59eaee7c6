package mailer

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wneessen/go-mail"

	"petpal/pkg/logger"
)

// SMTPClient delivers transactional mail over SMTP. Sends are single
// best-effort attempts with a bounded timeout; callers decide whether a
// failure matters.
type SMTPClient struct {
	client    *mail.Client
	fromName  string
	fromEmail string
}

const sendTimeout = 15 * time.Second

func NewSMTPClient(host string, port int, username, password, fromName, fromEmail string) (*SMTPClient, error) {
	opts := []mail.Option{
		mail.WithPort(port),
		mail.WithTLSPortPolicy(mail.TLSOpportunistic),
		mail.WithTimeout(sendTimeout),
	}
	if username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(username),
			mail.WithPassword(password),
		)
	}

	client, err := mail.NewClient(host, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create mail client: %v", err)
	}

	return &SMTPClient{
		client:    client,
		fromName:  fromName,
		fromEmail: fromEmail,
	}, nil
}

// Send delivers one message with an HTML body and a plain-text fallback
// and returns a delivery id for log correlation.
func (c *SMTPClient) Send(ctx context.Context, to, subject, textBody, htmlBody string) (string, error) {
	msg := mail.NewMsg()
	if err := msg.FromFormat(c.fromName, c.fromEmail); err != nil {
		return "", fmt.Errorf("invalid sender address: %v", err)
	}
	if err := msg.To(to); err != nil {
		return "", fmt.Errorf("invalid recipient address: %v", err)
	}

	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, textBody)
	if htmlBody != "" {
		msg.AddAlternativeString(mail.TypeTextHTML, htmlBody)
	}

	deliveryID := uuid.New().String()
	msg.SetMessageIDWithValue(deliveryID)

	sendCtx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	if err := c.client.DialAndSendWithContext(sendCtx, msg); err != nil {
		return "", fmt.Errorf("failed to send mail to %s: %v", to, err)
	}

	logger.Info("Mail sent: to=%s subject=%q deliveryId=%s", to, subject, deliveryID)
	return deliveryID, nil
}
