package notify

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/jordan-wright/email"
)

// EmailNotifier delivers events over SMTP with STARTTLS.
type EmailNotifier struct {
	From     string
	Password string
	To       string
	Server   string
	Port     int
}

func (n *EmailNotifier) Notify(ctx context.Context, event Event) error {
	mail := email.NewEmail()
	mail.From = fmt.Sprintf("Stockwatch <%s>", n.From)
	mail.To = []string{n.To}
	mail.Subject = event.Subject()
	mail.Text = []byte(event.PlainMessage())
	mail.HTML = []byte(strings.ReplaceAll(event.Message(), "\n", "<br>"))

	addr := fmt.Sprintf("%s:%d", n.Server, n.Port)
	err := mail.Send(addr, smtp.PlainAuth("", n.From, n.Password, n.Server))
	if err != nil && strings.Contains(err.Error(), "server doesn't support AUTH") {
		err = mail.Send(addr, nil)
	}
	if err != nil {
		return fmt.Errorf("email send: %w", err)
	}
	return nil
}
