package notify

import (
	"fmt"
	"log/slog"
	"net/smtp"
	"sort"
	"strings"
)

// Notifier delivers best-effort notifications. Callers must treat every
// send as fire-and-forget: errors are returned for logging only and must
// never fail the triggering operation.
type Notifier interface {
	Notify(recipient, subject string, context map[string]string) error
}

// SMTPNotifier sends plain-text mail over SMTP. When disabled it logs and
// drops the message, which keeps local and test environments quiet.
type SMTPNotifier struct {
	Host    string
	Port    string
	From    string
	Enabled bool
}

func NewSMTPNotifier(host, port, from string, enabled bool) *SMTPNotifier {
	return &SMTPNotifier{
		Host:    host,
		Port:    port,
		From:    from,
		Enabled: enabled,
	}
}

func (n *SMTPNotifier) Notify(recipient, subject string, context map[string]string) error {
	if !n.Enabled {
		slog.Info("Notifications disabled, skipping", "recipient", recipient, "subject", subject)
		return nil
	}

	msg := buildMessage(n.From, recipient, subject, context)
	addr := n.Host + ":" + n.Port
	return smtp.SendMail(addr, nil, n.From, []string{recipient}, []byte(msg))
}

func buildMessage(from, to, subject string, context map[string]string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("\r\n")

	keys := make([]string, 0, len(context))
	for k := range context {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, "%s: %s\r\n", k, context[k])
	}
	return b.String()
}
