package services

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// EmailNotifier forwards notifications to a mailbox over SMTP. Sending
// is fire-and-forget; failures are logged, never surfaced to the
// mutation that triggered them.
type EmailNotifier struct {
	dialer *gomail.Dialer
	from   string
	to     string
}

func NewEmailNotifier() (*EmailNotifier, error) {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USER")
	smtpPass := os.Getenv("SMTP_PASS")

	if smtpHost == "" || smtpUser == "" || smtpPass == "" {
		return nil, fmt.Errorf("SMTP configuration missing")
	}

	port, err := strconv.Atoi(smtpPort)
	if err != nil {
		port = 587
	}

	return &EmailNotifier{
		dialer: gomail.NewDialer(smtpHost, port, smtpUser, smtpPass),
		from:   os.Getenv("SMTP_FROM"),
		to:     os.Getenv("SMTP_NOTIFY_TO"),
	}, nil
}

func (n *EmailNotifier) Notify(title, description string, variant NotifyVariant) {
	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", n.to)
	m.SetHeader("Subject", fmt.Sprintf("[Furnish Shop] %s", title))

	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif;">
    <h2>%s</h2>
    <p>%s</p>
    <p style="color: #666; font-size: 12px;">Variant: %s</p>
</body>
</html>
	`, title, description, variant)

	m.SetBody("text/html", body)

	if err := n.dialer.DialAndSend(m); err != nil {
		log.Printf("Failed to send notification email: %v", err)
	}
}
