package email

import (
	"fmt"
	"html"

	"gopkg.in/gomail.v2"

	"gramseva/internal/shared/config"
)

// SMTPNotifier mails the administrator when a new ticket arrives. When the
// email section is disabled in config every send is a silent no-op, so the
// rest of the system never has to check.
type SMTPNotifier struct {
	config *config.EmailConfig
	dialer *gomail.Dialer
}

func NewSMTPNotifier(cfg *config.EmailConfig) *SMTPNotifier {
	return &SMTPNotifier{
		config: cfg,
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
	}
}

func (s *SMTPNotifier) NotifyNewTicket(name, category, location, issue string) error {
	if !s.config.Enabled {
		return nil
	}

	subject := fmt.Sprintf("New ticket: %s issue in %s", category, location)
	htmlBody, plainBody := ticketBodies(name, category, location, issue)

	return s.sendEmail(s.config.AdminAddress, subject, htmlBody, plainBody)
}

// ticketBodies renders the notification bodies. Citizen-supplied fields go
// into the HTML alternative escaped.
func ticketBodies(name, category, location, issue string) (htmlBody, plainBody string) {
	htmlBody = fmt.Sprintf(`
		<html>
		<body>
			<h2>New Ticket Submitted</h2>
			<p><b>Name:</b> %s</p>
			<p><b>Category:</b> %s</p>
			<p><b>Location:</b> %s</p>
			<p><b>Issue:</b></p>
			<p>%s</p>
		</body>
		</html>
	`, html.EscapeString(name), html.EscapeString(category),
		html.EscapeString(location), html.EscapeString(issue))

	plainBody = fmt.Sprintf(`
New Ticket Submitted

Name: %s
Category: %s
Location: %s

Issue:
%s
	`, name, category, location, issue)

	return htmlBody, plainBody
}

func (s *SMTPNotifier) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.config.FromAddress)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
