package email

import (
	"fmt"
	"net/smtp"
	"strconv"

	"github.com/rs/zerolog"
)

// MailService defines the interface for outbound mail
type MailService interface {
	SendReferenceInvitation(toEmail, refereeName, studentName, token string) error
}

// SMTPConfig holds configuration for the SMTP server
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromName  string
	FromEmail string
	BaseURL   string
}

// NoopMailService satisfies MailService without sending anything. Used when
// SMTP delivery is disabled in configuration.
type NoopMailService struct {
	logger zerolog.Logger
}

// NewNoopMailService creates a MailService that only logs
func NewNoopMailService(logger zerolog.Logger) MailService {
	return &NoopMailService{logger: logger}
}

// SendReferenceInvitation logs the invitation instead of sending it
func (s *NoopMailService) SendReferenceInvitation(toEmail, refereeName, studentName, token string) error {
	s.logger.Info().
		Str("toEmail", toEmail).
		Str("refereeName", refereeName).
		Msg("Mail delivery disabled - reference invitation not sent")
	return nil
}

// MailServiceImpl implements MailService over plain SMTP
type MailServiceImpl struct {
	config SMTPConfig
	logger zerolog.Logger
}

// NewMailService creates a new MailService
func NewMailService(config SMTPConfig, logger zerolog.Logger) MailService {
	return &MailServiceImpl{
		config: config,
		logger: logger,
	}
}

// SendReferenceInvitation sends a referee the link for responding to a
// reference request. When SMTP credentials are not configured the mail is
// logged instead of sent, so local development works without a mail server.
func (s *MailServiceImpl) SendReferenceInvitation(toEmail, refereeName, studentName, token string) error {
	responseURL := fmt.Sprintf("%s/api/references/token/%s", s.config.BaseURL, token)

	if s.config.Username == "" || s.config.Password == "" {
		s.logger.Warn().
			Str("toEmail", toEmail).
			Str("responseURL", responseURL).
			Msg("SMTP credentials not configured - reference invitation not sent. Use the URL above for testing.")
		return nil
	}

	subject := "Reference Request - StudentConnect"

	body := fmt.Sprintf(`
		<html>
		<body>
			<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
				<h2 style="color: #333;">Reference Request</h2>
				<p>Hello %s,</p>
				<p>%s has asked you to provide a professional reference through StudentConnect.</p>

				<div style="text-align: center; margin: 30px 0;">
					<a href="%s" style="background-color: #4a86e8; color: white; padding: 12px 24px; text-decoration: none; border-radius: 4px; font-weight: bold;">Respond to Request</a>
				</div>

				<p>This link will expire in 30 days. If you prefer not to provide a reference, you can decline through the same link.</p>

				<p>Best regards,<br>The StudentConnect Team</p>
			</div>
		</body>
		</html>
	`, refereeName, studentName, responseURL)

	return s.sendHTMLEmail(toEmail, subject, body)
}

// sendHTMLEmail sends an HTML email
func (s *MailServiceImpl) sendHTMLEmail(toEmail, subject, htmlBody string) error {
	auth := smtp.PlainAuth(
		"",
		s.config.Username,
		s.config.Password,
		s.config.Host,
	)

	headers := make(map[string]string)
	headers["From"] = fmt.Sprintf("%s <%s>", s.config.FromName, s.config.FromEmail)
	headers["To"] = toEmail
	headers["Subject"] = subject
	headers["MIME-Version"] = "1.0"
	headers["Content-Type"] = "text/html; charset=UTF-8"

	message := ""
	for key, value := range headers {
		message += fmt.Sprintf("%s: %s\r\n", key, value)
	}
	message += "\r\n" + htmlBody

	serverAddress := s.config.Host + ":" + strconv.Itoa(s.config.Port)

	err := smtp.SendMail(
		serverAddress,
		auth,
		s.config.FromEmail,
		[]string{toEmail},
		[]byte(message),
	)
	if err != nil {
		s.logger.Error().Err(err).Str("server", serverAddress).Msg("Failed to send email")
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
