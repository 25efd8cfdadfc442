// Package mail implements the outgoing mail dispatcher over SMTP.
package mail

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/wneessen/go-mail"

	"quill/config"
	"quill/internal/domain/service"
)

const (
	verificationSubject  = "Your Blog Account Verification Code"
	passwordResetSubject = "Your Blog Password Reset Code"
)

// smtpDispatcher sends one-time codes through a configured SMTP relay.
type smtpDispatcher struct {
	cfg    *config.MailConfig
	client *mail.Client
	logger *slog.Logger
}

// NewSMTPDispatcher is the constructor for smtpDispatcher. A missing from
// address is fatal at startup; everything after that is best-effort.
func NewSMTPDispatcher(cfg *config.Config, logger *slog.Logger) (service.MailDispatcher, error) {
	if cfg.Mail == nil {
		return nil, errors.New("mail configuration is required")
	}
	if cfg.Mail.FromAddress == "" {
		return nil, errors.New("mail from address is required")
	}

	clientOpts := []mail.Option{
		mail.WithPort(cfg.Mail.Port),
	}

	if cfg.Mail.Username != "" {
		clientOpts = append(clientOpts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Mail.Username),
		)
	}
	if cfg.Mail.Password != "" {
		clientOpts = append(clientOpts, mail.WithPassword(cfg.Mail.Password))
	}

	switch cfg.Mail.Encryption {
	case "ssl":
		clientOpts = append(clientOpts, mail.WithSSL())
	case "none":
		clientOpts = append(clientOpts, mail.WithTLSPortPolicy(mail.NoTLS))
	default:
		clientOpts = append(clientOpts, mail.WithTLSPortPolicy(mail.TLSMandatory))
	}

	client, err := mail.NewClient(cfg.Mail.Host, clientOpts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create mail client")
	}

	logger.Info("Mail dispatcher initialized",
		slog.String("host", cfg.Mail.Host),
		slog.Int("port", cfg.Mail.Port),
		slog.String("fromAddress", cfg.Mail.FromAddress))

	return &smtpDispatcher{
		cfg:    cfg.Mail,
		client: client,
		logger: logger,
	}, nil
}

// SendVerificationCode delivers an account verification code.
func (d *smtpDispatcher) SendVerificationCode(ctx context.Context, email string, code int) error {
	body := fmt.Sprintf("Your verification code is %d. Enter it to activate your account.", code)

	return d.send(ctx, email, verificationSubject, body)
}

// SendPasswordResetCode delivers a password reset code.
func (d *smtpDispatcher) SendPasswordResetCode(ctx context.Context, email string, code int) error {
	body := fmt.Sprintf("Your password reset code is %d. Ignore this message if you did not request a reset.", code)

	return d.send(ctx, email, passwordResetSubject, body)
}

func (d *smtpDispatcher) send(ctx context.Context, to, subject, body string) error {
	msg := mail.NewMsg()

	from := d.cfg.FromAddress
	if d.cfg.FromName != "" {
		from = fmt.Sprintf("%s <%s>", d.cfg.FromName, d.cfg.FromAddress)
	}
	if err := msg.From(from); err != nil {
		return errors.Wrap(err, "failed to set from address")
	}
	if err := msg.To(to); err != nil {
		return errors.Wrap(err, "failed to set recipient address")
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	if err := d.client.DialAndSendWithContext(ctx, msg); err != nil {
		d.logger.Error("Failed to send mail",
			slog.String("to", to),
			slog.String("subject", subject),
			slog.Any("error", err))

		return errors.Wrap(err, "failed to send mail")
	}

	d.logger.Debug("Mail sent", slog.String("to", to), slog.String("subject", subject))

	return nil
}
