package smtp

import (
	"clinic-site/internal/app/drivers/mailer"
	"clinic-site/internal/pkg/constvars"
	"clinic-site/internal/pkg/dto/requests"
	"clinic-site/internal/pkg/exceptions"
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"mime"
	"net"
	"net/smtp"
	"strings"

	"go.uber.org/zap"
)

type smtpService struct {
	Client *mailer.SMTPClient
	Log    *zap.Logger
}

func NewSmtpService(client *mailer.SMTPClient, logger *zap.Logger) SMTPService {
	return &smtpService{
		Client: client,
		Log:    logger,
	}
}

// Send opens one SMTP session per message: STARTTLS when the server offers it,
// PLAIN auth when credentials are configured.
func (svc *smtpService) Send(ctx context.Context, message *requests.EmailMessage) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	svc.Log.Info("smtpService.Send called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Strings(constvars.LoggingRecipientKey, message.To),
		zap.String(constvars.LoggingSMTPHostKey, svc.Client.Host),
	)

	if len(message.To) == 0 {
		return exceptions.ErrSMTPSendEmail(errors.New("no recipient configured"), svc.Client.Host)
	}

	client, err := svc.dial(ctx)
	if err != nil {
		svc.Log.Error("smtpService.Send error dialing SMTP server",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrSMTPSendEmail(err, svc.Client.Host)
	}
	defer client.Close()

	if err := svc.deliver(client, message); err != nil {
		svc.Log.Error("smtpService.Send error delivering message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrSMTPSendEmail(err, svc.Client.Host)
	}

	svc.Log.Info("smtpService.Send succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}

func (svc *smtpService) dial(ctx context.Context) (*smtp.Client, error) {
	addr := net.JoinHostPort(svc.Client.Host, fmt.Sprintf("%d", svc.Client.Port))
	dialer := &net.Dialer{Timeout: svc.Client.DialTimeout}

	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, err
	}
	if deadline, ok := ctx.Deadline(); ok {
		conn.SetDeadline(deadline)
	}

	if svc.Client.Port == mailer.ImplicitTLSPort {
		conn = tls.Client(conn, svc.Client.TLSConfig)
	}

	client, err := smtp.NewClient(conn, svc.Client.Host)
	if err != nil {
		conn.Close()
		return nil, err
	}
	return client, nil
}

func (svc *smtpService) deliver(client *smtp.Client, message *requests.EmailMessage) error {
	if svc.Client.Port != mailer.ImplicitTLSPort {
		if ok, _ := client.Extension("STARTTLS"); ok {
			if err := client.StartTLS(svc.Client.TLSConfig); err != nil {
				return err
			}
		}
	}

	if svc.Client.Auth != nil {
		if ok, _ := client.Extension("AUTH"); ok {
			if err := client.Auth(svc.Client.Auth); err != nil {
				return err
			}
		}
	}

	if err := client.Mail(envelopeSender(svc.Client.Username, message.From)); err != nil {
		return err
	}
	for _, to := range message.To {
		if err := client.Rcpt(to); err != nil {
			return err
		}
	}

	writer, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := writer.Write(BuildPlainTextMessage(message)); err != nil {
		writer.Close()
		return err
	}
	if err := writer.Close(); err != nil {
		return err
	}
	return client.Quit()
}

// envelopeSender prefers the authenticated account; most relays reject a foreign MAIL FROM.
func envelopeSender(username, from string) string {
	if username != "" {
		return username
	}
	return from
}

// BuildPlainTextMessage renders headers and body. The submitter address is kept in From
// and Reply-To so the clinic can answer directly.
func BuildPlainTextMessage(message *requests.EmailMessage) []byte {
	replyTo := message.ReplyTo
	if replyTo == "" {
		replyTo = message.From
	}
	body := strings.ReplaceAll(message.Body, "\r\n", "\n")
	body = strings.ReplaceAll(body, "\n", "\r\n")
	return []byte(fmt.Sprintf(constvars.EmailPlainTextFormat,
		sanitizeHeader(message.From),
		sanitizeHeader(strings.Join(message.To, ", ")),
		sanitizeHeader(replyTo),
		mime.QEncoding.Encode("utf-8", sanitizeHeader(message.Subject)),
		body,
	))
}

func sanitizeHeader(value string) string {
	return strings.NewReplacer("\r", "", "\n", "").Replace(value)
}
