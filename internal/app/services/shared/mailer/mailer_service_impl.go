package mailer

import (
	"clinic-site/internal/app/contracts"
	"clinic-site/internal/pkg/constvars"
	"clinic-site/internal/pkg/dto/requests"
	"clinic-site/internal/pkg/utils"
	"context"
	"fmt"

	"go.uber.org/zap"
)

type mailerService struct {
	Transport     contracts.MailTransport
	Log           *zap.Logger
	ClinicMailbox string
}

func NewMailerService(transport contracts.MailTransport, logger *zap.Logger, clinicMailbox string) MailerService {
	return &mailerService{
		Transport:     transport,
		Log:           logger,
		ClinicMailbox: clinicMailbox,
	}
}

// SendEmail forwards a relay payload to the clinic mailbox as sent by the submitter.
func (s *mailerService) SendEmail(ctx context.Context, request *requests.EmailPayload) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("mailerService.SendEmail called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	message := &requests.EmailMessage{
		Subject: fmt.Sprintf(constvars.EmailSubjectNewMessageFormat, request.Name),
		From:    request.Email,
		ReplyTo: request.Email,
		To:      []string{s.ClinicMailbox},
		Body:    request.Message,
	}
	if s.ClinicMailbox == "" {
		message.To = nil
	}

	return utils.LogOperation(s.Log, "mailerService.SendEmail", requestID, func() error {
		return s.Transport.Send(ctx, message)
	})
}
