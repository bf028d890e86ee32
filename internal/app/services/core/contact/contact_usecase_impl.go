package contact

import (
	"clinic-site/internal/app/contracts"
	"clinic-site/internal/app/services/shared/form"
	"clinic-site/internal/app/services/shared/mailer"
	"clinic-site/internal/app/services/shared/relay"
	"clinic-site/internal/pkg/constvars"
	"clinic-site/internal/pkg/dto/requests"
	"clinic-site/internal/pkg/exceptions"
	"clinic-site/internal/pkg/utils"
	"context"

	"go.uber.org/zap"
)

type contactUsecase struct {
	MailRelay contracts.MailRelay
	Log       *zap.Logger
}

func NewContactUsecase(mailRelay contracts.MailRelay, logger *zap.Logger) ContactUsecase {
	return &contactUsecase{
		MailRelay: mailRelay,
		Log:       logger,
	}
}

func (uc *contactUsecase) Submit(ctx context.Context, request *requests.ContactForm) (*form.Result, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("contactUsecase.Submit called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var machine form.Machine
	if err := machine.To(form.StateValidating); err != nil {
		return nil, err
	}

	utils.SanitizeContactForm(request)
	if err := utils.ValidateStruct(request); err != nil {
		uc.Log.Info("contactUsecase.Submit validation failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingErrorMessageKey, exceptions.FormatAllValidationErrors(err)),
		)
		if err := machine.To(form.StateIdle); err != nil {
			return nil, err
		}
		return &form.Result{
			State:       machine.State(),
			FieldErrors: exceptions.FieldMessages(err),
		}, nil
	}

	if err := machine.To(form.StateSubmitting); err != nil {
		return nil, err
	}

	payload := &requests.EmailPayload{
		Name:    request.FirstName + " " + request.LastName,
		Email:   request.Email,
		Message: BuildMessage(request).Render(),
	}

	if err := uc.MailRelay.Send(ctx, payload); err != nil {
		uc.Log.Error("contactUsecase.Submit error relaying message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if err := machine.To(form.StateFailure); err != nil {
			return nil, err
		}
		return &form.Result{
			State:        machine.State(),
			Notification: relay.FailureMessage(err, constvars.ContactFailureFallback, constvars.ContactGenericFailure),
		}, nil
	}

	if err := machine.To(form.StateSuccess); err != nil {
		return nil, err
	}

	utils.LogBusinessEvent(uc.Log, "contact_message_submitted", requestID)
	return &form.Result{
		State:        machine.State(),
		Notification: constvars.ContactSuccessMessage,
		Redirect:     constvars.ContactSuccessRedirectPath,
	}, nil
}

func BuildMessage(request *requests.ContactForm) *mailer.Message {
	return mailer.NewMessage("").
		Add(constvars.MessageFieldSubject, request.Subject).
		Add(constvars.MessageFieldPhone, request.Phone).
		Add(constvars.MessageFieldMessage, request.Message)
}
