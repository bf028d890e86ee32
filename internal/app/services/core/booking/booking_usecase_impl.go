package booking

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

type bookingUsecase struct {
	MailRelay contracts.MailRelay
	Log       *zap.Logger
}

func NewBookingUsecase(mailRelay contracts.MailRelay, logger *zap.Logger) BookingUsecase {
	return &bookingUsecase{
		MailRelay: mailRelay,
		Log:       logger,
	}
}

// Submit validates the booking and relays it to the clinic mailbox. Validation
// failures come back as field messages without contacting the relay.
func (uc *bookingUsecase) Submit(ctx context.Context, request *requests.BookingForm) (*form.Result, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.Submit called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var machine form.Machine
	if err := machine.To(form.StateValidating); err != nil {
		return nil, err
	}

	utils.SanitizeBookingForm(request)
	if err := utils.ValidateStruct(request); err != nil {
		uc.Log.Info("bookingUsecase.Submit validation failed",
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
		Name:    request.Name,
		Email:   request.Email,
		Message: BuildMessage(request).Render(),
	}

	if err := uc.MailRelay.Send(ctx, payload); err != nil {
		uc.Log.Error("bookingUsecase.Submit error relaying booking",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if err := machine.To(form.StateFailure); err != nil {
			return nil, err
		}
		return &form.Result{
			State:        machine.State(),
			Notification: relay.FailureMessage(err, constvars.BookingFailureFallback, constvars.BookingGenericFailure),
		}, nil
	}

	if err := machine.To(form.StateSuccess); err != nil {
		return nil, err
	}

	utils.LogBusinessEvent(uc.Log, "booking_submitted", requestID,
		zap.String(constvars.LoggingDepartmentKey, request.Department),
	)
	return &form.Result{
		State:        machine.State(),
		Notification: constvars.BookingSuccessMessage,
		Redirect:     constvars.BookingSuccessRedirectPath,
	}, nil
}

// BuildMessage lays out a booking as the mail body the clinic receives.
func BuildMessage(request *requests.BookingForm) *mailer.Message {
	reason, ok := constvars.BookingReasonLabels[request.Reason]
	if !ok {
		reason = constvars.BookingReasonLabels[constvars.BookingReasonSpecificConcern]
	}

	return mailer.NewMessage(constvars.BookingMessageTitle).
		Add(constvars.MessageFieldName, request.Name).
		Add(constvars.MessageFieldPhone, request.Phone).
		Add(constvars.MessageFieldEmail, request.Email).
		Add(constvars.MessageFieldDate, request.Date).
		Add(constvars.MessageFieldDepartment, request.Department).
		AddOr(constvars.MessageFieldDoctor, request.Doctor, constvars.MessageDoctorAny).
		Add(constvars.MessageFieldReason, reason).
		AddOr(constvars.MessageFieldOffer, request.Offer, constvars.MessageOfferNone)
}
