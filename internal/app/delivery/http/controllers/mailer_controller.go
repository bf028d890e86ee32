package controllers

import (
	"clinic-site/internal/app/services/shared/mailer"
	"clinic-site/internal/pkg/constvars"
	"clinic-site/internal/pkg/dto/requests"
	"clinic-site/internal/pkg/utils"
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type MailerController struct {
	Log           *zap.Logger
	MailerService mailer.MailerService
}

func NewMailerController(logger *zap.Logger, mailerService mailer.MailerService) *MailerController {
	return &MailerController{
		Log:           logger,
		MailerService: mailerService,
	}
}

// SendEmail relays {name, email, message} to the clinic mailbox. The payload is
// trusted as sent; a body that does not decode is answered with the decoder error.
func (ctrl *MailerController) SendEmail(w http.ResponseWriter, r *http.Request) {
	request := new(requests.EmailPayload)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Warn("MailerController.SendEmail cannot decode payload",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
			zap.Error(err),
		)
		utils.BuildSendEmailResponse(ctrl.Log, w, err)
		return
	}

	err := ctrl.MailerService.SendEmail(r.Context(), request)
	utils.BuildSendEmailResponse(ctrl.Log, w, err)
}
