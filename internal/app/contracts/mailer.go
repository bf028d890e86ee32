package contracts

import (
	"clinic-site/internal/pkg/dto/requests"
	"context"
)

// MailTransport delivers one message to the clinic mailbox.
type MailTransport interface {
	Send(ctx context.Context, message *requests.EmailMessage) error
}

// MailRelay posts a form submission to the mail relay endpoint.
type MailRelay interface {
	Send(ctx context.Context, payload *requests.EmailPayload) error
}
