package smtp

import (
	"clinic-site/internal/pkg/dto/requests"
	"context"
)

type SMTPService interface {
	Send(ctx context.Context, message *requests.EmailMessage) error
}
