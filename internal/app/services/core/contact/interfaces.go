package contact

import (
	"clinic-site/internal/app/services/shared/form"
	"clinic-site/internal/pkg/dto/requests"
	"context"
)

type ContactUsecase interface {
	Submit(ctx context.Context, request *requests.ContactForm) (*form.Result, error)
}
