package booking

import (
	"clinic-site/internal/app/services/shared/form"
	"clinic-site/internal/pkg/dto/requests"
	"context"
)

type BookingUsecase interface {
	Submit(ctx context.Context, request *requests.BookingForm) (*form.Result, error)
}
