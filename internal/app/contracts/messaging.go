package contracts

import (
	"clinic-site/internal/app/models"
	"context"
)

type EventPublisher interface {
	PublishContentChanged(ctx context.Context, event *models.ContentChangedEvent) error
}
