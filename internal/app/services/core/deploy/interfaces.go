package deploy

import (
	"clinic-site/internal/app/models"
	"clinic-site/internal/pkg/dto/requests"
	"context"
)

type DeployUsecase interface {
	Trigger(ctx context.Context, document *requests.SanityWebhookDocument) (*models.Deployment, error)
	Deployments(ctx context.Context, page, pageSize int) ([]models.Deployment, int, error)
	Start(ctx context.Context)
	Stop()
}
