package contracts

import (
	"clinic-site/internal/app/models"
	"context"
)

type DeploymentRepository interface {
	Insert(ctx context.Context, deployment *models.Deployment) error
	Finish(ctx context.Context, deployment *models.Deployment) error
	FindRecent(ctx context.Context, page, pageSize int) ([]models.Deployment, int, error)
}
