package deploy

import (
	"clinic-site/internal/app/contracts"
	"clinic-site/internal/app/models"
	"clinic-site/internal/pkg/exceptions"
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type DeploymentMongoRepository struct {
	Collection *mongo.Collection
}

func NewDeploymentMongoRepository(db *mongo.Client, dbName, collection string) contracts.DeploymentRepository {
	return &DeploymentMongoRepository{
		Collection: db.Database(dbName).Collection(collection),
	}
}

func (r *DeploymentMongoRepository) Insert(ctx context.Context, deployment *models.Deployment) error {
	_, err := r.Collection.InsertOne(ctx, deployment)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (r *DeploymentMongoRepository) Finish(ctx context.Context, deployment *models.Deployment) error {
	update := bson.M{
		"$set": bson.M{
			"status":      deployment.Status,
			"exit_code":   deployment.ExitCode,
			"log_object":  deployment.LogObject,
			"error":       deployment.Error,
			"finished_at": deployment.FinishedAt,
		},
	}
	_, err := r.Collection.UpdateByID(ctx, deployment.ID, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

// FindRecent returns one page of deployments, newest first, with the total count.
func (r *DeploymentMongoRepository) FindRecent(ctx context.Context, page, pageSize int) ([]models.Deployment, int, error) {
	total, err := r.Collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "started_at", Value: -1}}).
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize))

	cursor, err := r.Collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	deployments := make([]models.Deployment, 0, pageSize)
	if err := cursor.All(ctx, &deployments); err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	return deployments, int(total), nil
}
