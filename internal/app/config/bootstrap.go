package config

import (
	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Bootstrap carries the connected drivers into the wiring of one binary.
// Optional drivers are nil when their host is not configured.
type Bootstrap struct {
	Router         *chi.Mux
	Logger         *zap.Logger
	AccessLog      *logrus.Logger
	Redis          *redis.Client
	MongoDB        *mongo.Client
	Minio          *minio.Client
	RabbitMQ       *amqp091.Connection
	DriverConfig   *DriverConfig
	InternalConfig *InternalConfig
}
