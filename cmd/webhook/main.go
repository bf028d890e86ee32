package main

import (
	"clinic-site/internal/app/config"
	"clinic-site/internal/app/contracts"
	"clinic-site/internal/app/delivery/http/controllers"
	"clinic-site/internal/app/delivery/http/middlewares"
	"clinic-site/internal/app/delivery/http/routers"
	"clinic-site/internal/app/drivers/database"
	"clinic-site/internal/app/drivers/logger"
	"clinic-site/internal/app/drivers/messaging"
	minioDriver "clinic-site/internal/app/drivers/storage"
	"clinic-site/internal/app/services/core/deploy"
	"clinic-site/internal/app/services/shared/events"
	"clinic-site/internal/app/services/shared/storage"
	"clinic-site/internal/pkg/utils"
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(driverConfig, internalConfig)
	errorLog := logger.NewZapLogger(driverConfig, internalConfig)
	defer errorLog.Sync()

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	if internalConfig.Webhook.Secret == "" {
		log.Warn("SANITY_WEBHOOK_SECRET is not set, every webhook call will be rejected")
	}

	bootstrap := config.Bootstrap{
		Router:         chi.NewRouter(),
		Logger:         errorLog,
		AccessLog:      log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	if driverConfig.MongoDB.Enabled() {
		bootstrap.MongoDB = database.NewMongoDB(driverConfig)
		defer bootstrap.MongoDB.Disconnect(context.Background())
	}
	if driverConfig.Minio.Enabled() {
		bootstrap.Minio = minioDriver.NewMinio(driverConfig)
	}
	if driverConfig.RabbitMQ.Enabled() {
		bootstrap.RabbitMQ = messaging.NewRabbitMQ(driverConfig)
		defer bootstrap.RabbitMQ.Close()
	}

	appCtx, stopApp := context.WithCancel(context.Background())
	defer stopApp()

	deployUsecase, closePublisher, err := bootstrapingTheApp(appCtx, bootstrap)
	if err != nil {
		log.Fatalf("Failed to bootstrap the webhook server: %v", err)
	}

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", internalConfig.Webhook.Port),
		Handler: bootstrap.Router,
		// A deploy can run for Deploy.TimeoutInMinutes before the handler answers.
		WriteTimeout: time.Duration(internalConfig.Deploy.TimeoutInMinutes+1) * time.Minute,
	}

	go func() {
		log.WithFields(logrus.Fields{
			"addr": server.Addr,
			"mode": internalConfig.Deploy.Mode,
		}).Info("Webhook server listening")
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
	}

	stopApp()
	deployUsecase.Stop()
	closePublisher()

	log.Println("Server exiting")
}

// bootstrapingTheApp wires the deploy pipeline. Deploy history, log upload and
// change events are each skipped when their driver is not configured.
func bootstrapingTheApp(ctx context.Context, bootstrap config.Bootstrap) (deploy.DeployUsecase, func(), error) {
	internalConfig := bootstrap.InternalConfig
	log := bootstrap.AccessLog

	utils.SetAppEnvironment(internalConfig.App.Env)
	closePublisher := func() {}

	var deploymentRepository contracts.DeploymentRepository
	if bootstrap.MongoDB != nil {
		deploymentRepository = deploy.NewDeploymentMongoRepository(
			bootstrap.MongoDB,
			internalConfig.MongoDB.DbName,
			internalConfig.MongoDB.DeploymentsCollection,
		)
	}

	var logStorage contracts.Storage
	if bootstrap.Minio != nil {
		if err := minioDriver.EnsureBucket(ctx, bootstrap.Minio, internalConfig.Minio.DeployLogBucket); err != nil {
			return nil, nil, err
		}
		logStorage = storage.NewMinioStorage(bootstrap.Minio)
	}

	var eventPublisher contracts.EventPublisher
	if bootstrap.RabbitMQ != nil {
		publisher, err := events.NewPublisher(bootstrap.RabbitMQ, internalConfig.RabbitMQ.ContentEventsQueue, log)
		if err != nil {
			return nil, nil, err
		}
		eventPublisher = publisher
		closePublisher = func() { publisher.Close() }
	}

	deployUsecase := deploy.NewDeployUsecase(
		internalConfig,
		deploy.NewShellExecutor(),
		deploymentRepository,
		logStorage,
		eventPublisher,
		log,
	)
	deployUsecase.Start(ctx)

	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, log, internalConfig, nil)
	webhookController := controllers.NewWebhookController(log, bootstrap.Logger, deployUsecase, internalConfig)

	routers.SetupWebhookRoutes(bootstrap.Router, internalConfig, middlewares, log, webhookController)

	return deployUsecase, closePublisher, nil
}
