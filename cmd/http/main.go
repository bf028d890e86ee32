package main

import (
	"clinic-site/internal/app/config"
	"clinic-site/internal/app/delivery/http/controllers"
	"clinic-site/internal/app/delivery/http/middlewares"
	"clinic-site/internal/app/delivery/http/routers"
	"clinic-site/internal/app/delivery/http/views"
	"clinic-site/internal/app/drivers/database"
	"clinic-site/internal/app/drivers/logger"
	smtpDriver "clinic-site/internal/app/drivers/mailer"
	"clinic-site/internal/app/drivers/messaging"
	"clinic-site/internal/app/models"
	"clinic-site/internal/app/services/core/booking"
	"clinic-site/internal/app/services/core/contact"
	"clinic-site/internal/app/services/core/content"
	"clinic-site/internal/app/services/sanity"
	"clinic-site/internal/app/services/shared/events"
	"clinic-site/internal/app/services/shared/mailer"
	"clinic-site/internal/app/services/shared/ratelimiter"
	"clinic-site/internal/app/services/shared/redis"
	"clinic-site/internal/app/services/shared/relay"
	"clinic-site/internal/app/services/shared/smtp"
	"clinic-site/internal/pkg/utils"
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)
	defer log.Sync()

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("Error loading location", zap.Error(err))
	}
	time.Local = location

	redisClient := database.NewRedisClient(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		Logger:         log,
		Redis:          redisClient,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	if driverConfig.RabbitMQ.Enabled() {
		bootstrap.RabbitMQ = messaging.NewRabbitMQ(driverConfig)
		defer bootstrap.RabbitMQ.Close()
	}

	appCtx, stopApp := context.WithCancel(context.Background())
	defer stopApp()

	stopBackground, err := bootstrapingTheApp(appCtx, bootstrap)
	if err != nil {
		log.Fatal("Failed to bootstrap the site", zap.Error(err))
	}

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", internalConfig.App.Port),
		Handler: chiRouter,
	}

	go func() {
		log.Info("Site server listening", zap.String("addr", server.Addr))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	stopApp()
	stopBackground()

	log.Info("Server exiting")
}

// bootstrapingTheApp wires the site and starts its background subscriptions.
// The returned func stops them.
func bootstrapingTheApp(ctx context.Context, bootstrap config.Bootstrap) (func(), error) {
	internalConfig := bootstrap.InternalConfig
	log := bootstrap.Logger

	utils.SetAppEnvironment(internalConfig.App.Env)

	// Redis
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)

	// Content
	sanityClient, err := sanity.NewClient(internalConfig.Sanity, log)
	if err != nil {
		return nil, err
	}
	contentRepository := content.NewContentRepository(
		sanityClient,
		redisRepository,
		log,
		time.Duration(internalConfig.Content.RevalidateInSeconds)*time.Second,
	)
	contentUsecase := content.NewContentUsecase(contentRepository, log)

	layout := content.NewLayout(
		contentUsecase,
		time.Duration(internalConfig.Content.PollIntervalInSeconds)*time.Second,
		log,
	)
	if err := layout.Start(ctx); err != nil {
		return nil, err
	}

	var consumer *events.Consumer
	if bootstrap.RabbitMQ != nil {
		consumer, err = events.NewConsumer(bootstrap.RabbitMQ, internalConfig.RabbitMQ.ContentEventsQueue, log)
		if err != nil {
			layout.Stop()
			return nil, err
		}
		consumer.OnContentChanged(contentChangedHandler(contentUsecase, layout))
		if err := consumer.Start(ctx); err != nil {
			layout.Stop()
			return nil, err
		}
	}

	// Mail
	smtpService := smtp.NewSmtpService(smtpDriver.NewSMTPClient(bootstrap.DriverConfig), log)
	mailerService := mailer.NewMailerService(smtpService, log, internalConfig.Mail.ClinicMailbox)
	mailRelay := relay.NewRelayClient(
		internalConfig.Mail.RelayURL,
		time.Duration(internalConfig.Mail.RelayTimeoutInSeconds)*time.Second,
		log,
	)

	// Forms
	bookingUsecase := booking.NewBookingUsecase(mailRelay, log)
	contactUsecase := contact.NewContactUsecase(mailRelay, log)

	// Views
	renderer, err := views.NewRenderer(views.FuncMap(internalConfig.Sanity.ProjectID, internalConfig.Sanity.Dataset))
	if err != nil {
		layout.Stop()
		return nil, err
	}

	// Middlewares
	formLimiter := ratelimiter.NewResourceLimiter(redisRepository, log)
	middlewares := middlewares.NewMiddlewares(log, nil, internalConfig, formLimiter)

	// Controllers
	pageController := controllers.NewPageController(log, contentUsecase, bookingUsecase, contactUsecase, layout, renderer)
	contentController := controllers.NewContentController(log, contentUsecase)
	mailerController := controllers.NewMailerController(log, mailerService)

	routers.SetupRoutes(bootstrap.Router, log, internalConfig, middlewares, pageController, contentController, mailerController)

	return func() {
		if consumer != nil {
			consumer.Stop()
		}
		layout.Stop()
	}, nil
}

// contentChangedHandler drops cached query results and refreshes the layout.
// The layout refreshes even when the cache could not be cleared.
func contentChangedHandler(
	contentCache interface{ Invalidate(ctx context.Context) error },
	layout interface{ Invalidate() },
) func(ctx context.Context, event *models.ContentChangedEvent) error {
	return func(ctx context.Context, event *models.ContentChangedEvent) error {
		err := contentCache.Invalidate(ctx)
		layout.Invalidate()
		return err
	}
}
