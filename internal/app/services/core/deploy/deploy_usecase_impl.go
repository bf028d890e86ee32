package deploy

import (
	"clinic-site/internal/app/config"
	"clinic-site/internal/app/contracts"
	"clinic-site/internal/app/models"
	"clinic-site/internal/pkg/constvars"
	"clinic-site/internal/pkg/dto/requests"
	"clinic-site/internal/pkg/exceptions"
	"clinic-site/internal/pkg/utils"
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	defaultDeployTimeout = 15 * time.Minute
	bookkeepingTimeout   = 10 * time.Second
	logTailBytes         = 2048
)

type deployUsecase struct {
	Command              string
	Timeout              time.Duration
	LogBucket            string
	Executor             Executor
	DeploymentRepository contracts.DeploymentRepository
	Storage              contracts.Storage
	EventPublisher       contracts.EventPublisher
	Log                  *logrus.Logger
	runner               *Runner
}

// NewDeployUsecase wires the deploy pipeline. The repository, storage and
// publisher are optional and may be nil.
func NewDeployUsecase(
	internalConfig *config.InternalConfig,
	executor Executor,
	deploymentRepository contracts.DeploymentRepository,
	storage contracts.Storage,
	eventPublisher contracts.EventPublisher,
	log *logrus.Logger,
) DeployUsecase {
	timeout := time.Duration(internalConfig.Deploy.TimeoutInMinutes) * time.Minute
	if timeout <= 0 {
		timeout = defaultDeployTimeout
	}

	uc := &deployUsecase{
		Command:              internalConfig.Deploy.Command,
		Timeout:              timeout,
		LogBucket:            internalConfig.Minio.DeployLogBucket,
		Executor:             executor,
		DeploymentRepository: deploymentRepository,
		Storage:              storage,
		EventPublisher:       eventPublisher,
		Log:                  log,
	}
	uc.runner = NewRunner(internalConfig.Deploy.Mode, uc.execute, log)
	return uc
}

func (uc *deployUsecase) Start(ctx context.Context) {
	uc.runner.Start(ctx)
}

func (uc *deployUsecase) Stop() {
	uc.runner.Stop()
}

// Trigger hands the document to the runner and waits for the deploy that serves it.
func (uc *deployUsecase) Trigger(ctx context.Context, document *requests.SanityWebhookDocument) (*models.Deployment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	utils.SanitizeWebhookDocument(document)

	uc.Log.WithFields(logrus.Fields{
		constvars.LoggingRequestIDKey:      requestID,
		constvars.LoggingDocumentIDKey:     document.ID,
		constvars.LoggingDocumentTypeKey:   document.Type,
		constvars.LoggingDocumentUpdateKey: document.UpdatedAt,
	}).Info("Sanity webhook received for document")

	return uc.runner.Submit(ctx, *document)
}

func (uc *deployUsecase) Deployments(ctx context.Context, page, pageSize int) ([]models.Deployment, int, error) {
	if uc.DeploymentRepository == nil {
		return []models.Deployment{}, 0, nil
	}
	return uc.DeploymentRepository.FindRecent(ctx, page, pageSize)
}

func (uc *deployUsecase) execute(document requests.SanityWebhookDocument, requestCount int) (*models.Deployment, error) {
	deployment := &models.Deployment{
		ID:                utils.GenerateDeployID(),
		Status:            constvars.DeployStatusRunning,
		Mode:              uc.runner.Mode(),
		Command:           uc.Command,
		DocumentID:        document.ID,
		DocumentType:      document.Type,
		DocumentUpdatedAt: document.UpdatedAt,
		RequestCount:      requestCount,
		StartedAt:         time.Now(),
	}
	entry := uc.Log.WithFields(logrus.Fields{
		constvars.LoggingDeployIDKey:   deployment.ID,
		constvars.LoggingDeployModeKey: deployment.Mode,
		"request_count":                requestCount,
	})
	entry.Info("deploy started")

	uc.record(entry, deployment, true)

	ctx, cancel := context.WithTimeout(context.Background(), uc.Timeout)
	output, exitCode, runErr := uc.Executor.Execute(ctx, uc.Command)
	cancel()

	finishedAt := time.Now()
	deployment.FinishedAt = &finishedAt
	deployment.ExitCode = exitCode
	deployment.LogObject = uc.archive(entry, deployment.ID, output)

	if runErr != nil {
		deployment.Status = constvars.DeployStatusFailed
		deployment.Error = runErr.Error()
		entry.WithFields(logrus.Fields{
			constvars.LoggingExitCodeKey: exitCode,
			"output_tail":                tail(output, logTailBytes),
		}).WithError(runErr).Error("Deploy command failed")
		uc.record(entry, deployment, false)
		return deployment, exceptions.ErrDeployCommand(runErr)
	}

	deployment.Status = constvars.DeployStatusSucceeded
	entry.WithFields(logrus.Fields{
		constvars.LoggingDurationKey: deployment.Duration().String(),
		"output_tail":                tail(output, logTailBytes),
	}).Info("Deploy succeeded")
	uc.record(entry, deployment, false)
	uc.publish(entry, deployment)
	return deployment, nil
}

func (uc *deployUsecase) record(entry *logrus.Entry, deployment *models.Deployment, started bool) {
	if uc.DeploymentRepository == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), bookkeepingTimeout)
	defer cancel()

	var err error
	if started {
		err = uc.DeploymentRepository.Insert(ctx, deployment)
	} else {
		err = uc.DeploymentRepository.Finish(ctx, deployment)
	}
	if err != nil {
		entry.WithError(err).Warn("failed to record deployment history")
	}
}

func (uc *deployUsecase) archive(entry *logrus.Entry, deployID string, output []byte) string {
	if uc.Storage == nil || len(output) == 0 {
		return ""
	}
	ctx, cancel := context.WithTimeout(context.Background(), bookkeepingTimeout)
	defer cancel()

	objectName := fmt.Sprintf(constvars.DeployLogObjectFormat, deployID)
	stored, err := uc.Storage.PutObject(ctx, uc.LogBucket, objectName, output, constvars.MIMETextPlainCharsetUTF8)
	if err != nil {
		entry.WithError(err).Warn("failed to archive deploy output")
		return ""
	}
	entry.WithField(constvars.LoggingObjectKey, stored).Info("deploy output archived")
	return stored
}

func (uc *deployUsecase) publish(entry *logrus.Entry, deployment *models.Deployment) {
	if uc.EventPublisher == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), bookkeepingTimeout)
	defer cancel()

	event := &models.ContentChangedEvent{
		Event:        constvars.ContentChangedEvent,
		DeployID:     deployment.ID,
		DocumentID:   deployment.DocumentID,
		DocumentType: deployment.DocumentType,
		OccurredAt:   time.Now().UTC(),
	}
	if err := uc.EventPublisher.PublishContentChanged(ctx, event); err != nil {
		entry.WithError(err).Warn("failed to publish content change event")
	}
}

func tail(output []byte, max int) string {
	if len(output) <= max {
		return string(output)
	}
	return string(output[len(output)-max:])
}
