package deploy

import (
	"clinic-site/internal/app/config"
	"clinic-site/internal/app/models"
	"clinic-site/internal/pkg/constvars"
	"clinic-site/internal/pkg/dto/requests"
	"clinic-site/internal/pkg/exceptions"
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExecutor struct {
	mu       sync.Mutex
	commands []string
	output   []byte
	exitCode int
	err      error
}

func (e *fakeExecutor) Execute(ctx context.Context, command string) ([]byte, int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.commands = append(e.commands, command)
	return e.output, e.exitCode, e.err
}

type fakeDeploymentRepository struct {
	mu       sync.Mutex
	inserted []models.Deployment
	finished []models.Deployment
}

func (r *fakeDeploymentRepository) Insert(ctx context.Context, deployment *models.Deployment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.inserted = append(r.inserted, *deployment)
	return nil
}

func (r *fakeDeploymentRepository) Finish(ctx context.Context, deployment *models.Deployment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.finished = append(r.finished, *deployment)
	return nil
}

func (r *fakeDeploymentRepository) FindRecent(ctx context.Context, page, pageSize int) ([]models.Deployment, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.finished, len(r.finished), nil
}

type fakeStorage struct {
	objects map[string][]byte
}

func (s *fakeStorage) PutObject(ctx context.Context, bucketName, objectName string, content []byte, contentType string) (string, error) {
	s.objects[bucketName+"/"+objectName] = content
	return objectName, nil
}

type fakePublisher struct {
	events []*models.ContentChangedEvent
}

func (p *fakePublisher) PublishContentChanged(ctx context.Context, event *models.ContentChangedEvent) error {
	p.events = append(p.events, event)
	return nil
}

func testConfig() *config.InternalConfig {
	return &config.InternalConfig{
		Deploy: config.AppDeploy{
			Command:          "git pull && pnpm build",
			Mode:             constvars.DeployModeQueue,
			TimeoutInMinutes: 1,
		},
		Minio: config.AppMinio{DeployLogBucket: "deploy-logs"},
	}
}

func TestTriggerSuccessfulDeploy(t *testing.T) {
	executor := &fakeExecutor{output: []byte("build ok\n")}
	repository := &fakeDeploymentRepository{}
	storage := &fakeStorage{objects: make(map[string][]byte)}
	publisher := &fakePublisher{}

	uc := NewDeployUsecase(testConfig(), executor, repository, storage, publisher, newTestLogger())
	uc.Start(context.Background())
	defer uc.Stop()

	deployment, err := uc.Trigger(context.Background(), &requests.SanityWebhookDocument{
		ID:        "doctor-1\r\n",
		Type:      "doctor",
		UpdatedAt: "2026-10-16T08:00:00Z",
	})

	require.NoError(t, err)
	assert.Equal(t, constvars.DeployStatusSucceeded, deployment.Status)
	assert.Equal(t, "doctor-1", deployment.DocumentID)
	assert.Equal(t, []string{"git pull && pnpm build"}, executor.commands)
	assert.Len(t, repository.inserted, 1)
	assert.Len(t, repository.finished, 1)
	assert.Equal(t, constvars.DeployStatusRunning, repository.inserted[0].Status)
	assert.Equal(t, []byte("build ok\n"), storage.objects["deploy-logs/deploy-logs/"+deployment.ID+".log"])
	require.Len(t, publisher.events, 1)
	assert.Equal(t, constvars.ContentChangedEvent, publisher.events[0].Event)
	assert.Equal(t, deployment.ID, publisher.events[0].DeployID)
}

func TestTriggerFailedDeploy(t *testing.T) {
	executor := &fakeExecutor{output: []byte("fatal: not a git repository"), exitCode: 128, err: errors.New("exit status 128")}
	publisher := &fakePublisher{}

	uc := NewDeployUsecase(testConfig(), executor, nil, nil, publisher, newTestLogger())
	uc.Start(context.Background())
	defer uc.Stop()

	deployment, err := uc.Trigger(context.Background(), &requests.SanityWebhookDocument{ID: "offer-1"})

	require.Error(t, err)
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, constvars.ErrClientDeployCommandFailed, customErr.ClientMessage)
	assert.Equal(t, constvars.DeployStatusFailed, deployment.Status)
	assert.Equal(t, 128, deployment.ExitCode)
	assert.Empty(t, publisher.events)
}

func TestDeploymentsWithoutRepository(t *testing.T) {
	uc := NewDeployUsecase(testConfig(), &fakeExecutor{}, nil, nil, nil, newTestLogger())

	deployments, total, err := uc.Deployments(context.Background(), 1, 20)

	require.NoError(t, err)
	assert.Empty(t, deployments)
	assert.Zero(t, total)
}

func TestShellExecutor(t *testing.T) {
	executor := NewShellExecutor()

	output, exitCode, err := executor.Execute(context.Background(), "echo deployed")
	require.NoError(t, err)
	assert.Equal(t, 0, exitCode)
	assert.Equal(t, "deployed\n", string(output))

	_, exitCode, err = executor.Execute(context.Background(), "exit 3")
	assert.Error(t, err)
	assert.Equal(t, 3, exitCode)
}
