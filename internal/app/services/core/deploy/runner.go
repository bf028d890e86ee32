package deploy

import (
	"clinic-site/internal/app/models"
	"clinic-site/internal/pkg/constvars"
	"clinic-site/internal/pkg/dto/requests"
	"clinic-site/internal/pkg/exceptions"
	"context"
	"errors"
	"sync"

	"github.com/sirupsen/logrus"
)

// Handler performs one deploy on behalf of requestCount webhook requests.
type Handler func(document requests.SanityWebhookDocument, requestCount int) (*models.Deployment, error)

type outcome struct {
	deployment *models.Deployment
	err        error
}

type job struct {
	document requests.SanityWebhookDocument
	requests int
	waiters  []chan outcome
}

// Runner executes deploys one at a time on a single worker.
//
// In queue mode every submission gets its own run, in arrival order. In
// coalesce mode submissions that arrive before the next run starts join it,
// so requests made while a deploy is running share one follow-up run.
type Runner struct {
	mode    string
	handler Handler
	log     *logrus.Logger

	mu      sync.Mutex
	queue   []*job
	pending *job
	stopped bool

	wake   chan struct{}
	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
}

func NewRunner(mode string, handler Handler, log *logrus.Logger) *Runner {
	if mode != constvars.DeployModeCoalesce {
		mode = constvars.DeployModeQueue
	}
	return &Runner{
		mode:    mode,
		handler: handler,
		log:     log,
		wake:    make(chan struct{}, 1),
	}
}

func (r *Runner) Mode() string {
	return r.mode
}

func (r *Runner) Start(ctx context.Context) {
	r.ctx, r.cancel = context.WithCancel(ctx)
	r.done = make(chan struct{})
	go r.loop()
	r.signal()

	r.log.WithFields(logrus.Fields{
		constvars.LoggingDeployModeKey: r.mode,
	}).Info("deploy runner started")
}

// Stop lets the running deploy finish and fails every deploy still waiting.
func (r *Runner) Stop() {
	r.mu.Lock()
	r.stopped = true
	r.mu.Unlock()

	if r.cancel == nil {
		r.failQueued()
		return
	}
	r.cancel()
	<-r.done
	r.log.Info("deploy runner stopped")
}

// Submit queues a deploy for document and waits for the run that serves it.
// A caller that gives up keeps its place; the deploy still runs.
func (r *Runner) Submit(ctx context.Context, document requests.SanityWebhookDocument) (*models.Deployment, error) {
	waiter := make(chan outcome, 1)

	r.mu.Lock()
	if r.stopped {
		r.mu.Unlock()
		return nil, exceptions.ErrDeployRunnerStopped(errors.New("runner is not accepting deploys"))
	}
	if r.mode == constvars.DeployModeCoalesce && r.pending != nil {
		r.pending.document = document
		r.pending.requests++
		r.pending.waiters = append(r.pending.waiters, waiter)
	} else {
		next := &job{document: document, requests: 1, waiters: []chan outcome{waiter}}
		r.queue = append(r.queue, next)
		if r.mode == constvars.DeployModeCoalesce {
			r.pending = next
		}
	}
	r.mu.Unlock()
	r.signal()

	select {
	case result := <-waiter:
		return result.deployment, result.err
	case <-ctx.Done():
		return nil, exceptions.ErrServerDeadlineExceeded(ctx.Err())
	}
}

func (r *Runner) signal() {
	select {
	case r.wake <- struct{}{}:
	default:
	}
}

func (r *Runner) loop() {
	defer close(r.done)
	for {
		select {
		case <-r.ctx.Done():
			r.failQueued()
			return
		case <-r.wake:
		}

		for r.ctx.Err() == nil {
			next := r.dequeue()
			if next == nil {
				break
			}
			r.run(next)
		}
	}
}

func (r *Runner) dequeue() *job {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.queue) == 0 {
		return nil
	}
	next := r.queue[0]
	r.queue[0] = nil
	r.queue = r.queue[1:]
	if r.pending == next {
		r.pending = nil
	}
	return next
}

func (r *Runner) run(next *job) {
	deployment, err := r.handler(next.document, next.requests)
	for _, waiter := range next.waiters {
		waiter <- outcome{deployment: deployment, err: err}
	}
}

func (r *Runner) failQueued() {
	r.mu.Lock()
	queued := r.queue
	r.queue = nil
	r.pending = nil
	r.mu.Unlock()

	for _, next := range queued {
		for _, waiter := range next.waiters {
			waiter <- outcome{err: exceptions.ErrDeployRunnerStopped(errors.New("runner stopped before deploy started"))}
		}
	}
}
