package livequery

import (
	"clinic-site/internal/pkg/constvars"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// FetchFunc loads the current value of a subscription.
type FetchFunc[T any] func(ctx context.Context) (T, error)

// Snapshot is the latest state of a subscription. A failed refresh keeps the
// previous Value and records Err.
type Snapshot[T any] struct {
	Value     T
	Err       error
	FetchedAt time.Time
}

// Subscription keeps a value fresh by refetching it on an interval and on demand.
type Subscription[T any] struct {
	name     string
	interval time.Duration
	fetch    FetchFunc[T]
	log      *zap.Logger

	mu          sync.RWMutex
	snapshot    Snapshot[T]
	subscribers []func(Snapshot[T])

	runMu   sync.Mutex
	refresh chan struct{}
	cron    *cron.Cron
	runCtx  context.Context
	cancel  context.CancelFunc
	done    chan struct{}
}

func NewSubscription[T any](name string, interval time.Duration, fetch func(ctx context.Context) (T, error), logger *zap.Logger) *Subscription[T] {
	return &Subscription[T]{
		name:     name,
		interval: interval,
		fetch:    fetch,
		log:      logger,
		refresh:  make(chan struct{}, 1),
	}
}

// Start performs the first fetch synchronously and then schedules refreshes.
// A non-positive interval only refreshes on Invalidate.
func (s *Subscription[T]) Start(ctx context.Context) error {
	s.runCtx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	s.runOnce(s.runCtx)

	if s.interval > 0 {
		c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
		spec := fmt.Sprintf("@every %s", s.interval)
		if _, err := c.AddFunc(spec, func() { s.runOnce(s.runCtx) }); err != nil {
			s.cancel()
			return err
		}
		c.Start()
		s.cron = c
	}

	go s.listen()

	s.log.Info("livequery.Subscription started",
		zap.String(constvars.LoggingSubscriptionKey, s.name),
		zap.Duration(constvars.LoggingDurationKey, s.interval),
	)
	return nil
}

// Stop cancels in-flight fetches and waits for scheduled ones to finish.
func (s *Subscription[T]) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	if s.cron != nil {
		<-s.cron.Stop().Done()
	}
	<-s.done
	s.log.Info("livequery.Subscription stopped",
		zap.String(constvars.LoggingSubscriptionKey, s.name),
	)
}

// Invalidate requests an immediate refetch. Requests made while one is pending collapse into it.
func (s *Subscription[T]) Invalidate() {
	select {
	case s.refresh <- struct{}{}:
	default:
	}
}

func (s *Subscription[T]) Snapshot() Snapshot[T] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// Subscribe registers fn to be called after every refresh.
func (s *Subscription[T]) Subscribe(fn func(Snapshot[T])) {
	s.mu.Lock()
	s.subscribers = append(s.subscribers, fn)
	s.mu.Unlock()
}

func (s *Subscription[T]) listen() {
	defer close(s.done)
	for {
		select {
		case <-s.runCtx.Done():
			return
		case <-s.refresh:
			s.runOnce(s.runCtx)
		}
	}
}

func (s *Subscription[T]) runOnce(ctx context.Context) {
	s.runMu.Lock()
	defer s.runMu.Unlock()

	if ctx.Err() != nil {
		return
	}

	value, err := s.fetch(ctx)

	s.mu.Lock()
	if err != nil {
		s.snapshot.Err = err
	} else {
		s.snapshot = Snapshot[T]{Value: value, FetchedAt: time.Now()}
	}
	current := s.snapshot
	subscribers := make([]func(Snapshot[T]), len(s.subscribers))
	copy(subscribers, s.subscribers)
	s.mu.Unlock()

	if err != nil {
		s.log.Warn("livequery.Subscription refresh failed",
			zap.String(constvars.LoggingSubscriptionKey, s.name),
			zap.Error(err),
		)
	}

	for _, fn := range subscribers {
		fn(current)
	}
}
