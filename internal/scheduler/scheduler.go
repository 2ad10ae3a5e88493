package scheduler

import (
	"context"
	"sync"
	"time"

	"roleradar-dashboard/internal/logging"
)

type Task func(ctx context.Context) error

// Scheduler runs a task once on Start and then on every tick until Stop.
// Every run gets its own goroutine; a slow run does not delay the next
// tick and runs may overlap.
type Scheduler struct {
	name     string
	interval time.Duration
	task     Task
	clock    Clock
	log      *logging.Logger

	mu       sync.Mutex
	cancel   context.CancelFunc
	loopDone chan struct{}
	runs     sync.WaitGroup
}

type Option func(*Scheduler)

func WithClock(c Clock) Option { return func(s *Scheduler) { s.clock = c } }

func WithLogger(l *logging.Logger) Option { return func(s *Scheduler) { s.log = l } }

func New(name string, interval time.Duration, task Task, opts ...Option) *Scheduler {
	s := &Scheduler{name: name, interval: interval, task: task, clock: RealClock{}}
	for _, o := range opts {
		o(s)
	}
	s.log = logging.OrNop(s.log).With("scheduler", name)
	return s
}

// Start is a no-op if the scheduler is already running. Runs receive a
// context that is cancelled by Stop or by cancellation of ctx.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	if s.cancel != nil {
		s.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	done := make(chan struct{})
	s.loopDone = done
	ticker := s.clock.NewTicker(s.interval)
	s.mu.Unlock()

	s.log.Info("scheduler started", "interval", s.interval.String())
	s.spawn(ctx)

	go func() {
		defer close(done)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C():
				s.spawn(ctx)
			}
		}
	}()
}

// Stop cancels in-flight runs and waits for them to return.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	cancel, done := s.cancel, s.loopDone
	s.cancel, s.loopDone = nil, nil
	s.mu.Unlock()
	if cancel == nil {
		return
	}

	cancel()
	<-done
	s.runs.Wait()
	s.log.Info("scheduler stopped")
}

func (s *Scheduler) spawn(ctx context.Context) {
	s.runs.Add(1)
	go func() {
		defer s.runs.Done()
		if err := s.task(ctx); err != nil {
			s.log.Warn("task failed", "err", err)
		}
	}()
}
