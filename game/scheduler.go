package game

import (
	"log"
	"sync"
	"time"
)

// Scheduler runs named periodic tasks for the race
type Scheduler interface {
	// Schedule starts calling fn after delay and then every period.
	// Scheduling an existing name replaces the old task.
	Schedule(name string, fn func(), delay, period time.Duration)
	// ChangePeriod sets the period used after the current invocation
	ChangePeriod(name string, period time.Duration)
	// Cancel stops the task; no invocation starts after Cancel returns
	Cancel(name string)
}

// minPeriod keeps a misconfigured task from spinning
const minPeriod = time.Millisecond

type task struct {
	fn        func()
	period    time.Duration
	cancelled bool
	done      chan struct{}
}

// TickerScheduler runs each task on its own goroutine with a re-armed timer
type TickerScheduler struct {
	mu    sync.Mutex
	tasks map[string]*task
	wg    sync.WaitGroup
}

// NewTickerScheduler creates an empty scheduler
func NewTickerScheduler() *TickerScheduler {
	return &TickerScheduler{
		tasks: make(map[string]*task),
	}
}

// Schedule implements Scheduler
func (s *TickerScheduler) Schedule(name string, fn func(), delay, period time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if old, ok := s.tasks[name]; ok {
		s.cancelLocked(old)
	}
	t := &task{
		fn:     fn,
		period: clampPeriod(period),
		done:   make(chan struct{}),
	}
	s.tasks[name] = t

	if delay < 0 {
		delay = 0
	}
	s.wg.Add(1)
	go s.run(name, t, delay)
}

// ChangePeriod implements Scheduler
func (s *TickerScheduler) ChangePeriod(name string, period time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.tasks[name]; ok {
		t.period = clampPeriod(period)
	}
}

// Cancel implements Scheduler
func (s *TickerScheduler) Cancel(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.tasks[name]; ok {
		s.cancelLocked(t)
		delete(s.tasks, name)
	}
}

// Stop cancels every task and waits for their goroutines to exit.
// It must not be called from inside a task.
func (s *TickerScheduler) Stop() {
	s.mu.Lock()
	for name, t := range s.tasks {
		s.cancelLocked(t)
		delete(s.tasks, name)
	}
	s.mu.Unlock()

	s.wg.Wait()
}

func (s *TickerScheduler) cancelLocked(t *task) {
	if t.cancelled {
		return
	}
	t.cancelled = true
	close(t.done)
}

func (s *TickerScheduler) run(name string, t *task, delay time.Duration) {
	defer s.wg.Done()

	timer := time.NewTimer(delay)
	defer timer.Stop()

	for {
		select {
		case <-t.done:
			return
		case <-timer.C:
		}

		s.mu.Lock()
		if t.cancelled {
			s.mu.Unlock()
			return
		}
		s.mu.Unlock()

		t.fn()

		s.mu.Lock()
		if t.cancelled {
			s.mu.Unlock()
			log.Printf("[Scheduler] Task %s stopped", name)
			return
		}
		period := t.period
		s.mu.Unlock()

		timer.Reset(period)
	}
}

func clampPeriod(period time.Duration) time.Duration {
	if period < minPeriod {
		return minPeriod
	}
	return period
}
