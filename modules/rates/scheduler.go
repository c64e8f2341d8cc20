package rates

import (
	"context"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/sirupsen/logrus"
)

// Scheduler refreshes the rates cache in the background so most requests are
// served from a warm table.
type Scheduler struct {
	cache    *Cache
	interval time.Duration
	sched    gocron.Scheduler
}

func NewScheduler(cache *Cache, interval time.Duration) *Scheduler {
	return &Scheduler{cache: cache, interval: interval}
}

func (s *Scheduler) Start(ctx context.Context) error {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return err
	}
	s.sched = scheduler

	job := func() {
		jobCtx, cancel := context.WithTimeout(context.Background(), s.interval/2)
		defer cancel()
		if _, err := s.cache.Refresh(jobCtx); err != nil {
			logrus.Errorf("scheduled rates refresh failed: %v", err)
		}
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(s.interval),
		gocron.NewTask(job),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return err
	}

	scheduler.Start()

	go func() {
		<-ctx.Done()
		if sdErr := s.Shutdown(); sdErr != nil {
			logrus.Errorf("rates scheduler shutdown error: %v", sdErr)
		}
	}()
	return nil
}

func (s *Scheduler) Shutdown() error {
	if s.sched == nil {
		return nil
	}
	err := s.sched.Shutdown()
	s.sched = nil
	return err
}
