package scheduler

import (
	"context"
	"errors"
	"time"

	"paulocell_pdv/internal/infrastructure/logger"
	"paulocell_pdv/internal/usecase"

	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
)

const (
	stockAlertLockKey = "jobs:stock-alert"
	stockAlertLockTTL = 2 * time.Minute
)

// acquireFunc returns a release callback, or redislock.ErrNotObtained when
// another instance holds the lock.
type acquireFunc func(ctx context.Context) (func(), error)

// Scheduler runs the periodic stock alert sweep. With Redis configured only
// one API instance sweeps per tick.
type Scheduler struct {
	cron    *cron.Cron
	alerts  usecase.IStockAlertUseCase
	acquire acquireFunc
	timeout time.Duration
}

func New(alerts usecase.IStockAlertUseCase, rdb *redis.Client, prefix string) *Scheduler {
	s := &Scheduler{
		cron:    cron.New(),
		alerts:  alerts,
		timeout: time.Minute,
	}
	if rdb != nil {
		locker := redislock.New(rdb)
		key := prefix + stockAlertLockKey
		s.acquire = func(ctx context.Context) (func(), error) {
			lock, err := locker.Obtain(ctx, key, stockAlertLockTTL, nil)
			if err != nil {
				return nil, err
			}
			return func() { _ = lock.Release(context.Background()) }, nil
		}
	}
	return s
}

// Start registers the sweep under the given cron expression.
func (s *Scheduler) Start(spec string) error {
	if _, err := s.cron.AddFunc(spec, s.runOnce); err != nil {
		return err
	}
	s.cron.Start()
	logger.For("inventory", "scheduler").WithField("cron", spec).Info("[inventory][scheduler] stock alert job started")
	return nil
}

// Stop waits for a running sweep to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

func (s *Scheduler) runOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	_, _ = s.sweep(ctx)
}

// sweep reports whether this instance ran the job.
func (s *Scheduler) sweep(ctx context.Context) (bool, error) {
	log := logger.For("inventory", "scheduler")
	if s.acquire != nil {
		release, err := s.acquire(ctx)
		if errors.Is(err, redislock.ErrNotObtained) {
			log.Debug("[inventory][scheduler] sweep already running elsewhere; skipping")
			return false, nil
		}
		if err != nil {
			log.WithError(err).Warn("[inventory][scheduler] could not obtain lock; skipping")
			return false, err
		}
		defer release()
	}

	created, err := s.alerts.Sweep(ctx)
	if err != nil {
		log.WithError(err).Error("[inventory][scheduler] stock alert sweep failed")
		return true, err
	}
	if created > 0 {
		log.WithField("created", created).Info("[inventory][scheduler] stock alerts created")
	}
	return true, nil
}
