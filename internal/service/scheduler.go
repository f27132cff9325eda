package service

import (
	"context"
	"crypto-soothsayer/config"
	"crypto-soothsayer/pkg/logger"
	"time"

	"github.com/robfig/cron/v3"
)

// SnapshotScheduler periodically records a trust index snapshot so the
// history endpoint accrues real rows instead of pure filler.
type SnapshotScheduler struct {
	cfg        *config.Config
	log        *logger.Logger
	cron       *cron.Cron
	trustIndex TrustIndexService
}

func NewSnapshotScheduler(cfg *config.Config, log *logger.Logger, trustIndex TrustIndexService) *SnapshotScheduler {
	return &SnapshotScheduler{
		cfg:        cfg,
		log:        log,
		cron:       cron.New(),
		trustIndex: trustIndex,
	}
}

func (s *SnapshotScheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.cfg.Scheduler.SnapshotCron, func() {
		jobCtx, cancel := context.WithTimeout(ctx, time.Minute)
		defer cancel()

		if err := s.trustIndex.Snapshot(jobCtx); err != nil {
			s.log.Error("scheduled trust index snapshot failed", logger.ErrorField(err))
			return
		}
		s.log.Info("trust index snapshot recorded")
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	s.log.Info("snapshot scheduler started", logger.StringField("cron", s.cfg.Scheduler.SnapshotCron))
	return nil
}

// Stop halts scheduling and waits for a running job to finish.
func (s *SnapshotScheduler) Stop() {
	stopCtx := s.cron.Stop()
	<-stopCtx.Done()
	s.log.Info("snapshot scheduler stopped")
}
