package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type PixExpirer interface {
	ExpirePix(ctx context.Context) (int, error)
}

// Scheduler periodically fails PIX charges whose payment window has closed.
type Scheduler struct {
	payments PixExpirer
	interval time.Duration
	logger   logger.Logger
}

func New(
	payments PixExpirer,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		payments: payments,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	expired, err := s.payments.ExpirePix(ctx)
	if err != nil {
		s.logger.Error("failed to expire pix payments",
			logger.String("error", err.Error()),
		)
		return
	}

	if expired > 0 {
		s.logger.Info("expired pix payments",
			logger.Int("count", expired),
		)
	}
}
