package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"suprimentos/internal/usecase"
)

const sweepTimeout = 2 * time.Minute

type Scheduler struct {
	cron   *cron.Cron
	alerts usecase.IBudgetAlertUseCase
	logger *zap.Logger
}

// New registers the budget alert sweep on spec. Overlapping runs are
// skipped.
func New(spec string, alerts usecase.IBudgetAlertUseCase, logger *zap.Logger) (*Scheduler, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	cl := cronLogger{logger.Sugar()}
	c := cron.New(
		cron.WithLogger(cl),
		cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
	)

	s := &Scheduler{cron: c, alerts: alerts, logger: logger}
	if _, err := c.AddFunc(spec, s.runBudgetAlerts); err != nil {
		return nil, fmt.Errorf("invalid budget alert schedule %q: %w", spec, err)
	}
	return s, nil
}

func (s *Scheduler) Start() {
	s.logger.Info("[scheduler] started", zap.Int("jobs", len(s.cron.Entries())))
	s.cron.Start()
}

// Stop waits for a running sweep to finish or ctx to expire.
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
	}
}

func (s *Scheduler) runBudgetAlerts() {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	alerts, err := s.alerts.Sweep(ctx)
	if err != nil {
		s.logger.Error("[scheduler][budget-alert] sweep failed", zap.Error(err))
		return
	}
	s.logger.Info("[scheduler][budget-alert] sweep finished", zap.Int("alerts", len(alerts)))
}

// cronLogger forwards cron's own logging to zap.
type cronLogger struct {
	s *zap.SugaredLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.s.Debugw("[scheduler] "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.s.Errorw("[scheduler] "+msg, append(keysAndValues, "error", err)...)
}
