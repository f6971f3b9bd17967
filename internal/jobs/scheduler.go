package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/lootplay/prize-engine/internal/logger"
)

// refillSpec runs shortly after midnight UTC so a slow previous-day settlement
// cannot race the refill at the exact boundary.
const refillSpec = "5 0 * * *"

// BudgetRefiller restores every product's remaining prize budget to its
// configured daily amount.
type BudgetRefiller interface {
	RefillBudgets(ctx context.Context) (int64, error)
}

// Scheduler owns the recurring maintenance jobs of the engine.
type Scheduler struct {
	cron     *cron.Cron
	refiller BudgetRefiller
}

func NewScheduler(refiller BudgetRefiller) *Scheduler {
	return &Scheduler{
		cron:     cron.New(cron.WithLocation(time.UTC)),
		refiller: refiller,
	}
}

// Start registers the jobs and starts the cron loop in its own goroutine.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(refillSpec, s.refillBudgets); err != nil {
		return err
	}
	s.cron.Start()
	logger.Log.Infow("scheduler started", "refill_spec", refillSpec)
	return nil
}

// Stop stops scheduling new runs and returns a context that is done once the
// running jobs finish.
func (s *Scheduler) Stop() context.Context {
	logger.Log.Infow("scheduler stopping")
	return s.cron.Stop()
}

func (s *Scheduler) refillBudgets() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	refilled, err := s.refiller.RefillBudgets(ctx)
	if err != nil {
		logger.Log.Errorw("failed to refill prize budgets", "error", err)
		return
	}
	logger.Log.Infow("prize budgets refilled", "products", refilled)
}
