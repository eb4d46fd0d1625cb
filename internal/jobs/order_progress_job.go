package jobs

import (
	"context"
	"log/slog"

	"catertrack/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OrderProgressJob manages the scheduled progression of orders.
// Runs every 15 seconds to move undelivered orders to their next lifecycle stage.
type OrderProgressJob struct {
	handler commands.AdvanceOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderProgressJob creates a new job for advancing orders.
// Uses AdvanceOrdersCommandHandler to process order transitions on every tick.
func NewOrderProgressJob(handler commands.AdvanceOrdersCommandHandler, logger *slog.Logger) *OrderProgressJob {
	return &OrderProgressJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "order_progress_job"),
	}
}

// Start begins the order progress job to run every 15 seconds.
func (j *OrderProgressJob) Start() error {
	_, err := j.cron.AddFunc("*/15 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewAdvanceOrdersCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Order progress job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order progress job started (running every 15 seconds)")
	return nil
}

// Stop stops the order progress job.
func (j *OrderProgressJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order progress job stopped")
}
