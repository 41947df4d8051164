package jobs

import (
	"context"
	"log/slog"
	"time"

	"orders/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// OrderReportJob periodically reports how many orders were placed today.
// Runs every minute and logs the count for operational visibility.
type OrderReportJob struct {
	handler queries.GetOrdersByDateQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderReportJob creates a new job for reporting daily order volume.
// Uses GetOrdersByDateQueryHandler to count today's orders every minute.
func NewOrderReportJob(handler queries.GetOrdersByDateQueryHandler, logger *slog.Logger) *OrderReportJob {
	return &OrderReportJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "order_report_job"),
	}
}

// Start begins the order report job to run at the top of every minute.
func (j *OrderReportJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		query, queryErr := queries.NewGetOrdersByDateQuery(time.Now())
		if queryErr != nil {
			j.logger.ErrorContext(ctx, "Order report job failed to build query", "error", queryErr)
			return
		}

		orders, handleErr := j.handler.Handle(ctx, query)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Order report job failed", "error", handleErr)
			return
		}

		j.logger.InfoContext(ctx, "Daily order report", "orders_today", len(orders))
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order report job started (running every minute)")
	return nil
}

// Stop stops the order report job.
func (j *OrderReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order report job stopped")
}
