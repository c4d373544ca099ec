package jobs

import (
	"context"
	"log/slog"

	"coffeeshop/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// TopSpenderQueryHandler is satisfied by queries.GetTopSpenderQueryHandler.
type TopSpenderQueryHandler interface {
	Handle(ctx context.Context, query queries.GetTopSpenderQuery) (queries.SpenderResponse, error)
}

// ShopReportJob periodically logs who spent the most in the shop.
type ShopReportJob struct {
	handler TopSpenderQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewShopReportJob schedules the report. An invalid schedule is returned as an error
// and nothing is scheduled.
func NewShopReportJob(schedule string, handler TopSpenderQueryHandler, logger *slog.Logger) (*ShopReportJob, error) {
	j := &ShopReportJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "shop_report_job"),
	}

	if _, err := j.cron.AddFunc(schedule, func() { j.Run(context.Background()) }); err != nil {
		return nil, err
	}

	return j, nil
}

// Run produces one report.
func (j *ShopReportJob) Run(ctx context.Context) {
	top, err := j.handler.Handle(ctx, queries.NewGetTopSpenderQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Shop report failed", "error", err)
		return
	}

	if !top.Found {
		j.logger.DebugContext(ctx, "Shop report: no orders yet")
		return
	}

	j.logger.InfoContext(ctx, "Shop report",
		"top_spender", top.Name,
		"customer_id", top.CustomerID.String(),
		"total_spent", top.TotalSpent,
	)
}

// Start begins running the report on its schedule.
func (j *ShopReportJob) Start() {
	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Shop report job started")
}

// Stop stops the schedule and waits for a running report to finish.
func (j *ShopReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Shop report job stopped")
}
