package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// OrderReportJob periodically summarizes the order store.
// Logs the number of orders per status so operators can watch throughput
// without querying the database by hand.
type OrderReportJob struct {
	db     *gorm.DB
	cron   *cron.Cron
	logger *slog.Logger
}

// NewOrderReportJob creates a job reporting order counts once a minute.
func NewOrderReportJob(db *gorm.DB, logger *slog.Logger) *OrderReportJob {
	return &OrderReportJob{
		db:     db,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With("component", "order_report_job"),
	}
}

// Start begins the report job to run at the top of every minute.
func (j *OrderReportJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		if err := j.report(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Order report job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order report job started (running every minute)")
	return nil
}

// Stop stops the report job.
func (j *OrderReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order report job stopped")
}

// report queries the per-status order counts and logs them.
func (j *OrderReportJob) report(ctx context.Context) error {
	rows, err := j.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COUNT(*)
		FROM orders
		GROUP BY status
		ORDER BY status
	`).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	total := int64(0)
	for rows.Next() {
		var (
			status string
			count  int64
		)
		if err = rows.Scan(&status, &count); err != nil {
			return err
		}

		total += count
		j.logger.InfoContext(ctx, "order count", "status", status, "count", count)
	}

	if err = rows.Err(); err != nil {
		return err
	}

	j.logger.InfoContext(ctx, "order report complete", "total", total)
	return nil
}
