package reporter

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const (
	jobName         = "record_counts"
	timeoutDuration = 30 * time.Second
)

type statsRepository interface {
	Counts(ctx context.Context) (map[string]int64, error)
}

type gaugeSink interface {
	SetRecords(counts map[string]int64)
	CronJob(job string, fn func())
	RecordTechnicalError(errType, severity string)
}

// Reporter periodically refreshes the per-kind record gauges.
type Reporter struct {
	repo   statsRepository
	sink   gaugeSink
	logger *zap.Logger
	cron   *cron.Cron
	spec   string
	cancel context.CancelFunc
}

func New(repo statsRepository, sink gaugeSink, spec string, logger *zap.Logger) *Reporter {
	return &Reporter{
		repo:   repo,
		sink:   sink,
		logger: logger.With(zap.String("component", "Reporter")),
		cron:   cron.New(cron.WithSeconds()),
		spec:   spec,
	}
}

// Start takes one snapshot right away and then follows the cron spec.
func (r *Reporter) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	r.cancel = cancel

	if _, err := r.cron.AddFunc(r.spec, func() { r.Run(ctx) }); err != nil {
		r.logger.Error("failed to schedule reporter job", zap.String("spec", r.spec), zap.Error(err))
		r.sink.RecordTechnicalError("cron_schedule_error", "critical")
		cancel()
		return err
	}

	r.Run(ctx)
	r.cron.Start()
	r.logger.Info("reporter started", zap.String("spec", r.spec))
	return nil
}

// Stop cancels the running job and waits for it to finish.
func (r *Reporter) Stop() {
	if r.cancel != nil {
		r.cancel()
	}
	<-r.cron.Stop().Done()
	r.logger.Info("reporter stopped")
}

func (r *Reporter) Run(ctx context.Context) {
	r.sink.CronJob(jobName, func() {
		ctx, cancel := context.WithTimeout(ctx, timeoutDuration)
		defer cancel()

		counts, err := r.repo.Counts(ctx)
		if err != nil {
			r.logger.Error("failed to count records", zap.Error(err))
			r.sink.RecordTechnicalError("count_records", "warning")
			return
		}

		r.sink.SetRecords(counts)
		r.logger.Debug("record gauges refreshed", zap.Any("counts", counts))
	})
}
