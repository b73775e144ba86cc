package jobs

import (
	"context"
	"fmt"
	"iter"
	"log/slog"

	"harvest/internal/core/application/usecases/queries"
	"harvest/internal/core/domain/model/job"

	"github.com/robfig/cron/v3"
)

// DefaultBacklogSchedule runs the report at the start of every minute.
const DefaultBacklogSchedule = "0 * * * * *"

type listOpenJobsHandler interface {
	Handle(ctx context.Context, query queries.ListOpenJobsQuery) (iter.Seq2[*job.HarvestJob, error], error)
}

// BacklogReport is the number of jobs still waiting on each track.
type BacklogReport struct {
	OpenLabour    int
	OpenTransport int
}

// BacklogReportJob periodically logs how many jobs still wait for a labour
// team and for a vehicle.
type BacklogReportJob struct {
	handler  listOpenJobsHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewBacklogReportJob creates the job. schedule is a six-field cron
// expression; an empty one means DefaultBacklogSchedule.
func NewBacklogReportJob(handler listOpenJobsHandler, schedule string, logger *slog.Logger) *BacklogReportJob {
	if schedule == "" {
		schedule = DefaultBacklogSchedule
	}
	return &BacklogReportJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "backlog_report_job"),
	}
}

// Start schedules the report.
func (j *BacklogReportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		report, err := j.Report(ctx)
		if err != nil {
			j.logger.ErrorContext(ctx, "Backlog report failed", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Harvest job backlog",
			"open_labour", report.OpenLabour,
			"open_transport", report.OpenTransport,
		)
	})
	if err != nil {
		return fmt.Errorf("schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Backlog report job started", "schedule", j.schedule)
	return nil
}

// Stop stops the scheduler and waits for a running report to finish.
func (j *BacklogReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Backlog report job stopped")
}

// Report counts the open jobs of both tracks.
func (j *BacklogReportJob) Report(ctx context.Context) (BacklogReport, error) {
	labour, err := j.count(ctx, job.Labour)
	if err != nil {
		return BacklogReport{}, err
	}

	transport, err := j.count(ctx, job.Transport)
	if err != nil {
		return BacklogReport{}, err
	}

	return BacklogReport{OpenLabour: labour, OpenTransport: transport}, nil
}

func (j *BacklogReportJob) count(ctx context.Context, track job.Track) (int, error) {
	seq, err := j.handler.Handle(ctx, queries.NewListOpenJobsQuery(track.String()))
	if err != nil {
		return 0, err
	}

	n := 0
	for _, iterErr := range seq {
		if iterErr != nil {
			return 0, fmt.Errorf("count open %s jobs: %w", track, iterErr)
		}
		n++
	}
	return n, nil
}
