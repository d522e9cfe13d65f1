// Package scheduler reruns a job on a cron schedule.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Job is one scheduled run
type Job func(ctx context.Context) error

// Scheduler runs a Job on a cron spec. Overlapping runs are skipped, and a failed run is
// only logged so the previous output stays in place.
type Scheduler struct {
	cron *cron.Cron
	job  Job
	log  logrus.FieldLogger
}

// New creates a new Scheduler for a standard 5-field spec or a descriptor such as "@every 15m"
func New(spec string, job Job, log logrus.FieldLogger) (*Scheduler, error) {
	s := &Scheduler{
		cron: cron.New(cron.WithChain(
			cron.Recover(cron.PrintfLogger(log)),
			cron.SkipIfStillRunning(cron.PrintfLogger(log)),
		)),
		job: job,
		log: log,
	}

	if _, err := s.cron.AddFunc(spec, func() { s.RunOnce(context.Background()) }); err != nil {
		return nil, fmt.Errorf("parsing schedule %q: %w", spec, err)
	}

	return s, nil
}

// RunOnce runs the job immediately and reports whether it succeeded
func (s *Scheduler) RunOnce(ctx context.Context) bool {
	log := s.log.WithField("job_id", uuid.NewString())
	start := time.Now()

	if err := s.job(ctx); err != nil {
		log.WithError(err).Error("scheduled run failed, keeping previous output")
		return false
	}

	log.WithField("duration", time.Since(start).String()).Info("scheduled run finished")
	return true
}

// Run starts the schedule and blocks until ctx is cancelled and any running job has finished
func (s *Scheduler) Run(ctx context.Context) error {
	s.cron.Start()
	s.log.WithField("entries", len(s.cron.Entries())).Info("scheduler started")

	<-ctx.Done()

	<-s.cron.Stop().Done()
	s.log.Info("scheduler stopped")
	return nil
}
