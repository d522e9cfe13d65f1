package scheduler_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/tirasundara/spending-dashboard/internal/scheduler"
)

func TestNew_InvalidSpec(t *testing.T) {
	log, _ := test.NewNullLogger()

	_, err := scheduler.New("not a schedule", func(context.Context) error { return nil }, log)
	if err == nil {
		t.Errorf("Expected an error for an invalid spec")
	}
}

func TestScheduler_RunOnceFailureIsLogged(t *testing.T) {
	log, hook := test.NewNullLogger()

	s, err := scheduler.New("@every 1h", func(context.Context) error { return errors.New("no valid data") }, log)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if s.RunOnce(context.Background()) {
		t.Errorf("Expected the run to report failure")
	}

	entry := hook.LastEntry()
	if entry == nil || entry.Level != logrus.ErrorLevel {
		t.Fatalf("Expected an error log entry, got %v", entry)
	}
	if entry.Data["job_id"] == nil {
		t.Errorf("Expected a job_id field")
	}
}

func TestScheduler_Run(t *testing.T) {
	log, _ := test.NewNullLogger()

	var runs atomic.Int32
	s, err := scheduler.New("@every 1s", func(context.Context) error {
		runs.Add(1)
		return nil
	}, log)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	deadline := time.After(5 * time.Second)
	for runs.Load() == 0 {
		select {
		case <-deadline:
			cancel()
			t.Fatalf("Expected the job to run within the deadline")
		case <-time.After(50 * time.Millisecond):
		}
	}

	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Unexpected error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Errorf("Expected Run to return after cancellation")
	}
}
