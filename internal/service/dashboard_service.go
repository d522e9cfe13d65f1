package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/tirasundara/spending-dashboard/internal/analysis"
	"github.com/tirasundara/spending-dashboard/internal/domain"
	"github.com/tirasundara/spending-dashboard/internal/normalizer"
	"github.com/tirasundara/spending-dashboard/internal/report"
)

// DashboardService orchestrates the load, normalize, enrich and aggregate stages
type DashboardService struct {
	normalizer  *normalizer.Normalizer
	categorizer domain.Categorizer
	aggregator  *analysis.Aggregator
	log         logrus.FieldLogger
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(
	n *normalizer.Normalizer,
	categorizer domain.Categorizer,
	aggregator *analysis.Aggregator,
	log logrus.FieldLogger,
) *DashboardService {
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &DashboardService{
		normalizer:  n,
		categorizer: categorizer,
		aggregator:  aggregator,
		log:         log,
	}
}

// Generate builds the report for one dataset. Cancellation is checked between stages.
func (s *DashboardService) Generate(ctx context.Context, repo domain.RecordRepository) (domain.Report, normalizer.Stats, error) {
	log := s.log.WithFields(logrus.Fields{
		"run_id": uuid.NewString(),
		"source": repo.Source(),
	})

	records, err := repo.ReadRecords()
	if err != nil {
		return domain.Report{}, normalizer.Stats{}, fmt.Errorf("loading records: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return domain.Report{}, normalizer.Stats{}, err
	}

	txns, stats := s.normalizer.Normalize(records)
	log.WithFields(logrus.Fields{
		"rows_read":    stats.RowsRead,
		"transactions": stats.Transactions,
		"rows_dropped": stats.Dropped(),
		"repaired":     stats.RepairedDescription,
	}).Info("normalized records")

	if len(txns) == 0 {
		return domain.Report{}, stats, fmt.Errorf("%s: %w", repo.Source(), domain.ErrNoValidData)
	}

	if err := ctx.Err(); err != nil {
		return domain.Report{}, stats, err
	}

	enriched := analysis.Enrich(txns, s.categorizer)

	if err := ctx.Err(); err != nil {
		return domain.Report{}, stats, err
	}

	r, err := s.aggregator.Aggregate(enriched)
	if err != nil {
		return domain.Report{}, stats, fmt.Errorf("aggregating transactions: %w", err)
	}

	log.WithField("total_spent", r.Summary.TotalSpent.StringFixed(2)).Info("report generated")

	return r, stats, nil
}

// Publish generates the report, formats it and hands it to sink. Nothing is written when generation fails.
func (s *DashboardService) Publish(ctx context.Context, repo domain.RecordRepository, formatter report.OutputFormatter, sink report.Sink) (normalizer.Stats, error) {
	r, stats, err := s.Generate(ctx, repo)
	if err != nil {
		return stats, err
	}

	output, err := formatter.Format(r)
	if err != nil {
		return stats, fmt.Errorf("formatting report: %w", err)
	}

	if err := sink.Write(output); err != nil {
		return stats, fmt.Errorf("writing report to %s: %w", sink.Name(), err)
	}

	s.log.WithField("destination", sink.Name()).Info("report written")

	return stats, nil
}
