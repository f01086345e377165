package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MrBaoN/RestaurantDashboard/internal/domain"
	"github.com/MrBaoN/RestaurantDashboard/internal/repo"
	"go.uber.org/zap"
)

type ReportService struct {
	reportRepo repo.ReportRepository
	tx         repo.TxRunner
	logger     *zap.SugaredLogger
}

func NewReportService(reportRepo repo.ReportRepository, tx repo.TxRunner, logger *zap.SugaredLogger) *ReportService {
	return &ReportService{
		reportRepo: reportRepo,
		tx:         tx,
		logger:     logger,
	}
}

// Closing reads the daily sales aggregate out and clears it in the same
// transaction: a row is reported exactly once across closings.
func (s *ReportService) Closing(ctx context.Context) (*domain.ClosingReport, error) {
	report := &domain.ClosingReport{
		GeneratedAt: time.Now(),
	}

	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		lines, err := s.reportRepo.ListDaily(ctx)
		if err != nil {
			return err
		}
		report.Lines = lines

		return s.reportRepo.ClearDaily(ctx)
	})
	if err != nil {
		s.logger.Errorw("failed to generate closing report", "error", err)
		return nil, fmt.Errorf("failed to generate closing report: %w", err)
	}

	for _, line := range report.Lines {
		report.GrossTotal += line.Gross
	}

	s.logger.Infow("closing report generated", "lines", len(report.Lines), "gross_total", report.GrossTotal)

	return report, nil
}
