package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/simcard_ledger/internal/apperrors"
	"github.com/SscSPs/simcard_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/simcard_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/simcard_ledger/internal/core/ports/services"
	"github.com/SscSPs/simcard_ledger/internal/dto"
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(repo portsrepo.ReportingRepository, options ...ServiceOption) portssvc.ReportingService {
	return &reportingService{
		BaseService:   newBaseService(options),
		reportingRepo: repo,
	}
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// parseBound accepts a YYYY-MM-DD date or a full timestamp. A bare date used as
// an upper bound is widened to the last second of that day.
func parseBound(value string, upper bool) (*string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	if _, err := time.Parse(domain.TimestampLayout, value); err == nil {
		return &value, nil
	}
	if !domain.IsDate(value) {
		return nil, apperrors.Validationf("invalid date %q, expected YYYY-MM-DD", value)
	}
	if upper {
		value += " 23:59:59"
	}
	return &value, nil
}

// toReportPeriod validates the query bounds of a report.
func toReportPeriod(params dto.ReportPeriodParams) (domain.ReportPeriod, error) {
	from, err := parseBound(params.From, false)
	if err != nil {
		return domain.ReportPeriod{}, err
	}
	to, err := parseBound(params.To, true)
	if err != nil {
		return domain.ReportPeriod{}, err
	}
	if from != nil && to != nil && *from > *to {
		return domain.ReportPeriod{}, apperrors.Validationf("from %q is after to %q", params.From, params.To)
	}
	return domain.ReportPeriod{From: from, To: to}, nil
}

// FinanceSummary totals income and outcome over the whole ledger
func (s *reportingService) FinanceSummary(ctx context.Context) (*domain.FinanceSummary, error) {
	summary, err := s.reportingRepo.GetFinanceSummary(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve finance summary")
		return nil, fmt.Errorf("failed to retrieve finance summary: %w", err)
	}

	s.LogInfo(ctx, "Finance summary generated successfully",
		slog.Int64("income", summary.TotalIncome),
		slog.Int64("outcome", summary.TotalOutcome))
	return &summary, nil
}

// MonthlyReport generates the income/expense series per month
func (s *reportingService) MonthlyReport(ctx context.Context, params dto.ReportPeriodParams) ([]domain.MonthlyRow, error) {
	period, err := toReportPeriod(params)
	if err != nil {
		return nil, err
	}

	rows, err := s.reportingRepo.GetMonthlyReport(ctx, period)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve monthly report",
			slog.String("from", params.From),
			slog.String("to", params.To))
		return nil, fmt.Errorf("failed to retrieve monthly report: %w", err)
	}

	s.LogInfo(ctx, "Monthly report generated successfully", slog.Int("row_count", len(rows)))
	return rows, nil
}

// ByOperatorReport generates per-carrier totals of SIM-linked transactions
func (s *reportingService) ByOperatorReport(ctx context.Context, params dto.ReportPeriodParams) ([]domain.OperatorRow, error) {
	period, err := toReportPeriod(params)
	if err != nil {
		return nil, err
	}

	rows, err := s.reportingRepo.GetOperatorReport(ctx, period)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve operator report",
			slog.String("from", params.From),
			slog.String("to", params.To))
		return nil, fmt.Errorf("failed to retrieve operator report: %w", err)
	}

	s.LogInfo(ctx, "Operator report generated successfully", slog.Int("row_count", len(rows)))
	return rows, nil
}
