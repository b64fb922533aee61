package services

import (
	"context"

	"github.com/SscSPs/simcard_ledger/internal/core/domain"
	"github.com/SscSPs/simcard_ledger/internal/dto"
)

// ReportingService defines the interface for financial reporting operations
type ReportingService interface {
	// FinanceSummary totals income and outcome over the whole ledger.
	FinanceSummary(ctx context.Context) (*domain.FinanceSummary, error)

	// MonthlyReport returns income, expense and balance per month inside the optional bounds.
	MonthlyReport(ctx context.Context, params dto.ReportPeriodParams) ([]domain.MonthlyRow, error)

	// ByOperatorReport returns the per-carrier totals of SIM-linked transactions.
	ByOperatorReport(ctx context.Context, params dto.ReportPeriodParams) ([]domain.OperatorRow, error)
}
