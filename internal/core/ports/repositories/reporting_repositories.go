package repositories

import (
	"context"

	"github.com/SscSPs/simcard_ledger/internal/core/domain"
)

// ReportingRepository defines the aggregate queries behind the reports
type ReportingRepository interface {
	// GetFinanceSummary totals inflow and outflow over the whole ledger.
	GetFinanceSummary(ctx context.Context) (domain.FinanceSummary, error)

	// GetMonthlyReport groups transactions into YYYY-MM buckets, oldest first.
	GetMonthlyReport(ctx context.Context, period domain.ReportPeriod) ([]domain.MonthlyRow, error)

	// GetOperatorReport aggregates SIM-linked transactions by carrier.
	// A store without the sim_cards table yields an empty result.
	GetOperatorReport(ctx context.Context, period domain.ReportPeriod) ([]domain.OperatorRow, error)
}
