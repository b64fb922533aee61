package sqlstore

import (
	"context"
	"fmt"
	"strings"

	"github.com/SscSPs/simcard_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/simcard_ledger/internal/core/ports/repositories"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

func newReportingRepository(base BaseRepository) portsrepo.ReportingRepository {
	return &reportingRepository{BaseRepository: base}
}

// periodFilter renders the inclusive occurred_at bounds of a period.
func periodFilter(column string, period domain.ReportPeriod) (string, []any) {
	var conds []string
	var args []any
	if period.From != nil {
		conds = append(conds, column+" >= ?")
		args = append(args, *period.From)
	}
	if period.To != nil {
		conds = append(conds, column+" <= ?")
		args = append(args, *period.To)
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// GetFinanceSummary totals the ledger by direction.
func (r *reportingRepository) GetFinanceSummary(ctx context.Context) (domain.FinanceSummary, error) {
	query := `
		SELECT
			CAST(COALESCE(SUM(CASE WHEN direction = 'inflow' THEN amount ELSE 0 END), 0) AS BIGINT),
			CAST(COALESCE(SUM(CASE WHEN direction = 'outflow' THEN amount ELSE 0 END), 0) AS BIGINT)
		FROM transactions`

	var s domain.FinanceSummary
	if err := r.DB.QueryRowContext(ctx, query).Scan(&s.TotalIncome, &s.TotalOutcome); err != nil {
		return domain.FinanceSummary{}, fmt.Errorf("error querying finance summary: %w", err)
	}
	s.Balance = s.TotalIncome - s.TotalOutcome
	return s, nil
}

// GetMonthlyReport groups transactions by the YYYY-MM prefix of occurred_at.
func (r *reportingRepository) GetMonthlyReport(ctx context.Context, period domain.ReportPeriod) ([]domain.MonthlyRow, error) {
	where, args := periodFilter("occurred_at", period)
	query := `
		SELECT
			SUBSTR(occurred_at, 1, 7) AS month,
			CAST(COALESCE(SUM(CASE WHEN direction = 'inflow' THEN amount ELSE 0 END), 0) AS BIGINT) AS income,
			CAST(COALESCE(SUM(CASE WHEN direction = 'outflow' THEN amount ELSE 0 END), 0) AS BIGINT) AS expense
		FROM transactions` + where + `
		GROUP BY SUBSTR(occurred_at, 1, 7)
		ORDER BY month`

	rows, err := r.DB.QueryContext(ctx, r.rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("error querying monthly report: %w", err)
	}
	defer rows.Close()

	result := []domain.MonthlyRow{}
	for rows.Next() {
		var row domain.MonthlyRow
		if err := rows.Scan(&row.Month, &row.Income, &row.Expense); err != nil {
			return nil, fmt.Errorf("error scanning monthly row: %w", err)
		}
		row.Balance = row.Income - row.Expense
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating monthly rows: %w", err)
	}
	return result, nil
}

// GetOperatorReport aggregates SIM-linked transactions per carrier. A store
// whose sim_cards table has not been created yet has nothing to report.
func (r *reportingRepository) GetOperatorReport(ctx context.Context, period domain.ReportPeriod) ([]domain.OperatorRow, error) {
	where, args := periodFilter("t.occurred_at", period)
	query := `
		SELECT s.operator, COUNT(t.id), CAST(COALESCE(SUM(t.amount), 0) AS BIGINT)
		FROM transactions t
		JOIN sim_cards s ON s.id = t.sim_card_id` + where + `
		GROUP BY s.operator
		ORDER BY s.operator`

	rows, err := r.DB.QueryContext(ctx, r.rebind(query), args...)
	if err != nil {
		if isNoTable(err) {
			return []domain.OperatorRow{}, nil
		}
		return nil, fmt.Errorf("error querying operator report: %w", err)
	}
	defer rows.Close()

	result := []domain.OperatorRow{}
	for rows.Next() {
		var row domain.OperatorRow
		var operator string
		if err := rows.Scan(&operator, &row.TransactionCount, &row.TotalAmount); err != nil {
			return nil, fmt.Errorf("error scanning operator row: %w", err)
		}
		row.Operator = domain.Operator(operator)
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating operator rows: %w", err)
	}
	return result, nil
}
