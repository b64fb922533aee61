package domain

// FinanceSummary totals the whole ledger.
type FinanceSummary struct {
	TotalIncome  int64 `json:"totalIncome"`
	TotalOutcome int64 `json:"totalOutcome"`
	Balance      int64 `json:"balance"`
}

// MonthlyRow is one YYYY-MM bucket of the monthly report.
type MonthlyRow struct {
	Month   string `json:"month"`
	Income  int64  `json:"income"`
	Expense int64  `json:"expense"`
	Balance int64  `json:"balance"`
}

// OperatorRow aggregates transactions linked to SIM cards of one carrier.
type OperatorRow struct {
	Operator         Operator `json:"operator"`
	TransactionCount int64    `json:"transactionCount"`
	TotalAmount      int64    `json:"totalAmount"`
}

// ReportPeriod bounds a report by occurred_at. Either end may be nil.
// Bounds are inclusive and compared as text, so a bare date for To is
// widened to the end of that day by the caller.
type ReportPeriod struct {
	From *string
	To   *string
}
