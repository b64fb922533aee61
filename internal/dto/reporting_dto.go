package dto

import "github.com/SscSPs/simcard_ledger/internal/core/domain"

// ReportPeriodParams defines the optional bounds of a report.
// Values are YYYY-MM-DD dates or YYYY-MM-DD HH:MM:SS timestamps.
type ReportPeriodParams struct {
	From string `form:"from"`
	To   string `form:"to"`
}

// MonthlyReportResponse represents the monthly income/expense series.
type MonthlyReportResponse struct {
	From string              `json:"from,omitempty"`
	To   string              `json:"to,omitempty"`
	Rows []domain.MonthlyRow `json:"rows"`
}

// OperatorReportResponse represents the per-carrier breakdown.
type OperatorReportResponse struct {
	From string               `json:"from,omitempty"`
	To   string               `json:"to,omitempty"`
	Rows []domain.OperatorRow `json:"rows"`
}
