package dto

import "github.com/SscSPs/simcard_ledger/internal/core/domain"

// CreateBankRequest defines the data needed to register a bank account.
type CreateBankRequest struct {
	Name          string `json:"name" binding:"required"`
	AccountNumber string `json:"accountNumber" binding:"required"`
	Owner         string `json:"owner"`
	Notes         string `json:"notes"`
}

// ListBanksResponse wraps a bank listing.
type ListBanksResponse struct {
	Banks []domain.Bank `json:"banks"`
}

// CreateCheckRequest defines the data needed to record a check.
type CreateCheckRequest struct {
	CheckNumber string             `json:"checkNumber" binding:"required"`
	Type        domain.CheckType   `json:"type" binding:"required,oneof=received paid"`
	BankID      int64              `json:"bankId" binding:"required,gt=0"`
	Amount      int64              `json:"amount" binding:"required,gt=0"`
	DueDate     string             `json:"dueDate" binding:"required"`
	Status      domain.CheckStatus `json:"status" binding:"omitempty,oneof=in-progress cleared bounced"` // defaults to in-progress
	Notes       string             `json:"notes"`
}

// UpdateCheckRequest defines the data allowed for updating a check.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateCheckRequest struct {
	CheckNumber *string             `json:"checkNumber" binding:"omitempty,min=1"`
	Type        *domain.CheckType   `json:"type" binding:"omitempty,oneof=received paid"`
	BankID      *int64              `json:"bankId" binding:"omitempty,gt=0"`
	Amount      *int64              `json:"amount" binding:"omitempty,gt=0"`
	DueDate     *string             `json:"dueDate"`
	Status      *domain.CheckStatus `json:"status" binding:"omitempty,oneof=in-progress cleared bounced"`
	Notes       *string             `json:"notes"`
}

// ToCheckUpdate converts the request into a domain update.
func (r UpdateCheckRequest) ToCheckUpdate() domain.CheckUpdate {
	return domain.CheckUpdate{
		CheckNumber: r.CheckNumber,
		Type:        r.Type,
		BankID:      r.BankID,
		Amount:      r.Amount,
		DueDate:     r.DueDate,
		Status:      r.Status,
		Notes:       r.Notes,
	}
}

// ListChecksResponse wraps a check listing.
type ListChecksResponse struct {
	Checks []domain.Check `json:"checks"`
}
