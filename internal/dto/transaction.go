package dto

import (
	"github.com/SscSPs/simcard_ledger/internal/core/domain"
	"github.com/SscSPs/simcard_ledger/internal/utils/accounting"
)

// CreatePaymentRequest defines one split payment.
type CreatePaymentRequest struct {
	PaymentMethod   string `json:"paymentMethod" binding:"required"`
	Amount          int64  `json:"amount" binding:"required,gt=0"`
	BankAccount     string `json:"bankAccount"`
	ReferenceNumber string `json:"referenceNumber"`
	Notes           string `json:"notes"`
}

// ToDomain converts the request into a payment of the given transaction.
func (r CreatePaymentRequest) ToDomain(txID int64) domain.Payment {
	return domain.Payment{
		TransactionID:   txID,
		PaymentMethod:   r.PaymentMethod,
		Amount:          r.Amount,
		BankAccount:     r.BankAccount,
		ReferenceNumber: r.ReferenceNumber,
		Notes:           r.Notes,
	}
}

// CreateTransactionRequest defines the data needed to record a ledger transaction.
// Direction may be omitted when Type starts with a receipt or payment label.
type CreateTransactionRequest struct {
	Type            string                 `json:"type" binding:"required"`
	Direction       domain.Direction       `json:"direction" binding:"omitempty,oneof=inflow outflow"`
	Amount          int64                  `json:"amount" binding:"required,gt=0"`
	Description     string                 `json:"description"`
	ContractFile    string                 `json:"contractFile"`
	PartyID         *int64                 `json:"partyId"`
	SimCardID       *int64                 `json:"simCardId"`
	PaymentMethod   string                 `json:"paymentMethod"`
	BankAccount     string                 `json:"bankAccount"`
	ReferenceNumber string                 `json:"referenceNumber"`
	Payments        []CreatePaymentRequest `json:"payments" binding:"omitempty,dive"`
}

// UpdateTransactionRequest rewrites the editable fields of a transaction.
type UpdateTransactionRequest struct {
	Type        string `json:"type" binding:"required"`
	Amount      int64  `json:"amount" binding:"required,gt=0"`
	Description string `json:"description"`
}

// TransactionResponse is a transaction together with its signed amount.
// SignedAmount is omitted for rows whose direction is unknown.
type TransactionResponse struct {
	domain.Transaction
	SignedAmount *int64 `json:"signedAmount,omitempty"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	res := TransactionResponse{Transaction: *txn}
	if signed, err := accounting.SignedAmount(*txn); err == nil {
		res.SignedAmount = &signed
	}
	return res
}

// ListTransactionsParams defines the optional paging of the transaction listing.
// Without a limit every transaction is returned.
type ListTransactionsParams struct {
	Limit     int    `form:"limit" binding:"omitempty,min=1,max=500"`
	NextToken string `form:"nextToken"`
}

// ListTransactionsResponse wraps a transaction listing.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ToListTransactionsResponse converts a slice of domain transactions.
func ToListTransactionsResponse(txns []domain.Transaction, nextToken *string) *ListTransactionsResponse {
	res := make([]TransactionResponse, len(txns))
	for i := range txns {
		res[i] = ToTransactionResponse(&txns[i])
	}
	return &ListTransactionsResponse{Transactions: res, NextToken: nextToken}
}

// ListPaymentsResponse wraps the split payments of a transaction.
type ListPaymentsResponse struct {
	Payments []domain.Payment `json:"payments"`
}

// IDResponse carries the id of a created row.
type IDResponse struct {
	ID int64 `json:"id"`
}
