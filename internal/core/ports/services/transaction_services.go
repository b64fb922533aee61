package services

import (
	"context"

	"github.com/SscSPs/simcard_ledger/internal/core/domain"
	"github.com/SscSPs/simcard_ledger/internal/dto"
)

// TransactionReaderSvc defines read operations for the ledger
type TransactionReaderSvc interface {
	GetTransactionByID(ctx context.Context, txID int64) (*domain.Transaction, error)
	// ListTransactions lists transactions newest first, one page at a time when params.Limit is set.
	ListTransactions(ctx context.Context, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)
	ListPayments(ctx context.Context, txID int64) ([]domain.Payment, error)
}

// TransactionWriterSvc defines write operations for the ledger
type TransactionWriterSvc interface {
	// CreateTransaction records a transaction and its split payments atomically.
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error)
	UpdateTransaction(ctx context.Context, txID int64, req dto.UpdateTransactionRequest) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, txID int64) error

	AddPayment(ctx context.Context, txID int64, req dto.CreatePaymentRequest) (*domain.Payment, error)
	DeletePayment(ctx context.Context, paymentID int64) error
}

// TransactionSvcFacade combines all transaction service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
