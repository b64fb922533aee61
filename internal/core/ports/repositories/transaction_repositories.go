package repositories

import (
	"context"

	"github.com/SscSPs/simcard_ledger/internal/core/domain"
)

// TransactionReader defines read operations for ledger transactions
type TransactionReader interface {
	FindTransactionByID(ctx context.Context, txID int64) (*domain.Transaction, error)

	// ListTransactions retrieves transactions joined with party name and SIM number,
	// newest first by occurred_at then id. A positive limit caps the result and
	// after, when set, starts the listing just past that cursor.
	ListTransactions(ctx context.Context, limit int, after *domain.TransactionCursor) ([]domain.Transaction, error)

	// ListPayments retrieves the split payments of one transaction in insertion order.
	ListPayments(ctx context.Context, txID int64) ([]domain.Payment, error)
}

// TransactionWriter defines write operations for ledger transactions
type TransactionWriter interface {
	// SaveTransaction inserts the transaction and its split payments in one
	// database transaction and returns the new transaction id.
	SaveTransaction(ctx context.Context, txn domain.Transaction, payments []domain.Payment) (int64, error)

	// UpdateTransaction rewrites the label, direction, amount and description.
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error

	// DeleteTransaction removes the transaction and its payments in one database transaction.
	DeleteTransaction(ctx context.Context, txID int64) error

	// SavePayment appends a split payment to an existing transaction.
	SavePayment(ctx context.Context, payment domain.Payment) (int64, error)

	DeletePayment(ctx context.Context, paymentID int64) error
}

// TransactionRepositoryFacade combines all transaction repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
