package repositories

import (
	"context"

	"github.com/SscSPs/simcard_ledger/internal/core/domain"
)

// BankReader defines read operations for bank accounts
type BankReader interface {
	FindBankByID(ctx context.Context, bankID int64) (*domain.Bank, error)
	ListBanks(ctx context.Context) ([]domain.Bank, error)
}

// BankWriter defines write operations for bank accounts
type BankWriter interface {
	SaveBank(ctx context.Context, bank domain.Bank) (int64, error)
}

// BankRepositoryFacade combines all bank repository interfaces
type BankRepositoryFacade interface {
	BankReader
	BankWriter
}

// CheckReader defines read operations for checks
type CheckReader interface {
	FindCheckByID(ctx context.Context, checkID int64) (*domain.Check, error)

	// ListChecks retrieves all checks, newest first.
	ListChecks(ctx context.Context) ([]domain.Check, error)
}

// CheckWriter defines write operations for checks
type CheckWriter interface {
	SaveCheck(ctx context.Context, check domain.Check) (int64, error)

	// UpdateCheck applies the non-nil fields of update.
	UpdateCheck(ctx context.Context, checkID int64, update domain.CheckUpdate) error

	// DeleteCheck removes exactly one check. Unknown ids yield apperrors.ErrNotFound.
	DeleteCheck(ctx context.Context, checkID int64) error
}

// CheckRepositoryFacade combines all check repository interfaces
type CheckRepositoryFacade interface {
	CheckReader
	CheckWriter
}
