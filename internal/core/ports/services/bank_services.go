package services

import (
	"context"

	"github.com/SscSPs/simcard_ledger/internal/core/domain"
	"github.com/SscSPs/simcard_ledger/internal/dto"
)

// BankSvcFacade defines operations on bank accounts
type BankSvcFacade interface {
	CreateBank(ctx context.Context, req dto.CreateBankRequest) (*domain.Bank, error)
	GetBankByID(ctx context.Context, bankID int64) (*domain.Bank, error)
	ListBanks(ctx context.Context) ([]domain.Bank, error)
}

// CheckReaderSvc defines read operations for checks
type CheckReaderSvc interface {
	ListChecks(ctx context.Context) ([]domain.Check, error)
}

// CheckWriterSvc defines write operations for checks
type CheckWriterSvc interface {
	CreateCheck(ctx context.Context, req dto.CreateCheckRequest) (*domain.Check, error)
	UpdateCheck(ctx context.Context, checkID int64, req dto.UpdateCheckRequest) (*domain.Check, error)
	DeleteCheck(ctx context.Context, checkID int64) error
}

// CheckSvcFacade combines all check service interfaces
type CheckSvcFacade interface {
	CheckReaderSvc
	CheckWriterSvc
}
