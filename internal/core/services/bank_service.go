package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/simcard_ledger/internal/apperrors"
	"github.com/SscSPs/simcard_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/simcard_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/simcard_ledger/internal/core/ports/services"
	"github.com/SscSPs/simcard_ledger/internal/dto"
)

type bankService struct {
	BaseService
	bankRepo portsrepo.BankRepositoryFacade
}

func NewBankService(repo portsrepo.BankRepositoryFacade, options ...ServiceOption) portssvc.BankSvcFacade {
	return &bankService{BaseService: newBaseService(options), bankRepo: repo}
}

var _ portssvc.BankSvcFacade = (*bankService)(nil)

func (s *bankService) CreateBank(ctx context.Context, req dto.CreateBankRequest) (*domain.Bank, error) {
	if req.Name == "" || req.AccountNumber == "" {
		return nil, apperrors.Validationf("bank name and account number are required")
	}
	bank := domain.Bank{
		Name:          req.Name,
		AccountNumber: req.AccountNumber,
		Owner:         req.Owner,
		Notes:         req.Notes,
	}
	id, err := s.bankRepo.SaveBank(ctx, bank)
	if err != nil {
		s.LogError(ctx, err, "Failed to save bank", slog.String("name", bank.Name))
		return nil, err
	}
	bank.ID = id
	s.LogInfo(ctx, "Bank created", slog.Int64("bank_id", id))
	return &bank, nil
}

func (s *bankService) GetBankByID(ctx context.Context, bankID int64) (*domain.Bank, error) {
	return s.bankRepo.FindBankByID(ctx, bankID)
}

func (s *bankService) ListBanks(ctx context.Context) ([]domain.Bank, error) {
	banks, err := s.bankRepo.ListBanks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list banks: %w", err)
	}
	if banks == nil {
		return []domain.Bank{}, nil
	}
	return banks, nil
}
