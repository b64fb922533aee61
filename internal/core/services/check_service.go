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

// checkService implements the CheckSvcFacade interface
type checkService struct {
	BaseService
	checkRepo portsrepo.CheckRepositoryFacade
	bankRepo  portsrepo.BankReader
}

// NewCheckService creates a new check service. Bank references are checked against bankRepo.
func NewCheckService(repo portsrepo.CheckRepositoryFacade, bankRepo portsrepo.BankReader, options ...ServiceOption) portssvc.CheckSvcFacade {
	return &checkService{
		BaseService: newBaseService(options),
		checkRepo:   repo,
		bankRepo:    bankRepo,
	}
}

var _ portssvc.CheckSvcFacade = (*checkService)(nil)

func (s *checkService) CreateCheck(ctx context.Context, req dto.CreateCheckRequest) (*domain.Check, error) {
	check := domain.Check{
		CheckNumber: req.CheckNumber,
		Type:        req.Type,
		BankID:      req.BankID,
		Amount:      req.Amount,
		DueDate:     req.DueDate,
		Status:      req.Status,
		Notes:       req.Notes,
	}
	if check.Status == "" {
		check.Status = domain.CheckInProgress
	}
	if err := validateCheck(check); err != nil {
		return nil, err
	}

	bank, err := s.bankRepo.FindBankByID(ctx, check.BankID)
	if err != nil {
		s.LogError(ctx, err, "Bank of new check not found", slog.Int64("bank_id", check.BankID))
		return nil, fmt.Errorf("invalid bank: %w", err)
	}
	check.BankName = bank.Name

	id, err := s.checkRepo.SaveCheck(ctx, check)
	if err != nil {
		s.LogError(ctx, err, "Failed to save check", slog.String("check_number", check.CheckNumber))
		return nil, err
	}
	check.ID = id

	s.LogInfo(ctx, "Check recorded", slog.Int64("check_id", id), slog.String("type", string(check.Type)))
	return &check, nil
}

func validateCheck(c domain.Check) error {
	if c.CheckNumber == "" {
		return apperrors.Validationf("check number is required")
	}
	if !c.Type.Valid() {
		return apperrors.Validationf("invalid check type %q", c.Type)
	}
	if !c.Status.Valid() {
		return apperrors.Validationf("invalid check status %q", c.Status)
	}
	if c.Amount <= 0 {
		return apperrors.Validationf("check amount must be positive")
	}
	if c.DueDate != "" && !domain.IsDate(c.DueDate) {
		return apperrors.Validationf("due date %q is not YYYY-MM-DD", c.DueDate)
	}
	return nil
}

func (s *checkService) ListChecks(ctx context.Context) ([]domain.Check, error) {
	checks, err := s.checkRepo.ListChecks(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list checks")
		return nil, fmt.Errorf("failed to list checks: %w", err)
	}
	if checks == nil {
		return []domain.Check{}, nil
	}
	return checks, nil
}

// UpdateCheck applies the provided fields and returns the stored check.
func (s *checkService) UpdateCheck(ctx context.Context, checkID int64, req dto.UpdateCheckRequest) (*domain.Check, error) {
	existing, err := s.checkRepo.FindCheckByID(ctx, checkID)
	if err != nil {
		return nil, err
	}

	update := req.ToCheckUpdate()
	if update.IsEmpty() {
		s.LogDebug(ctx, "No changes detected for check update", slog.Int64("check_id", checkID))
		return existing, nil
	}

	merged := *existing
	if update.CheckNumber != nil {
		merged.CheckNumber = *update.CheckNumber
	}
	if update.Type != nil {
		merged.Type = *update.Type
	}
	if update.Amount != nil {
		merged.Amount = *update.Amount
	}
	if update.DueDate != nil {
		merged.DueDate = *update.DueDate
	}
	if update.Status != nil {
		merged.Status = *update.Status
	}
	if err := validateCheck(merged); err != nil {
		return nil, err
	}
	if update.BankID != nil {
		if _, err := s.bankRepo.FindBankByID(ctx, *update.BankID); err != nil {
			return nil, fmt.Errorf("invalid bank: %w", err)
		}
	}

	if err := s.checkRepo.UpdateCheck(ctx, checkID, update); err != nil {
		s.LogError(ctx, err, "Failed to update check", slog.Int64("check_id", checkID))
		return nil, err
	}

	s.LogInfo(ctx, "Check updated", slog.Int64("check_id", checkID))
	return s.checkRepo.FindCheckByID(ctx, checkID)
}

func (s *checkService) DeleteCheck(ctx context.Context, checkID int64) error {
	if err := s.checkRepo.DeleteCheck(ctx, checkID); err != nil {
		s.LogError(ctx, err, "Failed to delete check", slog.Int64("check_id", checkID))
		return err
	}
	s.LogInfo(ctx, "Check deleted", slog.Int64("check_id", checkID))
	return nil
}
