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

// partyService implements the PartySvcFacade interface
type partyService struct {
	BaseService
	partyRepo portsrepo.PartyRepositoryFacade
}

// NewPartyService creates a new party service with the provided options
func NewPartyService(repo portsrepo.PartyRepositoryFacade, options ...ServiceOption) portssvc.PartySvcFacade {
	return &partyService{
		BaseService: newBaseService(options),
		partyRepo:   repo,
	}
}

var _ portssvc.PartySvcFacade = (*partyService)(nil)

func (s *partyService) CreateParty(ctx context.Context, req dto.CreatePartyRequest) (*domain.Party, error) {
	party := domain.Party{
		Name:           req.Name,
		Phone:          req.Phone,
		Mobile:         req.Mobile,
		NationalID:     req.NationalID,
		Address:        req.Address,
		Type:           req.Type,
		AccountStatus:  req.AccountStatus,
		InitialBalance: req.InitialBalance,
		Notes:          req.Notes,
	}
	if party.AccountStatus == "" {
		party.AccountStatus = domain.StatusCreditor
	}

	if party.Name == "" {
		return nil, apperrors.Validationf("party name is required")
	}
	if !domain.ValidNationalID(party.NationalID) {
		return nil, apperrors.Validationf("invalid national id %q", party.NationalID)
	}
	if !party.Type.Valid() {
		return nil, apperrors.Validationf("invalid party type %q", party.Type)
	}
	if !party.AccountStatus.Valid() {
		return nil, apperrors.Validationf("invalid account status %q", party.AccountStatus)
	}

	id, err := s.partyRepo.SaveParty(ctx, party)
	if err != nil {
		s.LogError(ctx, err, "Failed to save party", slog.String("name", party.Name))
		return nil, err
	}
	party.ID = id

	s.LogInfo(ctx, "Party created successfully", slog.Int64("party_id", id))
	return &party, nil
}

func (s *partyService) GetPartyByID(ctx context.Context, partyID int64) (*domain.Party, error) {
	party, err := s.partyRepo.FindPartyByID(ctx, partyID)
	if err != nil {
		return nil, err
	}
	return party, nil
}

func (s *partyService) ListParties(ctx context.Context) ([]domain.Party, error) {
	parties, err := s.partyRepo.ListParties(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list parties")
		return nil, fmt.Errorf("failed to list parties: %w", err)
	}
	if parties == nil {
		return []domain.Party{}, nil
	}
	return parties, nil
}

// DeleteParty refuses to remove a party that transactions or SIM cards still point at.
func (s *partyService) DeleteParty(ctx context.Context, partyID int64) error {
	if _, err := s.partyRepo.FindPartyByID(ctx, partyID); err != nil {
		return err
	}

	refs, err := s.partyRepo.CountPartyReferences(ctx, partyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to count party references", slog.Int64("party_id", partyID))
		return err
	}
	if refs > 0 {
		return fmt.Errorf("party %d is referenced by %d records: %w", partyID, refs, apperrors.ErrReferenced)
	}

	if err := s.partyRepo.DeleteParty(ctx, partyID); err != nil {
		s.LogError(ctx, err, "Failed to delete party", slog.Int64("party_id", partyID))
		return err
	}

	s.LogInfo(ctx, "Party deleted", slog.Int64("party_id", partyID))
	return nil
}
