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

// simCardService implements the SimCardSvcFacade interface
type simCardService struct {
	BaseService
	simRepo   portsrepo.SimCardRepositoryFacade
	partyRepo portsrepo.PartyReader
}

// NewSimCardService creates a new SIM card service. Owners are checked against partyRepo.
func NewSimCardService(repo portsrepo.SimCardRepositoryFacade, partyRepo portsrepo.PartyReader, options ...ServiceOption) portssvc.SimCardSvcFacade {
	return &simCardService{
		BaseService: newBaseService(options),
		simRepo:     repo,
		partyRepo:   partyRepo,
	}
}

var _ portssvc.SimCardSvcFacade = (*simCardService)(nil)

func (s *simCardService) CreateSimCard(ctx context.Context, req dto.CreateSimCardRequest) (*domain.SimCard, error) {
	if !domain.ValidSimNumber(req.Number) {
		return nil, apperrors.Validationf("invalid sim number %q", req.Number)
	}
	if !req.Operator.Valid() {
		return nil, apperrors.Validationf("invalid operator %q", req.Operator)
	}

	purchaseDate := req.PurchaseDate
	if purchaseDate == "" {
		purchaseDate = s.Today()
	} else if !domain.IsDate(purchaseDate) {
		return nil, apperrors.Validationf("purchase date %q is not YYYY-MM-DD", purchaseDate)
	}

	sim := domain.SimCard{
		Number:         req.Number,
		Operator:       req.Operator,
		Status:         domain.SimActive,
		PurchaseDate:   purchaseDate,
		PurchasePrice:  req.PurchasePrice,
		CurrentOwnerID: req.OwnerID,
		Notes:          req.Notes,
	}

	if req.OwnerID != nil {
		owner, err := s.partyRepo.FindPartyByID(ctx, *req.OwnerID)
		if err != nil {
			s.LogError(ctx, err, "Owner of new SIM card not found", slog.Int64("owner_id", *req.OwnerID))
			return nil, fmt.Errorf("invalid owner: %w", err)
		}
		sim.OwnerName = owner.Name
	}

	id, err := s.simRepo.SaveSimCard(ctx, sim)
	if err != nil {
		s.LogError(ctx, err, "Failed to save SIM card", slog.String("number", sim.Number))
		return nil, err
	}
	sim.ID = id

	s.LogInfo(ctx, "SIM card registered", slog.Int64("sim_id", id), slog.String("operator", string(sim.Operator)))
	return &sim, nil
}

func (s *simCardService) GetSimCardByID(ctx context.Context, simID int64) (*domain.SimCard, error) {
	return s.simRepo.FindSimCardByID(ctx, simID)
}

func (s *simCardService) ListSimCards(ctx context.Context) ([]domain.SimCard, error) {
	sims, err := s.simRepo.ListSimCards(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list SIM cards")
		return nil, fmt.Errorf("failed to list sim cards: %w", err)
	}
	if sims == nil {
		return []domain.SimCard{}, nil
	}
	return sims, nil
}

// TransferOwnership records the sale of a card. Status is left as it is.
func (s *simCardService) TransferOwnership(ctx context.Context, simID int64, req dto.TransferSimCardRequest) (*domain.SimCard, error) {
	if _, err := s.simRepo.FindSimCardByID(ctx, simID); err != nil {
		return nil, err
	}
	if _, err := s.partyRepo.FindPartyByID(ctx, req.NewOwnerID); err != nil {
		s.LogError(ctx, err, "New owner not found", slog.Int64("owner_id", req.NewOwnerID))
		return nil, fmt.Errorf("invalid new owner: %w", err)
	}
	if req.SalePrice != nil && *req.SalePrice < 0 {
		return nil, apperrors.Validationf("sale price must not be negative")
	}

	saleDate := s.Today()
	if err := s.simRepo.TransferSimCard(ctx, simID, req.NewOwnerID, req.SalePrice, saleDate); err != nil {
		s.LogError(ctx, err, "Failed to transfer SIM card",
			slog.Int64("sim_id", simID),
			slog.Int64("owner_id", req.NewOwnerID))
		return nil, err
	}

	s.LogInfo(ctx, "SIM card transferred",
		slog.Int64("sim_id", simID),
		slog.Int64("owner_id", req.NewOwnerID),
		slog.String("sale_date", saleDate))
	return s.simRepo.FindSimCardByID(ctx, simID)
}

func (s *simCardService) SetStatus(ctx context.Context, simID int64, status domain.SimStatus) (*domain.SimCard, error) {
	if !status.Valid() {
		return nil, apperrors.Validationf("invalid sim status %q", status)
	}
	if err := s.simRepo.UpdateSimCardStatus(ctx, simID, status); err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "SIM card status changed", slog.Int64("sim_id", simID), slog.String("status", string(status)))
	return s.simRepo.FindSimCardByID(ctx, simID)
}
