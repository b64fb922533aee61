package services

import (
	"context"

	"github.com/SscSPs/simcard_ledger/internal/core/domain"
	"github.com/SscSPs/simcard_ledger/internal/dto"
)

// PartyReaderSvc defines read operations for parties
type PartyReaderSvc interface {
	GetPartyByID(ctx context.Context, partyID int64) (*domain.Party, error)
	ListParties(ctx context.Context) ([]domain.Party, error)
}

// PartyWriterSvc defines write operations for parties
type PartyWriterSvc interface {
	CreateParty(ctx context.Context, req dto.CreatePartyRequest) (*domain.Party, error)

	// DeleteParty removes a party nothing refers to. Referenced parties yield apperrors.ErrReferenced.
	DeleteParty(ctx context.Context, partyID int64) error
}

// PartySvcFacade combines all party-related service interfaces
type PartySvcFacade interface {
	PartyReaderSvc
	PartyWriterSvc
}
