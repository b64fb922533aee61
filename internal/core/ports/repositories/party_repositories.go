package repositories

import (
	"context"

	"github.com/SscSPs/simcard_ledger/internal/core/domain"
)

// PartyReader defines read operations for party data
type PartyReader interface {
	// FindPartyByID retrieves a party by id. Returns apperrors.ErrNotFound when absent.
	FindPartyByID(ctx context.Context, partyID int64) (*domain.Party, error)

	// FindPartyByNationalID retrieves the first party registered with the national id.
	FindPartyByNationalID(ctx context.Context, nationalID string) (*domain.Party, error)

	// ListParties retrieves all parties ordered by name.
	ListParties(ctx context.Context) ([]domain.Party, error)

	// CountPartyReferences counts transactions and SIM cards pointing at the party.
	CountPartyReferences(ctx context.Context, partyID int64) (int64, error)
}

// PartyWriter defines write operations for party data
type PartyWriter interface {
	// SaveParty inserts a party and returns its id.
	SaveParty(ctx context.Context, party domain.Party) (int64, error)

	// DeleteParty removes a party row.
	DeleteParty(ctx context.Context, partyID int64) error
}

// PartyRepositoryFacade combines all party-related repository interfaces
type PartyRepositoryFacade interface {
	PartyReader
	PartyWriter
}
