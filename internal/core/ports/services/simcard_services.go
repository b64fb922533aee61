package services

import (
	"context"

	"github.com/SscSPs/simcard_ledger/internal/core/domain"
	"github.com/SscSPs/simcard_ledger/internal/dto"
)

// SimCardReaderSvc defines read operations for SIM cards
type SimCardReaderSvc interface {
	GetSimCardByID(ctx context.Context, simID int64) (*domain.SimCard, error)
	ListSimCards(ctx context.Context) ([]domain.SimCard, error)
}

// SimCardWriterSvc defines write operations for SIM cards
type SimCardWriterSvc interface {
	CreateSimCard(ctx context.Context, req dto.CreateSimCardRequest) (*domain.SimCard, error)

	// TransferOwnership records the sale of a card to a new owner, dated today.
	TransferOwnership(ctx context.Context, simID int64, req dto.TransferSimCardRequest) (*domain.SimCard, error)

	SetStatus(ctx context.Context, simID int64, status domain.SimStatus) (*domain.SimCard, error)
}

// SimCardSvcFacade combines all SIM card service interfaces
type SimCardSvcFacade interface {
	SimCardReaderSvc
	SimCardWriterSvc
}
