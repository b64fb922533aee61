package repositories

import (
	"context"

	"github.com/SscSPs/simcard_ledger/internal/core/domain"
)

// SimCardReader defines read operations for SIM card data
type SimCardReader interface {
	FindSimCardByID(ctx context.Context, simID int64) (*domain.SimCard, error)

	// FindSimCardByNumber retrieves a card by its phone number.
	FindSimCardByNumber(ctx context.Context, number string) (*domain.SimCard, error)

	// ListSimCards retrieves all cards with their owner name, ordered by number.
	ListSimCards(ctx context.Context) ([]domain.SimCard, error)
}

// SimCardWriter defines write operations for SIM card data
type SimCardWriter interface {
	// SaveSimCard inserts a card and returns its id. A taken number yields apperrors.ErrDuplicate.
	SaveSimCard(ctx context.Context, sim domain.SimCard) (int64, error)

	// TransferSimCard sets owner, sale price and sale date in a single statement.
	TransferSimCard(ctx context.Context, simID int64, ownerID int64, salePrice *int64, saleDate string) error

	// UpdateSimCardStatus changes the lifecycle status of a card.
	UpdateSimCardStatus(ctx context.Context, simID int64, status domain.SimStatus) error
}

// SimCardRepositoryFacade combines all SIM card repository interfaces
type SimCardRepositoryFacade interface {
	SimCardReader
	SimCardWriter
}
