package dto

import "github.com/SscSPs/simcard_ledger/internal/core/domain"

// CreateSimCardRequest defines the data needed to register a SIM card.
type CreateSimCardRequest struct {
	Number        string          `json:"number" binding:"required,simnumber"`
	Operator      domain.Operator `json:"operator" binding:"required,oneof=hamrah-aval irancell rightel"`
	PurchasePrice *int64          `json:"purchasePrice" binding:"omitempty,gte=0"`
	PurchaseDate  string          `json:"purchaseDate"` // YYYY-MM-DD, defaults to today
	OwnerID       *int64          `json:"ownerId"`
	Notes         string          `json:"notes"`
}

// TransferSimCardRequest moves a SIM card to a new owner.
type TransferSimCardRequest struct {
	NewOwnerID int64  `json:"newOwnerId" binding:"required,gt=0"`
	SalePrice  *int64 `json:"salePrice" binding:"omitempty,gte=0"`
}

// UpdateSimStatusRequest changes the status of a SIM card.
type UpdateSimStatusRequest struct {
	Status domain.SimStatus `json:"status" binding:"required,oneof=active inactive blocked"`
}

// ListSimCardsResponse wraps a SIM card listing.
type ListSimCardsResponse struct {
	SimCards []domain.SimCard `json:"simCards"`
}
