package mapping

import (
	"github.com/SscSPs/simcard_ledger/internal/core/domain"
	"github.com/SscSPs/simcard_ledger/internal/models"
)

// ToModelSimCard converts a domain SimCard to a model SimCard
func ToModelSimCard(d domain.SimCard) models.SimCard {
	m := models.SimCard{
		ID:             d.ID,
		Number:         d.Number,
		Operator:       string(d.Operator),
		Status:         string(d.Status),
		PurchaseDate:   d.PurchaseDate,
		PurchasePrice:  NullInt64(d.PurchasePrice),
		SalePrice:      NullInt64(d.SalePrice),
		CurrentOwnerID: NullInt64(d.CurrentOwnerID),
		OwnerName:      d.OwnerName,
		Notes:          d.Notes,
	}
	if d.SaleDate != nil {
		m.SaleDate = NullString(*d.SaleDate)
	}
	return m
}

// ToDomainSimCard converts a model SimCard to a domain SimCard
func ToDomainSimCard(m models.SimCard) domain.SimCard {
	return domain.SimCard{
		ID:             m.ID,
		Number:         m.Number,
		Operator:       domain.Operator(m.Operator),
		Status:         domain.SimStatus(m.Status),
		PurchaseDate:   m.PurchaseDate,
		PurchasePrice:  Int64Ptr(m.PurchasePrice),
		SaleDate:       StringPtr(m.SaleDate),
		SalePrice:      Int64Ptr(m.SalePrice),
		CurrentOwnerID: Int64Ptr(m.CurrentOwnerID),
		OwnerName:      m.OwnerName,
		Notes:          m.Notes,
	}
}

// ToDomainSimCardSlice converts a slice of model SimCards to domain SimCards
func ToDomainSimCardSlice(ms []models.SimCard) []domain.SimCard {
	ds := make([]domain.SimCard, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSimCard(m)
	}
	return ds
}
