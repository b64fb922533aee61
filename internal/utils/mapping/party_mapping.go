package mapping

import (
	"github.com/SscSPs/simcard_ledger/internal/core/domain"
	"github.com/SscSPs/simcard_ledger/internal/models"
)

// ToModelParty converts a domain Party to a model Party
func ToModelParty(d domain.Party) models.Party {
	return models.Party{
		ID:             d.ID,
		Name:           d.Name,
		Phone:          d.Phone,
		Mobile:         d.Mobile,
		NationalID:     d.NationalID,
		Address:        d.Address,
		Type:           string(d.Type),
		AccountStatus:  string(d.AccountStatus),
		InitialBalance: d.InitialBalance,
		Notes:          d.Notes,
	}
}

// ToDomainParty converts a model Party to a domain Party
func ToDomainParty(m models.Party) domain.Party {
	return domain.Party{
		ID:             m.ID,
		Name:           m.Name,
		Phone:          m.Phone,
		Mobile:         m.Mobile,
		NationalID:     m.NationalID,
		Address:        m.Address,
		Type:           domain.PartyType(m.Type),
		AccountStatus:  domain.AccountStatus(m.AccountStatus),
		InitialBalance: m.InitialBalance,
		Notes:          m.Notes,
	}
}

// ToDomainPartySlice converts a slice of model Parties to domain Parties
func ToDomainPartySlice(ms []models.Party) []domain.Party {
	ds := make([]domain.Party, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainParty(m)
	}
	return ds
}
