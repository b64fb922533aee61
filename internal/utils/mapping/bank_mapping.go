package mapping

import (
	"github.com/SscSPs/simcard_ledger/internal/core/domain"
	"github.com/SscSPs/simcard_ledger/internal/models"
)

func ToDomainBank(m models.Bank) domain.Bank {
	return domain.Bank{
		ID:            m.ID,
		Name:          m.Name,
		AccountNumber: m.AccountNumber,
		Owner:         m.Owner,
		Notes:         m.Notes,
	}
}

func ToDomainBankSlice(ms []models.Bank) []domain.Bank {
	ds := make([]domain.Bank, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBank(m)
	}
	return ds
}

func ToDomainCheck(m models.Check) domain.Check {
	return domain.Check{
		ID:          m.ID,
		CheckNumber: m.CheckNumber,
		Type:        domain.CheckType(m.Type),
		BankID:      m.BankID,
		BankName:    m.BankName,
		Amount:      m.Amount,
		DueDate:     m.DueDate,
		Status:      domain.CheckStatus(m.Status),
		Notes:       m.Notes,
	}
}

func ToDomainCheckSlice(ms []models.Check) []domain.Check {
	ds := make([]domain.Check, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCheck(m)
	}
	return ds
}
