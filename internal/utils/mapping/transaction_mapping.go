package mapping

import (
	"github.com/SscSPs/simcard_ledger/internal/core/domain"
	"github.com/SscSPs/simcard_ledger/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		ID:              d.ID,
		TxType:          d.Type,
		Direction:       NullString(string(d.Direction)),
		Amount:          d.Amount,
		OccurredAt:      d.OccurredAt,
		Description:     d.Description,
		ContractFile:    d.ContractFile,
		PartyID:         NullInt64(d.PartyID),
		SimCardID:       NullInt64(d.SimCardID),
		PaymentMethod:   d.PaymentMethod,
		BankAccount:     d.BankAccount,
		ReferenceNumber: d.ReferenceNumber,
		PartyName:       d.PartyName,
		SimNumber:       d.SimNumber,
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		ID:              m.ID,
		Type:            m.TxType,
		Direction:       domain.Direction(m.Direction.String),
		Amount:          m.Amount,
		OccurredAt:      m.OccurredAt,
		Description:     m.Description,
		ContractFile:    m.ContractFile,
		PartyID:         Int64Ptr(m.PartyID),
		SimCardID:       Int64Ptr(m.SimCardID),
		PaymentMethod:   m.PaymentMethod,
		BankAccount:     m.BankAccount,
		ReferenceNumber: m.ReferenceNumber,
		PartyName:       m.PartyName,
		SimNumber:       m.SimNumber,
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}

func ToModelPayment(d domain.Payment) models.Payment {
	return models.Payment(d)
}

func ToDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment(m)
}

func ToDomainPaymentSlice(ms []models.Payment) []domain.Payment {
	ds := make([]domain.Payment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPayment(m)
	}
	return ds
}
