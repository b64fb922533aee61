package dto

import "github.com/SscSPs/simcard_ledger/internal/core/domain"

// ContractPartyRequest is the identity block of one side of a contract.
type ContractPartyRequest struct {
	Name       string `json:"name" binding:"required"`
	NationalID string `json:"nationalId" binding:"required,nationalid"`
	Birth      string `json:"birth"`
	IssuedBy   string `json:"issuedBy"`
	FatherName string `json:"fatherName"`
	Phone      string `json:"phone" binding:"required"`
	Address    string `json:"address"`
}

// ContractPaymentRequest is one row of the contract payment table.
type ContractPaymentRequest struct {
	Description string `json:"description"`
	Bank        string `json:"bank"`
	Amount      string `json:"amount"`
	Method      string `json:"method"`
	Notes       string `json:"notes"`
}

// GenerateContractRequest defines the data needed to generate and archive a contract.
type GenerateContractRequest struct {
	Kind            domain.ContractKind      `json:"kind" binding:"required,oneof=sale purchase"`
	Seller          ContractPartyRequest     `json:"seller"`
	Buyer           ContractPartyRequest     `json:"buyer"`
	SimNumber       string                   `json:"simNumber" binding:"required,simnumber"`
	SaleAmount      int64                    `json:"saleAmount" binding:"required,gt=0"` // rial
	SaleAmountToman string                   `json:"saleAmountToman"`                    // derived when empty
	PaymentDate     string                   `json:"paymentDate"`
	InvoiceAmount   string                   `json:"invoiceAmount"`
	InvoiceDate     string                   `json:"invoiceDate"`
	Payments        []ContractPaymentRequest `json:"payments" binding:"max=3"`
	Notes           string                   `json:"notes"`
}

func (p ContractPartyRequest) toDomain() domain.PartyIdentity {
	return domain.PartyIdentity{
		Name:       p.Name,
		NationalID: p.NationalID,
		Birth:      p.Birth,
		IssuedBy:   p.IssuedBy,
		FatherName: p.FatherName,
		Phone:      p.Phone,
		Address:    p.Address,
	}
}

// ToContractData converts the request into domain contract data.
func (r GenerateContractRequest) ToContractData() domain.ContractData {
	payments := make([]domain.PaymentRow, len(r.Payments))
	for i, p := range r.Payments {
		payments[i] = domain.PaymentRow{
			Description: p.Description,
			Bank:        p.Bank,
			Amount:      p.Amount,
			Method:      p.Method,
			Notes:       p.Notes,
		}
	}
	return domain.ContractData{
		Kind:            r.Kind,
		Seller:          r.Seller.toDomain(),
		Buyer:           r.Buyer.toDomain(),
		SimNumber:       r.SimNumber,
		SaleAmount:      r.SaleAmount,
		SaleAmountToman: r.SaleAmountToman,
		PaymentDate:     r.PaymentDate,
		InvoiceAmount:   r.InvoiceAmount,
		InvoiceDate:     r.InvoiceDate,
		Payments:        payments,
		Notes:           r.Notes,
	}
}

// GenerateContractResponse describes an archived contract.
type GenerateContractResponse struct {
	Entry         domain.ArchiveEntry `json:"entry"`
	TransactionID *int64              `json:"transactionId,omitempty"`
	LedgerError   string              `json:"ledgerError,omitempty"`
}

// ListArchiveResponse wraps the archive manifest, newest first.
type ListArchiveResponse struct {
	Entries []domain.ArchiveEntry `json:"entries"`
}
