package dto

import "github.com/SscSPs/simcard_ledger/internal/core/domain"

// CreatePartyRequest defines the data needed to register a counterparty.
type CreatePartyRequest struct {
	Name           string               `json:"name" binding:"required"`
	Phone          string               `json:"phone"`
	Mobile         string               `json:"mobile"`
	NationalID     string               `json:"nationalId" binding:"required,nationalid"`
	Address        string               `json:"address"`
	Type           domain.PartyType     `json:"type" binding:"required,oneof=customer partner other"`
	AccountStatus  domain.AccountStatus `json:"accountStatus" binding:"omitempty,oneof=creditor debtor"` // defaults to creditor
	InitialBalance int64                `json:"initialBalance"`
	Notes          string               `json:"notes"`
}

// ListPartiesResponse wraps a party listing.
type ListPartiesResponse struct {
	Parties []domain.Party `json:"parties"`
}
