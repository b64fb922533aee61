package domain

import (
	"regexp"
	"slices"
	"strings"
)

// Operator is the mobile carrier a SIM card belongs to.
type Operator string

const (
	OperatorHamrahAval Operator = "hamrah-aval"
	OperatorIrancell   Operator = "irancell"
	OperatorRightel    Operator = "rightel"
)

// Operators lists the supported carriers in report order.
var Operators = []Operator{OperatorHamrahAval, OperatorIrancell, OperatorRightel}

func (o Operator) Valid() bool {
	return slices.Contains(Operators, o)
}

// SimStatus is the lifecycle state of a SIM card.
type SimStatus string

const (
	SimActive   SimStatus = "active"
	SimInactive SimStatus = "inactive"
	SimBlocked  SimStatus = "blocked"
)

func (s SimStatus) Valid() bool {
	switch s {
	case SimActive, SimInactive, SimBlocked:
		return true
	}
	return false
}

var simNumberPattern = regexp.MustCompile(`^0?9\d{9}$`)

// ValidSimNumber accepts Iranian mobile numbers with or without the leading zero.
func ValidSimNumber(number string) bool {
	return simNumberPattern.MatchString(strings.TrimSpace(number))
}

// SimCard is a phone number asset held for resale.
type SimCard struct {
	ID             int64     `json:"id"`
	Number         string    `json:"number"`
	Operator       Operator  `json:"operator"`
	Status         SimStatus `json:"status"`
	PurchaseDate   string    `json:"purchaseDate"`
	PurchasePrice  *int64    `json:"purchasePrice,omitempty"`
	SaleDate       *string   `json:"saleDate,omitempty"`
	SalePrice      *int64    `json:"salePrice,omitempty"`
	CurrentOwnerID *int64    `json:"currentOwnerId,omitempty"`
	OwnerName      string    `json:"ownerName,omitempty"` // populated by listings
	Notes          string    `json:"notes"`
}

// IsSold reports whether the card has been transferred to a buyer.
func (s SimCard) IsSold() bool {
	return s.SaleDate != nil
}
