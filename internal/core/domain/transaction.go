package domain

import "strings"

// Direction indicates whether money came in or went out.
type Direction string

const (
	Inflow  Direction = "inflow"
	Outflow Direction = "outflow"
)

func (d Direction) Valid() bool {
	return d == Inflow || d == Outflow
}

var (
	inflowPrefixes  = []string{"receipt", "دریافت"}
	outflowPrefixes = []string{"payment", "پرداخت"}
)

// DirectionFromLabel infers the direction from a transaction type label.
// The second return value is false when the label has no recognised prefix.
func DirectionFromLabel(label string) (Direction, bool) {
	l := strings.ToLower(strings.TrimSpace(label))
	for _, p := range inflowPrefixes {
		if strings.HasPrefix(l, p) {
			return Inflow, true
		}
	}
	for _, p := range outflowPrefixes {
		if strings.HasPrefix(l, p) {
			return Outflow, true
		}
	}
	return "", false
}

// Transaction is a single monetary event in the ledger.
type Transaction struct {
	ID              int64     `json:"id"`
	Type            string    `json:"type"` // free-form label, e.g. "receipt sale"
	Direction       Direction `json:"direction"`
	Amount          int64     `json:"amount"`
	OccurredAt      string    `json:"occurredAt"`
	Description     string    `json:"description"`
	ContractFile    string    `json:"contractFile"`
	PartyID         *int64    `json:"partyId,omitempty"`
	SimCardID       *int64    `json:"simCardId,omitempty"`
	PaymentMethod   string    `json:"paymentMethod"`
	BankAccount     string    `json:"bankAccount"`
	ReferenceNumber string    `json:"referenceNumber"`

	// Populated by joined listings.
	PartyName string `json:"partyName,omitempty"`
	SimNumber string `json:"simNumber,omitempty"`
}

// Payment is one split of a transaction's amount.
type Payment struct {
	ID              int64  `json:"id"`
	TransactionID   int64  `json:"transactionId"`
	PaymentMethod   string `json:"paymentMethod"`
	Amount          int64  `json:"amount"`
	BankAccount     string `json:"bankAccount"`
	ReferenceNumber string `json:"referenceNumber"`
	Notes           string `json:"notes"`
}

// TransactionCursor marks a position in the newest-first transaction listing.
type TransactionCursor struct {
	OccurredAt string
	ID         int64
}
