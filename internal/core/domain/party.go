package domain

// PartyType classifies a counterparty.
type PartyType string

const (
	PartyCustomer PartyType = "customer"
	PartyPartner  PartyType = "partner"
	PartyOther    PartyType = "other"
)

// Valid reports whether t is one of the known party types.
func (t PartyType) Valid() bool {
	switch t {
	case PartyCustomer, PartyPartner, PartyOther:
		return true
	}
	return false
}

// AccountStatus marks whether the business owes the party or the other way round.
type AccountStatus string

const (
	StatusCreditor AccountStatus = "creditor"
	StatusDebtor   AccountStatus = "debtor"
)

func (s AccountStatus) Valid() bool {
	return s == StatusCreditor || s == StatusDebtor
}

// Party is a customer, partner or other counterparty of the business.
type Party struct {
	ID             int64         `json:"id"`
	Name           string        `json:"name"`
	Phone          string        `json:"phone"`
	Mobile         string        `json:"mobile"`
	NationalID     string        `json:"nationalId"`
	Address        string        `json:"address"`
	Type           PartyType     `json:"type"`
	AccountStatus  AccountStatus `json:"accountStatus"`
	InitialBalance int64         `json:"initialBalance"` // currency units, may be negative
	Notes          string        `json:"notes"`
}
