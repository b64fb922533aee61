package models

import "database/sql"

// Transaction is the transactions row joined with party name and SIM number.
type Transaction struct {
	ID              int64          `db:"id"`
	TxType          string         `db:"tx_type"`
	Direction       sql.NullString `db:"direction"` // NULL on legacy rows with unknown labels
	Amount          int64          `db:"amount"`
	OccurredAt      string         `db:"occurred_at"`
	Description     string         `db:"description"`
	ContractFile    string         `db:"contract_file"`
	PartyID         sql.NullInt64  `db:"party_id"`
	SimCardID       sql.NullInt64  `db:"sim_card_id"`
	PaymentMethod   string         `db:"payment_method"`
	BankAccount     string         `db:"bank_account"`
	ReferenceNumber string         `db:"reference_number"`
	PartyName       string         `db:"party_name"`
	SimNumber       string         `db:"sim_number"`
}

// Payment is the transaction_payments row.
type Payment struct {
	ID              int64  `db:"id"`
	TransactionID   int64  `db:"transaction_id"`
	PaymentMethod   string `db:"payment_method"`
	Amount          int64  `db:"amount"`
	BankAccount     string `db:"bank_account"`
	ReferenceNumber string `db:"reference_number"`
	Notes           string `db:"notes"`
}
