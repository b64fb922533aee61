package models

import "database/sql"

// SimCard is the sim_cards row, optionally joined with the owner's name.
type SimCard struct {
	ID             int64          `db:"id"`
	Number         string         `db:"number"`
	Operator       string         `db:"operator"`
	Status         string         `db:"status"`
	PurchaseDate   string         `db:"purchase_date"`
	PurchasePrice  sql.NullInt64  `db:"purchase_price"`
	SaleDate       sql.NullString `db:"sale_date"`
	SalePrice      sql.NullInt64  `db:"sale_price"`
	CurrentOwnerID sql.NullInt64  `db:"current_owner_id"`
	OwnerName      string         `db:"owner_name"`
	Notes          string         `db:"notes"`
}
