package models

// Party is the parties row. Nullable text columns are read through COALESCE.
type Party struct {
	ID             int64  `db:"id"`
	Name           string `db:"name"`
	Phone          string `db:"phone"`
	Mobile         string `db:"mobile"`
	NationalID     string `db:"national_id"`
	Address        string `db:"address"`
	Type           string `db:"type"`
	AccountStatus  string `db:"account_status"`
	InitialBalance int64  `db:"initial_balance"`
	Notes          string `db:"notes"`
}
