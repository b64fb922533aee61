package models

// Bank is the banks row.
type Bank struct {
	ID            int64  `db:"id"`
	Name          string `db:"name"`
	AccountNumber string `db:"account_number"`
	Owner         string `db:"owner"`
	Notes         string `db:"notes"`
}

// Check is the checks row joined with the bank name.
type Check struct {
	ID          int64  `db:"id"`
	CheckNumber string `db:"check_number"`
	Type        string `db:"type"`
	BankID      int64  `db:"bank_id"`
	BankName    string `db:"bank_name"`
	Amount      int64  `db:"amount"`
	DueDate     string `db:"due_date"`
	Status      string `db:"status"`
	Notes       string `db:"notes"`
}
