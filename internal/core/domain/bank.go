package domain

// Bank is a bank account used for payments and checks.
type Bank struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	AccountNumber string `json:"accountNumber"`
	Owner         string `json:"owner"`
	Notes         string `json:"notes"`
}

// CheckType tells whether a check was received from or paid to someone.
type CheckType string

const (
	CheckReceived CheckType = "received"
	CheckPaid     CheckType = "paid"
)

func (t CheckType) Valid() bool {
	return t == CheckReceived || t == CheckPaid
}

// CheckStatus is the clearing state of a check.
type CheckStatus string

const (
	CheckInProgress CheckStatus = "in-progress"
	CheckCleared    CheckStatus = "cleared"
	CheckBounced    CheckStatus = "bounced"
)

func (s CheckStatus) Valid() bool {
	switch s {
	case CheckInProgress, CheckCleared, CheckBounced:
		return true
	}
	return false
}

// Check is a paper check drawn on one of the registered banks.
type Check struct {
	ID          int64       `json:"id"`
	CheckNumber string      `json:"checkNumber"`
	Type        CheckType   `json:"type"`
	BankID      int64       `json:"bankId"`
	BankName    string      `json:"bankName,omitempty"`
	Amount      int64       `json:"amount"`
	DueDate     string      `json:"dueDate"`
	Status      CheckStatus `json:"status"`
	Notes       string      `json:"notes"`
}

// CheckUpdate carries the fields of a partial check update. Nil fields are left untouched.
type CheckUpdate struct {
	CheckNumber *string
	Type        *CheckType
	BankID      *int64
	Amount      *int64
	DueDate     *string
	Status      *CheckStatus
	Notes       *string
}

// IsEmpty reports whether the update would change nothing.
func (u CheckUpdate) IsEmpty() bool {
	return u.CheckNumber == nil && u.Type == nil && u.BankID == nil && u.Amount == nil &&
		u.DueDate == nil && u.Status == nil && u.Notes == nil
}
