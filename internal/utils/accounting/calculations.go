package accounting

import (
	"fmt"

	"github.com/SscSPs/simcard_ledger/internal/core/domain"
)

// SignedAmount returns the transaction amount signed by its direction:
// positive for inflow, negative for outflow.
func SignedAmount(txn domain.Transaction) (int64, error) {
	switch txn.Direction {
	case domain.Inflow:
		return txn.Amount, nil
	case domain.Outflow:
		return -txn.Amount, nil
	default:
		return 0, fmt.Errorf("unknown direction '%s' for transaction %d", txn.Direction, txn.ID)
	}
}

// PaymentsWithin sums split payments, failing when one is not positive or the
// running total would exceed amount. The running total never passes amount, so
// it cannot overflow.
func PaymentsWithin(amount int64, payments []domain.Payment) (int64, error) {
	var sum int64
	for i, p := range payments {
		if p.Amount <= 0 {
			return 0, fmt.Errorf("payment %d amount must be positive", i+1)
		}
		if p.Amount > amount-sum {
			return 0, fmt.Errorf("split payments exceed transaction amount %d at payment %d", amount, i+1)
		}
		sum += p.Amount
	}
	return sum, nil
}

// ValidatePaymentsTotal checks that split payments are positive and add up to the transaction amount.
// An empty split list is always valid.
func ValidatePaymentsTotal(amount int64, payments []domain.Payment) error {
	if len(payments) == 0 {
		return nil
	}
	sum, err := PaymentsWithin(amount, payments)
	if err != nil {
		return err
	}
	if sum != amount {
		return fmt.Errorf("split payments total %d does not match transaction amount %d", sum, amount)
	}
	return nil
}
