package sqlstore

import (
	"context"
	"fmt"

	"github.com/SscSPs/simcard_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/simcard_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/simcard_ledger/internal/models"
	"github.com/SscSPs/simcard_ledger/internal/utils/mapping"
)

const transactionSelect = `
	SELECT t.id, COALESCE(t.tx_type, ''), t.direction, COALESCE(t.amount, 0), COALESCE(t.occurred_at, ''),
		COALESCE(t.description, ''), COALESCE(t.contract_file, ''), t.party_id, t.sim_card_id,
		COALESCE(t.payment_method, ''), COALESCE(t.bank_account, ''), COALESCE(t.reference_number, ''),
		COALESCE(p.name, ''), COALESCE(s.number, '')
	FROM transactions t
	LEFT JOIN parties p ON p.id = t.party_id
	LEFT JOIN sim_cards s ON s.id = t.sim_card_id`

const paymentSelect = `
	SELECT id, transaction_id, COALESCE(payment_method, ''), amount, COALESCE(bank_account, ''),
		COALESCE(reference_number, ''), COALESCE(notes, '')
	FROM transaction_payments`

type TransactionRepository struct {
	BaseRepository
}

func newTransactionRepository(base BaseRepository) portsrepo.TransactionRepositoryFacade {
	return &TransactionRepository{BaseRepository: base}
}

var (
	_ portsrepo.TransactionRepositoryFacade = (*TransactionRepository)(nil)
	_ portsrepo.TransactionManager          = (*TransactionRepository)(nil)
)

func scanTransaction(row interface{ Scan(...any) error }) (models.Transaction, error) {
	var t models.Transaction
	err := row.Scan(&t.ID, &t.TxType, &t.Direction, &t.Amount, &t.OccurredAt, &t.Description, &t.ContractFile,
		&t.PartyID, &t.SimCardID, &t.PaymentMethod, &t.BankAccount, &t.ReferenceNumber, &t.PartyName, &t.SimNumber)
	return t, err
}

func scanPayment(row interface{ Scan(...any) error }) (models.Payment, error) {
	var p models.Payment
	err := row.Scan(&p.ID, &p.TransactionID, &p.PaymentMethod, &p.Amount, &p.BankAccount, &p.ReferenceNumber, &p.Notes)
	return p, err
}

func (r *TransactionRepository) insertPayment(ctx context.Context, q queryer, p models.Payment) (int64, error) {
	return r.insertID(ctx, q, `
		INSERT INTO transaction_payments (transaction_id, payment_method, amount, bank_account, reference_number, notes)
		VALUES (?, ?, ?, ?, ?, ?)`,
		p.TransactionID, p.PaymentMethod, p.Amount, p.BankAccount, p.ReferenceNumber, p.Notes,
	)
}

// SaveTransaction inserts the transaction and its split payments in one database transaction.
func (r *TransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction, payments []domain.Payment) (int64, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer r.Rollback(tx)

	m := mapping.ToModelTransaction(txn)
	txID, err := r.insertID(ctx, tx, `
		INSERT INTO transactions (tx_type, direction, amount, occurred_at, description, contract_file,
			party_id, sim_card_id, payment_method, bank_account, reference_number)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.TxType, m.Direction, m.Amount, m.OccurredAt, m.Description, m.ContractFile,
		m.PartyID, m.SimCardID, m.PaymentMethod, m.BankAccount, m.ReferenceNumber,
	)
	if err != nil {
		return 0, translate("save transaction", err)
	}

	for i, p := range payments {
		pm := mapping.ToModelPayment(p)
		pm.TransactionID = txID
		if _, err := r.insertPayment(ctx, tx, pm); err != nil {
			return 0, translate(fmt.Sprintf("save payment %d of transaction", i+1), err)
		}
	}

	if err := r.Commit(tx); err != nil {
		return 0, err
	}
	return txID, nil
}

func (r *TransactionRepository) FindTransactionByID(ctx context.Context, txID int64) (*domain.Transaction, error) {
	m, err := scanTransaction(r.DB.QueryRowContext(ctx, r.rebind(transactionSelect+" WHERE t.id = ?"), txID))
	if err != nil {
		return nil, translate(fmt.Sprintf("find transaction %d", txID), err)
	}
	d := mapping.ToDomainTransaction(m)
	return &d, nil
}

// ListTransactions retrieves transactions newest first, optionally one page at a time.
func (r *TransactionRepository) ListTransactions(ctx context.Context, limit int, after *domain.TransactionCursor) ([]domain.Transaction, error) {
	query := transactionSelect
	var args []any
	if after != nil {
		// (occurred_at, id) < cursor, spelled out for dialects without row values
		query += " WHERE (t.occurred_at < ? OR (t.occurred_at = ? AND t.id < ?))"
		args = append(args, after.OccurredAt, after.OccurredAt, after.ID)
	}
	query += " ORDER BY t.occurred_at DESC, t.id DESC"
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.DB.QueryContext(ctx, r.rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var ms []models.Transaction
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transactions: %w", err)
	}
	return mapping.ToDomainTransactionSlice(ms), nil
}

func (r *TransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	err := r.execAffecting(ctx, r.DB,
		"UPDATE transactions SET tx_type = ?, direction = ?, amount = ?, description = ? WHERE id = ?",
		txn.Type, mapping.NullString(string(txn.Direction)), txn.Amount, txn.Description, txn.ID,
	)
	return translate(fmt.Sprintf("update transaction %d", txn.ID), err)
}

// DeleteTransaction removes the split payments and the transaction together.
func (r *TransactionRepository) DeleteTransaction(ctx context.Context, txID int64) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(tx)

	if _, err := tx.ExecContext(ctx, r.rebind("DELETE FROM transaction_payments WHERE transaction_id = ?"), txID); err != nil {
		return translate(fmt.Sprintf("delete payments of transaction %d", txID), err)
	}
	if err := r.execAffecting(ctx, tx, "DELETE FROM transactions WHERE id = ?", txID); err != nil {
		return translate(fmt.Sprintf("delete transaction %d", txID), err)
	}
	return r.Commit(tx)
}

// SavePayment appends a split payment. An unknown transaction id fails the foreign key.
func (r *TransactionRepository) SavePayment(ctx context.Context, payment domain.Payment) (int64, error) {
	id, err := r.insertPayment(ctx, r.DB, mapping.ToModelPayment(payment))
	if err != nil {
		return 0, translate(fmt.Sprintf("save payment of transaction %d", payment.TransactionID), err)
	}
	return id, nil
}

func (r *TransactionRepository) ListPayments(ctx context.Context, txID int64) ([]domain.Payment, error) {
	rows, err := r.DB.QueryContext(ctx, r.rebind(paymentSelect+" WHERE transaction_id = ? ORDER BY id"), txID)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments of transaction %d: %w", txID, err)
	}
	defer rows.Close()

	var ms []models.Payment
	for rows.Next() {
		m, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payments: %w", err)
	}
	return mapping.ToDomainPaymentSlice(ms), nil
}

func (r *TransactionRepository) DeletePayment(ctx context.Context, paymentID int64) error {
	err := r.execAffecting(ctx, r.DB, "DELETE FROM transaction_payments WHERE id = ?", paymentID)
	return translate(fmt.Sprintf("delete payment %d", paymentID), err)
}
