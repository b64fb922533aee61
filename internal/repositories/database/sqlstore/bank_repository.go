package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/SscSPs/simcard_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/simcard_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/simcard_ledger/internal/models"
	"github.com/SscSPs/simcard_ledger/internal/utils/mapping"
)

const bankSelect = `SELECT id, name, account_number, COALESCE(owner, ''), COALESCE(notes, '') FROM banks`

const checkSelect = `
	SELECT c.id, c.check_number, c.type, COALESCE(c.bank_id, 0), COALESCE(b.name, ''), c.amount,
		COALESCE(c.due_date, ''), c.status, COALESCE(c.notes, '')
	FROM checks c
	LEFT JOIN banks b ON b.id = c.bank_id`

type BankRepository struct {
	BaseRepository
}

func newBankRepository(base BaseRepository) portsrepo.BankRepositoryFacade {
	return &BankRepository{BaseRepository: base}
}

var _ portsrepo.BankRepositoryFacade = (*BankRepository)(nil)

func (r *BankRepository) SaveBank(ctx context.Context, bank domain.Bank) (int64, error) {
	id, err := r.insertID(ctx, r.DB,
		"INSERT INTO banks (name, account_number, owner, notes) VALUES (?, ?, ?, ?)",
		bank.Name, bank.AccountNumber, bank.Owner, bank.Notes,
	)
	if err != nil {
		return 0, translate(fmt.Sprintf("save bank %s", bank.Name), err)
	}
	return id, nil
}

func (r *BankRepository) FindBankByID(ctx context.Context, bankID int64) (*domain.Bank, error) {
	var m models.Bank
	err := r.DB.QueryRowContext(ctx, r.rebind(bankSelect+" WHERE id = ?"), bankID).
		Scan(&m.ID, &m.Name, &m.AccountNumber, &m.Owner, &m.Notes)
	if err != nil {
		return nil, translate(fmt.Sprintf("find bank %d", bankID), err)
	}
	d := mapping.ToDomainBank(m)
	return &d, nil
}

func (r *BankRepository) ListBanks(ctx context.Context) ([]domain.Bank, error) {
	rows, err := r.DB.QueryContext(ctx, bankSelect+" ORDER BY name, id")
	if err != nil {
		return nil, fmt.Errorf("failed to query banks: %w", err)
	}
	defer rows.Close()

	var ms []models.Bank
	for rows.Next() {
		var m models.Bank
		if err := rows.Scan(&m.ID, &m.Name, &m.AccountNumber, &m.Owner, &m.Notes); err != nil {
			return nil, fmt.Errorf("failed to scan bank: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating banks: %w", err)
	}
	return mapping.ToDomainBankSlice(ms), nil
}

type CheckRepository struct {
	BaseRepository
}

func newCheckRepository(base BaseRepository) portsrepo.CheckRepositoryFacade {
	return &CheckRepository{BaseRepository: base}
}

var _ portsrepo.CheckRepositoryFacade = (*CheckRepository)(nil)

func scanCheck(row interface{ Scan(...any) error }) (models.Check, error) {
	var c models.Check
	err := row.Scan(&c.ID, &c.CheckNumber, &c.Type, &c.BankID, &c.BankName, &c.Amount, &c.DueDate, &c.Status, &c.Notes)
	return c, err
}

// optionalBankID stores an unset bank (0) as NULL.
func optionalBankID(id int64) sql.NullInt64 {
	return sql.NullInt64{Int64: id, Valid: id > 0}
}

func (r *CheckRepository) SaveCheck(ctx context.Context, check domain.Check) (int64, error) {
	id, err := r.insertID(ctx, r.DB, `
		INSERT INTO checks (check_number, type, bank_id, amount, due_date, status, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		check.CheckNumber, string(check.Type), optionalBankID(check.BankID), check.Amount, check.DueDate, string(check.Status), check.Notes,
	)
	if err != nil {
		return 0, translate(fmt.Sprintf("save check %s", check.CheckNumber), err)
	}
	return id, nil
}

func (r *CheckRepository) FindCheckByID(ctx context.Context, checkID int64) (*domain.Check, error) {
	m, err := scanCheck(r.DB.QueryRowContext(ctx, r.rebind(checkSelect+" WHERE c.id = ?"), checkID))
	if err != nil {
		return nil, translate(fmt.Sprintf("find check %d", checkID), err)
	}
	d := mapping.ToDomainCheck(m)
	return &d, nil
}

// ListChecks retrieves all checks, newest first.
func (r *CheckRepository) ListChecks(ctx context.Context) ([]domain.Check, error) {
	rows, err := r.DB.QueryContext(ctx, checkSelect+" ORDER BY c.id DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to query checks: %w", err)
	}
	defer rows.Close()

	var ms []models.Check
	for rows.Next() {
		m, err := scanCheck(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan check: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating checks: %w", err)
	}
	return mapping.ToDomainCheckSlice(ms), nil
}

// UpdateCheck applies the non-nil fields of update. Column names come from
// this fixed list only.
func (r *CheckRepository) UpdateCheck(ctx context.Context, checkID int64, update domain.CheckUpdate) error {
	var sets []string
	var args []any
	set := func(column string, value any) {
		sets = append(sets, column+" = ?")
		args = append(args, value)
	}

	if update.CheckNumber != nil {
		set("check_number", *update.CheckNumber)
	}
	if update.Type != nil {
		set("type", string(*update.Type))
	}
	if update.BankID != nil {
		set("bank_id", optionalBankID(*update.BankID))
	}
	if update.Amount != nil {
		set("amount", *update.Amount)
	}
	if update.DueDate != nil {
		set("due_date", *update.DueDate)
	}
	if update.Status != nil {
		set("status", string(*update.Status))
	}
	if update.Notes != nil {
		set("notes", *update.Notes)
	}
	if len(sets) == 0 {
		return nil
	}

	args = append(args, checkID)
	err := r.execAffecting(ctx, r.DB, "UPDATE checks SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	return translate(fmt.Sprintf("update check %d", checkID), err)
}

// DeleteCheck removes exactly one check.
func (r *CheckRepository) DeleteCheck(ctx context.Context, checkID int64) error {
	err := r.execAffecting(ctx, r.DB, "DELETE FROM checks WHERE id = ?", checkID)
	return translate(fmt.Sprintf("delete check %d", checkID), err)
}
