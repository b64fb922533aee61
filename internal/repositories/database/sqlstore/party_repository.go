package sqlstore

import (
	"context"
	"fmt"

	"github.com/SscSPs/simcard_ledger/internal/apperrors"
	"github.com/SscSPs/simcard_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/simcard_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/simcard_ledger/internal/models"
	"github.com/SscSPs/simcard_ledger/internal/utils/mapping"
)

const partyColumns = `
	id, name, COALESCE(phone, ''), COALESCE(mobile, ''), national_id, COALESCE(address, ''),
	type, COALESCE(account_status, 'creditor'), COALESCE(initial_balance, 0), COALESCE(notes, '')`

type PartyRepository struct {
	BaseRepository
}

// newPartyRepository creates a new repository for party data.
func newPartyRepository(base BaseRepository) portsrepo.PartyRepositoryFacade {
	return &PartyRepository{BaseRepository: base}
}

// Ensure implementation matches interface
var _ portsrepo.PartyRepositoryFacade = (*PartyRepository)(nil)

func scanParty(row interface{ Scan(...any) error }) (models.Party, error) {
	var p models.Party
	err := row.Scan(&p.ID, &p.Name, &p.Phone, &p.Mobile, &p.NationalID, &p.Address,
		&p.Type, &p.AccountStatus, &p.InitialBalance, &p.Notes)
	return p, err
}

// SaveParty inserts a party and returns its id.
func (r *PartyRepository) SaveParty(ctx context.Context, party domain.Party) (int64, error) {
	m := mapping.ToModelParty(party)
	id, err := r.insertID(ctx, r.DB, `
		INSERT INTO parties (name, phone, mobile, national_id, address, type, account_status, initial_balance, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.Name, m.Phone, m.Mobile, m.NationalID, m.Address, m.Type, m.AccountStatus, m.InitialBalance, m.Notes,
	)
	if err != nil {
		return 0, translate(fmt.Sprintf("save party %s", m.Name), err)
	}
	return id, nil
}

// FindPartyByID retrieves a party by its id.
func (r *PartyRepository) FindPartyByID(ctx context.Context, partyID int64) (*domain.Party, error) {
	row := r.DB.QueryRowContext(ctx, r.rebind("SELECT"+partyColumns+" FROM parties WHERE id = ?"), partyID)
	m, err := scanParty(row)
	if err != nil {
		return nil, translate(fmt.Sprintf("find party %d", partyID), err)
	}
	d := mapping.ToDomainParty(m)
	return &d, nil
}

// FindPartyByNationalID retrieves the oldest party registered with the national id.
func (r *PartyRepository) FindPartyByNationalID(ctx context.Context, nationalID string) (*domain.Party, error) {
	row := r.DB.QueryRowContext(ctx,
		r.rebind("SELECT"+partyColumns+" FROM parties WHERE national_id = ? ORDER BY id LIMIT 1"), nationalID)
	m, err := scanParty(row)
	if err != nil {
		return nil, translate("find party by national id", err)
	}
	d := mapping.ToDomainParty(m)
	return &d, nil
}

// ListParties retrieves all parties ordered by name.
func (r *PartyRepository) ListParties(ctx context.Context) ([]domain.Party, error) {
	rows, err := r.DB.QueryContext(ctx, "SELECT"+partyColumns+" FROM parties ORDER BY name, id")
	if err != nil {
		return nil, fmt.Errorf("failed to query parties: %w", err)
	}
	defer rows.Close()

	var ms []models.Party
	for rows.Next() {
		m, err := scanParty(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan party: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating parties: %w", err)
	}
	return mapping.ToDomainPartySlice(ms), nil
}

// CountPartyReferences counts transactions and SIM cards pointing at the party.
func (r *PartyRepository) CountPartyReferences(ctx context.Context, partyID int64) (int64, error) {
	var n int64
	err := r.DB.QueryRowContext(ctx, r.rebind(`
		SELECT
			(SELECT COUNT(*) FROM transactions WHERE party_id = ?) +
			(SELECT COUNT(*) FROM sim_cards WHERE current_owner_id = ?)`),
		partyID, partyID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count references of party %d: %w", partyID, err)
	}
	return n, nil
}

// DeleteParty removes a party row. A foreign key violation means something still points at it.
func (r *PartyRepository) DeleteParty(ctx context.Context, partyID int64) error {
	err := r.execAffecting(ctx, r.DB, "DELETE FROM parties WHERE id = ?", partyID)
	if err != nil && classify(err) == errForeignKey {
		return fmt.Errorf("failed to delete party %d: %w", partyID, apperrors.ErrReferenced)
	}
	return translate(fmt.Sprintf("delete party %d", partyID), err)
}
