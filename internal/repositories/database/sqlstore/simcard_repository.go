package sqlstore

import (
	"context"
	"fmt"

	"github.com/SscSPs/simcard_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/simcard_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/simcard_ledger/internal/models"
	"github.com/SscSPs/simcard_ledger/internal/utils/mapping"
)

const simCardSelect = `
	SELECT s.id, s.number, s.operator, s.status, COALESCE(s.purchase_date, ''), s.purchase_price,
		s.sale_date, s.sale_price, s.current_owner_id, COALESCE(p.name, ''), COALESCE(s.notes, '')
	FROM sim_cards s
	LEFT JOIN parties p ON p.id = s.current_owner_id`

type SimCardRepository struct {
	BaseRepository
}

func newSimCardRepository(base BaseRepository) portsrepo.SimCardRepositoryFacade {
	return &SimCardRepository{BaseRepository: base}
}

var _ portsrepo.SimCardRepositoryFacade = (*SimCardRepository)(nil)

func scanSimCard(row interface{ Scan(...any) error }) (models.SimCard, error) {
	var s models.SimCard
	err := row.Scan(&s.ID, &s.Number, &s.Operator, &s.Status, &s.PurchaseDate, &s.PurchasePrice,
		&s.SaleDate, &s.SalePrice, &s.CurrentOwnerID, &s.OwnerName, &s.Notes)
	return s, err
}

// SaveSimCard inserts a card. The UNIQUE constraint on number rejects duplicates.
func (r *SimCardRepository) SaveSimCard(ctx context.Context, sim domain.SimCard) (int64, error) {
	m := mapping.ToModelSimCard(sim)
	id, err := r.insertID(ctx, r.DB, `
		INSERT INTO sim_cards (number, operator, status, purchase_date, purchase_price, current_owner_id, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		m.Number, m.Operator, m.Status, m.PurchaseDate, m.PurchasePrice, m.CurrentOwnerID, m.Notes,
	)
	if err != nil {
		return 0, translate(fmt.Sprintf("save sim card %s", m.Number), err)
	}
	return id, nil
}

func (r *SimCardRepository) FindSimCardByID(ctx context.Context, simID int64) (*domain.SimCard, error) {
	m, err := scanSimCard(r.DB.QueryRowContext(ctx, r.rebind(simCardSelect+" WHERE s.id = ?"), simID))
	if err != nil {
		return nil, translate(fmt.Sprintf("find sim card %d", simID), err)
	}
	d := mapping.ToDomainSimCard(m)
	return &d, nil
}

func (r *SimCardRepository) FindSimCardByNumber(ctx context.Context, number string) (*domain.SimCard, error) {
	m, err := scanSimCard(r.DB.QueryRowContext(ctx, r.rebind(simCardSelect+" WHERE s.number = ?"), number))
	if err != nil {
		return nil, translate(fmt.Sprintf("find sim card %s", number), err)
	}
	d := mapping.ToDomainSimCard(m)
	return &d, nil
}

// ListSimCards retrieves all cards with their owner name, ordered by number.
func (r *SimCardRepository) ListSimCards(ctx context.Context) ([]domain.SimCard, error) {
	rows, err := r.DB.QueryContext(ctx, simCardSelect+" ORDER BY s.number")
	if err != nil {
		return nil, fmt.Errorf("failed to query sim cards: %w", err)
	}
	defer rows.Close()

	var ms []models.SimCard
	for rows.Next() {
		m, err := scanSimCard(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sim card: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sim cards: %w", err)
	}
	return mapping.ToDomainSimCardSlice(ms), nil
}

// TransferSimCard sets owner, sale price and sale date in one UPDATE.
func (r *SimCardRepository) TransferSimCard(ctx context.Context, simID int64, ownerID int64, salePrice *int64, saleDate string) error {
	err := r.execAffecting(ctx, r.DB,
		"UPDATE sim_cards SET current_owner_id = ?, sale_price = ?, sale_date = ? WHERE id = ?",
		ownerID, mapping.NullInt64(salePrice), saleDate, simID,
	)
	return translate(fmt.Sprintf("transfer sim card %d", simID), err)
}

func (r *SimCardRepository) UpdateSimCardStatus(ctx context.Context, simID int64, status domain.SimStatus) error {
	err := r.execAffecting(ctx, r.DB, "UPDATE sim_cards SET status = ? WHERE id = ?", string(status), simID)
	return translate(fmt.Sprintf("update status of sim card %d", simID), err)
}
