package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mandikhata/trade_ledger_app/internal/apperrors"
	"github.com/mandikhata/trade_ledger_app/internal/core/domain"
	portsrepo "github.com/mandikhata/trade_ledger_app/internal/core/ports/repositories"
)

type PgxPartyRepository struct {
	BaseRepository
}

// newPgxPartyRepository creates a new repository for party data.
func newPgxPartyRepository(pool *pgxpool.Pool) portsrepo.PartyRepositoryFacade {
	return &PgxPartyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.PartyRepositoryFacade = (*PgxPartyRepository)(nil)

const partyColumns = `party_id, party_type, name, phone, address, opening_balance, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanParty(row pgx.Row) (domain.Party, error) {
	var p domain.Party
	err := row.Scan(
		&p.PartyID,
		&p.PartyType,
		&p.Name,
		&p.Phone,
		&p.Address,
		&p.OpeningBalance,
		&p.IsActive,
		&p.CreatedAt,
		&p.CreatedBy,
		&p.LastUpdatedAt,
		&p.LastUpdatedBy,
	)
	return p, err
}

// SaveParty inserts a new party.
func (r *PgxPartyRepository) SaveParty(ctx context.Context, party domain.Party) error {
	query := `
		INSERT INTO parties (` + partyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		party.PartyID,
		party.PartyType,
		party.Name,
		party.Phone,
		party.Address,
		party.OpeningBalance,
		party.IsActive,
		party.CreatedAt,
		party.CreatedBy,
		party.LastUpdatedAt,
		party.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save party %s: %w", party.PartyID, err)
	}
	return nil
}

// FindPartyByID retrieves a party by its unique identifier.
func (r *PgxPartyRepository) FindPartyByID(ctx context.Context, partyID string) (*domain.Party, error) {
	query := `SELECT ` + partyColumns + ` FROM parties WHERE party_id = $1 AND is_active = TRUE;`
	party, err := scanParty(r.Pool.QueryRow(ctx, query, partyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find party %s: %w", partyID, err)
	}
	return &party, nil
}

// ListParties retrieves all active parties of the given type.
func (r *PgxPartyRepository) ListParties(ctx context.Context, partyType domain.PartyType) ([]domain.Party, error) {
	query := `SELECT ` + partyColumns + ` FROM parties WHERE party_type = $1 AND is_active = TRUE ORDER BY name;`
	rows, err := r.Pool.Query(ctx, query, partyType)
	if err != nil {
		return nil, fmt.Errorf("failed to query parties: %w", err)
	}
	defer rows.Close()

	parties, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Party, error) {
		return scanParty(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan parties: %w", err)
	}
	return parties, nil
}

// UpdateParty persists mutable party fields.
func (r *PgxPartyRepository) UpdateParty(ctx context.Context, party domain.Party) error {
	query := `
		UPDATE parties
		SET name = $2, phone = $3, address = $4, opening_balance = $5,
			last_updated_at = $6, last_updated_by = $7
		WHERE party_id = $1 AND is_active = TRUE;
	`
	tag, err := r.Pool.Exec(ctx, query,
		party.PartyID,
		party.Name,
		party.Phone,
		party.Address,
		party.OpeningBalance,
		party.LastUpdatedAt,
		party.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update party %s: %w", party.PartyID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeactivateParty soft-deletes a party.
func (r *PgxPartyRepository) DeactivateParty(ctx context.Context, partyID string, updatedBy string) error {
	query := `
		UPDATE parties
		SET is_active = FALSE, last_updated_at = $2, last_updated_by = $3
		WHERE party_id = $1 AND is_active = TRUE;
	`
	tag, err := r.Pool.Exec(ctx, query, partyID, time.Now(), updatedBy)
	if err != nil {
		return fmt.Errorf("failed to deactivate party %s: %w", partyID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
