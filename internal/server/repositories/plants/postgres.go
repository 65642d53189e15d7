// PostgreSQL-backed plant storage over a dbx.DBTX (*sql.DB or *sql.Tx).
package plants

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/verdant/planter/internal/common"
	"github.com/verdant/planter/internal/dbx"
	"github.com/verdant/planter/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const plantColumns = `id, user_id, name, lat, lon, kind, photo_url, address, landmarks, is_user_planted, created_at`

func (r *PostgresRepository) Create(ctx context.Context, plant *models.Plant) error {
	landmarks, err := json.Marshal(plant.Landmarks)
	if err != nil {
		return fmt.Errorf("landmarks encode error: %w", err)
	}

	query := `
		INSERT INTO plants (id, user_id, name, lat, lon, kind, photo_url, address, landmarks, is_user_planted, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err = r.db.ExecContext(ctx, query,
		plant.ID, nullable(plant.OwnerID), plant.DisplayName, plant.Lat, plant.Lon,
		string(plant.Kind), nullable(plant.PhotoRef), nullable(plant.Address),
		landmarks, plant.IsUserPlanted, plant.CreatedAt)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrStoreUnavailable, err)
	}
	return nil
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*models.Plant, error) {
	query := `SELECT ` + plantColumns + ` FROM plants WHERE id = $1`

	p, err := scanPlant(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", common.ErrStoreUnavailable, err)
	}
	return p, nil
}

// ListAll returns seeded plants first, then user plants in creation order.
func (r *PostgresRepository) ListAll(ctx context.Context) ([]*models.Plant, error) {
	query := `SELECT ` + plantColumns + ` FROM plants ORDER BY is_user_planted ASC, created_at ASC, id ASC`
	return r.list(ctx, query)
}

func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID string) ([]*models.Plant, error) {
	query := `SELECT ` + plantColumns + ` FROM plants WHERE user_id = $1 AND is_user_planted ORDER BY created_at ASC, id ASC`
	return r.list(ctx, query, ownerID)
}

// Delete removes a user-planted record by id. The predicate excludes seeded
// rows, so deleting one affects nothing and reports false without error.
func (r *PostgresRepository) Delete(ctx context.Context, id string) (bool, error) {
	query := `DELETE FROM plants WHERE id = $1 AND is_user_planted`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("%w: %v", common.ErrStoreUnavailable, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected error: %w", err)
	}
	return n == 1, nil
}

func (r *PostgresRepository) list(ctx context.Context, query string, args ...any) ([]*models.Plant, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var result []*models.Plant
	for rows.Next() {
		p, err := scanPlant(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", common.ErrStoreUnavailable, err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrStoreUnavailable, err)
	}
	return result, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPlant(row rowScanner) (*models.Plant, error) {
	var (
		p         models.Plant
		ownerID   sql.NullString
		kind      sql.NullString
		photoRef  sql.NullString
		address   sql.NullString
		landmarks []byte
	)
	if err := row.Scan(&p.ID, &ownerID, &p.DisplayName, &p.Lat, &p.Lon, &kind,
		&photoRef, &address, &landmarks, &p.IsUserPlanted, &p.CreatedAt); err != nil {
		return nil, err
	}
	p.OwnerID = ownerID.String
	p.Kind = models.Kind(kind.String)
	p.PhotoRef = photoRef.String
	p.Address = address.String
	if len(landmarks) > 0 {
		if err := json.Unmarshal(landmarks, &p.Landmarks); err != nil {
			return nil, fmt.Errorf("landmarks decode error: %w", err)
		}
	}
	return &p, nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
