package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/vtorres/timeline-cli/internal/registry"
)

type Repository struct {
	db *sql.DB
}

func NewRepository(path string) (*Repository, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	return &Repository{db: db}, nil
}

func (r *Repository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

func (r *Repository) Init(ctx context.Context) error {
	const schema = `
CREATE TABLE IF NOT EXISTS assets (
  id TEXT PRIMARY KEY,
  collection_id TEXT NOT NULL,
  title TEXT NOT NULL,
  description TEXT,
  type TEXT,
  tags TEXT,
  license_type TEXT,
  creator_name TEXT,
  creator_verified INTEGER NOT NULL DEFAULT 0,
  registration_date TEXT,
  timestamp TEXT,
  token_id TEXT,
  slug TEXT,
  fetched_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_assets_collection ON assets(collection_id);
`
	_, err := r.db.ExecContext(ctx, schema)
	if err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// SaveAssets replaces the cached snapshot of a collection: assets no
// longer present in the registry response are dropped.
func (r *Repository) SaveAssets(ctx context.Context, collectionID string, assets []registry.Asset) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM assets WHERE collection_id = ?`, collectionID); err != nil {
		return fmt.Errorf("clear stale assets: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
INSERT INTO assets (id, collection_id, title, description, type, tags, license_type,
  creator_name, creator_verified, registration_date, timestamp, token_id, slug, fetched_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  collection_id=excluded.collection_id,
  title=excluded.title,
  description=excluded.description,
  type=excluded.type,
  tags=excluded.tags,
  license_type=excluded.license_type,
  creator_name=excluded.creator_name,
  creator_verified=excluded.creator_verified,
  registration_date=excluded.registration_date,
  timestamp=excluded.timestamp,
  token_id=excluded.token_id,
  slug=excluded.slug,
  fetched_at=excluded.fetched_at
`)
	if err != nil {
		return fmt.Errorf("prepare save statement: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC().Format(time.RFC3339Nano)
	for _, a := range assets {
		verified := 0
		if a.Creator.Verified {
			verified = 1
		}
		_, err := stmt.ExecContext(
			ctx,
			a.ID,
			collectionID,
			a.Title,
			a.Description,
			a.Type,
			a.Tags,
			a.LicenseType,
			a.Creator.Name,
			verified,
			a.RegistrationDate,
			a.Timestamp,
			a.TokenID,
			a.Slug,
			now,
		)
		if err != nil {
			return fmt.Errorf("save asset %s: %w", a.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func (r *Repository) ListAssets(ctx context.Context, collectionID string) ([]registry.Asset, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, title, description, type, tags, license_type,
  creator_name, creator_verified, registration_date, timestamp, token_id, slug
FROM assets
WHERE collection_id = ?
ORDER BY registration_date DESC
`, collectionID)
	if err != nil {
		return nil, fmt.Errorf("query assets: %w", err)
	}
	defer rows.Close()

	assets := make([]registry.Asset, 0, 32)
	for rows.Next() {
		var a registry.Asset
		var verified int
		if err := rows.Scan(
			&a.ID,
			&a.Title,
			&a.Description,
			&a.Type,
			&a.Tags,
			&a.LicenseType,
			&a.Creator.Name,
			&verified,
			&a.RegistrationDate,
			&a.Timestamp,
			&a.TokenID,
			&a.Slug,
		); err != nil {
			return nil, fmt.Errorf("scan asset: %w", err)
		}
		a.Creator.Verified = verified != 0
		assets = append(assets, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}

	return assets, nil
}
