package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/vertex-gestao/prestacao/internal/bolsista"
	"github.com/vertex-gestao/prestacao/internal/model"
)

// SQLiteStore implements Store using modernc.org/sqlite. Records are stored
// as JSON documents keyed by their identifier.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS purchases (
	id         TEXT PRIMARY KEY,
	data       TEXT NOT NULL,
	created_at DATETIME NOT NULL DEFAULT (datetime('now')),
	updated_at DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS vendors (
	id         TEXT PRIMARY KEY,
	cnpj       TEXT NOT NULL UNIQUE,
	data       TEXT NOT NULL,
	created_at DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS bolsista_rosters (
	project_id TEXT PRIMARY KEY,
	data       TEXT NOT NULL,
	updated_at DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_vendors_cnpj ON vendors(cnpj);
`

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) ListPurchases(ctx context.Context) ([]model.Purchase, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT data FROM purchases ORDER BY created_at`)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list purchases")
	}
	defer rows.Close()

	purchases := []model.Purchase{}
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan purchase")
		}
		var p model.Purchase
		if err := json.Unmarshal([]byte(data), &p); err != nil {
			return nil, eris.Wrap(err, "sqlite: decode purchase")
		}
		purchases = append(purchases, p)
	}
	return purchases, rows.Err()
}

func (s *SQLiteStore) GetPurchase(ctx context.Context, id string) (*model.Purchase, error) {
	var data string
	err := s.db.QueryRowContext(ctx, `SELECT data FROM purchases WHERE id = ?`, id).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, eris.Wrapf(err, "sqlite: get purchase %s", id)
	}
	var p model.Purchase
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return nil, eris.Wrap(err, "sqlite: decode purchase")
	}
	return &p, nil
}

func (s *SQLiteStore) CreatePurchase(ctx context.Context, p model.Purchase) (*model.Purchase, error) {
	now := time.Now().UTC()
	if p.ID == "" {
		p.ID = fmt.Sprintf("purchase-%d", now.UnixMilli())
	}
	p.CreatedAt = now
	p.UpdatedAt = now

	data, err := json.Marshal(p)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: encode purchase")
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO purchases (id, data, created_at, updated_at) VALUES (?, ?, ?, ?)`,
		p.ID, string(data), now, now,
	)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: insert purchase")
	}
	return &p, nil
}

func (s *SQLiteStore) UpdatePurchase(ctx context.Context, p model.Purchase) (*model.Purchase, error) {
	existing, err := s.GetPurchase(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = time.Now().UTC()

	data, err := json.Marshal(p)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: encode purchase")
	}
	_, err = s.db.ExecContext(ctx,
		`UPDATE purchases SET data = ?, updated_at = ? WHERE id = ?`,
		string(data), p.UpdatedAt, p.ID,
	)
	if err != nil {
		return nil, eris.Wrapf(err, "sqlite: update purchase %s", p.ID)
	}
	return &p, nil
}

func (s *SQLiteStore) DeletePurchase(ctx context.Context, id string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM purchases WHERE id = ?`, id)
	if err != nil {
		return false, eris.Wrapf(err, "sqlite: delete purchase %s", id)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, eris.Wrap(err, "sqlite: rows affected")
	}
	return n > 0, nil
}

func (s *SQLiteStore) ListVendors(ctx context.Context) ([]model.Vendor, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT data FROM vendors ORDER BY created_at`)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list vendors")
	}
	defer rows.Close()

	vendors := []model.Vendor{}
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan vendor")
		}
		var v model.Vendor
		if err := json.Unmarshal([]byte(data), &v); err != nil {
			return nil, eris.Wrap(err, "sqlite: decode vendor")
		}
		vendors = append(vendors, v)
	}
	return vendors, rows.Err()
}

func (s *SQLiteStore) GetVendorByCNPJ(ctx context.Context, cnpj string) (*model.Vendor, error) {
	var data string
	err := s.db.QueryRowContext(ctx, `SELECT data FROM vendors WHERE cnpj = ?`, cnpj).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, eris.Wrapf(err, "sqlite: get vendor %s", cnpj)
	}
	var v model.Vendor
	if err := json.Unmarshal([]byte(data), &v); err != nil {
		return nil, eris.Wrap(err, "sqlite: decode vendor")
	}
	return &v, nil
}

func (s *SQLiteStore) CreateVendor(ctx context.Context, v model.Vendor) (*model.Vendor, error) {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	v.CreatedAt = time.Now().UTC()

	data, err := json.Marshal(v)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: encode vendor")
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO vendors (id, cnpj, data, created_at) VALUES (?, ?, ?, ?)`,
		v.ID, v.CNPJ, string(data), v.CreatedAt,
	)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: insert vendor")
	}
	return &v, nil
}

func (s *SQLiteStore) GetBolsistas(ctx context.Context, projectID string) ([]bolsista.Record, error) {
	var data string
	err := s.db.QueryRowContext(ctx, `SELECT data FROM bolsista_rosters WHERE project_id = ?`, projectID).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, eris.Wrapf(err, "sqlite: get roster %s", projectID)
	}
	var list []bolsista.Record
	if err := json.Unmarshal([]byte(data), &list); err != nil {
		return nil, eris.Wrap(err, "sqlite: decode roster")
	}
	return list, nil
}

func (s *SQLiteStore) SetBolsistas(ctx context.Context, projectID string, list []bolsista.Record) error {
	data, err := json.Marshal(list)
	if err != nil {
		return eris.Wrap(err, "sqlite: encode roster")
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO bolsista_rosters (project_id, data, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(project_id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		projectID, string(data), time.Now().UTC(),
	)
	return eris.Wrapf(err, "sqlite: set roster %s", projectID)
}
