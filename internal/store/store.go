// Package store persists purchases, vendors, and per-project bolsista
// rosters. Two drivers exist: flat JSON files (the default) and sqlite.
// Records are treated as whole documents; last write wins.
package store

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/vertex-gestao/prestacao/internal/bolsista"
	"github.com/vertex-gestao/prestacao/internal/config"
	"github.com/vertex-gestao/prestacao/internal/model"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = eris.New("store: record not found")

// Store defines the persistence interface for the pipeline's outputs.
type Store interface {
	// Purchases
	ListPurchases(ctx context.Context) ([]model.Purchase, error)
	GetPurchase(ctx context.Context, id string) (*model.Purchase, error)
	CreatePurchase(ctx context.Context, p model.Purchase) (*model.Purchase, error)
	UpdatePurchase(ctx context.Context, p model.Purchase) (*model.Purchase, error)
	DeletePurchase(ctx context.Context, id string) (bool, error)

	// Vendors
	ListVendors(ctx context.Context) ([]model.Vendor, error)
	GetVendorByCNPJ(ctx context.Context, cnpj string) (*model.Vendor, error)
	CreateVendor(ctx context.Context, v model.Vendor) (*model.Vendor, error)

	// Bolsista rosters, keyed by project.
	GetBolsistas(ctx context.Context, projectID string) ([]bolsista.Record, error)
	SetBolsistas(ctx context.Context, projectID string, list []bolsista.Record) error

	Close() error
}

// Open creates a Store for the configured driver.
func Open(cfg config.StoreConfig) (Store, error) {
	switch cfg.Driver {
	case "", "json":
		return NewJSONStore(cfg.DataDir), nil
	case "sqlite":
		s, err := NewSQLite(cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		if err := s.Migrate(context.Background()); err != nil {
			s.Close()
			return nil, err
		}
		return s, nil
	default:
		return nil, eris.Errorf("store: unknown driver %q", cfg.Driver)
	}
}
