package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"

	"github.com/vertex-gestao/prestacao/internal/bolsista"
	"github.com/vertex-gestao/prestacao/internal/model"
)

const (
	purchasesFile = "purchases.json"
	vendorsFile   = "vendors.json"
	bolsistasFile = "bolsistas.json"
)

// JSONStore implements Store over pretty-printed JSON files in a data
// directory. A single mutex serializes access; the workload is single-writer.
type JSONStore struct {
	dir string
	mu  sync.Mutex
}

// NewJSONStore creates a flat-file store rooted at dir. The directory is
// created lazily on first write.
func NewJSONStore(dir string) *JSONStore {
	return &JSONStore{dir: dir}
}

func (s *JSONStore) Close() error { return nil }

// readFile decodes the named file into out; a missing file leaves out as-is.
func (s *JSONStore) readFile(name string, out any) error {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return eris.Wrapf(err, "store: read %s", name)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return eris.Wrapf(err, "store: decode %s", name)
	}
	return nil
}

func (s *JSONStore) writeFile(name string, in any) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return eris.Wrap(err, "store: create data dir")
	}
	data, err := json.MarshalIndent(in, "", "  ")
	if err != nil {
		return eris.Wrapf(err, "store: encode %s", name)
	}
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return eris.Wrapf(err, "store: write %s", name)
	}
	return nil
}

func (s *JSONStore) ListPurchases(_ context.Context) ([]model.Purchase, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	purchases := []model.Purchase{}
	if err := s.readFile(purchasesFile, &purchases); err != nil {
		return nil, err
	}
	return purchases, nil
}

func (s *JSONStore) GetPurchase(ctx context.Context, id string) (*model.Purchase, error) {
	purchases, err := s.ListPurchases(ctx)
	if err != nil {
		return nil, err
	}
	for i := range purchases {
		if purchases[i].ID == id {
			return &purchases[i], nil
		}
	}
	return nil, ErrNotFound
}

func (s *JSONStore) CreatePurchase(_ context.Context, p model.Purchase) (*model.Purchase, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	purchases := []model.Purchase{}
	if err := s.readFile(purchasesFile, &purchases); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if p.ID == "" {
		p.ID = fmt.Sprintf("purchase-%d", now.UnixMilli())
	}
	p.CreatedAt = now
	p.UpdatedAt = now

	purchases = append(purchases, p)
	if err := s.writeFile(purchasesFile, purchases); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *JSONStore) UpdatePurchase(_ context.Context, p model.Purchase) (*model.Purchase, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	purchases := []model.Purchase{}
	if err := s.readFile(purchasesFile, &purchases); err != nil {
		return nil, err
	}

	for i := range purchases {
		if purchases[i].ID == p.ID {
			p.CreatedAt = purchases[i].CreatedAt
			p.UpdatedAt = time.Now().UTC()
			purchases[i] = p
			if err := s.writeFile(purchasesFile, purchases); err != nil {
				return nil, err
			}
			return &purchases[i], nil
		}
	}
	return nil, ErrNotFound
}

func (s *JSONStore) DeletePurchase(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	purchases := []model.Purchase{}
	if err := s.readFile(purchasesFile, &purchases); err != nil {
		return false, err
	}

	filtered := purchases[:0:0]
	for _, p := range purchases {
		if p.ID != id {
			filtered = append(filtered, p)
		}
	}
	if len(filtered) == len(purchases) {
		return false, nil
	}
	if err := s.writeFile(purchasesFile, filtered); err != nil {
		return false, err
	}
	return true, nil
}

func (s *JSONStore) ListVendors(_ context.Context) ([]model.Vendor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	vendors := []model.Vendor{}
	if err := s.readFile(vendorsFile, &vendors); err != nil {
		return nil, err
	}
	return vendors, nil
}

func (s *JSONStore) GetVendorByCNPJ(ctx context.Context, cnpj string) (*model.Vendor, error) {
	vendors, err := s.ListVendors(ctx)
	if err != nil {
		return nil, err
	}
	for i := range vendors {
		if vendors[i].CNPJ == cnpj {
			return &vendors[i], nil
		}
	}
	return nil, ErrNotFound
}

func (s *JSONStore) CreateVendor(_ context.Context, v model.Vendor) (*model.Vendor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	vendors := []model.Vendor{}
	if err := s.readFile(vendorsFile, &vendors); err != nil {
		return nil, err
	}

	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	v.CreatedAt = time.Now().UTC()

	vendors = append(vendors, v)
	if err := s.writeFile(vendorsFile, vendors); err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *JSONStore) GetBolsistas(_ context.Context, projectID string) ([]bolsista.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rosters := map[string][]bolsista.Record{}
	if err := s.readFile(bolsistasFile, &rosters); err != nil {
		return nil, err
	}
	return rosters[projectID], nil
}

func (s *JSONStore) SetBolsistas(_ context.Context, projectID string, list []bolsista.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rosters := map[string][]bolsista.Record{}
	if err := s.readFile(bolsistasFile, &rosters); err != nil {
		return err
	}
	rosters[projectID] = list
	return s.writeFile(bolsistasFile, rosters)
}
