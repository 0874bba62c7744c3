package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vertex-gestao/prestacao/internal/bolsista"
	"github.com/vertex-gestao/prestacao/internal/model"
)

func newTestJSONStore(t *testing.T) *JSONStore {
	t.Helper()
	return NewJSONStore(t.TempDir())
}

func TestJSONStore_PurchaseLifecycle(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestJSONStore(t)

	list, err := s.ListPurchases(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	created, err := s.CreatePurchase(ctx, model.Purchase{
		Projeto:    "Residência em TIC",
		Favorecido: "Fornecedor LTDA",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	got, err := s.GetPurchase(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Residência em TIC", got.Projeto)

	got.Objeto = "Aquisição de notebooks"
	updated, err := s.UpdatePurchase(ctx, *got)
	require.NoError(t, err)
	assert.Equal(t, "Aquisição de notebooks", updated.Objeto)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)

	deleted, err := s.DeletePurchase(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = s.GetPurchase(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestJSONStore_GetPurchase_NotFound(t *testing.T) {
	t.Parallel()
	s := newTestJSONStore(t)

	_, err := s.GetPurchase(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestJSONStore_UpdatePurchase_NotFound(t *testing.T) {
	t.Parallel()
	s := newTestJSONStore(t)

	_, err := s.UpdatePurchase(context.Background(), model.Purchase{ID: "nope"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestJSONStore_DeletePurchase_Missing(t *testing.T) {
	t.Parallel()
	s := newTestJSONStore(t)

	deleted, err := s.DeletePurchase(context.Background(), "nope")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestJSONStore_ListPurchases_PreservesOrder(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestJSONStore(t)

	for _, id := range []string{"p-1", "p-2", "p-3"} {
		_, err := s.CreatePurchase(ctx, model.Purchase{ID: id})
		require.NoError(t, err)
	}

	list, err := s.ListPurchases(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "p-1", list[0].ID)
	assert.Equal(t, "p-3", list[2].ID)
}

func TestJSONStore_Vendors(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestJSONStore(t)

	created, err := s.CreateVendor(ctx, model.Vendor{
		RazaoSocial: "Fornecedor LTDA",
		CNPJ:        "12345678000190",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	got, err := s.GetVendorByCNPJ(ctx, "12345678000190")
	require.NoError(t, err)
	assert.Equal(t, "Fornecedor LTDA", got.RazaoSocial)

	_, err = s.GetVendorByCNPJ(ctx, "00000000000000")
	assert.ErrorIs(t, err, ErrNotFound)

	vendors, err := s.ListVendors(ctx)
	require.NoError(t, err)
	assert.Len(t, vendors, 1)
}

func TestJSONStore_BolsistaRosters(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestJSONStore(t)

	empty, err := s.GetBolsistas(ctx, "proj-1")
	require.NoError(t, err)
	assert.Empty(t, empty)

	roster := []bolsista.Record{{ID: "b1", Nome: "Maria Silva", CPF: "11144477735"}}
	require.NoError(t, s.SetBolsistas(ctx, "proj-1", roster))

	got, err := s.GetBolsistas(ctx, "proj-1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Maria Silva", got[0].Nome)

	// Rosters are keyed per project.
	other, err := s.GetBolsistas(ctx, "proj-2")
	require.NoError(t, err)
	assert.Empty(t, other)
}
