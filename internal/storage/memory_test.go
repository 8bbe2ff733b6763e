package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akozadaev/go_ev_charging_platform/internal/apperrors"
)

type testDoc struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Kind      string    `json:"kind"`
	Score     float64   `json:"score"`
	CreatedAt time.Time `json:"created_at"`
}

func seedDocs(t *testing.T, store DocumentStore) {
	t.Helper()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	docs := []any{
		testDoc{ID: "1", Name: "Namma Metro", Kind: "Metro Authority", Score: 3, CreatedAt: base},
		testDoc{ID: "2", Name: "Phoenix Mall", Kind: "Retail", Score: 1, CreatedAt: base.Add(2 * time.Hour)},
		testDoc{ID: "3", Name: "BMRCL Depot", Kind: "Transit", Score: 2, CreatedAt: base.Add(time.Hour)},
	}
	require.NoError(t, store.InsertMany(context.Background(), "docs", docs))
}

func TestMemoryStorage_FindAll(t *testing.T) {
	store := NewMemoryStorage()
	seedDocs(t, store)

	var docs []testDoc
	require.NoError(t, store.Find(context.Background(), "docs", nil, FindOptions{}, &docs))
	assert.Len(t, docs, 3)
}

func TestMemoryStorage_FindEmptyCollection(t *testing.T) {
	store := NewMemoryStorage()

	docs := []testDoc{{ID: "stale"}}
	require.NoError(t, store.Find(context.Background(), "missing", nil, FindOptions{}, &docs))
	assert.NotNil(t, docs)
	assert.Empty(t, docs)
}

func TestMemoryStorage_SortAndLimit(t *testing.T) {
	store := NewMemoryStorage()
	seedDocs(t, store)

	var docs []testDoc
	opts := FindOptions{SortField: FieldCreatedAt, SortDescending: true, Limit: 2}
	require.NoError(t, store.Find(context.Background(), "docs", nil, opts, &docs))
	require.Len(t, docs, 2)
	assert.Equal(t, "2", docs[0].ID)
	assert.Equal(t, "3", docs[1].ID)

	opts = FindOptions{SortField: "score"}
	require.NoError(t, store.Find(context.Background(), "docs", nil, opts, &docs))
	assert.Equal(t, []string{"2", "3", "1"}, []string{docs[0].ID, docs[1].ID, docs[2].ID})
}

func TestMemoryStorage_Filters(t *testing.T) {
	store := NewMemoryStorage()
	seedDocs(t, store)
	ctx := context.Background()

	tests := []struct {
		name   string
		filter Filter
		want   int64
	}{
		{"eq", Eq{Field: "kind", Value: "Retail"}, 1},
		{"eq numeric", Eq{Field: "score", Value: 2}, 1},
		{"eq missing field", Eq{Field: "absent", Value: "x"}, 0},
		{"match case insensitive", Match{Field: "name", Pattern: "metro|bmrcl", IgnoreCase: true}, 2},
		{"match case sensitive", Match{Field: "name", Pattern: "metro"}, 0},
		{"or", Or{Eq{Field: "kind", Value: "Metro Authority"}, Match{Field: "name", Pattern: "Metro|BMRCL", IgnoreCase: true}}, 2},
		{"empty or", Or{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := store.Count(ctx, "docs", tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, n)
		})
	}
}

func TestMemoryStorage_InvalidPattern(t *testing.T) {
	store := NewMemoryStorage()
	seedDocs(t, store)

	_, err := store.Count(context.Background(), "docs", Match{Field: "name", Pattern: "("})
	assert.Error(t, err)
}

func TestMemoryStorage_FindOne(t *testing.T) {
	store := NewMemoryStorage()
	seedDocs(t, store)
	ctx := context.Background()

	var doc testDoc
	require.NoError(t, store.FindOne(ctx, "docs", Eq{Field: "id", Value: "3"}, &doc))
	assert.Equal(t, "BMRCL Depot", doc.Name)

	err := store.FindOne(ctx, "docs", Eq{Field: "id", Value: "42"}, &doc)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestMemoryStorage_DeleteMany(t *testing.T) {
	store := NewMemoryStorage()
	seedDocs(t, store)
	ctx := context.Background()

	deleted, err := store.DeleteMany(ctx, "docs", Eq{Field: "kind", Value: "Retail"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	deleted, err = store.DeleteMany(ctx, "docs", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	n, err := store.Count(ctx, "docs", nil)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestMemoryStorage_InsertManyRejectsUnencodable(t *testing.T) {
	store := NewMemoryStorage()
	ctx := context.Background()

	err := store.InsertMany(ctx, "docs", []any{testDoc{ID: "1"}, make(chan int)})
	require.Error(t, err)

	n, err := store.Count(ctx, "docs", nil)
	require.NoError(t, err)
	assert.Zero(t, n)
}
