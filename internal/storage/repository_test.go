package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akozadaev/go_ev_charging_platform/internal/apperrors"
	"github.com/akozadaev/go_ev_charging_platform/internal/models"
)

func TestRepository_MetroPartnerships(t *testing.T) {
	repo := NewRepository(NewMemoryStorage())
	ctx := context.Background()

	for _, p := range []models.Partnership{
		{ID: "1", OrganizationName: "Bangalore Metro Rail Corporation", OrganizationType: "Transit"},
		{ID: "2", OrganizationName: "City Transit Board", OrganizationType: MetroOrganizationType},
		{ID: "3", OrganizationName: "bmrcl parking", OrganizationType: "Parking"},
		{ID: "4", OrganizationName: "Phoenix Marketcity", OrganizationType: "Mall Operator"},
	} {
		p := p
		require.NoError(t, repo.Create(ctx, CollectionPartnerships, &p))
	}

	metro, err := repo.MetroPartnerships(ctx)
	require.NoError(t, err)

	ids := make([]string, 0, len(metro))
	for _, p := range metro {
		ids = append(ids, p.ID)
	}
	assert.ElementsMatch(t, []string{"1", "2", "3"}, ids)
}

func TestRepository_MarketDataByCity(t *testing.T) {
	repo := NewRepository(NewMemoryStorage())
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, CollectionMarketData, &models.MarketData{ID: "m1", City: "Bangalore"}))

	m, err := repo.MarketDataByCity(ctx, "Bangalore")
	require.NoError(t, err)
	assert.Equal(t, "m1", m.ID)

	_, err = repo.MarketDataByCity(ctx, "bangalore")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestRepository_RecentLocations(t *testing.T) {
	repo := NewRepository(NewMemoryStorage())
	ctx := context.Background()
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 7; i++ {
		loc := models.LocationAnalysis{
			ID:        string(rune('a' + i)),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, repo.Create(ctx, CollectionLocations, &loc))
	}

	recent, err := repo.RecentLocations(ctx, 5)
	require.NoError(t, err)
	require.Len(t, recent, 5)
	assert.Equal(t, "g", recent[0].ID)
	assert.Equal(t, "c", recent[4].ID)

	n, err := repo.Count(ctx, CollectionLocations)
	require.NoError(t, err)
	assert.Equal(t, int64(7), n)
}

func TestRepository_SuppliersByCountryAndRegulatoryByState(t *testing.T) {
	repo := NewRepository(NewMemoryStorage())
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, CollectionSuppliers, &models.Supplier{ID: "s1", Country: "China"}))
	require.NoError(t, repo.Create(ctx, CollectionSuppliers, &models.Supplier{ID: "s2", Country: "India"}))
	require.NoError(t, repo.Create(ctx, CollectionRegulatoryInfo, &models.RegulatoryInfo{ID: "r1", State: "Karnataka"}))

	china, err := repo.SuppliersByCountry(ctx, "China")
	require.NoError(t, err)
	require.Len(t, china, 1)
	assert.Equal(t, "s1", china[0].ID)

	reqs, err := repo.RegulatoryByState(ctx, "Goa")
	require.NoError(t, err)
	assert.NotNil(t, reqs)
	assert.Empty(t, reqs)
}

func TestStaticReference(t *testing.T) {
	ref := NewStaticReference()
	ctx := context.Background()

	types, err := ref.GetLocationTypes(ctx)
	require.NoError(t, err)
	assert.Len(t, types, len(models.LocationTypes))
	for i := 1; i < len(types); i++ {
		assert.Less(t, types[i-1].Name, types[i].Name)
	}

	stations, err := ref.GetChargingStationTypes(ctx)
	require.NoError(t, err)
	assert.Len(t, stations, len(models.ChargingStationTypes))

	regions, err := ref.GetRegions(ctx)
	require.NoError(t, err)
	require.Len(t, regions, 6)
	for _, r := range regions {
		if r.Name == "India" {
			assert.Nil(t, r.ParentRegionID)
			continue
		}
		require.NotNil(t, r.ParentRegionID)
		assert.Equal(t, 1, *r.ParentRegionID)
	}
}
