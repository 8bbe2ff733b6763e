package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akozadaev/go_ev_charging_platform/internal/models"
)

func TestBuildDashboard(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	var locations []models.LocationAnalysis
	for i := 0; i < 7; i++ {
		locations = append(locations, models.LocationAnalysis{
			ID:        string(rune('a' + i)),
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		})
	}
	partnerships := []models.Partnership{
		{ID: "old", CreatedAt: base},
		{ID: "new", CreatedAt: base.Add(time.Minute)},
	}
	counts := CollectionCounts{MarketResearchEntries: 3, AnalyzedLocations: 7, ActivePartnerships: 2}

	d := BuildDashboard(counts, locations, partnerships)

	assert.Equal(t, counts, d.Overview)
	require.Len(t, d.RecentActivity.LatestLocations, 5)
	assert.Equal(t, "g", d.RecentActivity.LatestLocations[0].ID)
	assert.Equal(t, "c", d.RecentActivity.LatestLocations[4].ID)
	require.Len(t, d.RecentActivity.LatestPartnerships, 2)
	assert.Equal(t, "new", d.RecentActivity.LatestPartnerships[0].ID)
	assert.Equal(t, "₹850 Crores", d.KeyMetrics["bangalore_market_size"])
	assert.Len(t, d.QuickInsights, 4)
}

func TestBuildDashboard_Empty(t *testing.T) {
	d := BuildDashboard(CollectionCounts{}, nil, nil)

	assert.Empty(t, d.RecentActivity.LatestLocations)
	assert.Empty(t, d.RecentActivity.LatestPartnerships)
	assert.NotEmpty(t, d.QuickInsights)
}
