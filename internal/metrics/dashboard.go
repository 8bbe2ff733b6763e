package metrics

import (
	"sort"
	"time"

	"github.com/akozadaev/go_ev_charging_platform/internal/models"
)

// RecentLimit - сколько последних записей показывается на дашборде
const RecentLimit = 5

// CollectionCounts - количество документов в коллекциях
type CollectionCounts struct {
	MarketResearchEntries int64 `json:"market_research_entries"`
	AnalyzedLocations     int64 `json:"analyzed_locations"`
	TrackedCompetitors    int64 `json:"tracked_competitors"`
	SupplierDatabase      int64 `json:"supplier_database"`
	ActivePartnerships    int64 `json:"active_partnerships"`
	FinancialScenarios    int64 `json:"financial_scenarios"`
	BusinessPlans         int64 `json:"business_plans"`
	RegulatoryEntries     int64 `json:"regulatory_entries"`
}

// RecentActivity - последние добавленные площадки и партнерства
type RecentActivity struct {
	LatestLocations    []models.LocationAnalysis `json:"latest_locations"`
	LatestPartnerships []models.Partnership      `json:"latest_partnerships"`
}

// Dashboard представляет сводку для главной страницы.
// KeyMetrics и QuickInsights - статические тексты, а не живые показатели.
type Dashboard struct {
	Overview       CollectionCounts  `json:"overview"`
	RecentActivity RecentActivity    `json:"recent_activity"`
	KeyMetrics     map[string]string `json:"key_metrics"`
	QuickInsights  []string          `json:"quick_insights"`
}

// BuildDashboard собирает дашборд. Списки упорядочиваются по created_at по убыванию
// и обрезаются до RecentLimit независимо от порядка, в котором их вернуло хранилище.
func BuildDashboard(counts CollectionCounts, locations []models.LocationAnalysis, partnerships []models.Partnership) Dashboard {
	return Dashboard{
		Overview: counts,
		RecentActivity: RecentActivity{
			LatestLocations: mostRecent(locations, func(l models.LocationAnalysis) time.Time {
				return l.CreatedAt
			}, RecentLimit),
			LatestPartnerships: mostRecent(partnerships, func(p models.Partnership) time.Time {
				return p.CreatedAt
			}, RecentLimit),
		},
		KeyMetrics:    cloneMap(dashboardKeyMetrics),
		QuickInsights: cloneStrings(dashboardQuickInsights),
	}
}

func mostRecent[T any](items []T, createdAt func(T) time.Time, n int) []T {
	sorted := make([]T, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return createdAt(sorted[i]).After(createdAt(sorted[j]))
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
