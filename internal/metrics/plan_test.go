package metrics

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akozadaev/go_ev_charging_platform/internal/models"
)

func TestGenerateBusinessPlan_UnknownCityUsesFallback(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	plan := GenerateBusinessPlan(PlanRequest{
		TargetCity:       "Atlantis",
		InvestmentBudget: 1000000,
		TimelineMonths:   24,
		TargetStations:   10,
	}, nil, now)

	assert.Equal(t, "Atlantis EV Charging Expansion Plan", plan.PlanName)
	assert.Equal(t, "Atlantis", plan.TargetRegion)
	assert.Equal(t, 24, plan.TimelineMonths)
	assert.Equal(t, 10, plan.TargetStations)
	assert.Equal(t, now, plan.CreatedAt)

	require.Len(t, plan.RevenueProjections, 5)
	// 1 000 000 / 10 × 0.15 × 10 = 150 000 в месяц
	for year := 1; year <= 5; year++ {
		want := 150000.0 * 12 * float64(year) * math.Pow(1.35, float64(year-1))
		assert.InDelta(t, want, plan.RevenueProjections[yearKey(year)], 1e-3)
	}

	require.Len(t, plan.KeyMilestones, 6)
	months := make([]int, 0, 6)
	for _, m := range plan.KeyMilestones {
		months = append(months, m.Month)
		assert.Equal(t, "pending", m.Status)
	}
	assert.Equal(t, []int{3, 6, 9, 12, 18, 24}, months)

	assert.Len(t, plan.RiskFactors, 5)
	assert.Len(t, plan.MitigationStrategies, 5)
	require.NotNil(t, plan.MarketInsights)
	assert.Equal(t, 850.0, plan.MarketInsights.MarketSize)
	assert.Equal(t, 35.0, plan.MarketInsights.GrowthRate)
}

func TestGenerateBusinessPlan_UsesCityGrowth(t *testing.T) {
	market := &models.MarketData{City: "Mumbai", GrowthRatePercentage: 32, MarketSizeMillions: 1200}

	plan := GenerateBusinessPlan(PlanRequest{TargetCity: "Mumbai", InvestmentBudget: 500000, TargetStations: 5}, market, time.Now())

	assert.InDelta(t, 75000.0*12*3*math.Pow(1.32, 2), plan.RevenueProjections["year_3"], 1e-3)
	assert.Equal(t, 1200.0, plan.MarketInsights.MarketSize)
}

func TestGenerateBusinessPlan_ContentIsNotShared(t *testing.T) {
	plan := GenerateBusinessPlan(PlanRequest{TargetCity: "A", InvestmentBudget: 1, TargetStations: 1}, nil, time.Now())
	plan.KeyMilestones[0].Status = "done"
	plan.RiskFactors[0] = "changed"

	again := GenerateBusinessPlan(PlanRequest{TargetCity: "A", InvestmentBudget: 1, TargetStations: 1}, nil, time.Now())
	assert.Equal(t, "pending", again.KeyMilestones[0].Status)
	assert.NotEqual(t, "changed", again.RiskFactors[0])
}

func TestProjectRevenue_LinearTimesCompound(t *testing.T) {
	p := ProjectRevenue(100, 0)

	assert.Equal(t, 1200.0, p["year_1"])
	assert.Equal(t, 2400.0, p["year_2"])
	assert.Equal(t, 6000.0, p["year_5"])
}

func yearKey(year int) string {
	return "year_" + string(rune('0'+year))
}
