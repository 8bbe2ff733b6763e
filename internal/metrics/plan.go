package metrics

import (
	"fmt"
	"math"
	"time"

	"github.com/akozadaev/go_ev_charging_platform/internal/models"
)

const (
	// ProjectionYears - горизонт прогноза выручки
	ProjectionYears = 5
	// monthlyReturnRatio - доля стоимости станции, возвращаемая выручкой за месяц
	monthlyReturnRatio = 0.15
)

// FallbackMarket - рыночный профиль, используемый для городов без исследования рынка
var FallbackMarket = models.MarketData{
	Population:              12000000,
	EVAdoptionRate:          8.5,
	CurrentChargingStations: 450,
	MarketSizeMillions:      850,
	GrowthRatePercentage:    35,
}

// PlanRequest - параметры генерации бизнес-плана
type PlanRequest struct {
	TargetCity       string  `json:"target_city"`
	InvestmentBudget float64 `json:"investment_budget"`
	TimelineMonths   int     `json:"timeline_months"`
	TargetStations   int     `json:"target_stations"`
}

// GenerateBusinessPlan строит план развертывания сети.
// Если market равен nil, используется FallbackMarket, поэтому генерация всегда успешна.
// TargetStations должен быть положительным; это проверяет вызывающая сторона.
func GenerateBusinessPlan(req PlanRequest, market *models.MarketData, now time.Time) models.BusinessPlan {
	profile := FallbackMarket
	if market != nil {
		profile = *market
	}

	stationCost := req.InvestmentBudget / float64(req.TargetStations)
	revenuePerStation := stationCost * monthlyReturnRatio
	totalMonthly := revenuePerStation * float64(req.TargetStations)

	milestones := make([]models.Milestone, len(planMilestones))
	copy(milestones, planMilestones)

	return models.BusinessPlan{
		PlanName:                fmt.Sprintf("%s EV Charging Expansion Plan", req.TargetCity),
		TargetRegion:            req.TargetCity,
		TimelineMonths:          req.TimelineMonths,
		TotalInvestmentRequired: req.InvestmentBudget,
		TargetStations:          req.TargetStations,
		RevenueProjections:      ProjectRevenue(totalMonthly, profile.GrowthRatePercentage),
		KeyMilestones:           milestones,
		RiskFactors:             cloneStrings(planRiskFactors),
		MitigationStrategies:    cloneStrings(planMitigationStrategies),
		MarketInsights: &models.PlanMarketInsights{
			MarketSize:         profile.MarketSizeMillions,
			GrowthRate:         profile.GrowthRatePercentage,
			CompetitionGap:     planCompetitionGap,
			SuccessProbability: planSuccessProbability,
		},
		CreatedAt: now,
	}
}

// ProjectRevenue строит прогноз по годам "year_1".."year_5".
// Выручка года y умножается на y линейно и дополнительно растет сложным процентом:
// monthly × 12 × y × (1 + growth/100)^(y-1).
func ProjectRevenue(monthlyRevenue, growthRatePercentage float64) map[string]float64 {
	projections := make(map[string]float64, ProjectionYears)
	for year := 1; year <= ProjectionYears; year++ {
		compound := math.Pow(1+growthRatePercentage/100, float64(year-1))
		projections[fmt.Sprintf("year_%d", year)] = monthlyRevenue * 12 * float64(year) * compound
	}
	return projections
}
