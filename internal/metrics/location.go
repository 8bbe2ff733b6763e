package metrics

import (
	"math"

	"github.com/akozadaev/go_ev_charging_platform/internal/models"
)

// Priority - рекомендация по очередности освоения площадки
type Priority string

const (
	PriorityHigh   Priority = "High Priority"
	PriorityMedium Priority = "Medium Priority"
	PriorityLow    Priority = "Low Priority"
)

const (
	maxSubScore         = 10.0
	minCompetitionScore = 1.0
	trafficDivisor      = 1000.0
	revenueDivisor      = 100000.0
)

// LocationScore представляет оценку площадки по трафику, конкуренции и выручке
type LocationScore struct {
	TrafficScore     float64  `json:"traffic_score"`
	CompetitionScore float64  `json:"competition_score"`
	RevenueScore     float64  `json:"revenue_score"`
	OverallScore     float64  `json:"overall_score"`
	Recommendation   Priority `json:"recommendation"`
}

// ScoreLocation рассчитывает оценку площадки.
// Каждая составляющая ограничена сверху 10; трафик снизу 0, конкуренция снизу 1.
// Оценка выручки снизу не ограничена: отрицательная выручка дает отрицательную оценку.
func ScoreLocation(l models.LocationAnalysis) LocationScore {
	traffic := clamp(float64(l.DailyTraffic)/trafficDivisor, 0, maxSubScore)
	competition := clamp(maxSubScore-float64(l.CompetitionWithin5km), minCompetitionScore, maxSubScore)
	revenue := math.Min(l.RevenuePotential/revenueDivisor, maxSubScore)
	overall := (traffic + competition + revenue) / 3

	return LocationScore{
		TrafficScore:     traffic,
		CompetitionScore: competition,
		RevenueScore:     revenue,
		OverallScore:     overall,
		Recommendation:   recommend(overall),
	}
}

func recommend(overall float64) Priority {
	switch {
	case overall >= 7:
		return PriorityHigh
	case overall >= 5:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
