package metrics

import (
	"sort"

	"github.com/akozadaev/go_ev_charging_platform/internal/models"
)

const (
	// TopListSize - сколько записей попадает в рейтинги конкурентов и поставщиков
	TopListSize = 5
	// DefaultCompetitivePrice - рекомендуемый тариф за кВт·ч, когда цены конкурентов неизвестны
	DefaultCompetitivePrice = 15.0
	competitivePriceFactor  = 0.95
	fullMarketShare         = 100.0
)

// PricingInsights представляет ценовой коридор рынка
type PricingInsights struct {
	MinPrice                  float64 `json:"min_price"`
	MaxPrice                  float64 `json:"max_price"`
	SuggestedCompetitivePrice float64 `json:"suggested_competitive_price"`
}

// CompetitorAnalysis представляет сводку по конкурентам
type CompetitorAnalysis struct {
	TotalCompetitors        int                 `json:"total_competitors"`
	TotalMarketShareCovered float64             `json:"total_market_share_covered"`
	MarketShareAvailable    float64             `json:"market_share_available"`
	AverageMarketPrice      float64             `json:"average_market_price"`
	TopCompetitors          []models.Competitor `json:"top_competitors"`
	PricingInsights         PricingInsights     `json:"pricing_insights"`
}

// AnalyzeCompetitors агрегирует доли рынка и цены конкурентов.
// Свободная доля рынка не ограничивается снизу: отрицательное значение означает,
// что суммарные доли конкурентов превышают 100%.
func AnalyzeCompetitors(competitors []models.Competitor) CompetitorAnalysis {
	var totalShare, totalPrice float64
	for _, c := range competitors {
		totalShare += c.MarketSharePercentage
		totalPrice += c.AveragePricePerKWh
	}

	var avgPrice, minPrice, maxPrice float64
	if len(competitors) > 0 {
		avgPrice = totalPrice / float64(len(competitors))
		minPrice = competitors[0].AveragePricePerKWh
		maxPrice = competitors[0].AveragePricePerKWh
		for _, c := range competitors[1:] {
			if c.AveragePricePerKWh < minPrice {
				minPrice = c.AveragePricePerKWh
			}
			if c.AveragePricePerKWh > maxPrice {
				maxPrice = c.AveragePricePerKWh
			}
		}
	}

	suggested := DefaultCompetitivePrice
	if avgPrice > 0 {
		suggested = avgPrice * competitivePriceFactor
	}

	return CompetitorAnalysis{
		TotalCompetitors:        len(competitors),
		TotalMarketShareCovered: totalShare,
		MarketShareAvailable:    fullMarketShare - totalShare,
		AverageMarketPrice:      avgPrice,
		TopCompetitors:          topCompetitors(competitors, TopListSize),
		PricingInsights: PricingInsights{
			MinPrice:                  minPrice,
			MaxPrice:                  maxPrice,
			SuggestedCompetitivePrice: suggested,
		},
	}
}

// topCompetitors сортирует копию списка по доле рынка по убыванию.
// При равных долях сохраняется исходный порядок.
func topCompetitors(competitors []models.Competitor, n int) []models.Competitor {
	sorted := make([]models.Competitor, len(competitors))
	copy(sorted, competitors)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].MarketSharePercentage > sorted[j].MarketSharePercentage
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
