// Package metrics содержит вычисление производных показателей по сохраненным записям:
// анализ рыночного разрыва, оценку площадок, окупаемость, сводки по конкурентам,
// поставщикам, регуляторным требованиям и бизнес-планы.
// Все функции чистые: не обращаются к хранилищу и не изменяют входные данные.
package metrics

import "github.com/akozadaev/go_ev_charging_platform/internal/models"

const (
	// EVsPerStation - сколько электромобилей обслуживает одна станция
	EVsPerStation = 50.0
	// RevenuePerStation - оценка годовой выручки одной станции
	RevenuePerStation = 500000.0
	// densityBase - плотность конкуренции считается на 100 000 жителей
	densityBase = 100000.0
)

// MarketInsights представляет результат анализа рыночного разрыва
type MarketInsights struct {
	TotalPotentialEVUsers float64 `json:"total_potential_ev_users"`
	StationsNeeded        float64 `json:"stations_needed"`
	MarketGap             float64 `json:"market_gap"`
	MarketOpportunity     float64 `json:"market_opportunity"`
	CompetitionDensity    float64 `json:"competition_density"`
}

// AnalyzeMarket оценивает потребность города в станциях относительно текущего предложения.
// Разрыв может быть отрицательным, если станций уже больше, чем требуется.
func AnalyzeMarket(m models.MarketData) MarketInsights {
	potential := float64(m.Population) * m.EVAdoptionRate / 100
	needed := potential / EVsPerStation
	gap := needed - float64(m.CurrentChargingStations)

	var density float64
	if m.Population > 0 {
		density = float64(m.CurrentChargingStations) / float64(m.Population) * densityBase
	}

	return MarketInsights{
		TotalPotentialEVUsers: potential,
		StationsNeeded:        needed,
		MarketGap:             gap,
		MarketOpportunity:     gap * RevenuePerStation,
		CompetitionDensity:    density,
	}
}
