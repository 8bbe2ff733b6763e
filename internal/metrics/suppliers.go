package metrics

import (
	"sort"

	"github.com/akozadaev/go_ev_charging_platform/internal/models"
)

// ChinaCountry - страна, поставщики из которой учитываются отдельно
const ChinaCountry = "China"

// NoSuppliersMessage возвращается клиенту, когда база поставщиков пуста
const NoSuppliersMessage = "No suppliers found"

// SupplierAnalysis представляет сводку по стоимости и качеству поставщиков
type SupplierAnalysis struct {
	TotalSuppliers       int               `json:"total_suppliers"`
	AveragePricePerUnit  float64           `json:"average_price_per_unit"`
	AverageQualityRating float64           `json:"average_quality_rating"`
	BestValueSuppliers   []models.Supplier `json:"best_value_suppliers"`
	ChinaSuppliers       int               `json:"china_suppliers"`
	CostSavingsPotential map[string]string `json:"cost_savings_potential"`
}

// AnalyzeSuppliers возвращает false, если поставщиков нет: это штатное пустое состояние.
func AnalyzeSuppliers(suppliers []models.Supplier) (SupplierAnalysis, bool) {
	if len(suppliers) == 0 {
		return SupplierAnalysis{}, false
	}

	var totalPrice, totalQuality float64
	china := 0
	for _, s := range suppliers {
		totalPrice += s.PricePerUnit
		totalQuality += s.QualityRating
		if s.Country == ChinaCountry {
			china++
		}
	}
	n := float64(len(suppliers))

	return SupplierAnalysis{
		TotalSuppliers:       len(suppliers),
		AveragePricePerUnit:  totalPrice / n,
		AverageQualityRating: totalQuality / n,
		BestValueSuppliers:   bestValueSuppliers(suppliers, TopListSize),
		ChinaSuppliers:       china,
		CostSavingsPotential: cloneMap(costSavingsNotes),
	}, true
}

// ValueScore - качество на единицу цены. Нулевая цена заменяется на 1.
func ValueScore(s models.Supplier) float64 {
	price := s.PricePerUnit
	if price == 0 {
		price = 1
	}
	return s.QualityRating / price
}

func bestValueSuppliers(suppliers []models.Supplier, n int) []models.Supplier {
	sorted := make([]models.Supplier, len(suppliers))
	copy(sorted, suppliers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return ValueScore(sorted[i]) > ValueScore(sorted[j])
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
