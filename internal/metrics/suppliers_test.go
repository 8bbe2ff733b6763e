package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akozadaev/go_ev_charging_platform/internal/models"
)

func TestAnalyzeSuppliers_Empty(t *testing.T) {
	_, ok := AnalyzeSuppliers(nil)

	assert.False(t, ok)
}

func TestAnalyzeSuppliers_Sample(t *testing.T) {
	suppliers := []models.Supplier{
		{CompanyName: "Shenzhen EVSE Technology", Country: "China", PricePerUnit: 85000, QualityRating: 8.5},
		{CompanyName: "Guangzhou EV Charger Solutions", Country: "China", PricePerUnit: 125000, QualityRating: 9.2},
		{CompanyName: "Pune Power Systems", Country: "India", PricePerUnit: 150000, QualityRating: 7.9},
	}

	a, ok := AnalyzeSuppliers(suppliers)
	require.True(t, ok)

	assert.Equal(t, 3, a.TotalSuppliers)
	assert.InDelta(t, 120000, a.AveragePricePerUnit, 1e-9)
	assert.InDelta(t, (8.5+9.2+7.9)/3, a.AverageQualityRating, 1e-9)
	assert.Equal(t, 2, a.ChinaSuppliers)
	require.Len(t, a.BestValueSuppliers, 3)
	assert.Equal(t, "Shenzhen EVSE Technology", a.BestValueSuppliers[0].CompanyName)
	assert.Equal(t, "Guangzhou EV Charger Solutions", a.BestValueSuppliers[1].CompanyName)
	assert.Contains(t, a.CostSavingsPotential, "china_vs_others")
}

func TestAnalyzeSuppliers_ZeroPriceTreatedAsOne(t *testing.T) {
	free := models.Supplier{CompanyName: "Free", PricePerUnit: 0, QualityRating: 3}

	assert.Equal(t, 3.0, ValueScore(free))

	a, ok := AnalyzeSuppliers([]models.Supplier{
		{CompanyName: "Paid", PricePerUnit: 10, QualityRating: 9},
		free,
	})
	require.True(t, ok)
	assert.Equal(t, "Free", a.BestValueSuppliers[0].CompanyName)
}

func TestAnalyzeSuppliers_TopFive(t *testing.T) {
	var suppliers []models.Supplier
	for i := 1; i <= 8; i++ {
		suppliers = append(suppliers, models.Supplier{PricePerUnit: float64(i), QualityRating: 5})
	}

	a, ok := AnalyzeSuppliers(suppliers)
	require.True(t, ok)

	require.Len(t, a.BestValueSuppliers, 5)
	assert.Equal(t, 1.0, a.BestValueSuppliers[0].PricePerUnit)
	assert.Equal(t, 5.0, a.BestValueSuppliers[4].PricePerUnit)
}
