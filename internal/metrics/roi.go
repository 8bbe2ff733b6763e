package metrics

import (
	"encoding/json"
	"math"

	"github.com/akozadaev/go_ev_charging_platform/internal/models"
)

const (
	daysPerMonth   = 30
	monthsPerYear  = 12
	infinityString = "Infinity"
)

// Unbounded - число, которое может принимать значение +Inf.
// В JSON бесконечность передается строкой "Infinity", NaN - как null.
type Unbounded float64

// IsInf сообщает, равно ли значение +Inf
func (u Unbounded) IsInf() bool {
	return math.IsInf(float64(u), 1)
}

// MarshalJSON кодирует бесконечность строкой, так как JSON не допускает Inf
func (u Unbounded) MarshalJSON() ([]byte, error) {
	f := float64(u)
	switch {
	case math.IsInf(f, 1):
		return json.Marshal(infinityString)
	case math.IsInf(f, -1):
		return json.Marshal("-" + infinityString)
	case math.IsNaN(f):
		return []byte("null"), nil
	}
	return json.Marshal(f)
}

// UnmarshalJSON принимает как число, так и строку "Infinity"
func (u *Unbounded) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		switch s {
		case infinityString:
			*u = Unbounded(math.Inf(1))
		case "-" + infinityString:
			*u = Unbounded(math.Inf(-1))
		default:
			*u = Unbounded(math.NaN())
		}
		return nil
	}
	var f *float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	if f == nil {
		*u = Unbounded(math.NaN())
		return nil
	}
	*u = Unbounded(*f)
	return nil
}

// ROIInput - параметры автономного калькулятора окупаемости
type ROIInput struct {
	Investment     float64
	DailyUsers     int
	PricePerKWh    float64
	AvgChargingKWh float64
	MonthlyCosts   float64
}

// ROIResult представляет ответ калькулятора окупаемости.
// При неположительной прибыли срок окупаемости равен +Inf.
type ROIResult struct {
	MonthlyRevenue     float64   `json:"monthly_revenue"`
	MonthlyProfit      float64   `json:"monthly_profit"`
	AnnualProfit       float64   `json:"annual_profit"`
	ROIPercentage      float64   `json:"roi_percentage"`
	BreakEvenMonths    Unbounded `json:"break_even_months"`
	PaybackPeriodYears Unbounded `json:"payback_period_years"`
}

// CalculateROI рассчитывает окупаемость по явно заданным параметрам.
// Investment должен быть положительным; это проверяет вызывающая сторона.
func CalculateROI(in ROIInput) ROIResult {
	revenue := monthlyRevenue(in.DailyUsers, in.AvgChargingKWh, in.PricePerKWh)
	profit := revenue - in.MonthlyCosts
	annual := profit * monthsPerYear

	breakEven, ok := breakEvenMonths(in.Investment, profit)
	if !ok {
		breakEven = math.Inf(1)
	}

	return ROIResult{
		MonthlyRevenue:     revenue,
		MonthlyProfit:      profit,
		AnnualProfit:       annual,
		ROIPercentage:      annual / in.Investment * 100,
		BreakEvenMonths:    Unbounded(breakEven),
		PaybackPeriodYears: Unbounded(breakEven / monthsPerYear),
	}
}

// FinancialProjection - производные показатели финансового сценария.
// При неположительной прибыли срок окупаемости равен 0.
type FinancialProjection struct {
	SessionKWh             float64 `json:"session_kwh"`
	MonthlyRevenue         float64 `json:"monthly_revenue"`
	MonthlyElectricityCost float64 `json:"monthly_electricity_cost"`
	MonthlyCosts           float64 `json:"monthly_costs"`
	MonthlyProfit          float64 `json:"monthly_profit"`
	AnnualProfit           float64 `json:"annual_profit"`
	ROIPercentage          float64 `json:"roi_percentage"`
	BreakEvenMonths        float64 `json:"break_even_months"`
}

// ProjectFinancialModel рассчитывает ROI и срок окупаемости для сохраняемого сценария.
// AverageChargingAmount - средний чек сессии, поэтому объем сессии в кВт·ч равен
// чеку, деленному на тариф. ChargingPricePerKWh и InitialInvestment должны быть положительными.
func ProjectFinancialModel(in models.FinancialModelCreate) FinancialProjection {
	var sessionKWh float64
	if in.ChargingPricePerKWh > 0 {
		sessionKWh = in.AverageChargingAmount / in.ChargingPricePerKWh
	}

	revenue := monthlyRevenue(in.ExpectedDailyUsers, sessionKWh, in.ChargingPricePerKWh)
	electricity := float64(in.ExpectedDailyUsers) * sessionKWh * daysPerMonth * in.ElectricityCostPerKWh
	costs := in.LandLeaseMonthly + in.MonthlyMaintenance + in.StaffCostMonthly + electricity
	profit := revenue - costs
	annual := profit * monthsPerYear

	breakEven, ok := breakEvenMonths(in.InitialInvestment, profit)
	if !ok {
		breakEven = 0
	}

	return FinancialProjection{
		SessionKWh:             sessionKWh,
		MonthlyRevenue:         revenue,
		MonthlyElectricityCost: electricity,
		MonthlyCosts:           costs,
		MonthlyProfit:          profit,
		AnnualProfit:           annual,
		ROIPercentage:          annual / in.InitialInvestment * 100,
		BreakEvenMonths:        breakEven,
	}
}

func monthlyRevenue(dailyUsers int, kwhPerSession, pricePerKWh float64) float64 {
	return float64(dailyUsers) * kwhPerSession * pricePerKWh * daysPerMonth
}

// breakEvenMonths возвращает false, если прибыль не положительна:
// каждый вызывающий подставляет свое значение-маркер.
func breakEvenMonths(investment, monthlyProfit float64) (float64, bool) {
	if monthlyProfit <= 0 {
		return 0, false
	}
	return investment / monthlyProfit, true
}
