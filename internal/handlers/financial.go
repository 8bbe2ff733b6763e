package handlers

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/akozadaev/go_ev_charging_platform/internal/apperrors"
	"github.com/akozadaev/go_ev_charging_platform/internal/metrics"
	"github.com/akozadaev/go_ev_charging_platform/internal/models"
	"github.com/akozadaev/go_ev_charging_platform/internal/storage"
)

// CreateFinancialModel сохраняет финансовый сценарий с рассчитанными ROI и сроком окупаемости.
// При неположительной месячной прибыли срок окупаемости сохраняется как 0.
// Эндпоинт: POST /financial-models
//
// @Summary      Добавить финансовый сценарий
// @Description  Рассчитывает roi_percentage и break_even_months по параметрам сценария и сохраняет запись.
// @Tags         financial
// @Accept       json
// @Produce      json
// @Param        request  body      models.FinancialModelCreate  true  "Параметры сценария"
// @Success      200      {object}  models.FinancialModel
// @Failure      400      {object}  ErrorResponse
// @Failure      500      {object}  ErrorResponse
// @Router       /financial-models [post]
func (h *Handlers) CreateFinancialModel(w http.ResponseWriter, r *http.Request) {
	var req models.FinancialModelCreate
	h.createRecord(w, r, storage.CollectionFinancialModels, &req, func() any {
		projection := metrics.ProjectFinancialModel(req)
		h.logger.Debug("Financial model projected",
			zap.String("scenario", req.ScenarioName),
			zap.Float64("monthly_profit", projection.MonthlyProfit),
		)
		return req.Record(projection.ROIPercentage, projection.BreakEvenMonths)
	})
}

// ListFinancialModels
//
// @Summary      Список финансовых сценариев
// @Tags         financial
// @Produce      json
// @Success      200  {array}   models.FinancialModel
// @Failure      500  {object}  ErrorResponse
// @Router       /financial-models [get]
func (h *Handlers) ListFinancialModels(w http.ResponseWriter, r *http.Request) {
	listRecords(h, w, r, h.repo.ListFinancialModels)
}

// ROICalculator рассчитывает окупаемость по параметрам запроса.
// Все параметры обязательны. При неположительной прибыли срок окупаемости равен "Infinity".
// Эндпоинт: GET /roi-calculator
//
// @Summary      Калькулятор окупаемости
// @Tags         financial
// @Produce      json
// @Param        investment        query     number   true  "Инвестиции"
// @Param        daily_users       query     integer  true  "Пользователей в день"
// @Param        price_per_kwh     query     number   true  "Тариф за кВт·ч"
// @Param        avg_charging_kwh  query     number   true  "Средний объем зарядки, кВт·ч"
// @Param        monthly_costs     query     number   true  "Расходы в месяц"
// @Success      200               {object}  metrics.ROIResult
// @Failure      400               {object}  ErrorResponse
// @Router       /roi-calculator [get]
func (h *Handlers) ROICalculator(w http.ResponseWriter, r *http.Request) {
	in, err := parseROIInput(r)
	if err != nil {
		h.handleError(w, r, err, "")
		return
	}

	writeJSON(w, http.StatusOK, metrics.CalculateROI(in))
}

func parseROIInput(r *http.Request) (metrics.ROIInput, error) {
	var in metrics.ROIInput
	var err error

	if in.Investment, err = queryFloat(r, "investment"); err != nil {
		return in, err
	}
	if in.DailyUsers, err = queryInt(r, "daily_users"); err != nil {
		return in, err
	}
	if in.PricePerKWh, err = queryFloat(r, "price_per_kwh"); err != nil {
		return in, err
	}
	if in.AvgChargingKWh, err = queryFloat(r, "avg_charging_kwh"); err != nil {
		return in, err
	}
	if in.MonthlyCosts, err = queryFloat(r, "monthly_costs"); err != nil {
		return in, err
	}

	if in.Investment <= 0 {
		return in, fmt.Errorf("%w: investment must be positive", apperrors.ErrInvalidInput)
	}
	return in, nil
}
