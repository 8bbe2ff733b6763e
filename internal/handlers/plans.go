package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/akozadaev/go_ev_charging_platform/internal/apperrors"
	"github.com/akozadaev/go_ev_charging_platform/internal/metrics"
	"github.com/akozadaev/go_ev_charging_platform/internal/models"
	"github.com/akozadaev/go_ev_charging_platform/internal/storage"
)

// CreateBusinessPlan сохраняет бизнес-план.
//
// @Summary      Сохранить бизнес-план
// @Tags         business-plans
// @Accept       json
// @Produce      json
// @Param        request  body      models.BusinessPlanCreate  true  "Бизнес-план"
// @Success      200      {object}  models.BusinessPlan
// @Failure      400      {object}  ErrorResponse
// @Failure      500      {object}  ErrorResponse
// @Router       /business-plans [post]
func (h *Handlers) CreateBusinessPlan(w http.ResponseWriter, r *http.Request) {
	var req models.BusinessPlanCreate
	h.createRecord(w, r, storage.CollectionBusinessPlans, &req, func() any { return req.Record() })
}

// ListBusinessPlans
//
// @Summary      Список бизнес-планов
// @Tags         business-plans
// @Produce      json
// @Success      200  {array}   models.BusinessPlan
// @Failure      500  {object}  ErrorResponse
// @Router       /business-plans [get]
func (h *Handlers) ListBusinessPlans(w http.ResponseWriter, r *http.Request) {
	listRecords(h, w, r, h.repo.ListBusinessPlans)
}

// GenerateBusinessPlan строит план развертывания сети для города.
// Параметры читаются из строки запроса; если target_city в ней нет, из JSON тела.
// Для города без исследования рынка используется типовой рыночный профиль.
// Сгенерированный план не сохраняется.
// Эндпоинт: POST /generate-business-plan
//
// @Summary      Сгенерировать бизнес-план
// @Description  Пятилетний прогноз выручки, контрольные точки, риски и меры по их снижению.
// @Tags         business-plans
// @Accept       json
// @Produce      json
// @Param        target_city        query     string               false  "Город"
// @Param        investment_budget  query     number               false  "Бюджет"
// @Param        timeline_months    query     integer              false  "Срок, месяцев"
// @Param        target_stations    query     integer              false  "Количество станций"
// @Param        request            body      metrics.PlanRequest  false  "Параметры в JSON"
// @Success      200                {object}  models.BusinessPlan
// @Failure      400                {object}  ErrorResponse
// @Failure      500                {object}  ErrorResponse
// @Router       /generate-business-plan [post]
func (h *Handlers) GenerateBusinessPlan(w http.ResponseWriter, r *http.Request) {
	req, err := parsePlanRequest(r)
	if err != nil {
		h.handleError(w, r, err, "")
		return
	}

	market, err := h.repo.MarketDataByCity(r.Context(), req.TargetCity)
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		h.logger.Info("No market data for city, using fallback profile", zap.String("city", req.TargetCity))
		market = nil
	case err != nil:
		h.handleError(w, r, err, "")
		return
	}

	plan := metrics.GenerateBusinessPlan(req, market, h.now())
	plan.ID = uuid.NewString()
	writeJSON(w, http.StatusOK, plan)
}

func parsePlanRequest(r *http.Request) (metrics.PlanRequest, error) {
	var req metrics.PlanRequest

	if city := r.URL.Query().Get("target_city"); city != "" {
		var err error
		req.TargetCity = city
		if req.InvestmentBudget, err = queryFloat(r, "investment_budget"); err != nil {
			return req, err
		}
		if req.TimelineMonths, err = queryInt(r, "timeline_months"); err != nil {
			return req, err
		}
		if req.TargetStations, err = queryInt(r, "target_stations"); err != nil {
			return req, err
		}
	} else if err := decodeJSON(r, &req); err != nil {
		return req, err
	}

	switch {
	case req.TargetCity == "":
		return req, fmt.Errorf("%w: target_city is required", apperrors.ErrInvalidInput)
	case req.InvestmentBudget <= 0:
		return req, fmt.Errorf("%w: investment_budget must be positive", apperrors.ErrInvalidInput)
	case req.TargetStations <= 0:
		return req, fmt.Errorf("%w: target_stations must be positive", apperrors.ErrInvalidInput)
	case req.TimelineMonths < 0:
		return req, fmt.Errorf("%w: timeline_months must not be negative", apperrors.ErrInvalidInput)
	}
	return req, nil
}
