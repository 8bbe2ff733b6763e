package handlers

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/akozadaev/go_ev_charging_platform/internal/apperrors"
	"github.com/akozadaev/go_ev_charging_platform/internal/metrics"
	"github.com/akozadaev/go_ev_charging_platform/internal/seed"
	"github.com/akozadaev/go_ev_charging_platform/internal/storage"
)

// DashboardAnalytics собирает сводку для главной страницы.
// Эндпоинт: GET /dashboard-analytics
//
// @Summary      Сводка для дашборда
// @Description  Количество записей в коллекциях, пять последних площадок и партнерств, ключевые показатели рынка.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  metrics.Dashboard
// @Failure      500  {object}  ErrorResponse
// @Router       /dashboard-analytics [get]
func (h *Handlers) DashboardAnalytics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var counts metrics.CollectionCounts
	targets := []struct {
		collection string
		dst        *int64
	}{
		{storage.CollectionMarketData, &counts.MarketResearchEntries},
		{storage.CollectionLocations, &counts.AnalyzedLocations},
		{storage.CollectionCompetitors, &counts.TrackedCompetitors},
		{storage.CollectionSuppliers, &counts.SupplierDatabase},
		{storage.CollectionPartnerships, &counts.ActivePartnerships},
		{storage.CollectionFinancialModels, &counts.FinancialScenarios},
		{storage.CollectionBusinessPlans, &counts.BusinessPlans},
		{storage.CollectionRegulatoryInfo, &counts.RegulatoryEntries},
	}
	for _, t := range targets {
		n, err := h.repo.Count(ctx, t.collection)
		if err != nil {
			h.handleError(w, r, err, "")
			return
		}
		*t.dst = n
	}

	locations, err := h.repo.RecentLocations(ctx, metrics.RecentLimit)
	if err != nil {
		h.handleError(w, r, err, "")
		return
	}
	partnerships, err := h.repo.RecentPartnerships(ctx, metrics.RecentLimit)
	if err != nil {
		h.handleError(w, r, err, "")
		return
	}

	writeJSON(w, http.StatusOK, metrics.BuildDashboard(counts, locations, partnerships))
}

// InitializeSampleData заменяет данные коллекций тестовым набором.
// Повторный вызов дает те же количества документов.
// Эндпоинт: POST /initialize-sample-data
//
// @Summary      Загрузить тестовые данные
// @Description  Очищает коллекции рынка, конкурентов, поставщиков, партнерств, площадок и требований и заполняет их заново.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  seed.Result
// @Failure      500  {object}  ErrorResponse  "failed to initialize data: ..."
// @Router       /initialize-sample-data [post]
func (h *Handlers) InitializeSampleData(w http.ResponseWriter, r *http.Request) {
	result, err := seed.Initialize(r.Context(), h.repo.Store(), h.now())
	if err != nil {
		h.logger.Error("Sample data initialization failed", zap.Error(err))
		if errors.Is(err, apperrors.ErrStoreFailure) {
			writeError(w, http.StatusInternalServerError, codeStoreFailure, err.Error())
			return
		}
		h.handleError(w, r, err, "")
		return
	}

	h.logger.Info("Sample data initialized", zap.Any("inserted", result.DataInserted))
	writeJSON(w, http.StatusOK, result)
}
