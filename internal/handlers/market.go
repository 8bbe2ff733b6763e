package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/akozadaev/go_ev_charging_platform/internal/metrics"
	"github.com/akozadaev/go_ev_charging_platform/internal/models"
	"github.com/akozadaev/go_ev_charging_platform/internal/storage"
)

// MarketAnalysisResponse - исследование рынка города и рассчитанные показатели
type MarketAnalysisResponse struct {
	City       string                 `json:"city"`
	MarketData models.MarketData      `json:"market_data"`
	Insights   metrics.MarketInsights `json:"insights"`
}

// CreateMarketData сохраняет исследование рынка.
// Эндпоинт: POST /market-data
//
// @Summary      Добавить исследование рынка
// @Tags         market
// @Accept       json
// @Produce      json
// @Param        request  body      models.MarketDataCreate  true  "Исследование рынка"
// @Success      200      {object}  models.MarketData
// @Failure      400      {object}  ErrorResponse
// @Failure      500      {object}  ErrorResponse
// @Router       /market-data [post]
func (h *Handlers) CreateMarketData(w http.ResponseWriter, r *http.Request) {
	var req models.MarketDataCreate
	h.createRecord(w, r, storage.CollectionMarketData, &req, func() any { return req.Record() })
}

// ListMarketData возвращает все исследования рынка.
//
// @Summary      Список исследований рынка
// @Tags         market
// @Produce      json
// @Success      200  {array}   models.MarketData
// @Failure      500  {object}  ErrorResponse
// @Router       /market-data [get]
func (h *Handlers) ListMarketData(w http.ResponseWriter, r *http.Request) {
	listRecords(h, w, r, h.repo.ListMarketData)
}

// MarketAnalysis рассчитывает рыночный разрыв для города.
// Город ищется по точному совпадению имени.
// Эндпоинт: GET /market-analysis/{city}
//
// @Summary      Анализ рынка города
// @Description  Возвращает потенциальное число электромобилей, потребность в станциях, рыночный разрыв и плотность конкуренции.
// @Tags         market
// @Produce      json
// @Param        city  path      string  true  "Название города"
// @Success      200   {object}  MarketAnalysisResponse
// @Failure      404   {object}  ErrorResponse  "Нет исследования для города"
// @Failure      500   {object}  ErrorResponse
// @Router       /market-analysis/{city} [get]
func (h *Handlers) MarketAnalysis(w http.ResponseWriter, r *http.Request) {
	city := mux.Vars(r)["city"]

	market, err := h.repo.MarketDataByCity(r.Context(), city)
	if err != nil {
		h.handleError(w, r, err, "Market data not found for this city")
		return
	}

	writeJSON(w, http.StatusOK, MarketAnalysisResponse{
		City:       city,
		MarketData: *market,
		Insights:   metrics.AnalyzeMarket(*market),
	})
}
