package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/akozadaev/go_ev_charging_platform/internal/metrics"
	"github.com/akozadaev/go_ev_charging_platform/internal/models"
	"github.com/akozadaev/go_ev_charging_platform/internal/storage"
)

// LocationAnalysisResponse - площадка и ее оценка
type LocationAnalysisResponse struct {
	Location models.LocationAnalysis `json:"location"`
	Analysis metrics.LocationScore   `json:"analysis"`
}

// CreateLocation сохраняет потенциальную площадку.
// Эндпоинт: POST /locations
//
// @Summary      Добавить площадку
// @Tags         locations
// @Accept       json
// @Produce      json
// @Param        request  body      models.LocationAnalysisCreate  true  "Площадка"
// @Success      200      {object}  models.LocationAnalysis
// @Failure      400      {object}  ErrorResponse
// @Failure      500      {object}  ErrorResponse
// @Router       /locations [post]
func (h *Handlers) CreateLocation(w http.ResponseWriter, r *http.Request) {
	var req models.LocationAnalysisCreate
	h.createRecord(w, r, storage.CollectionLocations, &req, func() any { return req.Record() })
}

// ListLocations
//
// @Summary      Список площадок
// @Tags         locations
// @Produce      json
// @Success      200  {array}   models.LocationAnalysis
// @Failure      500  {object}  ErrorResponse
// @Router       /locations [get]
func (h *Handlers) ListLocations(w http.ResponseWriter, r *http.Request) {
	listRecords(h, w, r, h.repo.ListLocations)
}

// LocationAnalysis обрабатывает GET запрос на оценку площадки по ID.
// Эндпоинт: GET /location-analysis/{id}
//
// @Summary      Оценка площадки
// @Description  Рассчитывает оценки трафика, конкуренции и выручки (0-10) и рекомендацию по приоритету.
// @Tags         locations
// @Produce      json
// @Param        id   path      string  true  "Идентификатор площадки"
// @Success      200  {object}  LocationAnalysisResponse
// @Failure      404  {object}  ErrorResponse  "Площадка не найдена"
// @Failure      500  {object}  ErrorResponse
// @Router       /location-analysis/{id} [get]
func (h *Handlers) LocationAnalysis(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	location, err := h.repo.GetLocation(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err, "Location not found")
		return
	}

	writeJSON(w, http.StatusOK, LocationAnalysisResponse{
		Location: *location,
		Analysis: metrics.ScoreLocation(*location),
	})
}
