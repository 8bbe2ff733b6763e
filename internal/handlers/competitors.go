package handlers

import (
	"net/http"

	"github.com/akozadaev/go_ev_charging_platform/internal/metrics"
	"github.com/akozadaev/go_ev_charging_platform/internal/models"
	"github.com/akozadaev/go_ev_charging_platform/internal/storage"
)

// CreateCompetitor сохраняет конкурента.
//
// @Summary      Добавить конкурента
// @Tags         competitors
// @Accept       json
// @Produce      json
// @Param        request  body      models.CompetitorCreate  true  "Конкурент"
// @Success      200      {object}  models.Competitor
// @Failure      400      {object}  ErrorResponse
// @Failure      500      {object}  ErrorResponse
// @Router       /competitors [post]
func (h *Handlers) CreateCompetitor(w http.ResponseWriter, r *http.Request) {
	var req models.CompetitorCreate
	h.createRecord(w, r, storage.CollectionCompetitors, &req, func() any { return req.Record() })
}

// ListCompetitors
//
// @Summary      Список конкурентов
// @Tags         competitors
// @Produce      json
// @Success      200  {array}   models.Competitor
// @Failure      500  {object}  ErrorResponse
// @Router       /competitors [get]
func (h *Handlers) ListCompetitors(w http.ResponseWriter, r *http.Request) {
	listRecords(h, w, r, h.repo.ListCompetitors)
}

// CompetitorAnalysis агрегирует доли рынка и цены всех конкурентов.
// Эндпоинт: GET /competitor-analysis
//
// @Summary      Анализ конкурентов
// @Description  Суммарная и свободная доля рынка, средняя цена, пять крупнейших конкурентов и рекомендуемый тариф.
// @Tags         competitors
// @Produce      json
// @Success      200  {object}  metrics.CompetitorAnalysis
// @Failure      500  {object}  ErrorResponse
// @Router       /competitor-analysis [get]
func (h *Handlers) CompetitorAnalysis(w http.ResponseWriter, r *http.Request) {
	competitors, err := h.repo.ListCompetitors(r.Context())
	if err != nil {
		h.handleError(w, r, err, "")
		return
	}

	writeJSON(w, http.StatusOK, metrics.AnalyzeCompetitors(competitors))
}
