package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/akozadaev/go_ev_charging_platform/internal/metrics"
	"github.com/akozadaev/go_ev_charging_platform/internal/models"
	"github.com/akozadaev/go_ev_charging_platform/internal/storage"
)

// CreateRegulatoryInfo сохраняет требование регулятора.
//
// @Summary      Добавить требование регулятора
// @Tags         regulatory
// @Accept       json
// @Produce      json
// @Param        request  body      models.RegulatoryInfoCreate  true  "Требование"
// @Success      200      {object}  models.RegulatoryInfo
// @Failure      400      {object}  ErrorResponse
// @Failure      500      {object}  ErrorResponse
// @Router       /regulatory-info [post]
func (h *Handlers) CreateRegulatoryInfo(w http.ResponseWriter, r *http.Request) {
	var req models.RegulatoryInfoCreate
	h.createRecord(w, r, storage.CollectionRegulatoryInfo, &req, func() any { return req.Record() })
}

// ListRegulatoryInfo
//
// @Summary      Список требований регуляторов
// @Tags         regulatory
// @Produce      json
// @Success      200  {array}   models.RegulatoryInfo
// @Failure      500  {object}  ErrorResponse
// @Router       /regulatory-info [get]
func (h *Handlers) ListRegulatoryInfo(w http.ResponseWriter, r *http.Request) {
	listRecords(h, w, r, h.repo.ListRegulatoryInfo)
}

// RegulatoryCompliance возвращает сводку требований штата.
// Для штата без сохраненных требований подставляется типовое требование на лицензию.
// Эндпоинт: GET /regulatory-compliance/{state}
//
// @Summary      Сводка регуляторных требований
// @Tags         regulatory
// @Produce      json
// @Param        state  path      string  true  "Штат"
// @Success      200    {object}  metrics.ComplianceSummary
// @Failure      500    {object}  ErrorResponse
// @Router       /regulatory-compliance/{state} [get]
func (h *Handlers) RegulatoryCompliance(w http.ResponseWriter, r *http.Request) {
	state := mux.Vars(r)["state"]

	requirements, err := h.repo.RegulatoryByState(r.Context(), state)
	if err != nil {
		h.handleError(w, r, err, "")
		return
	}

	writeJSON(w, http.StatusOK, metrics.SummarizeCompliance(state, requirements))
}
