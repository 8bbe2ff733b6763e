package handlers

import (
	"context"
	"net/http"

	"github.com/akozadaev/go_ev_charging_platform/internal/metrics"
	"github.com/akozadaev/go_ev_charging_platform/internal/models"
	"github.com/akozadaev/go_ev_charging_platform/internal/storage"
)

// CreateSupplier сохраняет поставщика оборудования.
//
// @Summary      Добавить поставщика
// @Tags         suppliers
// @Accept       json
// @Produce      json
// @Param        request  body      models.SupplierCreate  true  "Поставщик"
// @Success      200      {object}  models.Supplier
// @Failure      400      {object}  ErrorResponse
// @Failure      500      {object}  ErrorResponse
// @Router       /suppliers [post]
func (h *Handlers) CreateSupplier(w http.ResponseWriter, r *http.Request) {
	var req models.SupplierCreate
	h.createRecord(w, r, storage.CollectionSuppliers, &req, func() any { return req.Record() })
}

// ListSuppliers
//
// @Summary      Список поставщиков
// @Tags         suppliers
// @Produce      json
// @Success      200  {array}   models.Supplier
// @Failure      500  {object}  ErrorResponse
// @Router       /suppliers [get]
func (h *Handlers) ListSuppliers(w http.ResponseWriter, r *http.Request) {
	listRecords(h, w, r, h.repo.ListSuppliers)
}

// ChinaSuppliers возвращает поставщиков из Китая.
//
// @Summary      Поставщики из Китая
// @Tags         suppliers
// @Produce      json
// @Success      200  {array}   models.Supplier
// @Failure      500  {object}  ErrorResponse
// @Router       /suppliers/china [get]
func (h *Handlers) ChinaSuppliers(w http.ResponseWriter, r *http.Request) {
	listRecords(h, w, r, func(ctx context.Context) ([]models.Supplier, error) {
		return h.repo.SuppliersByCountry(ctx, metrics.ChinaCountry)
	})
}

// SupplierAnalysis сравнивает поставщиков по цене и качеству.
// Пустая база поставщиков - штатная ситуация: ответ 200 с сообщением.
// Эндпоинт: GET /supplier-analysis
//
// @Summary      Анализ поставщиков
// @Description  Средние цена и качество, лучшие по соотношению качество/цена, число поставщиков из Китая.
// @Tags         suppliers
// @Produce      json
// @Success      200  {object}  metrics.SupplierAnalysis
// @Failure      500  {object}  ErrorResponse
// @Router       /supplier-analysis [get]
func (h *Handlers) SupplierAnalysis(w http.ResponseWriter, r *http.Request) {
	suppliers, err := h.repo.ListSuppliers(r.Context())
	if err != nil {
		h.handleError(w, r, err, "")
		return
	}

	analysis, ok := metrics.AnalyzeSuppliers(suppliers)
	if !ok {
		writeJSON(w, http.StatusOK, map[string]string{"message": metrics.NoSuppliersMessage})
		return
	}
	writeJSON(w, http.StatusOK, analysis)
}
