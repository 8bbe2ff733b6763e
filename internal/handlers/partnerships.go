package handlers

import (
	"net/http"

	"github.com/akozadaev/go_ev_charging_platform/internal/models"
	"github.com/akozadaev/go_ev_charging_platform/internal/storage"
)

// CreatePartnership сохраняет переговоры с партнером.
//
// @Summary      Добавить партнерство
// @Tags         partnerships
// @Accept       json
// @Produce      json
// @Param        request  body      models.PartnershipCreate  true  "Партнерство"
// @Success      200      {object}  models.Partnership
// @Failure      400      {object}  ErrorResponse
// @Failure      500      {object}  ErrorResponse
// @Router       /partnerships [post]
func (h *Handlers) CreatePartnership(w http.ResponseWriter, r *http.Request) {
	var req models.PartnershipCreate
	h.createRecord(w, r, storage.CollectionPartnerships, &req, func() any { return req.Record() })
}

// ListPartnerships
//
// @Summary      Список партнерств
// @Tags         partnerships
// @Produce      json
// @Success      200  {array}   models.Partnership
// @Failure      500  {object}  ErrorResponse
// @Router       /partnerships [get]
func (h *Handlers) ListPartnerships(w http.ResponseWriter, r *http.Request) {
	listRecords(h, w, r, h.repo.ListPartnerships)
}

// MetroPartnerships возвращает партнерства с операторами метро.
// Эндпоинт: GET /partnerships/metro-stations
//
// @Summary      Партнерства с метро
// @Description  Партнеры с типом организации "Metro Authority" или с Metro/BMRCL в названии (без учета регистра).
// @Tags         partnerships
// @Produce      json
// @Success      200  {array}   models.Partnership
// @Failure      500  {object}  ErrorResponse
// @Router       /partnerships/metro-stations [get]
func (h *Handlers) MetroPartnerships(w http.ResponseWriter, r *http.Request) {
	listRecords(h, w, r, h.repo.MetroPartnerships)
}
