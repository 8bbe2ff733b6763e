package handlers

import (
	"net/http"
)

// GetLocationTypes обрабатывает GET запрос на получение справочника типов площадок.
// Эндпоинт: GET /location-types
//
// @Summary      Получить список типов площадок
// @Description  Возвращает все типы площадок из справочника
// @Tags         reference
// @Produce      json
// @Success      200  {array}   models.ReferenceItem
// @Failure      500  {object}  ErrorResponse  "Внутренняя ошибка сервера"
// @Router       /location-types [get]
func (h *Handlers) GetLocationTypes(w http.ResponseWriter, r *http.Request) {
	listRecords(h, w, r, h.reference.GetLocationTypes)
}

// GetChargingStationTypes обрабатывает GET запрос на получение справочника типов зарядных станций.
// Эндпоинт: GET /charging-station-types
//
// @Summary      Получить список типов зарядных станций
// @Tags         reference
// @Produce      json
// @Success      200  {array}   models.ReferenceItem
// @Failure      500  {object}  ErrorResponse  "Внутренняя ошибка сервера"
// @Router       /charging-station-types [get]
func (h *Handlers) GetChargingStationTypes(w http.ResponseWriter, r *http.Request) {
	listRecords(h, w, r, h.reference.GetChargingStationTypes)
}

// GetRegions обрабатывает GET запрос на получение списка всех регионов.
// Возвращает данные из справочника с поддержкой иерархии.
// Эндпоинт: GET /regions
//
// @Summary      Получить список регионов
// @Description  Возвращает все доступные регионы из справочника с поддержкой иерархии
// @Tags         reference
// @Produce      json
// @Success      200  {array}   models.Region
// @Failure      500  {object}  ErrorResponse  "Внутренняя ошибка сервера"
// @Router       /regions [get]
func (h *Handlers) GetRegions(w http.ResponseWriter, r *http.Request) {
	listRecords(h, w, r, h.reference.GetRegions)
}
