// Package handlers содержит HTTP обработчики REST API платформы анализа рынка зарядных станций.
package handlers

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/akozadaev/go_ev_charging_platform/internal/storage"
)

// Version - версия API, возвращаемая корневым маршрутом
const Version = "1.0.0"

// Handlers содержит зависимости для обработки HTTP запросов.
// Документы читаются через Repository, справочники через ReferenceStore.
type Handlers struct {
	repo      *storage.Repository    // Типизированный доступ к документному хранилищу
	reference storage.ReferenceStore // Справочники (PostgreSQL или статические)
	logger    *zap.Logger
	now       func() time.Time
}

// NewHandlers создает новый экземпляр Handlers с заданными хранилищами.
func NewHandlers(repo *storage.Repository, reference storage.ReferenceStore, logger *zap.Logger) *Handlers {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handlers{
		repo:      repo,
		reference: reference,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Root возвращает описание сервиса.
// Эндпоинт: GET /
//
// @Summary      Информация о сервисе
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       / [get]
func (h *Handlers) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "EV Charging Business Intelligence API",
		"version": Version,
	})
}

// HealthCheck обрабатывает GET запрос на проверку работоспособности сервиса.
// Используется для мониторинга и проверки доступности API.
// Эндпоинт: GET /health
//
// @Summary      Проверка работоспособности сервиса
// @Description  Возвращает статус сервиса. Используется для мониторинга и проверки доступности.
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
	})
}
