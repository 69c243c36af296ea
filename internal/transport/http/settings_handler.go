package http

import (
	"net/http"

	"lms-admin-service/internal/app"
	"lms-admin-service/internal/domain"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// SettingsHandler serves the settings shell and reference lists.
type SettingsHandler struct {
	BaseHandler
	service *app.SettingsService
}

func NewSettingsHandler(service *app.SettingsService, logger *zap.Logger) *SettingsHandler {
	return &SettingsHandler{
		service:     service,
		BaseHandler: BaseHandler{Logger: logger},
	}
}

func (h *SettingsHandler) RegisterRoutes(r chi.Router) {
	r.Get("/settings", h.GetSettings)
	r.Patch("/settings", h.UpdateSettings)
	r.Get("/responsible-persons", h.ResponsiblePersons)
}

func (h *SettingsHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	h.RespondJSON(w, http.StatusOK, h.service.Get())
}

func (h *SettingsHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var u domain.SettingsUpdate
	if !h.decodeJSON(w, r, &u) {
		return
	}
	s, err := h.service.Update(u)
	if err != nil {
		h.RespondServiceError(w, r, err)
		return
	}
	h.RespondJSON(w, http.StatusOK, s)
}

func (h *SettingsHandler) ResponsiblePersons(w http.ResponseWriter, r *http.Request) {
	h.RespondJSON(w, http.StatusOK, h.service.ResponsiblePersons())
}
