package http

import (
	"net/http"

	"lms-admin-service/internal/app"
	"lms-admin-service/internal/domain"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ReportingHandler serves the participant report.
type ReportingHandler struct {
	BaseHandler
	service *app.ReportingService
}

func NewReportingHandler(service *app.ReportingService, logger *zap.Logger) *ReportingHandler {
	return &ReportingHandler{
		service:     service,
		BaseHandler: BaseHandler{Logger: logger},
	}
}

func (h *ReportingHandler) RegisterRoutes(r chi.Router) {
	r.Route("/reporting", func(r chi.Router) {
		r.Get("/", h.Report)
		r.Get("/metrics", h.Metrics)
		r.Get("/columns", h.Columns)
		r.Post("/columns/{key}/toggle", h.ToggleColumn)
	})
}

// Report handles GET /reporting?status=all|yet-to-start|in-progress|completed
func (h *ReportingHandler) Report(w http.ResponseWriter, r *http.Request) {
	report, err := h.service.Report(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		h.RespondServiceError(w, r, err)
		return
	}
	h.RespondJSON(w, http.StatusOK, report)
}

func (h *ReportingHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	m, err := h.service.Metrics(r.Context())
	if err != nil {
		h.RespondServiceError(w, r, err)
		return
	}
	h.RespondJSON(w, http.StatusOK, m)
}

func (h *ReportingHandler) Columns(w http.ResponseWriter, r *http.Request) {
	h.RespondJSON(w, http.StatusOK, h.service.Columns())
}

func (h *ReportingHandler) ToggleColumn(w http.ResponseWriter, r *http.Request) {
	cols, err := h.service.ToggleColumn(domain.ColumnKey(chi.URLParam(r, "key")))
	if err != nil {
		h.RespondServiceError(w, r, err)
		return
	}
	h.RespondJSON(w, http.StatusOK, cols)
}
