package report

import (
	"log/slog"
	"net/http"

	"github.com/adiwarna/maintenance-management/internal/transport"
	"github.com/adiwarna/maintenance-management/pkg/logger"
)

type ServiceAPI interface {
	Summary() (*Summary, error)
	Stats() (*Stats, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(service ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     service,
	}
}

func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Service.Summary()
	if err != nil {
		h.Logger.Error("GetSummary: service error", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to build report summary")
		return
	}

	h.WriteJSON(w, http.StatusOK, summary)
}

func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Service.Stats()
	if err != nil {
		h.Logger.Error("GetStats: service error", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to build dashboard stats")
		return
	}

	h.WriteJSON(w, http.StatusOK, stats)
}
