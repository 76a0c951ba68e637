package profile

import (
	"log/slog"
	"net/http"

	"github.com/adiwarna/maintenance-management/internal/auth"
	"github.com/adiwarna/maintenance-management/internal/transport"
	"github.com/adiwarna/maintenance-management/pkg/logger"
)

type ServiceAPI interface {
	GetByID(id string) (*Profile, error)
	ListTechnicians() ([]*Profile, error)
	ListProfiles() ([]*Profile, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(svc ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     svc,
	}
}

// GetCurrentProfile handles GET /profiles/me
func (h *Handler) GetCurrentProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.Logger.Error("GetCurrentProfile: user not found in context")
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	p, err := h.Service.GetByID(user.ID)
	if err != nil {
		h.Logger.Error("GetCurrentProfile: service error", "error", err, "user_id", user.ID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, p)
}

// ListTechnicians handles GET /profiles/technicians
func (h *Handler) ListTechnicians(w http.ResponseWriter, r *http.Request) {
	technicians, err := h.Service.ListTechnicians()
	if err != nil {
		h.Logger.Error("ListTechnicians: service error", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to list technicians")
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"technicians": technicians,
	})
}

// ListProfiles handles GET /profiles
func (h *Handler) ListProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.Service.ListProfiles()
	if err != nil {
		h.Logger.Error("ListProfiles: service error", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to list profiles")
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"profiles": profiles,
	})
}
