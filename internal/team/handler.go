package team

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/adiwarna/maintenance-management/internal/transport"
	"github.com/adiwarna/maintenance-management/pkg/logger"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	CreateTeam(dto CreateTeamDTO) (*Team, error)
	GetTeam(id string) (*Team, error)
	ListTeams() ([]*Team, error)
	UpdateTeam(id string, dto UpdateTeamDTO) (*Team, error)
	DeleteTeam(id string) error
	AddMember(teamID string, dto AddMemberDTO) (*Member, error)
	RemoveMember(teamID, userID string) error
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

func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	var dto CreateTeamDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateTeam: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	team, err := h.Service.CreateTeam(dto)
	if err != nil {
		h.Logger.Error("CreateTeam: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, team)
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	teamID := chi.URLParam(r, "id")

	team, err := h.Service.GetTeam(teamID)
	if err != nil {
		h.Logger.Error("GetTeam: service error", "error", err, "team_id", teamID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, team)
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := h.Service.ListTeams()
	if err != nil {
		h.Logger.Error("ListTeams: service error", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to list teams")
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"teams": teams,
	})
}

func (h *Handler) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	teamID := chi.URLParam(r, "id")

	var dto UpdateTeamDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("UpdateTeam: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	team, err := h.Service.UpdateTeam(teamID, dto)
	if err != nil {
		h.Logger.Error("UpdateTeam: service error", "error", err, "team_id", teamID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, team)
}

func (h *Handler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	teamID := chi.URLParam(r, "id")

	if err := h.Service.DeleteTeam(teamID); err != nil {
		h.Logger.Error("DeleteTeam: service error", "error", err, "team_id", teamID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *Handler) AddMember(w http.ResponseWriter, r *http.Request) {
	teamID := chi.URLParam(r, "id")

	var dto AddMemberDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("AddMember: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	member, err := h.Service.AddMember(teamID, dto)
	if err != nil {
		h.Logger.Error("AddMember: service error", "error", err, "team_id", teamID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, member)
}

func (h *Handler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	teamID := chi.URLParam(r, "id")
	userID := chi.URLParam(r, "userID")

	if err := h.Service.RemoveMember(teamID, userID); err != nil {
		h.Logger.Error("RemoveMember: service error", "error", err, "team_id", teamID, "user_id", userID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{"status": "removed"})
}
