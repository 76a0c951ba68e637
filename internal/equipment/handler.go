package equipment

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/adiwarna/maintenance-management/internal/transport"
	"github.com/adiwarna/maintenance-management/pkg/logger"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	CreateEquipment(dto CreateEquipmentDTO) (*Equipment, error)
	GetEquipment(id string) (*Equipment, error)
	ListEquipment() ([]*Equipment, error)
	UpdateEquipment(id string, dto UpdateEquipmentDTO) (*Equipment, error)
	DeleteEquipment(id string) error
	CreateCategory(dto CreateCategoryDTO) (*Category, error)
	ListCategories() ([]*Category, error)
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

func (h *Handler) CreateEquipment(w http.ResponseWriter, r *http.Request) {
	var dto CreateEquipmentDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateEquipment: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	eq, err := h.Service.CreateEquipment(dto)
	if err != nil {
		h.Logger.Error("CreateEquipment: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, eq)
}

func (h *Handler) GetEquipment(w http.ResponseWriter, r *http.Request) {
	equipmentID := chi.URLParam(r, "id")

	eq, err := h.Service.GetEquipment(equipmentID)
	if err != nil {
		h.Logger.Error("GetEquipment: service error", "error", err, "equipment_id", equipmentID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, eq)
}

func (h *Handler) ListEquipment(w http.ResponseWriter, r *http.Request) {
	items, err := h.Service.ListEquipment()
	if err != nil {
		h.Logger.Error("ListEquipment: service error", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to list equipment")
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"equipment": items,
	})
}

func (h *Handler) UpdateEquipment(w http.ResponseWriter, r *http.Request) {
	equipmentID := chi.URLParam(r, "id")

	var dto UpdateEquipmentDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("UpdateEquipment: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	eq, err := h.Service.UpdateEquipment(equipmentID, dto)
	if err != nil {
		h.Logger.Error("UpdateEquipment: service error", "error", err, "equipment_id", equipmentID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, eq)
}

func (h *Handler) DeleteEquipment(w http.ResponseWriter, r *http.Request) {
	equipmentID := chi.URLParam(r, "id")

	if err := h.Service.DeleteEquipment(equipmentID); err != nil {
		h.Logger.Error("DeleteEquipment: service error", "error", err, "equipment_id", equipmentID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var dto CreateCategoryDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateCategory: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	category, err := h.Service.CreateCategory(dto)
	if err != nil {
		h.Logger.Error("CreateCategory: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, category)
}

func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Service.ListCategories()
	if err != nil {
		h.Logger.Error("ListCategories: service error", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to list categories")
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"categories": categories,
	})
}
