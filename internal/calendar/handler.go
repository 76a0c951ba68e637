package calendar

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/adiwarna/maintenance-management/internal/request"
	"github.com/adiwarna/maintenance-management/internal/transport"
	"github.com/adiwarna/maintenance-management/pkg/logger"
)

// RequestSourceAPI is the slice of the request service the calendar needs.
type RequestSourceAPI interface {
	ListRequests(stage string) ([]*request.Request, error)
}

type Handler struct {
	*transport.BaseHandler
	Requests RequestSourceAPI
}

func NewHandler(requests RequestSourceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Requests:    requests,
	}
}

// GetMonth projects the scheduled requests onto a month grid. Year and month
// default to the current month when omitted.
func (h *Handler) GetMonth(w http.ResponseWriter, r *http.Request) {
	month := MonthOf(time.Now())

	if raw := r.URL.Query().Get("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			h.WriteError(w, http.StatusBadRequest, "year must be an integer")
			return
		}
		month.Year = year
	}
	if raw := r.URL.Query().Get("month"); raw != "" {
		m, err := strconv.Atoi(raw)
		if err != nil || m < 1 || m > 12 {
			h.WriteError(w, http.StatusBadRequest, "month must be an integer between 1 and 12")
			return
		}
		month.Month = time.Month(m)
	}

	items, err := h.Requests.ListRequests("")
	if err != nil {
		h.Logger.Error("GetMonth: failed to load requests", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to build calendar")
		return
	}

	view := Project(items, month, DefaultMaxPerDay)
	h.WriteJSON(w, http.StatusOK, view)
}
