package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/karlwennerstrom/paltattoo-2025-sub000/internal/audit"
	domain "github.com/karlwennerstrom/paltattoo-2025-sub000/internal/domain/appointment"
	"github.com/karlwennerstrom/paltattoo-2025-sub000/internal/httperr"
	"github.com/karlwennerstrom/paltattoo-2025-sub000/internal/httpresp"
	"github.com/karlwennerstrom/paltattoo-2025-sub000/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type AvailabilityHandler struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewAvailabilityHandler(repo domain.Repository, auditD *audit.Dispatcher) *AvailabilityHandler {
	return &AvailabilityHandler{repo: repo, audit: auditD}
}

// ======================================================
// REQUESTS
// ======================================================

type AvailabilityDayConfig struct {
	DayOfWeek   int    `json:"day_of_week" binding:"min=0,max=6"`
	IsAvailable bool   `json:"is_available"`
	StartTime   string `json:"start_time" binding:"omitempty,clocktime"`
	EndTime     string `json:"end_time" binding:"omitempty,clocktime"`
	BreakStart  string `json:"break_start" binding:"omitempty,clocktime"`
	BreakEnd    string `json:"break_end" binding:"omitempty,clocktime"`
}

type AvailabilityUpdateRequest struct {
	Days []AvailabilityDayConfig `json:"days" binding:"required"`
}

// ======================================================
// GET /me/availability-windows
// ======================================================

func (h *AvailabilityHandler) Get(c *gin.Context) {
	windows, err := h.repo.GetWeeklySchedule(c.Request.Context(), artistID(c))
	if err != nil {
		httperr.Domain(c, err)
		return
	}

	httpresp.List(c, windows)
}

// ======================================================
// PUT /me/availability-windows (substituição total)
// ======================================================

func (h *AvailabilityHandler) Update(c *gin.Context) {
	id := artistID(c)

	var req AvailabilityUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	windows := make([]models.AvailabilityWindow, 0, len(req.Days))
	for _, d := range req.Days {
		windows = append(windows, models.AvailabilityWindow{
			ArtistID:    id,
			DayOfWeek:   d.DayOfWeek,
			IsAvailable: d.IsAvailable,
			StartTime:   d.StartTime,
			EndTime:     d.EndTime,
			BreakStart:  d.BreakStart,
			BreakEnd:    d.BreakEnd,
		})
	}

	if err := domain.ValidateWeek(windows); err != nil {
		httperr.Domain(c, err)
		return
	}

	saved, err := h.repo.ReplaceWeeklySchedule(c.Request.Context(), id, windows)
	if err != nil {
		httperr.Domain(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		ArtistID: id,
		UserID:   &id,
		Action:   "availability_updated",
		Entity:   "availability_window",
	})

	httpresp.List(c, saved)
}
