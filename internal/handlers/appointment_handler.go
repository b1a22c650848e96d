package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/karlwennerstrom/paltattoo-2025-sub000/internal/audit"
	domain "github.com/karlwennerstrom/paltattoo-2025-sub000/internal/domain/appointment"
	"github.com/karlwennerstrom/paltattoo-2025-sub000/internal/events"
	"github.com/karlwennerstrom/paltattoo-2025-sub000/internal/httperr"
	"github.com/karlwennerstrom/paltattoo-2025-sub000/internal/httpresp"
	"github.com/karlwennerstrom/paltattoo-2025-sub000/internal/middleware"
	usecase "github.com/karlwennerstrom/paltattoo-2025-sub000/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	create       *usecase.CreateAppointment
	reschedule   *usecase.RescheduleAppointment
	confirm      *usecase.ConfirmAppointment
	cancel       *usecase.CancelAppointment
	complete     *usecase.CompleteAppointment
	noShow       *usecase.MarkNoShow
	updateFields *usecase.UpdateAppointmentFields
	list         *usecase.ListAppointments
	upcoming     *usecase.ListUpcoming
	stats        *usecase.GetStats
	availability *usecase.GetAvailability
}

func NewAppointmentHandler(
	repo domain.Repository,
	auditD *audit.Dispatcher,
	eventsD *events.Dispatcher,
) *AppointmentHandler {
	return &AppointmentHandler{
		create:       usecase.NewCreateAppointment(repo, auditD, eventsD),
		reschedule:   usecase.NewRescheduleAppointment(repo, auditD, eventsD),
		confirm:      usecase.NewConfirmAppointment(repo, auditD),
		cancel:       usecase.NewCancelAppointment(repo, auditD, eventsD),
		complete:     usecase.NewCompleteAppointment(repo, auditD, eventsD),
		noShow:       usecase.NewMarkNoShow(repo, auditD, eventsD),
		updateFields: usecase.NewUpdateAppointmentFields(repo, auditD),
		list:         usecase.NewListAppointments(repo),
		upcoming:     usecase.NewListUpcoming(repo),
		stats:        usecase.NewGetStats(repo),
		availability: usecase.NewGetAvailability(repo),
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ClientID   uint  `json:"client_id" binding:"required"`
	ProposalID *uint `json:"proposal_id"`

	Date      string `json:"date" binding:"required"`
	StartTime string `json:"start_time" binding:"required,clocktime"`
	EndTime   string `json:"end_time" binding:"required,clocktime"`

	DurationHours  float64 `json:"duration_hours"`
	EstimatedPrice float64 `json:"estimated_price"`
	DepositAmount  float64 `json:"deposit_amount"`
	Notes          string  `json:"notes"`
	Location       string  `json:"location"`
}

type RescheduleAppointmentRequest struct {
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"start_time" binding:"required,clocktime"`
	EndTime   string `json:"end_time" binding:"required,clocktime"`
}

type CancelAppointmentRequest struct {
	Reason string `json:"reason"`
}

type CompleteAppointmentRequest struct {
	FinalPrice *float64 `json:"final_price"`
	Notes      *string  `json:"notes"`
}

type PatchAppointmentRequest struct {
	Notes          *string  `json:"notes"`
	Location       *string  `json:"location"`
	EstimatedPrice *float64 `json:"estimated_price"`
	DepositAmount  *float64 `json:"deposit_amount"`
	DepositPaid    *bool    `json:"deposit_paid"`
}

// ======================================================
// HELPERS
// ======================================================

func artistID(c *gin.Context) uint {
	return c.MustGet(middleware.ContextArtistID).(uint)
}

func appointmentID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return 0, false
	}
	return uint(id), true
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), usecase.CreateAppointmentInput{
		ArtistID:       artistID(c),
		ClientID:       req.ClientID,
		ProposalID:     req.ProposalID,
		Date:           req.Date,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		DurationHours:  req.DurationHours,
		EstimatedPrice: req.EstimatedPrice,
		DepositAmount:  req.DepositAmount,
		Notes:          req.Notes,
		Location:       req.Location,
	})
	if err != nil {
		httperr.Domain(c, err)
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// LIST / UPCOMING / STATS
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	out, err := h.list.Execute(c.Request.Context(), artistID(c), usecase.ListAppointmentsInput{
		From:   c.Query("from"),
		To:     c.Query("to"),
		Status: c.Query("status"),
	})
	if err != nil {
		httperr.Domain(c, err)
		return
	}

	httpresp.List(c, out)
}

func (h *AppointmentHandler) Upcoming(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "7"))

	out, err := h.upcoming.Execute(c.Request.Context(), artistID(c), days)
	if err != nil {
		httperr.Domain(c, err)
		return
	}

	httpresp.List(c, out)
}

func (h *AppointmentHandler) Stats(c *gin.Context) {
	out, err := h.stats.Execute(c.Request.Context(), artistID(c))
	if err != nil {
		httperr.Domain(c, err)
		return
	}

	httpresp.OK(c, out)
}

// ======================================================
// SLOTS (agenda autenticada)
// ======================================================

func (h *AppointmentHandler) Slots(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	duration, err := strconv.ParseFloat(c.DefaultQuery("duration", "1"), 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_duration", "Duração inválida.")
		return
	}

	out, err := h.availability.Execute(c.Request.Context(), artistID(c), dateStr, duration)
	if err != nil {
		httperr.Domain(c, err)
		return
	}

	httpresp.OK(c, out)
}

// ======================================================
// TRANSIÇÕES DE ESTADO
// ======================================================

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	id, ok := appointmentID(c)
	if !ok {
		return
	}

	ap, err := h.confirm.Execute(c.Request.Context(), artistID(c), id)
	if err != nil {
		httperr.Domain(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	id, ok := appointmentID(c)
	if !ok {
		return
	}

	var req RescheduleAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.reschedule.Execute(c.Request.Context(), usecase.RescheduleAppointmentInput{
		ArtistID:      artistID(c),
		AppointmentID: id,
		Date:          req.Date,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
	})
	if err != nil {
		httperr.Domain(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, ok := appointmentID(c)
	if !ok {
		return
	}

	// corpo opcional: cancelamento sem motivo é aceito
	var req CancelAppointmentRequest
	_ = c.ShouldBindJSON(&req)

	ap, err := h.cancel.Execute(c.Request.Context(), artistID(c), id, req.Reason)
	if err != nil {
		httperr.Domain(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	id, ok := appointmentID(c)
	if !ok {
		return
	}

	var req CompleteAppointmentRequest
	_ = c.ShouldBindJSON(&req)

	ap, err := h.complete.Execute(c.Request.Context(), artistID(c), id, req.FinalPrice, req.Notes)
	if err != nil {
		httperr.Domain(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) NoShow(c *gin.Context) {
	id, ok := appointmentID(c)
	if !ok {
		return
	}

	ap, err := h.noShow.Execute(c.Request.Context(), artistID(c), id)
	if err != nil {
		httperr.Domain(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// PATCH (campos de negócio, sem mudar intervalo)
// ======================================================

func (h *AppointmentHandler) Patch(c *gin.Context) {
	id, ok := appointmentID(c)
	if !ok {
		return
	}

	var req PatchAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.updateFields.Execute(c.Request.Context(), artistID(c), id, domain.Patch{
		Notes:          req.Notes,
		Location:       req.Location,
		EstimatedPrice: req.EstimatedPrice,
		DepositAmount:  req.DepositAmount,
		DepositPaid:    req.DepositPaid,
	})
	if err != nil {
		httperr.Domain(c, err)
		return
	}

	httpresp.OK(c, ap)
}
