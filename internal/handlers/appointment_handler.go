package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/IBilba/pet-a-vet/internal/dto"
	"github.com/IBilba/pet-a-vet/internal/httperr"
	"github.com/IBilba/pet-a-vet/internal/httpresp"
	"github.com/IBilba/pet-a-vet/internal/middleware"
	ucAppointment "github.com/IBilba/pet-a-vet/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	create   *ucAppointment.CreateAppointment
	update   *ucAppointment.UpdateAppointment
	cancel   *ucAppointment.CancelAppointment
	complete *ucAppointment.CompleteAppointment
	list     *ucAppointment.ListAppointments
}

func NewAppointmentHandler(
	create *ucAppointment.CreateAppointment,
	update *ucAppointment.UpdateAppointment,
	cancel *ucAppointment.CancelAppointment,
	complete *ucAppointment.CompleteAppointment,
	list *ucAppointment.ListAppointments,
) *AppointmentHandler {
	return &AppointmentHandler{
		create:   create,
		update:   update,
		cancel:   cancel,
		complete: complete,
		list:     list,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	PetID          uint   `json:"petId" binding:"required"`
	Date           string `json:"date" binding:"required"` // YYYY-MM-DD
	Time           string `json:"time" binding:"required"` // HH:mm or h:mm AM/PM
	Type           string `json:"type"`
	Reason         string `json:"reason"`
	Notes          string `json:"notes"`
	VeterinarianID uint   `json:"veterinarianId"`
	IsEmergency    bool   `json:"isEmergency"`
	DurationMin    int    `json:"durationMin"`
}

type UpdateAppointmentRequest struct {
	ID     uint    `json:"id" binding:"required"`
	Date   *string `json:"date,omitempty"`
	Time   *string `json:"time,omitempty"`
	Type   *string `json:"type,omitempty"`
	Notes  *string `json:"notes,omitempty"`
	Status *string `json:"status,omitempty"`
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	in := ucAppointment.ListAppointmentsInput{
		ActorID:   middleware.ActorID(c),
		ActorRole: middleware.ActorRole(c),
		Date:      c.Query("date"),
		Status:    c.Query("status"),
	}

	in.PetID = queryID(c, "petId")
	in.OwnerID = queryID(c, "ownerId")
	in.ProviderID = queryID(c, "veterinarianId")

	views, err := h.list.Execute(c.Request.Context(), in)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.List(c, views)
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid appointment payload.")
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		ActorID:     middleware.ActorID(c),
		ActorRole:   middleware.ActorRole(c),
		PetID:       req.PetID,
		ProviderID:  req.VeterinarianID,
		Date:        req.Date,
		Time:        req.Time,
		Type:        req.Type,
		Reason:      req.Reason,
		Notes:       req.Notes,
		IsEmergency: req.IsEmergency,
		DurationMin: req.DurationMin,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewAppointmentView(ap))
}

// ======================================================
// UPDATE
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid appointment payload.")
		return
	}

	ap, err := h.update.Execute(c.Request.Context(), ucAppointment.UpdateAppointmentInput{
		ActorID:       middleware.ActorID(c),
		ActorRole:     middleware.ActorRole(c),
		AppointmentID: req.ID,
		Date:          req.Date,
		Time:          req.Time,
		Type:          req.Type,
		Notes:         req.Notes,
		Status:        req.Status,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAppointmentView(ap))
}

// ======================================================
// CANCEL (soft delete)
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	idStr := c.Query("id")
	if idStr == "" {
		httperr.BadRequest(c, "missing_id", "Appointment id is required.")
		return
	}

	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	ap, err := h.cancel.Execute(
		c.Request.Context(),
		middleware.ActorID(c),
		middleware.ActorRole(c),
		uint(id),
	)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAppointmentView(ap))
}

// ======================================================
// COMPLETE
// ======================================================

func (h *AppointmentHandler) Complete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	ap, err := h.complete.Execute(
		c.Request.Context(),
		middleware.ActorID(c),
		middleware.ActorRole(c),
		uint(id),
	)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAppointmentView(ap))
}

// queryID parses a numeric query parameter, 0 when absent or malformed.
func queryID(c *gin.Context, name string) uint {
	raw := c.Query(name)
	if raw == "" {
		return 0
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0
	}
	return uint(id)
}
