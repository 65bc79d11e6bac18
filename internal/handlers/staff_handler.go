package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	domainAppointment "github.com/nordeim/Polaris-Family-Clinic/internal/domain/appointment"
	"github.com/nordeim/Polaris-Family-Clinic/internal/httperr"
	"github.com/nordeim/Polaris-Family-Clinic/internal/httpresp"
	"github.com/nordeim/Polaris-Family-Clinic/internal/middleware"
	ucAppointment "github.com/nordeim/Polaris-Family-Clinic/internal/usecase/appointment"
)

type StaffHandler struct {
	rosterUC       *ucAppointment.ListDayRoster
	updateStatusUC *ucAppointment.UpdateStatus
}

func NewStaffHandler(
	rosterUC *ucAppointment.ListDayRoster,
	updateStatusUC *ucAppointment.UpdateStatus,
) *StaffHandler {
	return &StaffHandler{
		rosterUC:       rosterUC,
		updateStatusUC: updateStatusUC,
	}
}

// --------- Requests ---------

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=arrived in_consultation completed no_show"`
}

// --------- Handlers ---------

// Roster lists today's appointments for the front desk.
func (h *StaffHandler) Roster(c *gin.Context) {
	entries, err := h.rosterUC.Execute(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to load day roster")
		httperr.Internal(c, "failed_to_list_roster", "We could not load today's appointments. Please try again later.")
		return
	}

	httpresp.List(c, entries)
}

// UpdateStatus advances an appointment; the first "arrived" also returns the
// newly assigned queue number.
func (h *StaffHandler) UpdateStatus(c *gin.Context) {
	staffID, ok := middleware.UserID(c)
	if !ok {
		httperr.Unauthorized(c, "user_not_in_context", "Please sign in again.")
		return
	}

	appointmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_id", "That appointment does not exist.")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Pick one of: arrived, in_consultation, completed, no_show.")
		return
	}

	ap, err := h.updateStatusUC.Execute(
		c.Request.Context(),
		staffID,
		appointmentID,
		domainAppointment.Status(req.Status),
	)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "appointment_not_found"):
			httperr.NotFound(c, "appointment_not_found", "That appointment does not exist.")
		case httperr.IsBusiness(err, "invalid_status"), httperr.IsBusiness(err, "invalid_transition"):
			httperr.BadRequest(c, "invalid_transition", "That status change is not allowed from the appointment's current state.")
		case httperr.IsBusiness(err, "queue_assignment_failed"):
			httperr.Internal(c, "queue_assignment_failed", "We could not assign a queue number. Please try again.")
		default:
			log.Error().Err(err).Msg("failed to update appointment status")
			httperr.Internal(c, "failed_to_update_status", "We could not update the appointment. Please try again later.")
		}
		return
	}

	resp := gin.H{
		"success": true,
		"status":  ap.Status,
	}
	if ap.QueueNumber != "" {
		resp["queue_number"] = ap.QueueNumber
	}

	c.JSON(http.StatusOK, resp)
}
