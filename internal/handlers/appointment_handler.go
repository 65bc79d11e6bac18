package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/nordeim/Polaris-Family-Clinic/internal/httperr"
	"github.com/nordeim/Polaris-Family-Clinic/internal/httpresp"
	"github.com/nordeim/Polaris-Family-Clinic/internal/middleware"
	ucAppointment "github.com/nordeim/Polaris-Family-Clinic/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	availabilityUC *ucAppointment.GetAvailability
	bookUC         *ucAppointment.Book
	listMineUC     *ucAppointment.ListForPatient
}

func NewAppointmentHandler(
	availabilityUC *ucAppointment.GetAvailability,
	bookUC *ucAppointment.Book,
	listMineUC *ucAppointment.ListForPatient,
) *AppointmentHandler {
	return &AppointmentHandler{
		availabilityUC: availabilityUC,
		bookUC:         bookUC,
		listMineUC:     listMineUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BookAppointmentRequest struct {
	DoctorID       string `json:"doctor_id" binding:"required,uuid"`
	ScheduledStart string `json:"scheduled_start" binding:"required"`
	Reason         string `json:"reason" binding:"max=500"`
}

// ======================================================
// SLOTS (public)
// ======================================================

func (h *AppointmentHandler) ListSlots(c *gin.Context) {
	doctorIDStr := c.Query("doctor_id")
	date := c.Query("date")

	if doctorIDStr == "" || date == "" {
		httperr.BadRequest(c, "missing_params", "Pick a doctor and a date first.")
		return
	}

	doctorID, err := uuid.Parse(doctorIDStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_doctor_id", "That doctor does not exist.")
		return
	}

	slots, err := h.availabilityUC.Execute(c.Request.Context(), doctorID, date)
	if err != nil {
		if httperr.IsBusiness(err, "invalid_date") {
			httperr.BadRequest(c, "invalid_date", "Dates must be in the form YYYY-MM-DD.")
			return
		}
		log.Error().Err(err).Msg("failed to compute slots")
		httperr.Internal(c, "failed_to_list_slots", "We could not load available times. Please try again later.")
		return
	}

	httpresp.List(c, slots)
}

// ======================================================
// BOOK
// ======================================================

func (h *AppointmentHandler) Book(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		httperr.Unauthorized(c, "user_not_in_context", "Please sign in again.")
		return
	}

	var req BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Pick a doctor and a timeslot before booking.")
		return
	}

	doctorID, err := uuid.Parse(req.DoctorID)
	if err != nil {
		httperr.BadRequest(c, "invalid_doctor_id", "That doctor does not exist.")
		return
	}

	start, err := time.Parse(time.RFC3339, req.ScheduledStart)
	if err != nil {
		httperr.BadRequest(c, "invalid_scheduled_start", "That timeslot is not valid. Please re-pick a slot.")
		return
	}

	ap, err := h.bookUC.Execute(c.Request.Context(), ucAppointment.BookInput{
		UserID:         userID,
		DoctorID:       doctorID,
		ScheduledStart: start,
		Reason:         req.Reason,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "profile_not_found"):
			httperr.BadRequest(c, "profile_not_found", "Set up your patient profile before booking.")
		case httperr.IsBusiness(err, "doctor_not_found"):
			httperr.BadRequest(c, "doctor_not_found", "That doctor does not exist.")
		case httperr.IsBusiness(err, "doctor_inactive"):
			httperr.BadRequest(c, "doctor_inactive", "That doctor is not taking bookings right now.")
		case httperr.IsBusiness(err, "slot_taken"):
			httperr.Conflict(c, "slot_taken", "Someone just took that slot. Please re-pick another one.")
		default:
			log.Error().Err(err).Msg("failed to book appointment")
			httperr.Internal(c, "failed_to_book", "We could not book your appointment. Please try again later.")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"appointment": ap})
}

// ======================================================
// MINE
// ======================================================

func (h *AppointmentHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		httperr.Unauthorized(c, "user_not_in_context", "Please sign in again.")
		return
	}

	appointments, err := h.listMineUC.Execute(c.Request.Context(), userID)
	if err != nil {
		log.Error().Err(err).Msg("failed to list patient appointments")
		httperr.Internal(c, "failed_to_list_appointments", "We could not load your appointments. Please try again later.")
		return
	}

	httpresp.List(c, appointments)
}
