package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/nordeim/Polaris-Family-Clinic/internal/audit"
	"github.com/nordeim/Polaris-Family-Clinic/internal/config"
	domain "github.com/nordeim/Polaris-Family-Clinic/internal/domain/patient"
	"github.com/nordeim/Polaris-Family-Clinic/internal/httperr"
	"github.com/nordeim/Polaris-Family-Clinic/internal/middleware"
	"github.com/nordeim/Polaris-Family-Clinic/internal/models"
	"github.com/nordeim/Polaris-Family-Clinic/internal/validators"
)

type ProfileHandler struct {
	db     *gorm.DB
	config *config.Config
	audit  *audit.Dispatcher
}

func NewProfileHandler(db *gorm.DB, cfg *config.Config, ad *audit.Dispatcher) *ProfileHandler {
	return &ProfileHandler{db: db, config: cfg, audit: ad}
}

// --------- Requests ---------

// NRIC crosses the boundary raw exactly once, here; only its hash and masked
// form survive this handler.
type UpsertProfileRequest struct {
	FullName string `json:"full_name" binding:"required,max=200"`
	NRIC     string `json:"nric" binding:"required"`
	DOB      string `json:"dob" binding:"required"`
	Language string `json:"language"`
	CHASTier string `json:"chas_tier" binding:"omitempty,oneof=blue orange green none unknown"`
}

// --------- Handlers ---------

func (h *ProfileHandler) Get(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		httperr.Unauthorized(c, "user_not_in_context", "Please sign in again.")
		return
	}

	var profile models.PatientProfile
	if err := h.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "profile_not_found", "You have not set up your patient profile yet.")
			return
		}
		log.Error().Err(err).Msg("failed to load patient profile")
		httperr.Internal(c, "failed_to_load_profile", "We could not load your profile. Please try again later.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

func (h *ProfileHandler) Upsert(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		httperr.Unauthorized(c, "user_not_in_context", "Please sign in again.")
		return
	}

	var req UpsertProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Please fill in your full name, NRIC and date of birth.")
		return
	}

	nric := domain.NormalizeNRIC(req.NRIC)
	if !validators.IsNRICShaped(nric) {
		httperr.BadRequest(c, "invalid_nric", "The NRIC/FIN you entered does not look right. Please check it.")
		return
	}

	if _, err := time.Parse("2006-01-02", req.DOB); err != nil {
		httperr.BadRequest(c, "invalid_dob", "Date of birth must be in the form YYYY-MM-DD.")
		return
	}

	language := req.Language
	if language == "" {
		language = "en"
	}
	tier := req.CHASTier
	if tier == "" {
		tier = "unknown"
	}

	profile := models.PatientProfile{
		UserID:     userID,
		FullName:   req.FullName,
		NRICHash:   domain.HashNRIC(nric, h.config.NRICHashSecret),
		NRICMasked: domain.MaskNRIC(nric),
		DOB:        req.DOB,
		Language:   language,
		CHASTier:   tier,
	}

	if err := h.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"full_name", "nric_hash", "nric_masked", "dob", "language", "chas_tier", "updated_at",
		}),
	}).Create(&profile).Error; err != nil {
		log.Error().Err(err).Msg("failed to upsert patient profile")
		httperr.Internal(c, "failed_to_save_profile", "We could not save your profile. Please try again later.")
		return
	}

	// Re-read so the response carries the row's real id on update.
	var saved models.PatientProfile
	if err := h.db.Where("user_id = ?", userID).First(&saved).Error; err != nil {
		log.Error().Err(err).Msg("failed to reload patient profile")
		httperr.Internal(c, "failed_to_save_profile", "We could not save your profile. Please try again later.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "profile_upserted",
		Entity:   "patient_profile",
		EntityID: &saved.ID,
	})

	c.JSON(http.StatusOK, gin.H{"profile": saved})
}
