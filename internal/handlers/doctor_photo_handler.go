package handlers

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/nordeim/Polaris-Family-Clinic/internal/audit"
	"github.com/nordeim/Polaris-Family-Clinic/internal/cache"
	"github.com/nordeim/Polaris-Family-Clinic/internal/httperr"
	"github.com/nordeim/Polaris-Family-Clinic/internal/middleware"
	"github.com/nordeim/Polaris-Family-Clinic/internal/models"
	"github.com/nordeim/Polaris-Family-Clinic/internal/storage"
)

const maxPhotoBytes = 5 << 20 // 5 MiB

type DoctorPhotoHandler struct {
	db       *gorm.DB
	uploader *storage.Uploader
	cache    *cache.DoctorCache
	audit    *audit.Dispatcher
}

func NewDoctorPhotoHandler(
	db *gorm.DB,
	uploader *storage.Uploader,
	dc *cache.DoctorCache,
	ad *audit.Dispatcher,
) *DoctorPhotoHandler {
	return &DoctorPhotoHandler{
		db:       db,
		uploader: uploader,
		cache:    dc,
		audit:    ad,
	}
}

// Upload replaces a doctor's photo: multipart "photo" in, resized webp in S3
// out, photo_url updated and the doctor-list cache dropped.
func (h *DoctorPhotoHandler) Upload(c *gin.Context) {
	if h.uploader == nil {
		httperr.Internal(c, "photo_storage_unavailable", "Photo storage is not configured on this deployment.")
		return
	}

	staffID, ok := middleware.UserID(c)
	if !ok {
		httperr.Unauthorized(c, "user_not_in_context", "Please sign in again.")
		return
	}

	doctorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_doctor_id", "That doctor does not exist.")
		return
	}

	var doctor models.Doctor
	if err := h.db.First(&doctor, "id = ?", doctorID).Error; err != nil {
		httperr.NotFound(c, "doctor_not_found", "That doctor does not exist.")
		return
	}

	file, err := c.FormFile("photo")
	if err != nil {
		httperr.BadRequest(c, "missing_photo", "Attach the photo as the \"photo\" form field.")
		return
	}
	if file.Size > maxPhotoBytes {
		httperr.BadRequest(c, "photo_too_large", "Photos must be 5 MB or smaller.")
		return
	}

	f, err := file.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_photo", "We could not read the uploaded photo.")
		return
	}
	defer f.Close()

	raw, err := io.ReadAll(io.LimitReader(f, maxPhotoBytes))
	if err != nil {
		httperr.Internal(c, "failed_to_read_photo", "We could not read the uploaded photo.")
		return
	}

	processed, err := storage.ProcessPhoto(raw)
	if err != nil {
		httperr.BadRequest(c, "invalid_photo", "That file does not look like an image we can use.")
		return
	}

	key := fmt.Sprintf("doctors/%s.webp", doctor.ID)
	url, err := h.uploader.UploadPhoto(c.Request.Context(), key, processed)
	if err != nil {
		log.Error().Err(err).Str("doctor_id", doctor.ID.String()).Msg("photo upload failed")
		httperr.Internal(c, "failed_to_upload_photo", "We could not store the photo. Please try again later.")
		return
	}

	if err := h.db.Model(&doctor).Update("photo_url", url).Error; err != nil {
		log.Error().Err(err).Msg("failed to save photo url")
		httperr.Internal(c, "failed_to_save_photo", "We could not save the photo. Please try again later.")
		return
	}

	h.cache.Invalidate(c.Request.Context())

	h.audit.Dispatch(audit.Event{
		UserID:   &staffID,
		Action:   "doctor_photo_updated",
		Entity:   "doctor",
		EntityID: &doctor.ID,
	})

	c.JSON(http.StatusOK, gin.H{"photo_url": url})
}
