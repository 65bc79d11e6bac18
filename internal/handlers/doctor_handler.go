package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/nordeim/Polaris-Family-Clinic/internal/cache"
	"github.com/nordeim/Polaris-Family-Clinic/internal/httperr"
	"github.com/nordeim/Polaris-Family-Clinic/internal/httpresp"
)

type DoctorHandler struct {
	db    *gorm.DB
	cache *cache.DoctorCache
}

func NewDoctorHandler(db *gorm.DB, dc *cache.DoctorCache) *DoctorHandler {
	return &DoctorHandler{db: db, cache: dc}
}

type DoctorDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	PhotoURL  string    `json:"photo_url"`
	Languages []string  `json:"languages"`
}

// List returns active doctors in name order, for the public booking page.
func (h *DoctorHandler) List(c *gin.Context) {
	doctors, ok := h.cache.Get(c.Request.Context())
	if !ok {
		if err := h.db.
			Where("active = true").
			Order("name ASC").
			Find(&doctors).Error; err != nil {
			log.Error().Err(err).Msg("failed to list doctors")
			httperr.Internal(c, "failed_to_list_doctors", "We could not load the doctor list. Please try again later.")
			return
		}
		h.cache.Set(c.Request.Context(), doctors)
	}

	out := make([]DoctorDTO, 0, len(doctors))
	for _, d := range doctors {
		out = append(out, DoctorDTO{
			ID:        d.ID,
			Name:      d.Name,
			PhotoURL:  d.PhotoURL,
			Languages: splitLanguages(d.Languages),
		})
	}

	httpresp.List(c, out)
}

func splitLanguages(csv string) []string {
	if csv == "" {
		return []string{}
	}
	parts := strings.Split(csv, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
