package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/nordeim/Polaris-Family-Clinic/internal/models"
)

const ContextStaffRole = "staffRole"

// RequireStaff guards staff-scoped routes with a single reusable role check:
// the authenticated user must have a staff directory entry whose role is in
// the accepted set. With no roles given, any of staff/doctor/admin passes.
func RequireStaff(db *gorm.DB, roles ...string) gin.HandlerFunc {
	if len(roles) == 0 {
		roles = []string{"staff", "doctor", "admin"}
	}

	accepted := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		accepted[r] = struct{}{}
	}

	return func(c *gin.Context) {
		userID, ok := UserID(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user_not_in_context"})
			return
		}

		var staff models.StaffProfile
		if err := db.Where("user_id = ?", userID).First(&staff).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "staff_only"})
			return
		}

		if _, ok := accepted[staff.Role]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "staff_only"})
			return
		}

		c.Set(ContextStaffRole, staff.Role)

		c.Next()
	}
}
