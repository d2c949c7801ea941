package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jithiee/FyndPro-Backend/internal/dto"
	"github.com/jithiee/FyndPro-Backend/internal/httperr"
	"github.com/jithiee/FyndPro-Backend/internal/httpresp"
	"github.com/jithiee/FyndPro-Backend/internal/middleware"
	"github.com/jithiee/FyndPro-Backend/internal/validators"
)

// CandidateInvalidator drops the cached nearby-candidate list after a
// location write.
type CandidateInvalidator interface {
	Invalidate(ctx context.Context) error
}

type MeHandler struct {
	db    *gorm.DB
	cache CandidateInvalidator
}

func NewMeHandler(db *gorm.DB, cache CandidateInvalidator) *MeHandler {
	return &MeHandler{db: db, cache: cache}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	identity := middleware.Identity(c)
	httpresp.OK(c, dto.NewUserWithProfile(identity))
}

type UpdateLocationRequest struct {
	Latitude  *float64 `json:"latitude" binding:"required"`
	Longitude *float64 `json:"longitude" binding:"required"`
	Location  string   `json:"location"`
}

func (h *MeHandler) UpdateLocation(c *gin.Context) {
	identity := middleware.Identity(c)

	var req UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Latitude and longitude are required.")
		return
	}

	if !validators.IsValidLatitude(*req.Latitude) || !validators.IsValidLongitude(*req.Longitude) {
		httperr.BadRequest(c, "invalid_coordinates", "Coordinates are out of range.")
		return
	}

	identity.Latitude = req.Latitude
	identity.Longitude = req.Longitude
	identity.Location = req.Location

	if err := h.db.Model(identity).
		Select("latitude", "longitude", "location").
		Updates(map[string]any{
			"latitude":  req.Latitude,
			"longitude": req.Longitude,
			"location":  req.Location,
		}).Error; err != nil {
		httperr.Internal(c, "update_failed", "Could not update location.")
		return
	}

	if h.cache != nil {
		_ = h.cache.Invalidate(c.Request.Context())
	}

	httpresp.OK(c, dto.NewUserWithProfile(identity))
}
