package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"driverapp/pkg/models"
)

// CreateScheduledRide handles POST /scheduled-rides
func (h *Handler) CreateScheduledRide(c *gin.Context) {
	var req models.CreateRideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "invalid JSON body")
		return
	}

	ride, err := h.services.Ride().Schedule(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err, "Failed to schedule ride")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "ride": ride})
}

// GetScheduledRides handles GET /scheduled-rides?userId=
func (h *Handler) GetScheduledRides(c *gin.Context) {
	rides, err := h.services.Ride().ListByUser(c.Request.Context(), c.Query("userId"))
	if err != nil {
		h.handleError(c, err, "Failed to fetch scheduled rides")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "rides": rides})
}
