package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"driverapp/pkg/models"
)

// RegisterDriver handles POST /register-driver
func (h *Handler) RegisterDriver(c *gin.Context) {
	var req models.RegisterDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "invalid JSON body")
		return
	}

	driver, err := h.services.Driver().Register(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err, "Failed to register driver")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "driver": driver})
}

// GetAllDrivers handles GET /drivers and returns a bare array.
func (h *Handler) GetAllDrivers(c *gin.Context) {
	drivers, err := h.services.Driver().GetAll(c.Request.Context())
	if err != nil {
		h.handleError(c, err, "Failed to fetch drivers")
		return
	}

	c.JSON(http.StatusOK, drivers)
}

// GetDriverByID handles GET /drivers/:id
func (h *Handler) GetDriverByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.badRequest(c, "id must be an integer")
		return
	}

	driver, err := h.services.Driver().GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err, "Failed to fetch driver")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "driver": driver})
}

// GetDriverByUID handles GET /driver/:uid
func (h *Handler) GetDriverByUID(c *gin.Context) {
	driver, err := h.services.Driver().GetByUID(c.Request.Context(), c.Param("uid"))
	if err != nil {
		h.handleError(c, err, "Failed to fetch driver")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "driver": driver})
}

// DriverExists handles GET /driver-exists/:uid
func (h *Handler) DriverExists(c *gin.Context) {
	driver, exists, err := h.services.Driver().Exists(c.Request.Context(), c.Param("uid"))
	if err != nil {
		h.handleError(c, err, "Failed to check driver")
		return
	}
	if !exists {
		c.JSON(http.StatusOK, gin.H{"exists": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"exists": true, "driver": driver})
}

// UpdateFCMToken handles PATCH /update-fcm-token
func (h *Handler) UpdateFCMToken(c *gin.Context) {
	var req models.UpdateFCMTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "invalid JSON body")
		return
	}

	driver, err := h.services.Driver().UpdateFCMToken(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err, "Failed to update FCM token")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "driver": driver})
}
