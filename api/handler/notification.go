package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"driverapp/pkg/models"
)

// NotifyDriver handles POST /notify-driver
func (h *Handler) NotifyDriver(c *gin.Context) {
	var req models.NotifyDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "invalid JSON body")
		return
	}

	id, err := h.services.Notification().Send(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err, "Failed to send notification")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "response": id})
}

// CreateDriverNotification handles POST /driver-notifications
func (h *Handler) CreateDriverNotification(c *gin.Context) {
	var req models.CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "invalid JSON body")
		return
	}

	n, err := h.services.Notification().Record(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err, "Failed to save notification")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "notification": n})
}

// GetDriverNotifications handles GET /driver-notifications/:driverUid
func (h *Handler) GetDriverNotifications(c *gin.Context) {
	list, err := h.services.Notification().ListByDriver(c.Request.Context(), c.Param("driverUid"))
	if err != nil {
		h.handleError(c, err, "Failed to fetch notifications")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "notifications": list})
}
