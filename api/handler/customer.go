package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"driverapp/pkg/models"
)

// UpsertCustomerProfile handles POST /customer-profile
func (h *Handler) UpsertCustomerProfile(c *gin.Context) {
	var req models.UpsertCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "invalid JSON body")
		return
	}

	profile, err := h.services.Customer().Upsert(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err, "Failed to save customer profile")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "profile": profile})
}

// GetCustomerProfile handles GET /customer-profile/:uid
func (h *Handler) GetCustomerProfile(c *gin.Context) {
	profile, err := h.services.Customer().GetByUID(c.Request.Context(), c.Param("uid"))
	if err != nil {
		h.handleError(c, err, "Failed to fetch customer profile")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "profile": profile})
}
