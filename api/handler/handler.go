package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"driverapp/pkg/logger"
	"driverapp/service"
)

// RequestIDKey is the gin context key holding the request id.
const RequestIDKey = "request_id"

type Handler struct {
	services service.IServiceManager
	log      logger.ILogger
}

func New(services service.IServiceManager, log logger.ILogger) *Handler {
	return &Handler{services: services, log: log}
}

func (h *Handler) badRequest(c *gin.Context, msg string) {
	h.log.Warning("bad request",
		logger.String("request_id", c.GetString(RequestIDKey)),
		logger.String("path", c.Request.URL.Path),
		logger.String("error", msg),
	)
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": msg})
}

// handleError maps service errors onto status codes. Store failures get
// storeMsg instead of the underlying database error.
func (h *Handler) handleError(c *gin.Context, err error, storeMsg string) {
	switch {
	case errors.Is(err, service.ErrValidation):
		h.badRequest(c, detail(err, service.ErrValidation))
	case errors.Is(err, service.ErrNotFound):
		h.log.Warning("not found",
			logger.String("request_id", c.GetString(RequestIDKey)),
			logger.String("path", c.Request.URL.Path),
			logger.Error(err),
		)
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": detail(err, service.ErrNotFound)})
	case errors.Is(err, service.ErrProvider):
		h.log.Error(storeMsg, logger.String("request_id", c.GetString(RequestIDKey)), logger.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": detail(err, service.ErrProvider)})
	default:
		h.log.Error(storeMsg, logger.String("request_id", c.GetString(RequestIDKey)), logger.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": storeMsg})
	}
}

// detail drops the sentinel prefix added by the service layer.
func detail(err, sentinel error) string {
	return strings.TrimPrefix(err.Error(), sentinel.Error()+": ")
}
