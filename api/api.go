package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"driverapp/api/handler"
	"driverapp/config"
	"driverapp/pkg/logger"
	"driverapp/service"
)

const requestIDHeader = "X-Request-ID"

func New(cfg config.Config, services service.IServiceManager, log logger.ILogger) *gin.Engine {
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestID())
	r.Use(requestLogger(log))
	r.Use(cors())

	h := handler.New(services, log)

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Driver backend is running")
	})

	// Drivers
	r.POST("/register-driver", h.RegisterDriver)
	r.GET("/drivers", h.GetAllDrivers)
	r.GET("/drivers/:id", h.GetDriverByID)
	r.GET("/driver/:uid", h.GetDriverByUID)
	r.GET("/driver-exists/:uid", h.DriverExists)
	r.PATCH("/update-fcm-token", h.UpdateFCMToken)

	// Rides
	r.POST("/scheduled-rides", h.CreateScheduledRide)
	r.GET("/scheduled-rides", h.GetScheduledRides)

	// Notifications
	r.POST("/driver-notifications", h.CreateDriverNotification)
	r.GET("/driver-notifications/:driverUid", h.GetDriverNotifications)
	r.POST("/notify-driver", h.NotifyDriver)

	// Customers
	r.POST("/customer-profile", h.UpsertCustomerProfile)
	r.GET("/customer-profile/:uid", h.GetCustomerProfile)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "route not found"})
	})

	return r
}

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(handler.RequestIDKey, id)
		c.Writer.Header().Set(requestIDHeader, id)
		c.Next()
	}
}

func requestLogger(log logger.ILogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Info("request completed",
			logger.String("request_id", c.GetString(handler.RequestIDKey)),
			logger.String("method", c.Request.Method),
			logger.String("path", c.Request.URL.Path),
			logger.Int("status", c.Writer.Status()),
			logger.Duration("duration", time.Since(start)),
		)
	}
}

func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
