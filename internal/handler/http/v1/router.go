package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршруты сессий оценки кризиса, доступны только по API-ключу
	sessions := api.Group("/sessions")
	sessions.Use(APIKeyAuthMiddleware(h.cfg, h.logger))
	{
		sessions.POST("", h.createSession)
		sessions.GET("/:id", h.getSession)
		sessions.POST("/:id/restart", h.restartSession)
		sessions.POST("/:id/crisis", h.setCrisisType)
		sessions.POST("/:id/slots/:slot", h.validateSlot)
		sessions.POST("/:id/assessment", h.completeAssessment)
		sessions.POST("/:id/fallback", h.fallback)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
