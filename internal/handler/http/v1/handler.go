package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/crisis_assessment_engine/internal/config"
	"github.com/shenikar/crisis_assessment_engine/internal/models"
	"github.com/shenikar/crisis_assessment_engine/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	sessionService service.SessionService
	logger         *logrus.Logger
	validate       *validator.Validate
	cfg            *config.Config
}

func NewHandler(sessionService service.SessionService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		sessionService: sessionService,
		logger:         logger,
		validate:       validator.New(),
		cfg:            cfg,
	}
}

// @Summary Create a new assessment session
// @Description Create a new crisis assessment session. Requires API key.
// @Tags Sessions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 201 {object} SessionResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /sessions [post]
func (h *Handler) createSession(c *gin.Context) {
	log := h.logger.WithField("method", "createSession")

	session, err := h.sessionService.CreateSession(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to create session in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, ModelToSessionResponse(session))
}

// @Summary Get session state
// @Description Get the current state of an assessment session. Requires API key.
// @Tags Sessions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Session ID"
// @Success 200 {object} SessionResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Session not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /sessions/{id} [get]
func (h *Handler) getSession(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "getSession").WithField("id", id)

	session, err := h.sessionService.GetSession(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
			return
		}
		log.WithError(err).Error("Failed to get session from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelToSessionResponse(session))
}

// @Summary Restart a session
// @Description Wipe all collected and derived fields of a session and return the restart greeting. Requires API key.
// @Tags Sessions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Session ID"
// @Success 200 {object} MessageResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Session not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /sessions/{id}/restart [post]
func (h *Handler) restartSession(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "restartSession").WithField("id", id)

	greeting, err := h.sessionService.RestartSession(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
			return
		}
		log.WithError(err).Error("Failed to restart session in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: greeting})
}

// @Summary Set the crisis type
// @Description Set the crisis type for a session, clearing all previously collected fields. Requires API key.
// @Tags Sessions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Session ID"
// @Param crisis body SetCrisisTypeRequest true "Crisis type request"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Session not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /sessions/{id}/crisis [post]
func (h *Handler) setCrisisType(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "setCrisisType").WithField("id", id)

	var input SetCrisisTypeRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.sessionService.SetCrisisType(c.Request.Context(), id, models.CrisisType(input.CrisisType))
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
			return
		}
		log.WithError(err).Error("Failed to set crisis type in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelToSessionResponse(session))
}

// @Summary Validate a slot value
// @Description Validate and normalize a candidate value for one form slot. A rejected value leaves the slot unset and carries a corrective prompt. Requires API key.
// @Tags Slots
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Session ID"
// @Param slot path string true "Slot name" Enums(location, people_count, vulnerability, mobility_status, injury_status)
// @Param value body ValidateSlotRequest true "Candidate slot value"
// @Success 200 {object} SlotResultResponse
// @Failure 400 {object} map[string]string "Invalid request body or unknown slot"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Session not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /sessions/{id}/slots/{slot} [post]
func (h *Handler) validateSlot(c *gin.Context) {
	id := c.Param("id")
	slot := c.Param("slot")
	log := h.logger.WithField("method", "validateSlot").WithField("id", id).WithField("slot", slot)

	var input ValidateSlotRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.sessionService.ValidateSlot(c.Request.Context(), id, slot, input.Value)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
			return
		}
		log.WithError(err).Warn("Failed to validate slot in service")
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown slot"})
		return
	}
	c.JSON(http.StatusOK, SlotResultToResponse(result))
}

// @Summary Complete the assessment
// @Description Compute the risk score and level from the filled form, look up nearby shelters for a verified location, and compose the summary and safety protocol. Requires API key.
// @Tags Assessment
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Session ID"
// @Success 200 {object} AssessmentResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Session not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /sessions/{id}/assessment [post]
func (h *Handler) completeAssessment(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "completeAssessment").WithField("id", id)

	result, err := h.sessionService.CompleteAssessment(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
			return
		}
		log.WithError(err).Error("Failed to complete assessment in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, AssessmentToResponse(result))
}

// @Summary Route unrecognized input
// @Description Produce a contextual re-prompt for input the dialogue engine could not recognize, based on the active form and the requested slot. Requires API key.
// @Tags Fallback
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Session ID"
// @Param state body FallbackRequest true "Dialogue engine state"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Session not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /sessions/{id}/fallback [post]
func (h *Handler) fallback(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "fallback").WithField("id", id)

	var input FallbackRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	message, err := h.sessionService.Fallback(c.Request.Context(), id, input.ActiveForm, input.RequestedSlot)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
			return
		}
		log.WithError(err).Error("Failed to route fallback in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: message})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
