package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ousidus/braintrain/internal/apperr"
	"github.com/ousidus/braintrain/internal/dto"
	"github.com/ousidus/braintrain/internal/service"
	"github.com/rs/zerolog/log"
)

type SessionController struct {
	sessionSvc service.SessionService
}

func NewSessionController(sessionSvc service.SessionService) *SessionController {
	return &SessionController{sessionSvc: sessionSvc}
}

// CreateSession godoc
// @Summary Start a new training session
// @Tags sessions
// @Produce json
// @Success 200 {object} dto.SessionDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/sessions [post]
func (c *SessionController) CreateSession(ctx *gin.Context) {
	session, err := c.sessionSvc.CreateSession()
	if err != nil {
		log.Error().Err(err).Msg("CreateSession: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to create session"})
		return
	}
	ctx.JSON(http.StatusOK, session)
}

// SaveResult godoc
// @Summary Record an exercise result
// @Description Stores one result. Without a session_id a new session is created and the result linked to it.
// @Tags sessions
// @Accept json
// @Produce json
// @Param result body dto.ResultCreateDTO true "Exercise result"
// @Success 200 {object} dto.ResultDTO
// @Failure 404 {object} dto.ErrorResponse "Unknown session id"
// @Failure 422 {object} dto.ErrorResponse "Missing or malformed fields"
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/results [post]
func (c *SessionController) SaveResult(ctx *gin.Context) {
	var req dto.ResultCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("SaveResult: failed to bind request body")
		ctx.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{
			Message: "Invalid result payload",
			Details: []string{err.Error()},
		})
		return
	}

	result, err := c.sessionSvc.RecordResult(req)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Session not found"})
			return
		}
		log.Error().Err(err).Msg("SaveResult: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to save result"})
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// GetSession godoc
// @Summary Get a session with its results and recomputed total score
// @Tags sessions
// @Produce json
// @Param id path int true "Session ID"
// @Success 200 {object} dto.SessionDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid session id"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/sessions/{id} [get]
func (c *SessionController) GetSession(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid session id"})
		return
	}

	session, err := c.sessionSvc.GetSession(uint(id))
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Session not found"})
			return
		}
		log.Error().Err(err).Uint64("sessionID", id).Msg("GetSession: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to load session"})
		return
	}
	ctx.JSON(http.StatusOK, session)
}
