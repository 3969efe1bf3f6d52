package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ousidus/braintrain/internal/apperr"
	"github.com/ousidus/braintrain/internal/dto"
	"github.com/ousidus/braintrain/internal/service"
	"github.com/rs/zerolog/log"
)

// Exercise sizes and time limits served to the client.
const (
	arithmeticProblemCount = 50
	stroopItemCount        = 50
	memoryWordCount        = 12

	exerciseTimeLimitSeconds = 120
	memorizeTimeSeconds      = 60
	recallTimeSeconds        = 120
)

type ExerciseController struct {
	arithmeticSvc service.ArithmeticService
	readingSvc    service.ReadingService
	stroopSvc     service.StroopService
	memorySvc     service.MemoryService
	typeSvc       service.ExerciseTypeService
}

func NewExerciseController(
	arithmeticSvc service.ArithmeticService,
	readingSvc service.ReadingService,
	stroopSvc service.StroopService,
	memorySvc service.MemoryService,
	typeSvc service.ExerciseTypeService,
) *ExerciseController {
	return &ExerciseController{
		arithmeticSvc: arithmeticSvc,
		readingSvc:    readingSvc,
		stroopSvc:     stroopSvc,
		memorySvc:     memorySvc,
		typeSvc:       typeSvc,
	}
}

// GetArithmetic godoc
// @Summary Get a set of arithmetic problems
// @Description Returns 50 problems drawn at random from the pool, with the exercise time limit.
// @Tags exercises
// @Produce json
// @Success 200 {object} dto.ArithmeticResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/exercises/arithmetic [get]
func (c *ExerciseController) GetArithmetic(ctx *gin.Context) {
	problems, err := c.arithmeticSvc.SampleProblems(arithmeticProblemCount)
	if err != nil {
		log.Error().Err(err).Msg("GetArithmetic: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to generate arithmetic exercise"})
		return
	}
	ctx.JSON(http.StatusOK, dto.ArithmeticResponse{
		Problems:         problems,
		TimeLimitSeconds: exerciseTimeLimitSeconds,
	})
}

// GetReading godoc
// @Summary Get a random reading passage
// @Tags exercises
// @Produce json
// @Success 200 {object} dto.ReadingPassageDTO
// @Failure 404 {object} dto.ErrorResponse "No passages available"
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/exercises/reading [get]
func (c *ExerciseController) GetReading(ctx *gin.Context) {
	passage, err := c.readingSvc.RandomPassage()
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "No reading passages available"})
			return
		}
		log.Error().Err(err).Msg("GetReading: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to pick a reading passage"})
		return
	}
	ctx.JSON(http.StatusOK, passage)
}

// GetStroop godoc
// @Summary Get a generated Stroop color-word test
// @Description Returns 50 items; each word names a color different from the color it is displayed in.
// @Tags exercises
// @Produce json
// @Success 200 {object} dto.StroopResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/exercises/stroop [get]
func (c *ExerciseController) GetStroop(ctx *gin.Context) {
	items, err := c.stroopSvc.Generate(stroopItemCount)
	if err != nil {
		log.Error().Err(err).Msg("GetStroop: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to generate stroop test"})
		return
	}
	ctx.JSON(http.StatusOK, dto.StroopResponse{
		Items:            items,
		TimeLimitSeconds: exerciseTimeLimitSeconds,
	})
}

// GetMemoryWords godoc
// @Summary Get words for the memorization exercise
// @Tags exercises
// @Produce json
// @Success 200 {object} dto.MemoryWordsResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/exercises/memory-words [get]
func (c *ExerciseController) GetMemoryWords(ctx *gin.Context) {
	words, err := c.memorySvc.MemoryWords(memoryWordCount)
	if err != nil {
		log.Error().Err(err).Msg("GetMemoryWords: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to sample memory words"})
		return
	}
	ctx.JSON(http.StatusOK, dto.MemoryWordsResponse{
		Words:               words,
		MemorizeTimeSeconds: memorizeTimeSeconds,
		RecallTimeSeconds:   recallTimeSeconds,
	})
}

// GetExerciseTypes godoc
// @Summary List the exercise catalog
// @Description Returns every exercise type with its instructions and time limit.
// @Tags exercises
// @Produce json
// @Success 200 {array} dto.ExerciseTypeDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/exercise-types [get]
func (c *ExerciseController) GetExerciseTypes(ctx *gin.Context) {
	types, err := c.typeSvc.ListTypes()
	if err != nil {
		log.Error().Err(err).Msg("GetExerciseTypes: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to list exercise types"})
		return
	}
	ctx.JSON(http.StatusOK, types)
}
