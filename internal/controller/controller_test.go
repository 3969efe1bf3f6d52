package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/ousidus/braintrain/database"
	"github.com/ousidus/braintrain/internal/repository"
	"github.com/ousidus/braintrain/internal/service"
	"github.com/ousidus/braintrain/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupRouter(t *testing.T, db *gorm.DB) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()

	exerciseCtrl := NewExerciseController(
		service.NewArithmeticService(repository.NewMathProblemRepository(db)),
		service.NewReadingService(repository.NewReadingPassageRepository(db)),
		service.NewStroopService(repository.NewStroopColorRepository(db)),
		service.NewMemoryService(repository.NewWordListRepository(db)),
		service.NewExerciseTypeService(repository.NewExerciseTypeRepository(db)),
	)
	sessionCtrl := NewSessionController(service.NewSessionService(
		repository.NewSessionRepository(db),
		repository.NewResultRepository(db),
		db,
	))

	RegisterRoutes(router, exerciseCtrl, sessionCtrl)
	return router
}

// seededRouter serves the full shipped reference corpus.
func seededRouter(t *testing.T) *gin.Engine {
	t.Helper()
	db := testutil.OpenTestDB(t)
	require.NoError(t, database.Seed(db))
	return setupRouter(t, db)
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestHealthEndpoints(t *testing.T) {
	router := seededRouter(t)

	w := doJSON(t, router, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "healthy", decode(t, w)["status"])

	w = doJSON(t, router, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decode(t, w)["status"])
}

func TestGetArithmetic(t *testing.T) {
	router := seededRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/exercises/arithmetic", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.EqualValues(t, 120, body["time_limit_seconds"])
	problems := body["problems"].([]any)
	assert.Len(t, problems, 50)

	first := problems[0].(map[string]any)
	assert.Contains(t, first, "id")
	assert.Contains(t, first, "expression")
	assert.Contains(t, first, "answer")
}

func TestGetStroop(t *testing.T) {
	router := seededRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/exercises/stroop", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.EqualValues(t, 120, body["time_limit_seconds"])
	items := body["items"].([]any)
	require.Len(t, items, 50)

	for _, raw := range items {
		item := raw.(map[string]any)
		assert.False(t, strings.EqualFold(item["word"].(string), item["correct_answer"].(string)),
			"word %q printed in its own color", item["word"])
		assert.Regexp(t, `^#[0-9A-Fa-f]{6}$`, item["display_color"])
	}
}

func TestGetMemoryWords(t *testing.T) {
	router := seededRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/exercises/memory-words", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.EqualValues(t, 60, body["memorize_time_seconds"])
	assert.EqualValues(t, 120, body["recall_time_seconds"])
	assert.Len(t, body["words"].([]any), 12)
}

func TestGetReading(t *testing.T) {
	router := seededRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/exercises/reading", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.NotEmpty(t, body["content"])
	assert.NotEmpty(t, body["title"])
}

func TestGetReading_NoPassages(t *testing.T) {
	router := setupRouter(t, testutil.OpenTestDB(t))

	w := doJSON(t, router, http.MethodGet, "/api/exercises/reading", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetExerciseTypes(t *testing.T) {
	router := seededRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/exercise-types", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var types []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &types))
	require.Len(t, types, 5)

	names := make([]string, 0, len(types))
	for _, et := range types {
		names = append(names, et["name"].(string))
	}
	assert.Contains(t, names, "stroop")
	assert.Contains(t, names, "counting")
}

func TestSessionLifecycle(t *testing.T) {
	router := seededRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/sessions", nil)
	require.Equal(t, http.StatusOK, w.Code)
	created := decode(t, w)
	sessionID := created["id"].(float64)
	assert.EqualValues(t, 0, created["total_score"])
	assert.Empty(t, created["results"])

	for _, score := range []int{85, 42} {
		w = doJSON(t, router, http.MethodPost, "/api/results", map[string]any{
			"session_id":      sessionID,
			"exercise_type":   "arithmetic",
			"score":           score,
			"time_seconds":    98.5,
			"correct_answers": score,
			"total_questions": 100,
		})
		require.Equal(t, http.StatusOK, w.Code)
	}

	w = doJSON(t, router, http.MethodGet, "/api/sessions/"+jsonNumber(sessionID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	session := decode(t, w)
	assert.EqualValues(t, 127, session["total_score"])
	assert.Len(t, session["results"].([]any), 2)
}

func TestSaveResult_BackfillsSession(t *testing.T) {
	router := seededRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/results", map[string]any{
		"exercise_type":   "memory",
		"score":           9,
		"time_seconds":    45.0,
		"correct_answers": 9,
		"total_questions": 12,
		"details":         map[string]any{"words_entered": []string{"кошка", "стол"}},
	})
	require.Equal(t, http.StatusOK, w.Code)

	result := decode(t, w)
	assert.EqualValues(t, 9, result["score"])
	sessionID := result["session_id"].(float64)

	w = doJSON(t, router, http.MethodGet, "/api/sessions/"+jsonNumber(sessionID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 9, decode(t, w)["total_score"])
}

func TestSaveResult_MissingFields(t *testing.T) {
	router := seededRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/results", map[string]any{
		"exercise_type": "arithmetic",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.NotEmpty(t, decode(t, w)["details"])
}

func TestSaveResult_UnknownSession(t *testing.T) {
	router := seededRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/results", map[string]any{
		"session_id":      99999,
		"exercise_type":   "arithmetic",
		"score":           10,
		"time_seconds":    5.0,
		"correct_answers": 10,
		"total_questions": 50,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetSession_NotFound(t *testing.T) {
	router := seededRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/sessions/99999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetSession_InvalidID(t *testing.T) {
	router := seededRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/sessions/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func jsonNumber(v float64) string {
	return strconv.Itoa(int(v))
}
