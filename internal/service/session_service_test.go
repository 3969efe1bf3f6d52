package service

import (
	"errors"
	"testing"

	"github.com/ousidus/braintrain/internal/apperr"
	"github.com/ousidus/braintrain/internal/dto"
	"github.com/ousidus/braintrain/internal/model"
	"github.com/ousidus/braintrain/internal/repository"
	"github.com/ousidus/braintrain/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newSessionService(db *gorm.DB) SessionService {
	return NewSessionService(
		repository.NewSessionRepository(db),
		repository.NewResultRepository(db),
		db,
	)
}

func resultReq(sessionID *uint, exerciseType string, score int) dto.ResultCreateDTO {
	timeSeconds := 98.5
	correct := score
	total := 100
	return dto.ResultCreateDTO{
		SessionID:      sessionID,
		ExerciseType:   exerciseType,
		Score:          &score,
		TimeSeconds:    &timeSeconds,
		CorrectAnswers: &correct,
		TotalQuestions: &total,
	}
}

func TestCreateSession_StartsEmpty(t *testing.T) {
	db := testutil.OpenTestDB(t)
	svc := newSessionService(db)

	session, err := svc.CreateSession()
	require.NoError(t, err)
	assert.NotZero(t, session.ID)
	assert.Zero(t, session.TotalScore)
	assert.Empty(t, session.Results)
}

func TestGetSession_SumsResultScores(t *testing.T) {
	db := testutil.OpenTestDB(t)
	svc := newSessionService(db)

	session, err := svc.CreateSession()
	require.NoError(t, err)

	_, err = svc.RecordResult(resultReq(&session.ID, "arithmetic", 85))
	require.NoError(t, err)
	_, err = svc.RecordResult(resultReq(&session.ID, "stroop", 42))
	require.NoError(t, err)

	got, err := svc.GetSession(session.ID)
	require.NoError(t, err)
	assert.Equal(t, 127, got.TotalScore)
	require.Len(t, got.Results, 2)
	for _, r := range got.Results {
		assert.Equal(t, session.ID, r.SessionID)
	}
}

func TestRecordResult_BackfillsSession(t *testing.T) {
	db := testutil.OpenTestDB(t)
	svc := newSessionService(db)

	result, err := svc.RecordResult(resultReq(nil, "memory", 9))
	require.NoError(t, err)
	require.NotZero(t, result.ID)
	require.NotZero(t, result.SessionID)

	// The auto-created session is fetchable and owns exactly this result.
	session, err := svc.GetSession(result.SessionID)
	require.NoError(t, err)
	require.Len(t, session.Results, 1)
	assert.Equal(t, result.ID, session.Results[0].ID)
	assert.Equal(t, 9, session.TotalScore)

	var sessionCount int64
	require.NoError(t, db.Model(&model.TrainingSession{}).Count(&sessionCount).Error)
	assert.EqualValues(t, 1, sessionCount)
}

func TestRecordResult_UnknownSession(t *testing.T) {
	db := testutil.OpenTestDB(t)
	svc := newSessionService(db)

	missing := uint(99999)
	_, err := svc.RecordResult(resultReq(&missing, "arithmetic", 10))
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))

	// The failed write must not leave a result behind.
	var resultCount int64
	require.NoError(t, db.Model(&model.ExerciseResult{}).Count(&resultCount).Error)
	assert.Zero(t, resultCount)
}

func TestRecordResult_PersistsDetails(t *testing.T) {
	db := testutil.OpenTestDB(t)
	svc := newSessionService(db)

	req := resultReq(nil, "memory", 3)
	req.Details = map[string]any{"words_entered": []string{"cat", "dog", "fox"}}

	result, err := svc.RecordResult(req)
	require.NoError(t, err)

	var stored model.ExerciseResult
	require.NoError(t, db.First(&stored, result.ID).Error)
	assert.JSONEq(t, `{"words_entered":["cat","dog","fox"]}`, string(stored.Details))
}

func TestGetSession_NotFound(t *testing.T) {
	db := testutil.OpenTestDB(t)
	svc := newSessionService(db)

	_, err := svc.GetSession(12345)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}
