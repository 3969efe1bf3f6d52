package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ousidus/braintrain/internal/apperr"
	"github.com/ousidus/braintrain/internal/dto"
	"github.com/ousidus/braintrain/internal/model"
	"github.com/ousidus/braintrain/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// SessionService creates training sessions, records exercise results against
// them and serves session summaries.
type SessionService interface {
	CreateSession() (*dto.SessionDTO, error)
	RecordResult(req dto.ResultCreateDTO) (*dto.ResultDTO, error)
	GetSession(sessionID uint) (*dto.SessionDTO, error)
}

type sessionService struct {
	sessionRepo repository.SessionRepository
	resultRepo  repository.ResultRepository
	db          *gorm.DB // transactions for result + auto-session writes
}

func NewSessionService(
	sessionRepo repository.SessionRepository,
	resultRepo repository.ResultRepository,
	db *gorm.DB,
) SessionService {
	return &sessionService{
		sessionRepo: sessionRepo,
		resultRepo:  resultRepo,
		db:          db,
	}
}

func (s *sessionService) CreateSession() (*dto.SessionDTO, error) {
	session := model.TrainingSession{}
	if err := s.sessionRepo.Create(&session); err != nil {
		log.Error().Err(err).Msg("Failed to create training session")
		return nil, fmt.Errorf("error creating training session: %w", err)
	}
	return &dto.SessionDTO{
		ID:        session.ID,
		StartedAt: session.StartedAt,
		Results:   []dto.ResultDTO{},
	}, nil
}

// RecordResult persists one exercise result. When the request carries no
// session id a fresh session is created in the same transaction as the
// result insert, so a result can never end up orphaned and a failed insert
// never leaves a stray session behind.
func (s *sessionService) RecordResult(req dto.ResultCreateDTO) (*dto.ResultDTO, error) {
	var details []byte
	if req.Details != nil {
		var err error
		details, err = json.Marshal(req.Details)
		if err != nil {
			return nil, fmt.Errorf("error encoding result details: %w", err)
		}
	}

	result := model.ExerciseResult{
		ExerciseType:   req.ExerciseType,
		Score:          *req.Score,
		TimeSeconds:    *req.TimeSeconds,
		CorrectAnswers: *req.CorrectAnswers,
		TotalQuestions: *req.TotalQuestions,
		Details:        details,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if req.SessionID != nil {
			var session model.TrainingSession
			if err := tx.First(&session, *req.SessionID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperr.ErrSessionNotFound
				}
				return fmt.Errorf("error loading session %d: %w", *req.SessionID, err)
			}
			result.SessionID = session.ID
		} else {
			session := model.TrainingSession{}
			if err := tx.Create(&session).Error; err != nil {
				return fmt.Errorf("error creating session for result: %w", err)
			}
			result.SessionID = session.ID
		}
		return tx.Create(&result).Error
	})
	if err != nil {
		if !errors.Is(err, apperr.ErrNotFound) {
			log.Error().Err(err).Str("exercise_type", req.ExerciseType).Msg("Failed to record exercise result")
		}
		return nil, err
	}

	// Reload so the response carries exactly what the store assigned.
	stored, err := s.resultRepo.FindByID(result.ID)
	if err != nil {
		log.Error().Err(err).Uint("resultID", result.ID).Msg("Failed to reload stored result")
		return nil, fmt.Errorf("error reloading stored result: %w", err)
	}
	return resultToDTO(stored), nil
}

// GetSession returns the session with all linked results. The total score is
// recomputed here on every call rather than read from a stored counter.
func (s *sessionService) GetSession(sessionID uint) (*dto.SessionDTO, error) {
	session, err := s.sessionRepo.FindByIDWithResults(sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrSessionNotFound
		}
		log.Error().Err(err).Uint("sessionID", sessionID).Msg("Failed to load training session")
		return nil, fmt.Errorf("error loading session %d: %w", sessionID, err)
	}

	resp := dto.SessionDTO{
		ID:        session.ID,
		StartedAt: session.StartedAt,
		Results:   make([]dto.ResultDTO, 0, len(session.Results)),
	}
	for i := range session.Results {
		r := &session.Results[i]
		resp.TotalScore += r.Score
		resp.Results = append(resp.Results, *resultToDTO(r))
	}
	return &resp, nil
}

func resultToDTO(r *model.ExerciseResult) *dto.ResultDTO {
	return &dto.ResultDTO{
		ID:             r.ID,
		SessionID:      r.SessionID,
		ExerciseType:   r.ExerciseType,
		StartedAt:      r.StartedAt,
		Score:          r.Score,
		TimeSeconds:    r.TimeSeconds,
		CorrectAnswers: r.CorrectAnswers,
		TotalQuestions: r.TotalQuestions,
	}
}
