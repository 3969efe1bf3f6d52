package repository

import (
	"github.com/ousidus/braintrain/internal/model"
	"gorm.io/gorm"
)

type SessionRepository interface {
	Create(session *model.TrainingSession) error
	FindByIDWithResults(id uint) (*model.TrainingSession, error)
}

type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(session *model.TrainingSession) error {
	return r.db.Create(session).Error
}

func (r *sessionRepository) FindByIDWithResults(id uint) (*model.TrainingSession, error) {
	var session model.TrainingSession
	err := r.db.
		Preload("Results", func(db *gorm.DB) *gorm.DB {
			return db.Order("exercise_results.id ASC")
		}).
		First(&session, id).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}
