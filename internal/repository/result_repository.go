package repository

import (
	"github.com/ousidus/braintrain/internal/model"
	"gorm.io/gorm"
)

// ResultRepository reads stored results. Writes go through the session
// service's transaction, together with any session backfill.
type ResultRepository interface {
	FindByID(id uint) (*model.ExerciseResult, error)
}

type resultRepository struct {
	db *gorm.DB
}

func NewResultRepository(db *gorm.DB) ResultRepository {
	return &resultRepository{db: db}
}

func (r *resultRepository) FindByID(id uint) (*model.ExerciseResult, error) {
	var result model.ExerciseResult
	if err := r.db.First(&result, id).Error; err != nil {
		return nil, err
	}
	return &result, nil
}
