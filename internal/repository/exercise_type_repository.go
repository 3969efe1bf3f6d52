package repository

import (
	"github.com/ousidus/braintrain/internal/model"
	"gorm.io/gorm"
)

type ExerciseTypeRepository interface {
	FindAll() ([]model.ExerciseType, error)
}

type exerciseTypeRepository struct {
	db *gorm.DB
}

func NewExerciseTypeRepository(db *gorm.DB) ExerciseTypeRepository {
	return &exerciseTypeRepository{db: db}
}

func (r *exerciseTypeRepository) FindAll() ([]model.ExerciseType, error) {
	var types []model.ExerciseType
	if err := r.db.Order("id ASC").Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}
