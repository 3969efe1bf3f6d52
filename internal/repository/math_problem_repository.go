package repository

import (
	"github.com/ousidus/braintrain/internal/model"
	"gorm.io/gorm"
)

type MathProblemRepository interface {
	FindAll() ([]model.MathProblem, error)
}

type mathProblemRepository struct {
	db *gorm.DB
}

func NewMathProblemRepository(db *gorm.DB) MathProblemRepository {
	return &mathProblemRepository{db: db}
}

// FindAll loads the whole problem pool. Sampling happens in memory, in the
// service layer, so draw uniformity does not depend on storage ordering.
func (r *mathProblemRepository) FindAll() ([]model.MathProblem, error) {
	var problems []model.MathProblem
	if err := r.db.Find(&problems).Error; err != nil {
		return nil, err
	}
	return problems, nil
}
