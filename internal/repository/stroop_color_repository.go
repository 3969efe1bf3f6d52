package repository

import (
	"github.com/ousidus/braintrain/internal/model"
	"gorm.io/gorm"
)

type StroopColorRepository interface {
	FindAll() ([]model.StroopColor, error)
}

type stroopColorRepository struct {
	db *gorm.DB
}

func NewStroopColorRepository(db *gorm.DB) StroopColorRepository {
	return &stroopColorRepository{db: db}
}

func (r *stroopColorRepository) FindAll() ([]model.StroopColor, error) {
	var colors []model.StroopColor
	if err := r.db.Order("id ASC").Find(&colors).Error; err != nil {
		return nil, err
	}
	return colors, nil
}
