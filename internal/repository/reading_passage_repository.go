package repository

import (
	"github.com/ousidus/braintrain/internal/model"
	"gorm.io/gorm"
)

type ReadingPassageRepository interface {
	FindAll() ([]model.ReadingPassage, error)
}

type readingPassageRepository struct {
	db *gorm.DB
}

func NewReadingPassageRepository(db *gorm.DB) ReadingPassageRepository {
	return &readingPassageRepository{db: db}
}

func (r *readingPassageRepository) FindAll() ([]model.ReadingPassage, error) {
	var passages []model.ReadingPassage
	if err := r.db.Order("id ASC").Find(&passages).Error; err != nil {
		return nil, err
	}
	return passages, nil
}
