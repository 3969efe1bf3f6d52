package repository

import (
	"github.com/ousidus/braintrain/internal/model"
	"gorm.io/gorm"
)

type WordListRepository interface {
	FindAll() ([]model.WordList, error)
}

type wordListRepository struct {
	db *gorm.DB
}

func NewWordListRepository(db *gorm.DB) WordListRepository {
	return &wordListRepository{db: db}
}

func (r *wordListRepository) FindAll() ([]model.WordList, error) {
	var lists []model.WordList
	if err := r.db.Order("id ASC").Find(&lists).Error; err != nil {
		return nil, err
	}
	return lists, nil
}
