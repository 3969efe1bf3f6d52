package service

import (
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/ousidus/braintrain/internal/dto"
	"github.com/ousidus/braintrain/internal/repository"
	"github.com/rs/zerolog/log"
)

type ExerciseTypeService interface {
	ListTypes() ([]dto.ExerciseTypeDTO, error)
}

type exerciseTypeService struct {
	typeRepo repository.ExerciseTypeRepository
}

func NewExerciseTypeService(typeRepo repository.ExerciseTypeRepository) ExerciseTypeService {
	return &exerciseTypeService{typeRepo: typeRepo}
}

func (s *exerciseTypeService) ListTypes() ([]dto.ExerciseTypeDTO, error) {
	types, err := s.typeRepo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load exercise types")
		return nil, fmt.Errorf("error fetching exercise types: %w", err)
	}

	dtos := make([]dto.ExerciseTypeDTO, 0, len(types))
	for _, t := range types {
		var d dto.ExerciseTypeDTO
		if err := copier.Copy(&d, &t); err != nil {
			return nil, fmt.Errorf("error preparing exercise type response: %w", err)
		}
		dtos = append(dtos, d)
	}
	return dtos, nil
}
