package service

import (
	"fmt"
	"math/rand/v2"

	"github.com/jinzhu/copier"
	"github.com/ousidus/braintrain/internal/apperr"
	"github.com/ousidus/braintrain/internal/dto"
	"github.com/ousidus/braintrain/internal/repository"
	"github.com/rs/zerolog/log"
)

type ReadingService interface {
	RandomPassage() (*dto.ReadingPassageDTO, error)
}

type readingService struct {
	passageRepo repository.ReadingPassageRepository
}

func NewReadingService(passageRepo repository.ReadingPassageRepository) ReadingService {
	return &readingService{passageRepo: passageRepo}
}

// RandomPassage picks one passage uniformly at random from the pool.
func (s *readingService) RandomPassage() (*dto.ReadingPassageDTO, error) {
	passages, err := s.passageRepo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load reading passages")
		return nil, fmt.Errorf("error loading reading passages: %w", err)
	}
	if len(passages) == 0 {
		return nil, apperr.ErrNoPassages
	}

	passage := passages[rand.IntN(len(passages))]

	var resp dto.ReadingPassageDTO
	if err := copier.Copy(&resp, &passage); err != nil {
		log.Error().Err(err).Msg("Failed to copy ReadingPassage model to DTO")
		return nil, fmt.Errorf("error preparing reading passage response: %w", err)
	}
	return &resp, nil
}
