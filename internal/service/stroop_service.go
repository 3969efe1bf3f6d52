package service

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/ousidus/braintrain/internal/apperr"
	"github.com/ousidus/braintrain/internal/dto"
	"github.com/ousidus/braintrain/internal/model"
	"github.com/ousidus/braintrain/internal/repository"
	"github.com/rs/zerolog/log"
)

// StroopService builds color-word interference items: the client sees a color
// name printed in a different color and must name the ink, not the word.
type StroopService interface {
	Generate(count int) ([]dto.StroopItem, error)
}

type stroopService struct {
	colorRepo repository.StroopColorRepository
}

func NewStroopService(colorRepo repository.StroopColorRepository) StroopService {
	return &stroopService{colorRepo: colorRepo}
}

// Generate emits count items, each drawn independently. The display color is
// chosen from the set with the word's color excluded, so the word can never
// name the ink it is printed in. The exclusion is structural: there is no
// retry loop to get rid of collisions after the fact.
func (s *stroopService) Generate(count int) ([]dto.StroopItem, error) {
	colors, err := s.colorRepo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load stroop colors")
		return nil, fmt.Errorf("error loading stroop colors: %w", err)
	}
	if len(colors) < 2 {
		return nil, apperr.ErrNotEnoughColors
	}

	items := make([]dto.StroopItem, 0, count)
	for i := 0; i < count; i++ {
		word := colors[rand.IntN(len(colors))]

		candidates := make([]model.StroopColor, 0, len(colors)-1)
		for _, c := range colors {
			if c.ID != word.ID {
				candidates = append(candidates, c)
			}
		}
		display := candidates[rand.IntN(len(candidates))]

		items = append(items, dto.StroopItem{
			ID:            i + 1,
			Word:          strings.ToUpper(word.Name),
			DisplayColor:  display.HexCode,
			CorrectAnswer: display.Name,
		})
	}
	return items, nil
}
