package service

import (
	"fmt"
	"math/rand/v2"

	"github.com/ousidus/braintrain/internal/dto"
	"github.com/ousidus/braintrain/internal/repository"
	"github.com/rs/zerolog/log"
)

type ArithmeticService interface {
	SampleProblems(count int) ([]dto.MathProblemDTO, error)
}

type arithmeticService struct {
	problemRepo repository.MathProblemRepository
}

func NewArithmeticService(problemRepo repository.MathProblemRepository) ArithmeticService {
	return &arithmeticService{problemRepo: problemRepo}
}

// SampleProblems draws count problems uniformly at random without
// replacement. When the pool holds fewer than count problems the whole pool
// is returned in random order.
func (s *arithmeticService) SampleProblems(count int) ([]dto.MathProblemDTO, error) {
	problems, err := s.problemRepo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load math problems")
		return nil, fmt.Errorf("error loading math problems: %w", err)
	}

	n := count
	if n > len(problems) {
		n = len(problems)
	}

	out := make([]dto.MathProblemDTO, 0, n)
	for _, idx := range rand.Perm(len(problems))[:n] {
		p := problems[idx]
		out = append(out, dto.MathProblemDTO{
			ID:         p.ID,
			Expression: p.Expression,
			Answer:     p.Answer,
		})
	}
	return out, nil
}
