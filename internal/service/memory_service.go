package service

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"

	"github.com/ousidus/braintrain/internal/apperr"
	"github.com/ousidus/braintrain/internal/repository"
	"github.com/rs/zerolog/log"
)

type MemoryService interface {
	MemoryWords(targetCount int) ([]string, error)
}

type memoryService struct {
	wordListRepo repository.WordListRepository
}

func NewMemoryService(wordListRepo repository.WordListRepository) MemoryService {
	return &memoryService{wordListRepo: wordListRepo}
}

// MemoryWords draws three distinct word lists uniformly at random, pools
// their words, shuffles the pool and truncates it to targetCount. Words are
// not deduplicated across lists; the seed corpus keeps categories
// word-disjoint so a drawn set never repeats a word.
func (s *memoryService) MemoryWords(targetCount int) ([]string, error) {
	lists, err := s.wordListRepo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load word lists")
		return nil, fmt.Errorf("error loading word lists: %w", err)
	}
	if len(lists) < 3 {
		return nil, apperr.ErrNotEnoughWordLists
	}

	var pool []string
	for _, idx := range rand.Perm(len(lists))[:3] {
		var words []string
		if err := json.Unmarshal(lists[idx].Words, &words); err != nil {
			return nil, fmt.Errorf("word list %d has a malformed words payload: %w", lists[idx].ID, err)
		}
		pool = append(pool, words...)
	}

	rand.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	if targetCount < len(pool) {
		pool = pool[:targetCount]
	}
	return pool, nil
}
