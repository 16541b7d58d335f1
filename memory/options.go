package memory

import (
	"errors"
	"math/rand"

	"go.uber.org/zap"

	"moviecatalog/movie"
)

type Option func(s *Store) error

// WithTopCount sets how many titles TopRated returns.
func WithTopCount(n int) Option {
	return func(s *Store) error {
		if n <= 0 {
			return errors.New("memory: top count must be positive")
		}
		s.topCount = n
		return nil
	}
}

func WithLogger(l *zap.SugaredLogger) Option {
	return func(s *Store) error {
		if l == nil {
			return errors.New("memory: logger is nil")
		}
		s.logger = l
		return nil
	}
}

// WithSeed makes the scores of the seeded ratings reproducible.
func WithSeed(seed int64) Option {
	return func(s *Store) error {
		s.rnd = rand.New(rand.NewSource(seed))
		return nil
	}
}

// WithRatings replaces the seeded ratings. Each rating gets a fresh identity.
func WithRatings(ratings ...movie.Rating) Option {
	return func(s *Store) error {
		for _, r := range ratings {
			if !movie.ValidRating(r.Score) {
				return errors.New("memory: seeded rating out of range")
			}
		}
		s.initial = append([]movie.Rating{}, ratings...)
		s.presetRatings = true
		return nil
	}
}
