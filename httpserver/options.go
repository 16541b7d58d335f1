package httpserver

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"moviecatalog/movie"
	"moviecatalog/pkg/config"
)

type Options func(s *Server) error

// WithConfig applies the listen port, CORS origins and rate limit.
func WithConfig(cfg *config.Config) Options {
	return func(s *Server) error {
		if cfg == nil {
			return errors.New("httpserver: config is nil")
		}
		if cfg.Port != 0 {
			s.Addr = fmt.Sprintf(":%d", cfg.Port)
		}
		if cfg.AllowOrigins != "" {
			s.AllowOrigins = splitOrigins(cfg.AllowOrigins)
		}
		if cfg.RateLimit < 0 {
			return errors.New("httpserver: rate limit must not be negative")
		}
		s.RateLimit = rate.Limit(cfg.RateLimit)
		return nil
	}
}

func WithLogger(l *zap.SugaredLogger) Options {
	return func(s *Server) error {
		if l == nil {
			return errors.New("httpserver: logger is nil")
		}
		s.Logger = l
		return nil
	}
}

func WithMovieService(svc movie.Service) Options {
	return func(s *Server) error {
		s.MovieService = svc
		return nil
	}
}
