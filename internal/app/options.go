package service

import (
	"github.com/okian/medaltable/internal/adapters/source"
	"github.com/okian/medaltable/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithLoader sets the source the service loads datasets from.
func WithLoader(l source.Loader) Option {
	return func(s *Service) {
		s.loader = l
	}
}

// WithPodiumSize sets how many leading entries form the podium.
func WithPodiumSize(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.podiumSize = n
		}
	}
}

// WithWorkers bounds how many views Boards computes at once.
func WithWorkers(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.workers = n
		}
	}
}
