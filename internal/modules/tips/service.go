// README: Tips service serves the tips list, preferring the database when one is configured.
package tips

import (
	"context"

	"go.uber.org/zap"
)

// Lister is the read side of a tips source.
type Lister interface {
	ListTips(ctx context.Context) ([]Tip, error)
}

type Service struct {
	source Lister
	logger *zap.Logger
}

// NewService returns a Service reading from source. A nil source serves the built-in catalog.
func NewService(source Lister, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{source: source, logger: logger.Named("tips")}
}

// List never fails: a source error or an empty table falls back to the built-in catalog.
func (s *Service) List(ctx context.Context) []Tip {
	if s.source == nil {
		return Catalog()
	}
	list, err := s.source.ListTips(ctx)
	if err != nil {
		s.logger.Warn("tips source unavailable, serving catalog", zap.Error(err))
		return Catalog()
	}
	if len(list) == 0 {
		return Catalog()
	}
	return list
}
