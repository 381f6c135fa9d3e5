package usecase

import (
	"context"

	"github.com/riskibarqy/fixture-compare/internal/domain/provider"
)

// ProviderProbe checks whether the football data provider answers.
type ProviderProbe interface {
	Status(ctx context.Context) provider.Status
}

type ProviderStatusService struct {
	probe ProviderProbe
}

func NewProviderStatusService(probe ProviderProbe) *ProviderStatusService {
	return &ProviderStatusService{probe: probe}
}

func (s *ProviderStatusService) Status(ctx context.Context) provider.Status {
	ctx, span := startUsecaseSpan(ctx, "usecase.ProviderStatusService.Status")
	defer span.End()

	if s.probe == nil {
		return provider.Status{Error: ErrNotConfigured.Error()}
	}
	return s.probe.Status(ctx)
}
