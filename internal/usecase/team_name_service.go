package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/fixture-compare/internal/domain/teamname"
)

type NormalizedName struct {
	Input      string
	Normalized string
	Canonical  string
	Aliased    bool
}

type TeamNameService struct {
	aliases *teamname.AliasTable
}

func NewTeamNameService(aliases *teamname.AliasTable) *TeamNameService {
	if aliases == nil {
		aliases = teamname.DefaultAliasTable()
	}
	return &TeamNameService{aliases: aliases}
}

func (s *TeamNameService) Normalize(ctx context.Context, name string) (NormalizedName, error) {
	_, span := startUsecaseSpan(ctx, "usecase.TeamNameService.Normalize")
	defer span.End()

	if strings.TrimSpace(name) == "" {
		return NormalizedName{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	normalized := teamname.Normalize(name)
	canonical := s.aliases.Resolve(normalized)
	return NormalizedName{
		Input:      name,
		Normalized: normalized,
		Canonical:  canonical,
		Aliased:    canonical != normalized,
	}, nil
}
