package leaders

import (
	"context"

	"github.com/jmaliksi/blaseball-reference.com/internal/domain/stats"
)

// Fetcher fetches precomputed leaderboards.
type Fetcher interface {
	FetchLeaders(ctx context.Context, season, limit int) ([]stats.LeaderCategory, error)
}

// Service shapes the leaders page payload.
type Service struct {
	fetcher Fetcher
	limit   int
}

// NewService constructs a Service; limit caps entries per category.
func NewService(fetcher Fetcher, limit int) *Service {
	if limit <= 0 {
		limit = 10
	}
	return &Service{fetcher: fetcher, limit: limit}
}

// Leaders returns the per-category leaderboards for a season, capped at the
// configured limit even when upstream returns more.
func (s *Service) Leaders(ctx context.Context, season int) (stats.SeasonLeaders, error) {
	categories, err := s.fetcher.FetchLeaders(ctx, season, s.limit)
	if err != nil {
		return stats.SeasonLeaders{}, err
	}
	for i := range categories {
		if len(categories[i].Leaders) > s.limit {
			categories[i].Leaders = categories[i].Leaders[:s.limit]
		}
	}
	return stats.SeasonLeaders{Season: season, Categories: categories}, nil
}
