package search

import (
	"context"
	"log/slog"
	"strings"

	domainsearch "github.com/jmaliksi/blaseball-reference.com/internal/domain/search"
	"github.com/jmaliksi/blaseball-reference.com/internal/logging"
	"github.com/jmaliksi/blaseball-reference.com/internal/providers"
)

// Service queries the search index, degrading to empty results on failure;
// the search box shows "no results" rather than an error page.
type Service struct {
	provider providers.SearchProvider
	logger   *slog.Logger
}

// NewService constructs a Service. A nil provider is allowed and yields
// empty results (search not configured).
func NewService(provider providers.SearchProvider, logger *slog.Logger) *Service {
	return &Service{provider: provider, logger: logger}
}

// Search runs the query against the index. Errors are logged and swallowed.
func (s *Service) Search(ctx context.Context, query string) domainsearch.Results {
	results := domainsearch.Results{Query: query, Hits: []domainsearch.Result{}}

	query = strings.TrimSpace(query)
	if query == "" || s.provider == nil {
		return results
	}

	hits, err := s.provider.Search(ctx, query)
	if err != nil {
		logger := logging.FromContext(ctx, s.logger)
		logging.Warn(logger, "search failed", slog.String(logging.FieldQuery, query), slog.Any("err", err))
		return results
	}
	if hits != nil {
		results.Hits = hits
	}
	return results
}
