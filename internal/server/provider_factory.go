package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jmaliksi/blaseball-reference.com/internal/config"
	"github.com/jmaliksi/blaseball-reference.com/internal/logging"
	"github.com/jmaliksi/blaseball-reference.com/internal/metrics"
	"github.com/jmaliksi/blaseball-reference.com/internal/providers"
	"github.com/jmaliksi/blaseball-reference.com/internal/providers/algolia"
	"github.com/jmaliksi/blaseball-reference.com/internal/providers/datablase"
	"github.com/jmaliksi/blaseball-reference.com/internal/providers/fixture"
)

const (
	providerDatablase = "datablase"
	providerFixture   = "fixture"

	upstreamDatablase = "datablase"
	upstreamAlgolia   = "algolia"

	// Minimum spacing between datablase requests; the stats API is a shared
	// community resource.
	minRequestInterval = 250 * time.Millisecond

	upstreamTimeout = 10 * time.Second
)

type providerFactory struct {
	logger   *slog.Logger
	recorder *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, recorder *metrics.Recorder) *providerFactory {
	return &providerFactory{logger: logger, recorder: recorder}
}

// build selects the stats and search providers from config. Unknown provider
// names fall back to datablase. The search provider is nil when Algolia is
// not configured; search then degrades to empty results.
func (f *providerFactory) build(cfg config.Config) (providers.StatsProvider, providers.SearchProvider) {
	switch cfg.Provider {
	case providerFixture:
		fx := fixture.New()
		return fx, fx
	case providerDatablase:
	default:
		logging.Warn(f.logger, "unknown provider, using datablase", slog.String(logging.FieldProvider, cfg.Provider))
	}

	stats := datablase.NewClient(datablase.Config{
		BaseURL:    cfg.Datablase.BaseURL,
		APIKey:     cfg.Datablase.APIKey,
		HTTPClient: f.httpClient(upstreamDatablase, minRequestInterval),
	})

	var search providers.SearchProvider
	if cfg.Algolia.AppID != "" {
		search = algolia.NewClient(algolia.Config{
			AppID:      cfg.Algolia.AppID,
			APIKey:     cfg.Algolia.APIKey,
			Index:      cfg.Algolia.Index,
			HTTPClient: f.httpClient(upstreamAlgolia, 0),
		})
	}

	return stats, search
}

// httpClient layers the shared transport decorators: a request spacer below
// a retrying transport so retries are spaced too.
func (f *providerFactory) httpClient(upstream string, spacing time.Duration) *http.Client {
	var rt http.RoundTripper = http.DefaultTransport
	if spacing > 0 {
		rt = providers.NewRateLimitedTransport(rt, spacing)
	}
	rt = providers.NewRetryingTransport(rt, f.logger, f.recorder, upstream, 0, 0)

	return &http.Client{
		Transport: rt,
		Timeout:   upstreamTimeout,
	}
}
