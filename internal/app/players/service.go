package players

import (
	"context"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	domainplayers "github.com/jmaliksi/blaseball-reference.com/internal/domain/players"
	"github.com/jmaliksi/blaseball-reference.com/internal/domain/stats"
)

// Store defines the slice of the reference cache the player pages need.
type Store interface {
	ListPlayers() []domainplayers.Player
	GetPlayerBySlug(slug string) (domainplayers.Player, bool)
}

// StatsFetcher fetches a player's splits from the stats database.
type StatsFetcher interface {
	FetchPlayerStats(ctx context.Context, playerID string, group stats.Group) ([]stats.Split, error)
}

// Service coordinates player page data.
type Service struct {
	store Store
	stats StatsFetcher
}

// NewService constructs a Service.
func NewService(store Store, stats StatsFetcher) *Service {
	return &Service{store: store, stats: stats}
}

// Index groups the player index by last-name initial, the layout of the
// /players page.
func (s *Service) Index() []domainplayers.IndexGroup {
	list := s.store.ListPlayers()
	byLetter := make(map[string][]domainplayers.Player)
	for _, p := range list {
		letter := indexLetter(p.Name)
		byLetter[letter] = append(byLetter[letter], p)
	}

	letters := make([]string, 0, len(byLetter))
	for letter := range byLetter {
		letters = append(letters, letter)
	}
	sort.Strings(letters)

	groups := make([]domainplayers.IndexGroup, 0, len(letters))
	for _, letter := range letters {
		members := byLetter[letter]
		sort.Slice(members, func(i, j int) bool {
			return lastNameKey(members[i].Name) < lastNameKey(members[j].Name)
		})
		groups = append(groups, domainplayers.IndexGroup{Letter: letter, Players: members})
	}
	return groups
}

// BySlug resolves a player from the warmed index.
func (s *Service) BySlug(slug string) (domainplayers.Player, bool) {
	return s.store.GetPlayerBySlug(slug)
}

// Splits fetches one stat group's splits for a player.
func (s *Service) Splits(ctx context.Context, playerID string, group stats.Group) ([]stats.Split, error) {
	return s.stats.FetchPlayerStats(ctx, playerID, group)
}

// AllSplits fetches batting and pitching splits concurrently.
func (s *Service) AllSplits(ctx context.Context, playerID string) (batting, pitching []stats.Split, err error) {
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		batting, err = s.stats.FetchPlayerStats(gCtx, playerID, stats.GroupBatting)
		return err
	})
	g.Go(func() error {
		var err error
		pitching, err = s.stats.FetchPlayerStats(gCtx, playerID, stats.GroupPitching)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return batting, pitching, nil
}

// indexLetter buckets a player under the initial of their last name;
// anything outside A-Z lands under "#".
func indexLetter(name string) string {
	key := lastNameKey(name)
	if key == "" {
		return "#"
	}
	letter := strings.ToUpper(key[:1])
	if letter < "A" || letter > "Z" {
		return "#"
	}
	return letter
}

func lastNameKey(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToUpper(fields[len(fields)-1])
}
