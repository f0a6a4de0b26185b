package store

import (
	"sync"

	"github.com/jmaliksi/blaseball-reference.com/internal/domain/players"
	"github.com/jmaliksi/blaseball-reference.com/internal/domain/teams"
)

// MemoryStore keeps a thread-safe copy of the reference data (teams, players,
// current season) warmed by the poller. Page data is fetched per request and
// never cached here.
type MemoryStore struct {
	mu            sync.RWMutex
	teams         map[string]teams.Team     // by slug
	teamsByID     map[string]teams.Team     // by upstream id
	players       map[string]players.Player // by slug
	playersByID   map[string]players.Player // by upstream id
	currentSeason int
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		teams:       make(map[string]teams.Team),
		teamsByID:   make(map[string]teams.Team),
		players:     make(map[string]players.Player),
		playersByID: make(map[string]players.Player),
	}
}

// ListTeams returns a copy of the current teams.
func (s *MemoryStore) ListTeams() []teams.Team {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]teams.Team, 0, len(s.teams))
	for _, t := range s.teams {
		result = append(result, t)
	}
	return result
}

// GetTeamBySlug retrieves a team by its URL slug.
func (s *MemoryStore) GetTeamBySlug(slug string) (teams.Team, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.teams[slug]
	return t, ok
}

// GetTeamByID retrieves a team by its upstream identifier.
func (s *MemoryStore) GetTeamByID(id string) (teams.Team, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.teamsByID[id]
	return t, ok
}

// SetTeams replaces the team index with a new snapshot.
func (s *MemoryStore) SetTeams(list []teams.Team) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.teams = make(map[string]teams.Team, len(list))
	s.teamsByID = make(map[string]teams.Team, len(list))
	for _, t := range list {
		s.teams[t.Slug] = t
		s.teamsByID[t.ID] = t
	}
}

// ListPlayers returns a copy of the current player index.
func (s *MemoryStore) ListPlayers() []players.Player {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]players.Player, 0, len(s.players))
	for _, p := range s.players {
		result = append(result, p)
	}
	return result
}

// GetPlayerBySlug retrieves a player by URL slug.
func (s *MemoryStore) GetPlayerBySlug(slug string) (players.Player, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.players[slug]
	return p, ok
}

// GetPlayerByID retrieves a player by upstream identifier.
func (s *MemoryStore) GetPlayerByID(id string) (players.Player, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.playersByID[id]
	return p, ok
}

// SetPlayers replaces the player index with a new snapshot. Players carry
// only a team ID upstream; the full team shape is joined from the team index
// when present.
func (s *MemoryStore) SetPlayers(list []players.Player) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.players = make(map[string]players.Player, len(list))
	s.playersByID = make(map[string]players.Player, len(list))
	for _, p := range list {
		if full, ok := s.teamsByID[p.Team.ID]; ok {
			p.Team = full
		}
		s.players[p.Slug] = p
		s.playersByID[p.ID] = p
	}
}

// CurrentSeason returns the latest known season, or 0 when not yet fetched.
func (s *MemoryStore) CurrentSeason() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentSeason
}

// SetCurrentSeason records the latest known season.
func (s *MemoryStore) SetCurrentSeason(season int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentSeason = season
}
