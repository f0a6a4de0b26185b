package snapshots

import (
	"encoding/json"
	"errors"
	"os"

	domaingames "github.com/jmaliksi/blaseball-reference.com/internal/domain/games"
)

// Store defines how schedule snapshots are loaded.
type Store interface {
	LoadSeasonGames(season int) (domaingames.SeasonGames, error)
}

// FSStore loads snapshots from the filesystem.
type FSStore struct {
	basePath string
}

// NewFSStore constructs an FS-backed snapshot store rooted at basePath.
func NewFSStore(basePath string) *FSStore {
	return &FSStore{basePath: basePath}
}

// LoadSeasonGames reads a season's game list from disk. Files live at
// {basePath}/schedules/season-{N}.json with a SeasonGames payload.
func (s *FSStore) LoadSeasonGames(season int) (domaingames.SeasonGames, error) {
	if s == nil {
		return domaingames.SeasonGames{}, errors.New("snapshot store not configured")
	}
	if season <= 0 {
		return domaingames.SeasonGames{}, errors.New("snapshot season required")
	}

	f, err := os.Open(SchedulePath(s.basePath, season))
	if err != nil {
		return domaingames.SeasonGames{}, err
	}
	defer f.Close()

	var payload domaingames.SeasonGames
	if err := json.NewDecoder(f).Decode(&payload); err != nil {
		return domaingames.SeasonGames{}, err
	}
	if payload.Season == 0 {
		payload.Season = season
	}
	return payload, nil
}
