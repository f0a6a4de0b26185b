package snapshots

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	domaingames "github.com/jmaliksi/blaseball-reference.com/internal/domain/games"
)

// Writer persists schedule snapshots and the manifest, pruning old seasons.
type Writer struct {
	basePath    string
	keepSeasons int
}

// NewWriter constructs a writer rooted at basePath retaining the most recent
// keepSeasons seasons.
func NewWriter(basePath string, keepSeasons int) *Writer {
	if keepSeasons <= 0 {
		keepSeasons = 24
	}
	return &Writer{
		basePath:    basePath,
		keepSeasons: keepSeasons,
	}
}

// BasePath exposes the writer root path (primarily for testing).
func (w *Writer) BasePath() string {
	if w == nil {
		return ""
	}
	return w.basePath
}

// WriteScheduleSnapshot writes the game list for a season and prunes seasons
// beyond the retention window. Games are sorted by day then ID so identical
// data round-trips byte-identical and skips the write.
func (w *Writer) WriteScheduleSnapshot(season int, payload domaingames.SeasonGames) error {
	if w == nil {
		return fmt.Errorf("snapshot writer not configured")
	}
	if season <= 0 {
		return fmt.Errorf("season required")
	}
	if payload.Season == 0 {
		payload.Season = season
	}
	sort.Slice(payload.Games, func(i, j int) bool {
		if payload.Games[i].Day != payload.Games[j].Day {
			return payload.Games[i].Day < payload.Games[j].Day
		}
		return payload.Games[i].ID < payload.Games[j].ID
	})

	target := SchedulePath(w.basePath, season)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}

	if existing, err := os.ReadFile(target); err == nil && bytes.Equal(existing, data) {
		return w.updateManifest(season)
	}

	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, target); err != nil {
		return err
	}

	return w.updateManifest(season)
}

func (w *Writer) updateManifest(season int) error {
	manifestPath := filepath.Join(w.basePath, "manifest.json")
	m, _ := readManifest(manifestPath, w.keepSeasons)

	seasons := w.listSeasons(m.Schedules.Seasons, season)
	seasons = w.prune(seasons)

	m.Retention.KeepSeasons = w.keepSeasons
	m.Schedules.Seasons = seasons
	m.Schedules.LastRefreshed = time.Now().UTC()
	return writeManifest(w.basePath, m)
}

func (w *Writer) listSeasons(known []int, season int) []int {
	seen := make(map[int]bool, len(known)+1)
	seasons := make([]int, 0, len(known)+1)
	for _, s := range append(known, season) {
		if s > 0 && !seen[s] {
			seen[s] = true
			seasons = append(seasons, s)
		}
	}
	sort.Ints(seasons)
	return seasons
}

// prune removes snapshot files for the oldest seasons beyond retention.
func (w *Writer) prune(seasons []int) []int {
	if len(seasons) <= w.keepSeasons {
		return seasons
	}
	drop := seasons[:len(seasons)-w.keepSeasons]
	for _, season := range drop {
		_ = os.Remove(SchedulePath(w.basePath, season))
	}
	return seasons[len(seasons)-w.keepSeasons:]
}
