package snapshots

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// Manifest tracks snapshot metadata.
type Manifest struct {
	Version     int           `json:"version"`
	GeneratedAt time.Time     `json:"generatedAt"`
	Retention   Retention     `json:"retention"`
	Schedules   SchedulesMeta `json:"schedules"`
}

type Retention struct {
	KeepSeasons int `json:"keepSeasons"`
}

type SchedulesMeta struct {
	Seasons       []int     `json:"seasons"`
	LastRefreshed time.Time `json:"lastRefreshed"`
}

func defaultManifest(keepSeasons int) Manifest {
	return Manifest{
		Version: 1,
		Retention: Retention{
			KeepSeasons: keepSeasons,
		},
		Schedules: SchedulesMeta{
			Seasons: []int{},
		},
	}
}

func readManifest(path string, keepSeasons int) (Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return defaultManifest(keepSeasons), err
	}
	defer f.Close()
	var m Manifest
	if err := json.NewDecoder(f).Decode(&m); err != nil {
		return defaultManifest(keepSeasons), err
	}
	return m, nil
}

func writeManifest(basePath string, m Manifest) error {
	m.GeneratedAt = time.Now().UTC()
	path := filepath.Join(basePath, "manifest.json")
	tmp := path + ".tmp"
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
