package snapshots

import (
	"fmt"
	"path/filepath"
)

// SchedulePath builds the path to a season's schedule snapshot.
func SchedulePath(basePath string, season int) string {
	return filepath.Join(basePath, "schedules", fmt.Sprintf("season-%d.json", season))
}
