package algolia

import (
	"strings"

	"github.com/jmaliksi/blaseball-reference.com/internal/domain/search"
)

func mapHit(hit hitResponse) (search.Result, bool) {
	var kind search.ResultType
	switch strings.ToLower(hit.Type) {
	case "player", "players":
		kind = search.ResultPlayer
	case "team", "teams":
		kind = search.ResultTeam
	default:
		return search.Result{}, false
	}

	return search.Result{
		Type:     kind,
		ID:       hit.ObjectID,
		Slug:     hit.URLSlug,
		Name:     hit.Name,
		TeamID:   hit.TeamID,
		TeamName: hit.TeamName,
	}, true
}
