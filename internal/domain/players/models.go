package players

import (
	"github.com/jmaliksi/blaseball-reference.com/internal/domain/teams"
)

// Position describes where a player slots on a roster.
type Position string

const (
	PositionLineup   Position = "LINEUP"
	PositionRotation Position = "ROTATION"
	PositionShadows  Position = "SHADOWS"
)

// Player represents the normalized player shape (datablase-aligned).
type Player struct {
	ID       string     `json:"id"`
	Slug     string     `json:"slug"`
	Name     string     `json:"name"`
	Team     teams.Team `json:"team"`
	Position Position   `json:"position"`
	Deceased bool       `json:"deceased"`
	Meta     PlayerMeta `json:"meta"`
}

// PlayerMeta holds upstream metadata.
type PlayerMeta struct {
	UpstreamPlayerID string `json:"upstreamPlayerId"`
	DebutSeason      int    `json:"debutSeason"`
	DebutDay         int    `json:"debutDay"`
	Bat              string `json:"bat,omitempty"`
	Armor            string `json:"armor,omitempty"`
	Ritual           string `json:"ritual,omitempty"`
}

// IndexGroup is one letter bucket on the player index page.
type IndexGroup struct {
	Letter  string   `json:"letter"`
	Players []Player `json:"players"`
}
