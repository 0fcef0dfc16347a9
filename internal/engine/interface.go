// Package engine implements the object interaction rules: pickup, drop,
// solo use, paired use and door traversal.
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/adventure-engine/internal/engine Engine

import (
	"github.com/KirkDiggler/adventure-engine/internal/entities"
	"github.com/KirkDiggler/adventure-engine/internal/narration"
)

// Engine applies the interaction rules to a world graph. Refusals come back
// as rejected outcomes; a non-nil error means the content itself is broken
// or the call was malformed.
type Engine interface {
	// Object movement
	Pickup(player *entities.Player, obj *entities.Interactable) (*narration.Outcome, error)
	Drop(player *entities.Player, obj *entities.Interactable) (*narration.Outcome, error)

	// Use
	UseAlone(player *entities.Player, obj *entities.Interactable) (*narration.Outcome, error)
	UseTogether(
		player *entities.Player,
		obj *entities.Interactable,
		partner *entities.Interactable,
	) (*narration.Outcome, error)

	// Rooms
	EnterRoom(player *entities.Player, room *entities.Room) (*narration.Outcome, error)
	LookRoom(player *entities.Player) (*narration.Outcome, error)

	// Inspection
	LookObject(player *entities.Player, obj *entities.Interactable) (*narration.Outcome, error)
	ListInventory(player *entities.Player) (*narration.Outcome, error)

	// Apply resolves an intent's slugs against the player's bag and current
	// room, then dispatches to the matching rule.
	Apply(player *entities.Player, intent *Intent) (*narration.Outcome, error)
}
