package entities

import (
	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/zyedidia/generic/mapset"
)

// Player is the protagonist. CurrentRoom is a reference; the player owns
// only its inventory.
type Player struct {
	Name        string
	Inventory   *Inventory
	CurrentRoom *Room

	entered mapset.Set[*Room]
	visited []*Room
}

var _ core.Entity = (*Player)(nil)

// NewPlayer creates a player with an empty inventory and no visited rooms
func NewPlayer(name string) *Player {
	return &Player{
		Name:      name,
		Inventory: NewInventory(),
		entered:   mapset.New[*Room](),
		visited:   make([]*Room, 0),
	}
}

// HasEntered reports whether the room has been visited before
func (p *Player) HasEntered(room *Room) bool {
	return p.entered.Has(room)
}

// MarkEntered records a first visit
func (p *Player) MarkEntered(room *Room) {
	if p.HasEntered(room) {
		return
	}
	p.entered.Put(room)
	p.visited = append(p.visited, room)
	room.Entered = true
}

// Visited returns rooms in the order they were first entered
func (p *Player) Visited() []*Room {
	out := make([]*Room, len(p.visited))
	copy(out, p.visited)
	return out
}

// Holder returns the inventory currently containing obj, checking the
// player's bag before the current room. Nil if neither holds it.
func (p *Player) Holder(obj *Interactable) *Inventory {
	if p.Inventory.Contains(obj) {
		return p.Inventory
	}
	if p.CurrentRoom != nil && p.CurrentRoom.Inventory.Contains(obj) {
		return p.CurrentRoom.Inventory
	}
	return nil
}

// GetID implements core.Entity
func (p *Player) GetID() string {
	if p.Name == "" {
		return "player"
	}
	return p.Name
}

// GetType implements core.Entity
func (p *Player) GetType() string {
	return "player"
}

// String returns "player"
func (p *Player) String() string {
	return "player"
}
