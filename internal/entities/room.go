package entities

import (
	"github.com/KirkDiggler/rpg-toolkit/core"
)

// Room is a location holding interactables
type Room struct {
	slug        string
	Description string
	EntryText   string
	Inventory   *Inventory
	Entered     bool
}

var _ core.Entity = (*Room)(nil)

// NewRoom creates a room with an empty inventory
func NewRoom(slug, description, entryText string) *Room {
	return &Room{
		slug:        slug,
		Description: description,
		EntryText:   entryText,
		Inventory:   NewInventory(),
	}
}

// Slug returns the room's identifier
func (r *Room) Slug() string {
	return r.slug
}

// StageItems appends objects in the given order. Used once at setup.
func (r *Room) StageItems(items ...*Interactable) error {
	for _, item := range items {
		if err := r.Inventory.Add(item); err != nil {
			return err
		}
	}
	return nil
}

// Render returns the description followed by the room text of each listed
// item, in inventory order.
func (r *Room) Render() []string {
	lines := []string{r.Description}
	for _, item := range r.Inventory.Items() {
		if item.Listed() {
			lines = append(lines, item.TextInRoom)
		}
	}
	return lines
}

// GetID implements core.Entity
func (r *Room) GetID() string {
	return r.slug
}

// GetType implements core.Entity
func (r *Room) GetType() string {
	return "room"
}

// String returns the slug
func (r *Room) String() string {
	return r.slug
}
