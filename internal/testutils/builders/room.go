package builders

import (
	"fmt"

	"github.com/KirkDiggler/adventure-engine/internal/entities"
)

// RoomBuilder provides a fluent interface for building test rooms
type RoomBuilder struct {
	slug        string
	description string
	entryText   string
	items       []*entities.Interactable
}

// NewRoomBuilder creates a builder for an empty room
func NewRoomBuilder(slug string) *RoomBuilder {
	return &RoomBuilder{
		slug:        slug,
		description: fmt.Sprintf("You are in the %s.", slug),
		entryText:   fmt.Sprintf("You step into the %s.", slug),
	}
}

// WithDescription sets the description
func (b *RoomBuilder) WithDescription(description string) *RoomBuilder {
	b.description = description
	return b
}

// WithEntryText sets the first-visit text
func (b *RoomBuilder) WithEntryText(text string) *RoomBuilder {
	b.entryText = text
	return b
}

// WithItems stages items in order
func (b *RoomBuilder) WithItems(items ...*entities.Interactable) *RoomBuilder {
	b.items = append(b.items, items...)
	return b
}

// Build returns the constructed room. Panics on duplicate slugs since that
// is a broken fixture.
func (b *RoomBuilder) Build() *entities.Room {
	room := entities.NewRoom(b.slug, b.description, b.entryText)
	if err := room.StageItems(b.items...); err != nil {
		panic(fmt.Sprintf("builders: %v", err))
	}
	return room
}

// PlayerIn creates a player standing in room without narrating entry
func PlayerIn(room *entities.Room, items ...*entities.Interactable) *entities.Player {
	player := entities.NewPlayer("tester")
	player.CurrentRoom = room
	player.MarkEntered(room)
	for _, item := range items {
		if err := player.Inventory.Add(item); err != nil {
			panic(fmt.Sprintf("builders: %v", err))
		}
	}
	return player
}
