package builders

import (
	"fmt"

	"github.com/KirkDiggler/adventure-engine/internal/entities"
)

// DoorBuilder provides a fluent interface for building test doors. Doors
// start locked and invisible.
type DoorBuilder struct {
	cfg entities.DoorConfig
}

// NewDoorBuilder creates a builder for a locked, invisible door
func NewDoorBuilder(slug string) *DoorBuilder {
	return &DoorBuilder{
		cfg: entities.DoorConfig{
			ObjectConfig: entities.ObjectConfig{
				Slug:        slug,
				Description: fmt.Sprintf("It is a %s.", slug),
				TextInRoom:  fmt.Sprintf("There is a %s here.", slug),
			},
		},
	}
}

// Unlocked starts the door unlocked
func (b *DoorBuilder) Unlocked() *DoorBuilder {
	b.cfg.Unlocked = true
	return b
}

// Visible lists the door in room descriptions
func (b *DoorBuilder) Visible() *DoorBuilder {
	b.cfg.Visible = true
	return b
}

// LeadsTo sets the paired room
func (b *DoorBuilder) LeadsTo(room *entities.Room) *DoorBuilder {
	b.cfg.PairedRoom = room
	return b
}

// OpensWith sets the slug of the object that works on the door
func (b *DoorBuilder) OpensWith(slug string) *DoorBuilder {
	b.cfg.UseWithSlug = slug
	return b
}

// WithUseText sets the narration for a successful paired use
func (b *DoorBuilder) WithUseText(text string) *DoorBuilder {
	b.cfg.UseText = text
	return b
}

// WithUpdatedDescription sets the post-use description
func (b *DoorBuilder) WithUpdatedDescription(description string) *DoorBuilder {
	b.cfg.UpdatedDescription = description
	return b
}

// Build returns the constructed door
func (b *DoorBuilder) Build() *entities.Interactable {
	return entities.NewDoor(b.cfg)
}
