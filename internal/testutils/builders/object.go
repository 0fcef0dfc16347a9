// Package builders provides test data builders for creating test fixtures
package builders

import (
	"fmt"

	"github.com/KirkDiggler/adventure-engine/internal/entities"
)

// ObjectBuilder provides a fluent interface for building test objects
type ObjectBuilder struct {
	cfg     entities.ObjectConfig
	partner *entities.Interactable
}

// NewObjectBuilder creates a builder for an inert object with readable text
func NewObjectBuilder(slug string) *ObjectBuilder {
	return &ObjectBuilder{
		cfg: entities.ObjectConfig{
			Slug:        slug,
			Description: fmt.Sprintf("It is a %s.", slug),
			TextInRoom:  fmt.Sprintf("A %s is here.", slug),
		},
	}
}

// WithDescription sets the description
func (b *ObjectBuilder) WithDescription(description string) *ObjectBuilder {
	b.cfg.Description = description
	return b
}

// WithTextInRoom sets the room listing text
func (b *ObjectBuilder) WithTextInRoom(text string) *ObjectBuilder {
	b.cfg.TextInRoom = text
	return b
}

// Pickupable allows the object to be picked up
func (b *ObjectBuilder) Pickupable() *ObjectBuilder {
	b.cfg.CanPickup = true
	return b
}

// WithCantPickupText sets the pickup refusal
func (b *ObjectBuilder) WithCantPickupText(text string) *ObjectBuilder {
	b.cfg.CantPickupText = text
	return b
}

// Usable sets CanUse
func (b *ObjectBuilder) Usable() *ObjectBuilder {
	b.cfg.CanUse = true
	return b
}

// UsableAlone sets CanUse and UseAlone
func (b *ObjectBuilder) UsableAlone() *ObjectBuilder {
	b.cfg.CanUse = true
	b.cfg.UseAlone = true
	return b
}

// OnlyIn restricts solo use to a room
func (b *ObjectBuilder) OnlyIn(roomSlug, successText string) *ObjectBuilder {
	b.cfg.OnlyInRoom = &entities.RoomUse{RoomSlug: roomSlug, SuccessText: successText}
	return b
}

// WithUseText sets the use narration
func (b *ObjectBuilder) WithUseText(text string) *ObjectBuilder {
	b.cfg.UseText = text
	return b
}

// WithUpdatedDescription sets the post-use description
func (b *ObjectBuilder) WithUpdatedDescription(description string) *ObjectBuilder {
	b.cfg.UpdatedDescription = description
	return b
}

// UseOnce marks the object as consumed on use
func (b *ObjectBuilder) UseOnce() *ObjectBuilder {
	b.cfg.UseOnce = true
	return b
}

// Hidden hides the object from room listings
func (b *ObjectBuilder) Hidden() *ObjectBuilder {
	b.cfg.Hidden = true
	return b
}

// AlreadyUsed starts the object in the used state
func (b *ObjectBuilder) AlreadyUsed() *ObjectBuilder {
	b.cfg.Used = true
	return b
}

// PairedWith makes partner the object's paired-use partner
func (b *ObjectBuilder) PairedWith(partner *entities.Interactable) *ObjectBuilder {
	b.partner = partner
	b.cfg.UseWithSlug = partner.Slug()
	return b
}

// Build returns the constructed object
func (b *ObjectBuilder) Build() *entities.Interactable {
	obj := entities.NewObject(b.cfg)
	obj.UseWith = b.partner
	return obj
}
