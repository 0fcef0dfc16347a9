// Package entities provides the world model for the adventure engine:
// interactable objects, doors, rooms and the player.
package entities

import (
	"github.com/KirkDiggler/rpg-toolkit/core"
)

// DefaultCantPickupText is shown when an object refuses to be picked up and
// its content does not say otherwise.
const DefaultCantPickupText = "You can't pick that up."

// Kind distinguishes the variants of Interactable
type Kind string

// Interactable variants
const (
	KindPlain Kind = "object"
	KindDoor  Kind = "door"
)

// Entity holds the identity and descriptive text shared by everything the
// player can interact with. The slug is fixed at construction.
type Entity struct {
	slug        string
	Description string
	TextInRoom  string
}

// Slug returns the stable identifier, used both as display name and lookup key
func (e *Entity) Slug() string {
	return e.slug
}

// RoomUse restricts solo use to a single room
type RoomUse struct {
	RoomSlug    string
	SuccessText string
}

// DoorState is the payload carried only by door variants
type DoorState struct {
	Locked     bool
	Visible    bool
	PairedRoom *Room
}

// Interactable is an object in the world. Plain objects and doors share one
// attribute set; Door is non-nil exactly when Kind is KindDoor.
type Interactable struct {
	Entity

	Kind Kind

	CanPickup      bool
	CantPickupText string

	CanUse   bool
	UseAlone bool

	// UseWith is the single partner for paired use of a plain object,
	// compared by identity.
	UseWith *Interactable
	// UseWithSlug names the partner. Doors compare it against the partner's
	// slug; for plain objects it is what UseWith was resolved from.
	UseWithSlug string

	OnlyInRoom *RoomUse

	UseText            string
	Used               bool
	UpdatedDescription string
	UseOnce            bool
	Hidden             bool

	Door *DoorState
}

var _ core.Entity = (*Interactable)(nil)

// ObjectConfig is the content-level definition of an interactable
type ObjectConfig struct {
	Slug               string
	Description        string
	TextInRoom         string
	CanPickup          bool
	CantPickupText     string
	CanUse             bool
	UseAlone           bool
	UseWithSlug        string
	OnlyInRoom         *RoomUse
	UseText            string
	Used               bool
	UpdatedDescription string
	UseOnce            bool
	Hidden             bool
}

// DoorConfig is the content-level definition of a door. Doors start locked
// unless Unlocked is set.
type DoorConfig struct {
	ObjectConfig
	Unlocked   bool
	Visible    bool
	PairedRoom *Room
}

// NewObject creates a plain interactable object
func NewObject(cfg ObjectConfig) *Interactable {
	cantPickup := cfg.CantPickupText
	if cantPickup == "" {
		cantPickup = DefaultCantPickupText
	}

	var onlyInRoom *RoomUse
	if cfg.OnlyInRoom != nil {
		copied := *cfg.OnlyInRoom
		onlyInRoom = &copied
	}

	return &Interactable{
		Entity: Entity{
			slug:        cfg.Slug,
			Description: cfg.Description,
			TextInRoom:  cfg.TextInRoom,
		},
		Kind:               KindPlain,
		CanPickup:          cfg.CanPickup,
		CantPickupText:     cantPickup,
		CanUse:             cfg.CanUse,
		UseAlone:           cfg.UseAlone,
		UseWithSlug:        cfg.UseWithSlug,
		OnlyInRoom:         onlyInRoom,
		UseText:            cfg.UseText,
		Used:               cfg.Used,
		UpdatedDescription: cfg.UpdatedDescription,
		UseOnce:            cfg.UseOnce,
		Hidden:             cfg.Hidden,
	}
}

// NewDoor creates a door. CanUse and UseAlone are always true for doors,
// whatever the config says.
func NewDoor(cfg DoorConfig) *Interactable {
	door := NewObject(cfg.ObjectConfig)
	door.Kind = KindDoor
	door.CanUse = true
	door.UseAlone = true
	door.Door = &DoorState{
		Locked:     !cfg.Unlocked,
		Visible:    cfg.Visible,
		PairedRoom: cfg.PairedRoom,
	}
	return door
}

// IsDoor reports whether the interactable is the door variant
func (i *Interactable) IsDoor() bool {
	return i.Kind == KindDoor && i.Door != nil
}

// Listed reports whether the object contributes to its room's description.
// Hidden objects never do; doors only when visible.
func (i *Interactable) Listed() bool {
	if i.Hidden {
		return false
	}
	if i.IsDoor() {
		return i.Door.Visible
	}
	return true
}

// ApplyUpdatedDescription swaps in the post-use description if one is set.
// Returns true when the description changed.
func (i *Interactable) ApplyUpdatedDescription() bool {
	if i.UpdatedDescription == "" {
		return false
	}
	i.Description = i.UpdatedDescription
	return true
}

// GetID implements core.Entity
func (i *Interactable) GetID() string {
	return i.slug
}

// GetType implements core.Entity
func (i *Interactable) GetType() string {
	return string(i.Kind)
}

// String returns the slug
func (i *Interactable) String() string {
	return i.slug
}
