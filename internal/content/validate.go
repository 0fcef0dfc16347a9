package content

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/KirkDiggler/adventure-engine/internal/engine"
	"github.com/KirkDiggler/adventure-engine/internal/errors"
)

// ValidateOptions tunes validation
type ValidateOptions struct {
	// SoloUsePolicy decides whether a plain object that may be used alone
	// without a room constraint is a defect. Empty means strict.
	SoloUsePolicy engine.SoloUsePolicy
}

// Validate checks a document for authoring mistakes. Every problem is
// collected; content defects carry their code so callers can tell them
// apart with errors.DefectCodes.
func Validate(doc *Document, opts *ValidateOptions) error {
	if doc == nil {
		return errors.InvalidArgument("document is required")
	}
	if opts == nil {
		opts = &ValidateOptions{}
	}
	policy, err := engine.ParseSoloUsePolicy(string(opts.SoloUsePolicy))
	if err != nil {
		return err
	}

	v := &validator{
		doc:    doc,
		vb:     errors.NewValidationBuilder(),
		rooms:  mapset.New[string](),
		things: mapset.New[string](),
		placed: make(map[string]string),
	}

	v.indexRooms()
	v.indexThings()
	v.checkObjects(policy)
	v.checkDoors()
	v.checkPlacement()
	v.checkPlayer()

	return v.vb.Build()
}

type validator struct {
	doc *Document
	vb  *errors.ValidationBuilder

	rooms  mapset.Set[string]
	things mapset.Set[string]
	// placed maps an object slug to the first container holding it
	placed map[string]string
}

func (v *validator) indexRooms() {
	if len(v.doc.Rooms) == 0 {
		v.vb.Field("rooms", "at least one room is required")
	}
	for i, room := range v.doc.Rooms {
		field := fmt.Sprintf("rooms[%d].slug", i)
		if room.Slug == "" {
			v.vb.RequiredField(field)
			continue
		}
		if v.rooms.Has(room.Slug) {
			v.vb.Defect(errors.CodeDuplicateSlug, field, "room %q is defined more than once", room.Slug)
		}
		v.rooms.Put(room.Slug)
	}
}

func (v *validator) indexThings() {
	add := func(field, slug string) {
		if slug == "" {
			v.vb.RequiredField(field)
			return
		}
		if v.things.Has(slug) {
			v.vb.Defect(errors.CodeDuplicateSlug, field, "%q is defined more than once", slug)
		}
		v.things.Put(slug)
	}
	for i, obj := range v.doc.Objects {
		add(fmt.Sprintf("objects[%d].slug", i), obj.Slug)
	}
	for i, door := range v.doc.Doors {
		add(fmt.Sprintf("doors[%d].slug", i), door.Slug)
	}
}

func (v *validator) checkObjects(policy engine.SoloUsePolicy) {
	for i, obj := range v.doc.Objects {
		prefix := fmt.Sprintf("objects[%d]", i)

		if obj.UseWith != "" && !v.things.Has(obj.UseWith) {
			v.vb.Defect(errors.CodeUnknownReference, prefix+".use_with",
				"%s is used with %q, which does not exist", obj.Slug, obj.UseWith)
		}

		if obj.OnlyInRoom != nil {
			if !v.rooms.Has(obj.OnlyInRoom.Room) {
				v.vb.Defect(errors.CodeUnknownReference, prefix+".only_in_room.room",
					"%s can only be used in %q, which does not exist", obj.Slug, obj.OnlyInRoom.Room)
			}
			if obj.OnlyInRoom.Text == "" {
				v.vb.RequiredField(prefix + ".only_in_room.text")
			}
		}

		if policy == engine.SoloUseStrict && obj.CanUse && obj.UseAlone && obj.OnlyInRoom == nil {
			v.vb.Defect(errors.CodeSoloUseUndefined, prefix,
				"%s can be used alone but has no room to be used in", obj.Slug)
		}
	}
}

func (v *validator) checkDoors() {
	for i, door := range v.doc.Doors {
		prefix := fmt.Sprintf("doors[%d]", i)

		switch {
		case door.PairedRoom == "":
			v.vb.Defect(errors.CodeDoorUnpaired, prefix+".paired_room", "%s does not lead anywhere", door.Slug)
		case !v.rooms.Has(door.PairedRoom):
			v.vb.Defect(errors.CodeUnknownReference, prefix+".paired_room",
				"%s leads to %q, which does not exist", door.Slug, door.PairedRoom)
		}

		if door.UseWith != "" && !v.things.Has(door.UseWith) {
			v.vb.Defect(errors.CodeUnknownReference, prefix+".use_with",
				"%s opens with %q, which does not exist", door.Slug, door.UseWith)
		}
		if door.CanPickup {
			v.vb.Field(prefix+".can_pickup", "doors cannot be picked up")
		}
		if door.OnlyInRoom != nil {
			v.vb.Field(prefix+".only_in_room", "doors cannot be restricted to a room")
		}
	}
}

func (v *validator) checkPlacement() {
	doors := mapset.New[string]()
	for _, door := range v.doc.Doors {
		doors.Put(door.Slug)
	}

	for i, room := range v.doc.Rooms {
		container := "room " + room.Slug
		for j, slug := range room.Items {
			v.place(fmt.Sprintf("rooms[%d].items[%d]", i, j), slug, container)
		}
	}
	for i, slug := range v.doc.Player.Inventory {
		field := fmt.Sprintf("player.inventory[%d]", i)
		if doors.Has(slug) {
			v.vb.Fieldf(field, "door %q cannot start in the player's bag", slug)
		}
		v.place(field, slug, "player")
	}
}

func (v *validator) place(field, slug, container string) {
	if !v.things.Has(slug) {
		v.vb.Defect(errors.CodeUnknownReference, field, "%q is not a defined object or door", slug)
		return
	}
	if first, ok := v.placed[slug]; ok {
		v.vb.Defect(errors.CodeContainment, field, "%q is already placed in %s", slug, first)
		return
	}
	v.placed[slug] = container
}

func (v *validator) checkPlayer() {
	start := v.doc.Player.StartRoom
	switch {
	case start == "":
		v.vb.RequiredField("player.start_room")
	case !v.rooms.Has(start):
		v.vb.Defect(errors.CodeUnknownReference, "player.start_room", "start room %q does not exist", start)
	}
}
