package content

import (
	"github.com/KirkDiggler/adventure-engine/internal/entities"
	"github.com/KirkDiggler/adventure-engine/internal/errors"
)

// World is a built world graph. The player has not entered the start room
// yet; the caller narrates that.
type World struct {
	Title     string
	Player    *entities.Player
	StartRoom *entities.Room

	rooms     map[string]*entities.Room
	roomOrder []string
	things    map[string]*entities.Interactable
}

// Room looks a room up by slug
func (w *World) Room(slug string) *entities.Room {
	return w.rooms[slug]
}

// Thing looks an object or door up by slug, wherever it currently is
func (w *World) Thing(slug string) *entities.Interactable {
	return w.things[slug]
}

// RoomSlugs returns room slugs in document order
func (w *World) RoomSlugs() []string {
	out := make([]string, len(w.roomOrder))
	copy(out, w.roomOrder)
	return out
}

// Build validates the document and creates a new world graph from it. Each
// call returns independent entities.
func Build(doc *Document, opts *ValidateOptions) (*World, error) {
	if err := Validate(doc, opts); err != nil {
		return nil, err
	}

	world := &World{
		Title:     doc.Title,
		rooms:     make(map[string]*entities.Room, len(doc.Rooms)),
		roomOrder: make([]string, 0, len(doc.Rooms)),
		things:    make(map[string]*entities.Interactable, len(doc.Objects)+len(doc.Doors)),
	}

	for _, def := range doc.Rooms {
		world.rooms[def.Slug] = entities.NewRoom(def.Slug, def.Description, def.EntryText)
		world.roomOrder = append(world.roomOrder, def.Slug)
	}

	for _, def := range doc.Objects {
		world.things[def.Slug] = entities.NewObject(objectConfig(def))
	}
	for _, def := range doc.Doors {
		world.things[def.Slug] = entities.NewDoor(entities.DoorConfig{
			ObjectConfig: objectConfig(def.ObjectDef),
			Unlocked:     !def.IsLocked(),
			Visible:      def.Visible,
			PairedRoom:   world.rooms[def.PairedRoom],
		})
	}

	// partners resolve once every object exists
	for _, def := range doc.Objects {
		if def.UseWith != "" {
			world.things[def.Slug].UseWith = world.things[def.UseWith]
		}
	}

	for _, def := range doc.Rooms {
		room := world.rooms[def.Slug]
		for _, slug := range def.Items {
			if err := room.StageItems(world.things[slug]); err != nil {
				return nil, errors.Wrapf(err, "failed to stage %s in %s", slug, def.Slug)
			}
		}
	}

	world.Player = entities.NewPlayer(doc.Player.Name)
	for _, slug := range doc.Player.Inventory {
		if err := world.Player.Inventory.Add(world.things[slug]); err != nil {
			return nil, errors.Wrapf(err, "failed to give %s to the player", slug)
		}
	}
	world.StartRoom = world.rooms[doc.Player.StartRoom]

	return world, nil
}

// Load parses and builds in one step
func Load(data []byte, opts *ValidateOptions) (*World, error) {
	doc, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return Build(doc, opts)
}

func objectConfig(def ObjectDef) entities.ObjectConfig {
	cfg := entities.ObjectConfig{
		Slug:               def.Slug,
		Description:        def.Description,
		TextInRoom:         def.TextInRoom,
		CanPickup:          def.CanPickup,
		CantPickupText:     def.CantPickupText,
		CanUse:             def.CanUse,
		UseAlone:           def.UseAlone,
		UseWithSlug:        def.UseWith,
		UseText:            def.UseText,
		UpdatedDescription: def.UpdatedDescription,
		UseOnce:            def.UseOnce,
		Hidden:             def.Hidden,
	}
	if def.OnlyInRoom != nil {
		cfg.OnlyInRoom = &entities.RoomUse{RoomSlug: def.OnlyInRoom.Room, SuccessText: def.OnlyInRoom.Text}
	}
	return cfg
}
