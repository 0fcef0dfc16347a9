package engine

import (
	"strings"

	"github.com/KirkDiggler/adventure-engine/internal/entities"
	"github.com/KirkDiggler/adventure-engine/internal/errors"
	"github.com/KirkDiggler/adventure-engine/internal/narration"
)

// Config configures the rules engine
type Config struct {
	SoloUsePolicy SoloUsePolicy
}

// Validate checks the policy. Case and surrounding space are ignored.
func (cfg *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if _, err := ParseSoloUsePolicy(string(cfg.SoloUsePolicy)); err != nil {
		vb.Fieldf("solo_use_policy", "must be one of: %s, %s", SoloUseStrict, SoloUseLenient)
	}
	return vb.Build()
}

type engine struct {
	soloUsePolicy SoloUsePolicy
}

// New creates a rules engine. A nil config or empty policy means strict.
func New(cfg *Config) (Engine, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	policy, _ := ParseSoloUsePolicy(string(cfg.SoloUsePolicy))
	return &engine{soloUsePolicy: policy}, nil
}

func (e *engine) Pickup(player *entities.Player, obj *entities.Interactable) (*narration.Outcome, error) {
	if err := requireActors(player, obj); err != nil {
		return nil, err
	}
	out := narration.New(narration.ActionPickup, obj.Slug())

	if !obj.CanPickup {
		return out.Reject(obj.CantPickupText), nil
	}
	if player.Inventory.Contains(obj) {
		return out.Reject(msgAlreadyInBag(obj.Slug())), nil
	}
	room := player.CurrentRoom
	if room == nil || !room.Inventory.Contains(obj) {
		return out.Reject(msgNotHere(obj.Slug())), nil
	}

	if err := player.Inventory.Add(obj); err != nil {
		return nil, errors.Wrapf(err, "failed to pick up %s", obj.Slug())
	}
	room.Inventory.Remove(obj)

	return out.Say(msgPutInBag(obj.Slug())).Record(narration.Delta{
		Type:    narration.DeltaMoved,
		Subject: obj.Slug(),
		From:    narration.RoomContainer(room.Slug()),
		To:      narration.ContainerPlayer,
	}), nil
}

func (e *engine) Drop(player *entities.Player, obj *entities.Interactable) (*narration.Outcome, error) {
	if err := requireActors(player, obj); err != nil {
		return nil, err
	}
	out := narration.New(narration.ActionDrop, obj.Slug())

	if !player.Inventory.Contains(obj) {
		return out.As(narration.KindIgnored), nil
	}
	room := player.CurrentRoom
	if room == nil {
		return nil, errors.FailedPrecondition("player is not in a room")
	}

	if err := room.Inventory.Add(obj); err != nil {
		return nil, errors.Wrapf(err, "failed to drop %s", obj.Slug())
	}
	player.Inventory.Remove(obj)
	obj.TextInRoom = GroundText(obj.Slug())

	return out.Say(msgDropped(obj.Slug())).
		Record(narration.Delta{
			Type:    narration.DeltaMoved,
			Subject: obj.Slug(),
			From:    narration.ContainerPlayer,
			To:      narration.RoomContainer(room.Slug()),
		}).
		Record(narration.Delta{Type: narration.DeltaTextInRoomChanged, Subject: obj.Slug()}), nil
}

func (e *engine) UseAlone(player *entities.Player, obj *entities.Interactable) (*narration.Outcome, error) {
	if err := requireActors(player, obj); err != nil {
		return nil, err
	}

	switch obj.Kind {
	case entities.KindDoor:
		return e.traverse(player, obj)
	case entities.KindPlain:
		return e.useObjectAlone(player, obj)
	default:
		return nil, errors.Internalf("unknown kind %q for %s", obj.Kind, obj.Slug())
	}
}

func (e *engine) useObjectAlone(player *entities.Player, obj *entities.Interactable) (*narration.Outcome, error) {
	out := narration.New(narration.ActionUse, obj.Slug())

	switch {
	case obj.Used:
		return out.Reject(msgAlreadyUsed), nil
	case !obj.CanUse:
		return out.Reject(msgCantUse(obj.Slug())), nil
	case !obj.UseAlone:
		return out.Reject(msgNeedsPartner(obj.Slug())), nil
	}

	if obj.OnlyInRoom != nil {
		if player.CurrentRoom == nil || player.CurrentRoom.Slug() != obj.OnlyInRoom.RoomSlug {
			return out.As(narration.KindHint).Say(obj.UseText), nil
		}
		out.Say(obj.OnlyInRoom.SuccessText)
		e.markUsed(player, obj, out)
		return out, nil
	}

	if e.soloUsePolicy == SoloUseLenient {
		out.Say(obj.UseText)
		e.markUsed(player, obj, out)
		return out, nil
	}

	return nil, errors.ContentDefect(errors.CodeSoloUseUndefined, obj.Slug(),
		"%s can be used alone but has no room to be used in", obj.Slug())
}

func (e *engine) traverse(player *entities.Player, door *entities.Interactable) (*narration.Outcome, error) {
	out := narration.New(narration.ActionTraverse, door.Slug())

	if door.Door.Locked {
		return out.Reject(msgLocked(door.Slug())), nil
	}
	if !door.UseAlone {
		return out.Reject(msgMissingSomething), nil
	}
	if door.Door.PairedRoom == nil {
		return nil, errors.ContentDefect(errors.CodeDoorUnpaired, door.Slug(),
			"%s does not lead anywhere", door.Slug())
	}

	e.moveTo(player, door.Door.PairedRoom, out)
	return out, nil
}

func (e *engine) UseTogether(
	player *entities.Player,
	obj *entities.Interactable,
	partner *entities.Interactable,
) (*narration.Outcome, error) {
	if err := requireActors(player, obj); err != nil {
		return nil, err
	}
	if partner == nil {
		return nil, errors.InvalidArgument("partner is required")
	}

	switch obj.Kind {
	case entities.KindDoor:
		return e.useDoorWith(obj, partner), nil
	case entities.KindPlain:
		return e.useObjectWith(player, obj, partner), nil
	default:
		return nil, errors.Internalf("unknown kind %q for %s", obj.Kind, obj.Slug())
	}
}

func (e *engine) useObjectWith(
	player *entities.Player,
	obj *entities.Interactable,
	partner *entities.Interactable,
) *narration.Outcome {
	out := narration.New(narration.ActionUseWith, obj.Slug()).WithPartner(partner.Slug())

	switch {
	case !obj.CanUse:
		return out.Reject(msgCantUse(obj.Slug()))
	case !partner.CanUse:
		return out.Reject(msgCantUse(partner.Slug()))
	case obj.Used:
		return out.Reject(msgUsedUp(obj.Slug()))
	case partner.Used:
		return out.Reject(msgUsedUp(partner.Slug()))
	case obj.UseWith != partner:
		return out.Reject(msgPairMismatch)
	}

	out.Say(obj.UseText).Say(partner.UseText)
	e.markUsed(player, obj, out)
	e.markUsed(player, partner, out)
	return out
}

// useDoorWith matches the partner by slug and leaves the partner untouched
func (e *engine) useDoorWith(door, partner *entities.Interactable) *narration.Outcome {
	out := narration.New(narration.ActionUseWith, door.Slug()).WithPartner(partner.Slug())

	if !door.CanUse {
		return out.Reject(msgDoorCantUse)
	}
	if door.UseWithSlug != partner.Slug() {
		return out.Reject(msgDoorPairMismatch)
	}

	out.Say(door.UseText)
	if !door.Used {
		door.Used = true
		out.Record(narration.Delta{Type: narration.DeltaUsed, Subject: door.Slug()})
	}
	if door.ApplyUpdatedDescription() {
		out.Record(narration.Delta{Type: narration.DeltaDescriptionChanged, Subject: door.Slug()})
	}
	if door.Door.Locked {
		door.Door.Locked = false
		out.Record(narration.Delta{Type: narration.DeltaUnlocked, Subject: door.Slug()})
	}
	return out
}

// markUsed applies the effects of a successful use: the used flag, the
// updated description and use-once consumption from whichever container
// holds the object, bag first.
func (e *engine) markUsed(player *entities.Player, obj *entities.Interactable, out *narration.Outcome) {
	obj.Used = true
	out.Record(narration.Delta{Type: narration.DeltaUsed, Subject: obj.Slug()})

	if obj.ApplyUpdatedDescription() {
		out.Record(narration.Delta{Type: narration.DeltaDescriptionChanged, Subject: obj.Slug()})
	}

	if !obj.UseOnce {
		return
	}
	holder := player.Holder(obj)
	if holder == nil {
		return
	}
	from := narration.ContainerPlayer
	if holder != player.Inventory {
		from = narration.RoomContainer(player.CurrentRoom.Slug())
	}
	holder.Remove(obj)
	out.Record(narration.Delta{Type: narration.DeltaConsumed, Subject: obj.Slug(), From: from})
}

func (e *engine) EnterRoom(player *entities.Player, room *entities.Room) (*narration.Outcome, error) {
	if player == nil {
		return nil, errors.InvalidArgument("player is required")
	}
	if room == nil {
		return nil, errors.InvalidArgument("room is required")
	}

	out := narration.New(narration.ActionEnter, room.Slug())
	e.moveTo(player, room, out)
	return out, nil
}

// moveTo sets the current room and narrates first or repeat arrival
func (e *engine) moveTo(player *entities.Player, room *entities.Room, out *narration.Outcome) {
	from := ""
	if player.CurrentRoom != nil {
		from = player.CurrentRoom.Slug()
	}
	player.CurrentRoom = room
	out.Record(narration.Delta{
		Type:    narration.DeltaRoomChanged,
		Subject: narration.ContainerPlayer,
		From:    from,
		To:      room.Slug(),
	})

	if player.HasEntered(room) {
		out.Say(msgBackIn(room))
		return
	}
	out.Say(room.EntryText)
	player.MarkEntered(room)
	out.Record(narration.Delta{Type: narration.DeltaRoomEntered, Subject: narration.ContainerPlayer, To: room.Slug()})
}

func (e *engine) LookRoom(player *entities.Player) (*narration.Outcome, error) {
	if player == nil {
		return nil, errors.InvalidArgument("player is required")
	}
	if player.CurrentRoom == nil {
		return nil, errors.FailedPrecondition("player is not in a room")
	}

	out := narration.New(narration.ActionLook, player.CurrentRoom.Slug()).As(narration.KindInfo)
	for _, line := range player.CurrentRoom.Render() {
		out.Say(line)
	}
	return out, nil
}

func (e *engine) LookObject(player *entities.Player, obj *entities.Interactable) (*narration.Outcome, error) {
	if err := requireActors(player, obj); err != nil {
		return nil, err
	}
	return narration.New(narration.ActionExamine, obj.Slug()).
		As(narration.KindInfo).
		Say(obj.Description), nil
}

func (e *engine) ListInventory(player *entities.Player) (*narration.Outcome, error) {
	if player == nil {
		return nil, errors.InvalidArgument("player is required")
	}

	out := narration.New(narration.ActionInventory, "").As(narration.KindInfo)
	if player.Inventory.Len() == 0 {
		return out.Say(msgEmptyBag), nil
	}
	return out.Say(msgCarryingPrefix + strings.Join(player.Inventory.Slugs(), ", ")), nil
}

func (e *engine) Apply(player *entities.Player, intent *Intent) (*narration.Outcome, error) {
	if player == nil {
		return nil, errors.InvalidArgument("player is required")
	}
	if intent == nil {
		return nil, errors.InvalidArgument("intent is required")
	}
	if err := intent.Validate(); err != nil {
		return nil, err
	}

	switch intent.Verb {
	case VerbInventory:
		return e.ListInventory(player)
	case VerbLook:
		if intent.Object == "" {
			return e.LookRoom(player)
		}
	}

	obj := resolve(player, intent.Object)
	if obj == nil {
		return notHere(intent, intent.Object), nil
	}

	switch intent.Verb {
	case VerbPickup:
		return e.Pickup(player, obj)
	case VerbDrop:
		return e.Drop(player, obj)
	case VerbUse:
		return e.UseAlone(player, obj)
	case VerbMove:
		if !obj.IsDoor() {
			return narration.New(narration.ActionTraverse, obj.Slug()).Reject(msgNotAWayOut(obj.Slug())), nil
		}
		return e.UseAlone(player, obj)
	case VerbLook, VerbExamine:
		return e.LookObject(player, obj)
	case VerbUseWith:
		partner := resolve(player, intent.Target)
		if partner == nil {
			return notHere(intent, intent.Target), nil
		}
		// "use key with gate" is the door's paired use, unless the object
		// itself names the door as its partner
		if partner.IsDoor() && !obj.IsDoor() && obj.UseWith != partner {
			return e.UseTogether(player, partner, obj)
		}
		return e.UseTogether(player, obj, partner)
	default:
		return nil, errors.InvalidArgumentf("unknown verb %q", intent.Verb)
	}
}

// resolve finds a slug in the bag first, then the current room. Hidden
// objects resolve when named.
func resolve(player *entities.Player, slug string) *entities.Interactable {
	if obj := player.Inventory.Find(slug); obj != nil {
		return obj
	}
	if player.CurrentRoom != nil {
		return player.CurrentRoom.Inventory.Find(slug)
	}
	return nil
}

func notHere(intent *Intent, slug string) *narration.Outcome {
	return narration.New(actionFor(intent.Verb), slug).Reject(msgNotHere(slug))
}

func actionFor(verb Verb) narration.Action {
	switch verb {
	case VerbPickup:
		return narration.ActionPickup
	case VerbDrop:
		return narration.ActionDrop
	case VerbUse:
		return narration.ActionUse
	case VerbUseWith:
		return narration.ActionUseWith
	case VerbMove:
		return narration.ActionTraverse
	case VerbLook:
		return narration.ActionLook
	case VerbExamine:
		return narration.ActionExamine
	default:
		return narration.ActionInventory
	}
}

func requireActors(player *entities.Player, obj *entities.Interactable) error {
	if player == nil {
		return errors.InvalidArgument("player is required")
	}
	if obj == nil {
		return errors.InvalidArgument("object is required")
	}
	return nil
}
