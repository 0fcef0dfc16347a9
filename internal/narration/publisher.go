package narration

import (
	"context"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/adventure-engine/internal/errors"
)

// EventPrefix namespaces outcome events on the bus
const EventPrefix = "adventure."

// Actions lists every action an outcome event can carry
var Actions = []Action{
	ActionPickup,
	ActionDrop,
	ActionUse,
	ActionUseWith,
	ActionTraverse,
	ActionEnter,
	ActionLook,
	ActionExamine,
	ActionInventory,
}

// EventType returns the bus event type for an action
func EventType(action Action) string {
	return EventPrefix + string(action)
}

// OutcomeEvent is a game event carrying an engine outcome
type OutcomeEvent struct {
	*events.GameEvent
	Outcome *Outcome
}

// PublisherConfig holds the publisher's dependencies
type PublisherConfig struct {
	EventBus events.EventBus
}

// Validate ensures the bus is set
func (c *PublisherConfig) Validate() error {
	if c.EventBus == nil {
		return errors.InvalidArgument("event bus is required")
	}
	return nil
}

// Publisher puts outcomes on an rpg-toolkit event bus
type Publisher struct {
	bus events.EventBus
}

// NewPublisher creates a publisher
func NewPublisher(cfg *PublisherConfig) (*Publisher, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &Publisher{bus: cfg.EventBus}, nil
}

// Publish emits the outcome with actor as source and target as the object
// acted on. Target may be nil for look and inventory.
func (p *Publisher) Publish(ctx context.Context, actor, target core.Entity, outcome *Outcome) error {
	if outcome == nil {
		return errors.InvalidArgument("outcome is required")
	}

	event := &OutcomeEvent{
		GameEvent: events.NewGameEvent(EventType(outcome.Action), actor, target),
		Outcome:   outcome,
	}
	if err := p.bus.Publish(ctx, event); err != nil {
		return errors.Wrapf(err, "failed to publish %s", EventType(outcome.Action))
	}
	return nil
}

// OutcomeHandler receives published outcomes
type OutcomeHandler func(ctx context.Context, event *OutcomeEvent) error

// SubscribeAll registers handler for every action and returns the
// subscription IDs so the caller can unsubscribe.
func SubscribeAll(bus events.EventBus, priority int, handler OutcomeHandler) []string {
	ids := make([]string, 0, len(Actions))
	for _, action := range Actions {
		ids = append(ids, bus.SubscribeFunc(EventType(action), priority,
			func(ctx context.Context, event events.Event) error {
				outcomeEvent, ok := event.(*OutcomeEvent)
				if !ok {
					return nil
				}
				return handler(ctx, outcomeEvent)
			}))
	}
	return ids
}

// UnsubscribeAll removes subscriptions made by SubscribeAll
func UnsubscribeAll(bus events.EventBus, ids []string) error {
	for _, id := range ids {
		if err := bus.Unsubscribe(id); err != nil {
			return errors.Wrapf(err, "failed to unsubscribe %s", id)
		}
	}
	return nil
}
