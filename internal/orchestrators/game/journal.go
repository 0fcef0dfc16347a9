package game

import (
	"context"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/adventure-engine/internal/narration"
)

// journalPriority runs the journal after anything else listening
const journalPriority = 1000

// journal records every outcome published on the bus while subscribed
type journal struct {
	mu      sync.Mutex
	entries []*Entry
	subs    []string
}

func newJournal(bus events.EventBus) *journal {
	j := &journal{entries: make([]*Entry, 0)}
	j.subs = narration.SubscribeAll(bus, journalPriority, j.record)
	return j
}

func (j *journal) record(_ context.Context, event *narration.OutcomeEvent) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	entry := &Entry{
		Turn:   len(j.entries) + 1,
		Action: event.Outcome.Action,
		Kind:   event.Outcome.Kind,
		Lines:  append([]string(nil), event.Outcome.Lines...),
		Deltas: append([]narration.Delta(nil), event.Outcome.Deltas...),
	}
	if source := event.Source(); source != nil {
		entry.Actor = source.GetID()
	}
	if target := event.Target(); target != nil {
		entry.Target = target.GetID()
	}
	j.entries = append(j.entries, entry)
	return nil
}

func (j *journal) snapshot() []*Entry {
	j.mu.Lock()
	defer j.mu.Unlock()

	out := make([]*Entry, len(j.entries))
	copy(out, j.entries)
	return out
}

func (j *journal) len() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return len(j.entries)
}

func (j *journal) close(bus events.EventBus) error {
	return narration.UnsubscribeAll(bus, j.subs)
}
