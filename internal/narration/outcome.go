// Package narration describes what the rules engine did in response to an
// intent: the lines to show the player and the state changes that happened.
package narration

import (
	"fmt"
	"strings"
)

// Action names the engine operation that produced an outcome
type Action string

// Engine actions
const (
	ActionPickup    Action = "pickup"
	ActionDrop      Action = "drop"
	ActionUse       Action = "use"
	ActionUseWith   Action = "use_with"
	ActionTraverse  Action = "traverse"
	ActionEnter     Action = "enter"
	ActionLook      Action = "look"
	ActionExamine   Action = "examine"
	ActionInventory Action = "inventory"
)

// Kind classifies an outcome for presentation
type Kind string

// Outcome kinds
const (
	// KindSuccess means the action happened
	KindSuccess Kind = "success"
	// KindRejected means a gate refused the action; nothing changed
	KindRejected Kind = "rejected"
	// KindHint means the action was refused with a clue (wrong room)
	KindHint Kind = "hint"
	// KindIgnored means the action silently did nothing
	KindIgnored Kind = "ignored"
	// KindInfo is a read-only outcome such as look or inventory
	KindInfo Kind = "info"
)

// DeltaType names a state change
type DeltaType string

// State changes
const (
	DeltaMoved              DeltaType = "moved"
	DeltaUsed               DeltaType = "used"
	DeltaDescriptionChanged DeltaType = "description_changed"
	DeltaConsumed           DeltaType = "consumed"
	DeltaTextInRoomChanged  DeltaType = "text_in_room_changed"
	DeltaRoomChanged        DeltaType = "room_changed"
	DeltaRoomEntered        DeltaType = "room_entered"
	DeltaUnlocked           DeltaType = "unlocked"
)

// Container names used in deltas
const (
	ContainerPlayer = "player"
)

// RoomContainer names a room's inventory in a delta
func RoomContainer(slug string) string {
	return "room:" + slug
}

// Delta is a single state change. From and To are container or room names
// where that makes sense and empty otherwise.
type Delta struct {
	Type    DeltaType `json:"type"`
	Subject string    `json:"subject"`
	From    string    `json:"from,omitempty"`
	To      string    `json:"to,omitempty"`
}

// String renders the delta for logs and debug output
func (d Delta) String() string {
	switch {
	case d.From != "" && d.To != "":
		return fmt.Sprintf("%s %s: %s -> %s", d.Type, d.Subject, d.From, d.To)
	case d.From != "":
		return fmt.Sprintf("%s %s from %s", d.Type, d.Subject, d.From)
	case d.To != "":
		return fmt.Sprintf("%s %s to %s", d.Type, d.Subject, d.To)
	default:
		return fmt.Sprintf("%s %s", d.Type, d.Subject)
	}
}

// Outcome is the result of one engine call
type Outcome struct {
	Action  Action   `json:"action"`
	Kind    Kind     `json:"kind"`
	Subject string   `json:"subject,omitempty"`
	Partner string   `json:"partner,omitempty"`
	Lines   []string `json:"lines"`
	Deltas  []Delta  `json:"deltas,omitempty"`
}

// New starts an outcome for the given action and subject
func New(action Action, subject string) *Outcome {
	return &Outcome{
		Action:  action,
		Kind:    KindSuccess,
		Subject: subject,
		Lines:   make([]string, 0),
		Deltas:  make([]Delta, 0),
	}
}

// WithPartner sets the second object of a paired use
func (o *Outcome) WithPartner(partner string) *Outcome {
	o.Partner = partner
	return o
}

// As sets the outcome kind
func (o *Outcome) As(kind Kind) *Outcome {
	o.Kind = kind
	return o
}

// Say appends a line. Empty lines are dropped.
func (o *Outcome) Say(line string) *Outcome {
	if line != "" {
		o.Lines = append(o.Lines, line)
	}
	return o
}

// Sayf appends a formatted line
func (o *Outcome) Sayf(format string, args ...any) *Outcome {
	return o.Say(fmt.Sprintf(format, args...))
}

// Reject marks the outcome rejected with a single message
func (o *Outcome) Reject(line string) *Outcome {
	o.Kind = KindRejected
	return o.Say(line)
}

// Record appends a state change
func (o *Outcome) Record(delta Delta) *Outcome {
	o.Deltas = append(o.Deltas, delta)
	return o
}

// Succeeded reports whether the action happened
func (o *Outcome) Succeeded() bool {
	return o.Kind == KindSuccess
}

// Text joins the lines the way a terminal would print them
func (o *Outcome) Text() string {
	return strings.Join(o.Lines, "\n")
}

// HasDelta reports whether a change of the given type was recorded for subject
func (o *Outcome) HasDelta(deltaType DeltaType, subject string) bool {
	for _, d := range o.Deltas {
		if d.Type == deltaType && d.Subject == subject {
			return true
		}
	}
	return false
}
