package engine

import (
	"strings"

	"github.com/KirkDiggler/adventure-engine/internal/errors"
)

// Verb is what the player wants to do
type Verb string

// Supported verbs
const (
	VerbPickup    Verb = "pickup"
	VerbDrop      Verb = "drop"
	VerbUse       Verb = "use"
	VerbUseWith   Verb = "use_with"
	VerbMove      Verb = "move"
	VerbLook      Verb = "look"
	VerbExamine   Verb = "examine"
	VerbInventory Verb = "inventory"
)

// Verbs lists every supported verb
var Verbs = []Verb{
	VerbPickup,
	VerbDrop,
	VerbUse,
	VerbUseWith,
	VerbMove,
	VerbLook,
	VerbExamine,
	VerbInventory,
}

// ParseVerb converts a string to a Verb
func ParseVerb(s string) (Verb, error) {
	v := Verb(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Verbs {
		if v == known {
			return v, nil
		}
	}
	return "", errors.InvalidArgumentf("unknown verb %q", s)
}

// NeedsObject reports whether the verb requires an object slug
func (v Verb) NeedsObject() bool {
	switch v {
	case VerbLook, VerbInventory:
		return false
	default:
		return true
	}
}

// Intent is a discrete request from the player. Object and Target are slugs.
type Intent struct {
	Verb   Verb   `json:"verb"`
	Object string `json:"object,omitempty"`
	Target string `json:"target,omitempty"`
}

// Validate checks the intent's shape. Slugs are not resolved here.
func (i *Intent) Validate() error {
	vb := errors.NewValidationBuilder()

	if _, err := ParseVerb(string(i.Verb)); err != nil {
		vb.Fieldf("verb", "unknown verb %q", i.Verb)
	}
	if i.Verb.NeedsObject() {
		errors.ValidateRequired("object", i.Object, vb)
	}
	if i.Verb == VerbUseWith {
		errors.ValidateRequired("target", i.Target, vb)
	}

	return vb.Build()
}

// SoloUsePolicy decides what happens when a plain object may be used alone
// but has no room constraint.
type SoloUsePolicy string

// Solo use policies
const (
	// SoloUseStrict treats the object as a content defect
	SoloUseStrict SoloUsePolicy = "strict"
	// SoloUseLenient treats solo use as an unconditional success
	SoloUseLenient SoloUsePolicy = "lenient"
)

// ParseSoloUsePolicy converts a string to a policy. Empty means strict.
func ParseSoloUsePolicy(s string) (SoloUsePolicy, error) {
	switch SoloUsePolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", SoloUseStrict:
		return SoloUseStrict, nil
	case SoloUseLenient:
		return SoloUseLenient, nil
	default:
		return "", errors.InvalidArgumentf("unknown solo use policy %q", s)
	}
}
