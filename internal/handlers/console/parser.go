package console

import (
	"strings"

	"github.com/KirkDiggler/adventure-engine/internal/engine"
	"github.com/KirkDiggler/adventure-engine/internal/errors"
)

// Control is a console command that never reaches the engine
type Control string

// Controls
const (
	ControlNone       Control = ""
	ControlQuit       Control = "quit"
	ControlHelp       Control = "help"
	ControlTranscript Control = "transcript"
)

// Command is one parsed line of input. Exactly one of Intent and Control
// is set.
type Command struct {
	Intent  *engine.Intent
	Control Control
}

var verbAliases = map[string]engine.Verb{
	"take":      engine.VerbPickup,
	"get":       engine.VerbPickup,
	"grab":      engine.VerbPickup,
	"pickup":    engine.VerbPickup,
	"drop":      engine.VerbDrop,
	"use":       engine.VerbUse,
	"go":        engine.VerbMove,
	"enter":     engine.VerbMove,
	"walk":      engine.VerbMove,
	"move":      engine.VerbMove,
	"look":      engine.VerbLook,
	"l":         engine.VerbLook,
	"examine":   engine.VerbExamine,
	"x":         engine.VerbExamine,
	"inspect":   engine.VerbExamine,
	"inventory": engine.VerbInventory,
	"inv":       engine.VerbInventory,
	"i":         engine.VerbInventory,
	"bag":       engine.VerbInventory,
}

var controlAliases = map[string]Control{
	"quit":       ControlQuit,
	"exit":       ControlQuit,
	"q":          ControlQuit,
	"help":       ControlHelp,
	"?":          ControlHelp,
	"transcript": ControlTranscript,
	"history":    ControlTranscript,
}

var fillers = map[string]bool{
	"the":     true,
	"a":       true,
	"an":      true,
	"at":      true,
	"to":      true,
	"through": true,
	"into":    true,
}

// ParseCommand turns a line such as "use the key on the gate" into a
// command. Object slugs are the remaining words joined by a space.
func ParseCommand(line string) (*Command, error) {
	words := strings.Fields(strings.ToLower(line))
	if len(words) == 0 {
		return nil, errors.InvalidArgument("say something")
	}

	if ctl, ok := controlAliases[words[0]]; ok && len(words) == 1 {
		return &Command{Control: ctl}, nil
	}

	head, rest := words[0], words[1:]
	// "pick up" is two words
	if head == "pick" && len(rest) > 0 && rest[0] == "up" {
		head, rest = "pickup", rest[1:]
	}

	verb, ok := verbAliases[head]
	if !ok {
		return nil, errors.InvalidArgumentf("I don't know how to %q.", head)
	}

	object, target, joined := splitPair(rest)
	intent := &engine.Intent{Verb: verb, Object: object}
	if joined {
		if verb != engine.VerbUse {
			return nil, errors.InvalidArgument("You can only use things with other things.")
		}
		intent.Verb = engine.VerbUseWith
		intent.Target = target
	}

	if err := intent.Validate(); err != nil {
		return nil, errors.InvalidArgumentf("%s what?", capitalize(head))
	}
	return &Command{Intent: intent}, nil
}

// splitPair splits "key with gate" into its two halves
func splitPair(words []string) (object, target string, joined bool) {
	for i, w := range words {
		if w == "with" || w == "on" {
			return phrase(words[:i]), phrase(words[i+1:]), true
		}
	}
	return phrase(words), "", false
}

func phrase(words []string) string {
	kept := make([]string, 0, len(words))
	for _, w := range words {
		if !fillers[w] {
			kept = append(kept, w)
		}
	}
	return strings.Join(kept, " ")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
