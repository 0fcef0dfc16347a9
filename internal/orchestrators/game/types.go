package game

import (
	"github.com/KirkDiggler/adventure-engine/internal/engine"
	"github.com/KirkDiggler/adventure-engine/internal/narration"
)

// StartInput defines the request for starting a session
type StartInput struct {
	WorldID    string
	PlayerName string
}

// StartOutput defines the response for starting a session
type StartOutput struct {
	SessionID string
	Title     string
	// Arrival narrates entering the start room, followed by a look around
	Arrival []*narration.Outcome
}

// DoInput defines the request for applying an intent
type DoInput struct {
	SessionID string
	Intent    *engine.Intent
}

// DoOutput defines the response for applying an intent
type DoOutput struct {
	Outcome *narration.Outcome
}

// TranscriptInput defines the request for reading the session transcript
type TranscriptInput struct {
	SessionID string
}

// TranscriptOutput defines the response for reading the session transcript
type TranscriptOutput struct {
	Entries []*Entry
}

// EndInput defines the request for ending a session
type EndInput struct {
	SessionID string
}

// EndOutput defines the response for ending a session
type EndOutput struct {
	Turns int
}

// Entry is one published outcome as the journal saw it
type Entry struct {
	Turn   int
	Action narration.Action
	Kind   narration.Kind
	Actor  string
	Target string
	Lines  []string
	Deltas []narration.Delta
}
