package console_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/adventure-engine/internal/engine"
	"github.com/KirkDiggler/adventure-engine/internal/errors"
	"github.com/KirkDiggler/adventure-engine/internal/handlers/console"
)

type ParserTestSuite struct {
	suite.Suite
}

func TestParserSuite(t *testing.T) {
	suite.Run(t, new(ParserTestSuite))
}

func (s *ParserTestSuite) TestIntents() {
	testCases := []struct {
		line   string
		intent engine.Intent
	}{
		{line: "take key", intent: engine.Intent{Verb: engine.VerbPickup, Object: "key"}},
		{line: "Pick up the key", intent: engine.Intent{Verb: engine.VerbPickup, Object: "key"}},
		{line: "get   the  lantern ", intent: engine.Intent{Verb: engine.VerbPickup, Object: "lantern"}},
		{line: "drop crowbar", intent: engine.Intent{Verb: engine.VerbDrop, Object: "crowbar"}},
		{line: "use lantern", intent: engine.Intent{Verb: engine.VerbUse, Object: "lantern"}},
		{line: "use the key with the gate", intent: engine.Intent{Verb: engine.VerbUseWith, Object: "key", Target: "gate"}},
		{line: "use crowbar on chest", intent: engine.Intent{Verb: engine.VerbUseWith, Object: "crowbar", Target: "chest"}},
		{line: "go through the gate", intent: engine.Intent{Verb: engine.VerbMove, Object: "gate"}},
		{line: "enter trapdoor", intent: engine.Intent{Verb: engine.VerbMove, Object: "trapdoor"}},
		{line: "look", intent: engine.Intent{Verb: engine.VerbLook}},
		{line: "look at the portrait", intent: engine.Intent{Verb: engine.VerbLook, Object: "portrait"}},
		{line: "x barrel", intent: engine.Intent{Verb: engine.VerbExamine, Object: "barrel"}},
		{line: "i", intent: engine.Intent{Verb: engine.VerbInventory}},
		{line: "take old map", intent: engine.Intent{Verb: engine.VerbPickup, Object: "old map"}},
	}

	for _, tc := range testCases {
		s.Run(tc.line, func() {
			cmd, err := console.ParseCommand(tc.line)
			s.Require().NoError(err)
			s.Equal(console.ControlNone, cmd.Control)
			s.Require().NotNil(cmd.Intent)
			s.Equal(tc.intent, *cmd.Intent)
		})
	}
}

func (s *ParserTestSuite) TestControls() {
	testCases := []struct {
		line    string
		control console.Control
	}{
		{line: "quit", control: console.ControlQuit},
		{line: "Q", control: console.ControlQuit},
		{line: "exit", control: console.ControlQuit},
		{line: "help", control: console.ControlHelp},
		{line: "?", control: console.ControlHelp},
		{line: "history", control: console.ControlTranscript},
	}

	for _, tc := range testCases {
		s.Run(tc.line, func() {
			cmd, err := console.ParseCommand(tc.line)
			s.Require().NoError(err)
			s.Nil(cmd.Intent)
			s.Equal(tc.control, cmd.Control)
		})
	}
}

func (s *ParserTestSuite) TestErrors() {
	testCases := []struct {
		name    string
		line    string
		message string
	}{
		{name: "blank", line: "   ", message: "say something"},
		{name: "unknown verb", line: "dance wildly", message: `I don't know how to "dance".`},
		{name: "missing object", line: "take", message: "Take what?"},
		{name: "only fillers", line: "take the", message: "Take what?"},
		{name: "missing partner", line: "use key with", message: "Use what?"},
		{name: "pairing a non-use verb", line: "drop key on gate", message: "You can only use things with other things."},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			cmd, err := console.ParseCommand(tc.line)
			s.Nil(cmd)
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
			s.Equal(tc.message, errors.GetMessage(err))
		})
	}
}
