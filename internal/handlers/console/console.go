// Package console is the interactive text front end. It reads lines,
// turns them into intents and renders what the game service returns.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/adventure-engine/internal/errors"
	"github.com/KirkDiggler/adventure-engine/internal/orchestrators/game"
)

const prompt = "> "

// Config holds dependencies for the console
type Config struct {
	Service  game.Service
	Renderer *Renderer
	Input    io.Reader
}

// Validate ensures all required dependencies are present
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Service == nil {
		vb.RequiredField("Service")
	}
	if c.Renderer == nil {
		vb.RequiredField("Renderer")
	}
	if c.Input == nil {
		vb.RequiredField("Input")
	}
	return vb.Build()
}

// Console runs one play session over a reader and a renderer
type Console struct {
	service  game.Service
	renderer *Renderer
	scanner  *bufio.Scanner
}

// NewConsole creates a console with the given configuration
func NewConsole(cfg *Config) (*Console, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Console{
		service:  cfg.Service,
		renderer: cfg.Renderer,
		scanner:  bufio.NewScanner(cfg.Input),
	}, nil
}

// RunInput defines the request for a play session
type RunInput struct {
	WorldID    string
	PlayerName string
	// AskName prompts for a name when PlayerName is empty
	AskName bool
}

// RunOutput describes how the session ended
type RunOutput struct {
	SessionID string
	Turns     int
}

// Run plays until the player quits, input ends or ctx is cancelled
func (c *Console) Run(ctx context.Context, input *RunInput) (*RunOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	name := input.PlayerName
	if name == "" && input.AskName {
		c.renderer.Prompt("What is your name? ")
		if line, ok := c.readLine(); ok {
			name = line
		}
	}

	started, err := c.service.Start(ctx, &game.StartInput{WorldID: input.WorldID, PlayerName: name})
	if err != nil {
		return nil, err
	}

	c.renderer.Title(started.Title)
	for _, outcome := range started.Arrival {
		c.renderer.Outcome(outcome)
	}

	for {
		if err := ctx.Err(); err != nil {
			return c.end(ctx, started.SessionID)
		}

		c.renderer.Prompt(prompt)
		line, ok := c.readLine()
		if !ok {
			return c.end(ctx, started.SessionID)
		}
		if line == "" {
			continue
		}

		done, err := c.handle(ctx, started.SessionID, line)
		if err != nil {
			return nil, err
		}
		if done {
			return c.end(ctx, started.SessionID)
		}
	}
}

// handle runs one line. It reports true when the player asked to quit.
func (c *Console) handle(ctx context.Context, sessionID, line string) (bool, error) {
	cmd, err := ParseCommand(line)
	if err != nil {
		c.renderer.Error(err)
		return false, nil
	}

	switch cmd.Control {
	case ControlQuit:
		return true, nil
	case ControlHelp:
		c.renderer.Help()
		return false, nil
	case ControlTranscript:
		out, err := c.service.Transcript(ctx, &game.TranscriptInput{SessionID: sessionID})
		if err != nil {
			return false, err
		}
		c.renderer.Transcript(out.Entries)
		return false, nil
	}

	out, err := c.service.Do(ctx, &game.DoInput{SessionID: sessionID, Intent: cmd.Intent})
	switch {
	case err == nil:
		c.renderer.Outcome(out.Outcome)
		return false, nil
	case errors.IsContentDefect(err), errors.IsInvalidArgument(err):
		// the turn changed nothing; keep playing
		c.renderer.Error(err)
		return false, nil
	default:
		return false, err
	}
}

func (c *Console) end(ctx context.Context, sessionID string) (*RunOutput, error) {
	// ctx may already be cancelled; ending must still release the session
	out, err := c.service.End(context.WithoutCancel(ctx), &game.EndInput{SessionID: sessionID})
	if err != nil {
		return nil, err
	}

	c.renderer.Say(fmt.Sprintf("You leave after %d turns.", out.Turns))
	slog.Debug("console session finished", "session_id", sessionID, "turns", out.Turns)

	return &RunOutput{SessionID: sessionID, Turns: out.Turns}, nil
}

func (c *Console) readLine() (string, bool) {
	if !c.scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.scanner.Text()), true
}
