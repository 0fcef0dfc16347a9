package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"
	"github.com/mitchellh/go-wordwrap"

	"github.com/KirkDiggler/adventure-engine/internal/errors"
	"github.com/KirkDiggler/adventure-engine/internal/narration"
	"github.com/KirkDiggler/adventure-engine/internal/orchestrators/game"
)

const helpText = `Things you can do:
  look, look at <thing>, examine <thing>
  take <thing>, drop <thing>, inventory
  use <thing>, use <thing> with <thing>
  go <door>
  transcript, help, quit`

// RendererConfig holds the renderer settings
type RendererConfig struct {
	Writer io.Writer
	// Width wraps lines; zero or less disables wrapping
	Width int
	// Color turns on styled output
	Color bool
	// ShowDeltas prints the state changes under each outcome
	ShowDeltas bool
}

// Validate ensures the config is usable
func (c *RendererConfig) Validate() error {
	if c.Writer == nil {
		return errors.InvalidArgument("writer is required")
	}
	return nil
}

// Renderer writes outcomes to a terminal
type Renderer struct {
	out        io.Writer
	width      int
	showDeltas bool

	title    color.Style
	success  color.Style
	rejected color.Style
	hint     color.Style
	subtle   color.Style
	plain    bool
}

// NewRenderer creates a renderer
func NewRenderer(cfg *RendererConfig) (*Renderer, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Renderer{
		out:        cfg.Writer,
		width:      cfg.Width,
		showDeltas: cfg.ShowDeltas,
		title:      color.Style{color.FgMagenta, color.OpBold},
		success:    color.Style{color.FgGreen},
		rejected:   color.Style{color.FgRed, color.OpBold},
		hint:       color.Style{color.FgYellow},
		subtle:     color.Style{color.FgGray},
		plain:      !cfg.Color,
	}, nil
}

// Title prints the world title
func (r *Renderer) Title(title string) {
	if title == "" {
		return
	}
	r.println(r.paint(r.title, title))
	r.println("")
}

// Outcome prints an outcome's lines and, when enabled, its deltas
func (r *Renderer) Outcome(outcome *narration.Outcome) {
	if outcome == nil {
		return
	}
	style := r.styleFor(outcome.Kind)
	for _, line := range outcome.Lines {
		for _, wrapped := range wrap(line, r.width) {
			r.println(r.paint(style, wrapped))
		}
	}
	if r.showDeltas {
		for _, delta := range outcome.Deltas {
			r.println(r.paint(r.subtle, "  * "+delta.String()))
		}
	}
}

// Error prints an error the player should see. Content defects include
// their code and slug so authors can find them.
func (r *Renderer) Error(err error) {
	if err == nil {
		return
	}
	message := errors.GetMessage(err)
	if errors.IsContentDefect(err) {
		message = fmt.Sprintf("[%s] %s", errors.GetCode(err), message)
		if slug, ok := errors.GetMeta(err)["slug"].(string); ok && slug != "" {
			message += " (" + slug + ")"
		}
	}
	for _, wrapped := range wrap(message, r.width) {
		r.println(r.paint(r.rejected, wrapped))
	}
}

// Transcript prints the journal
func (r *Renderer) Transcript(entries []*game.Entry) {
	if len(entries) == 0 {
		r.println(r.paint(r.subtle, "Nothing has happened yet."))
		return
	}
	for _, entry := range entries {
		header := fmt.Sprintf("%3d. %s", entry.Turn, entry.Action)
		if entry.Target != "" {
			header += " " + entry.Target
		}
		r.println(r.paint(r.subtle, header))
		for _, line := range entry.Lines {
			r.println("     " + line)
		}
	}
}

// Help prints the command summary
func (r *Renderer) Help() {
	r.println(helpText)
}

// Prompt prints the input prompt without a newline
func (r *Renderer) Prompt(prompt string) {
	_, _ = io.WriteString(r.out, prompt)
}

// Say prints a plain line
func (r *Renderer) Say(line string) {
	for _, wrapped := range wrap(line, r.width) {
		r.println(wrapped)
	}
}

func (r *Renderer) styleFor(kind narration.Kind) color.Style {
	switch kind {
	case narration.KindSuccess:
		return r.success
	case narration.KindRejected:
		return r.rejected
	case narration.KindHint:
		return r.hint
	case narration.KindIgnored:
		return r.subtle
	default:
		return nil
	}
}

func (r *Renderer) paint(style color.Style, text string) string {
	if r.plain || len(style) == 0 {
		return text
	}
	return style.Sprint(text)
}

func (r *Renderer) println(line string) {
	_, _ = fmt.Fprintln(r.out, line)
}

// wrap breaks text on spaces so no line exceeds width, counted in runes.
// Words longer than width get a line of their own.
func wrap(text string, width int) []string {
	if width <= 0 {
		return []string{text}
	}
	return strings.Split(wordwrap.WrapString(text, uint(width)), "\n")
}
