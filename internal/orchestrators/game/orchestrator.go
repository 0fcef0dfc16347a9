// Package game runs a play session: it loads a world, feeds intents to the
// rules engine and publishes every outcome.
package game

//go:generate mockgen -destination=mock/mock_service.go -package=gamemock github.com/KirkDiggler/adventure-engine/internal/orchestrators/game Service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/adventure-engine/internal/content"
	"github.com/KirkDiggler/adventure-engine/internal/engine"
	"github.com/KirkDiggler/adventure-engine/internal/errors"
	"github.com/KirkDiggler/adventure-engine/internal/narration"
	"github.com/KirkDiggler/adventure-engine/internal/pkg/idgen"
	"github.com/KirkDiggler/adventure-engine/internal/repositories/worlds"
)

// Service defines the interface for play sessions. There is at most one
// active session; starting a new one ends the old one.
type Service interface {
	Start(ctx context.Context, input *StartInput) (*StartOutput, error)
	Do(ctx context.Context, input *DoInput) (*DoOutput, error)
	Transcript(ctx context.Context, input *TranscriptInput) (*TranscriptOutput, error)
	End(ctx context.Context, input *EndInput) (*EndOutput, error)
}

// Config holds the dependencies for the game orchestrator
type Config struct {
	WorldRepo     worlds.Repository
	Engine        engine.Engine
	IDGenerator   idgen.Generator
	EventBus      events.EventBus
	SoloUsePolicy engine.SoloUsePolicy
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.WorldRepo == nil {
		vb.RequiredField("WorldRepo")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}
	if _, err := engine.ParseSoloUsePolicy(string(c.SoloUsePolicy)); err != nil {
		vb.Fieldf("SoloUsePolicy", "unknown policy %q", c.SoloUsePolicy)
	}

	return vb.Build()
}

type session struct {
	id      string
	worldID string
	world   *content.World
	journal *journal
}

type orchestrator struct {
	worldRepo     worlds.Repository
	engine        engine.Engine
	idGen         idgen.Generator
	bus           events.EventBus
	publisher     *narration.Publisher
	soloUsePolicy engine.SoloUsePolicy

	mu      sync.Mutex
	current *session
}

// NewOrchestrator creates a new game orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	publisher, err := narration.NewPublisher(&narration.PublisherConfig{EventBus: cfg.EventBus})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create publisher")
	}

	policy, _ := engine.ParseSoloUsePolicy(string(cfg.SoloUsePolicy))

	return &orchestrator{
		worldRepo:     cfg.WorldRepo,
		engine:        cfg.Engine,
		idGen:         cfg.IDGenerator,
		bus:           cfg.EventBus,
		publisher:     publisher,
		soloUsePolicy: policy,
	}, nil
}

// Start loads a world, places the player in the start room and narrates the
// arrival
func (o *orchestrator) Start(ctx context.Context, input *StartInput) (*StartOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.WorldID == "" {
		return nil, errors.InvalidArgument("world ID is required")
	}

	stored, err := o.worldRepo.Get(ctx, &worlds.GetInput{ID: input.WorldID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load world %s", input.WorldID)
	}

	world, err := content.Load(stored.Data.Content, &content.ValidateOptions{SoloUsePolicy: o.soloUsePolicy})
	if err != nil {
		slog.Error("world content is invalid",
			"world_id", input.WorldID,
			"defects", errors.DefectCodes(err),
			"error", err)
		return nil, errors.Wrapf(err, "world %s is invalid", input.WorldID)
	}
	if input.PlayerName != "" {
		world.Player.Name = input.PlayerName
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if o.current != nil {
		if err := o.closeLocked(); err != nil {
			return nil, err
		}
	}

	sess := &session{
		id:      o.idGen.Generate(),
		worldID: input.WorldID,
		world:   world,
		journal: newJournal(o.bus),
	}
	o.current = sess

	slog.Info("session started",
		"session_id", sess.id,
		"world_id", sess.worldID,
		"player", world.Player.GetID())

	entered, err := o.engine.EnterRoom(world.Player, world.StartRoom)
	if err != nil {
		return nil, o.fail(sess, err, "failed to enter start room")
	}
	if err := o.publish(ctx, sess, entered); err != nil {
		return nil, err
	}

	look, err := o.engine.LookRoom(world.Player)
	if err != nil {
		return nil, o.fail(sess, err, "failed to look around start room")
	}
	if err := o.publish(ctx, sess, look); err != nil {
		return nil, err
	}

	return &StartOutput{
		SessionID: sess.id,
		Title:     world.Title,
		Arrival:   []*narration.Outcome{entered, look},
	}, nil
}

// Do applies one intent
func (o *orchestrator) Do(ctx context.Context, input *DoInput) (*DoOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Intent == nil {
		return nil, errors.InvalidArgument("intent is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	sess, err := o.sessionLocked(input.SessionID)
	if err != nil {
		return nil, err
	}

	outcome, err := o.engine.Apply(sess.world.Player, input.Intent)
	if err != nil {
		if errors.IsContentDefect(err) {
			return nil, o.fail(sess, err, "content defect reached play")
		}
		return nil, err
	}

	slog.Debug("intent applied",
		"session_id", sess.id,
		"verb", input.Intent.Verb,
		"object", input.Intent.Object,
		"target", input.Intent.Target,
		"kind", outcome.Kind,
		"deltas", len(outcome.Deltas))

	if err := o.publish(ctx, sess, outcome); err != nil {
		return nil, err
	}

	return &DoOutput{Outcome: outcome}, nil
}

// Transcript returns what the journal has recorded so far
func (o *orchestrator) Transcript(_ context.Context, input *TranscriptInput) (*TranscriptOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	sess, err := o.sessionLocked(input.SessionID)
	if err != nil {
		return nil, err
	}

	return &TranscriptOutput{Entries: sess.journal.snapshot()}, nil
}

// End closes the active session
func (o *orchestrator) End(_ context.Context, input *EndInput) (*EndOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	sess, err := o.sessionLocked(input.SessionID)
	if err != nil {
		return nil, err
	}

	turns := sess.journal.len()
	if err := o.closeLocked(); err != nil {
		return nil, err
	}

	slog.Info("session ended", "session_id", sess.id, "turns", turns)

	return &EndOutput{Turns: turns}, nil
}

func (o *orchestrator) sessionLocked(id string) (*session, error) {
	if id == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}
	if o.current == nil || o.current.id != id {
		return nil, errors.NotFoundf("session %s not found", id)
	}
	return o.current, nil
}

func (o *orchestrator) closeLocked() error {
	sess := o.current
	o.current = nil
	if err := sess.journal.close(o.bus); err != nil {
		return errors.Wrapf(err, "failed to close session %s", sess.id)
	}
	return nil
}

// fail logs a content defect against the session. The session stays
// playable; the intent that hit the defect changed nothing.
func (o *orchestrator) fail(sess *session, err error, message string) error {
	slog.Error(message,
		"session_id", sess.id,
		"world_id", sess.worldID,
		"code", errors.GetCode(err),
		"slug", errors.GetMeta(err)["slug"],
		"error", err)
	return errors.Wrap(err, message)
}

func (o *orchestrator) publish(ctx context.Context, sess *session, outcome *narration.Outcome) error {
	if err := o.publisher.Publish(ctx, sess.world.Player, o.targetOf(sess, outcome), outcome); err != nil {
		return errors.Wrapf(err, "failed to publish %s outcome", outcome.Action)
	}
	return nil
}

// targetOf finds the entity an outcome is about, or nil
func (o *orchestrator) targetOf(sess *session, outcome *narration.Outcome) core.Entity {
	if outcome.Subject == "" {
		return nil
	}
	if thing := sess.world.Thing(outcome.Subject); thing != nil {
		return thing
	}
	if room := sess.world.Room(outcome.Subject); room != nil {
		return room
	}
	return nil
}
