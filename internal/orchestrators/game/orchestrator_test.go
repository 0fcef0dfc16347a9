package game_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/adventure-engine/internal/engine"
	enginemock "github.com/KirkDiggler/adventure-engine/internal/engine/mock"
	"github.com/KirkDiggler/adventure-engine/internal/errors"
	"github.com/KirkDiggler/adventure-engine/internal/narration"
	"github.com/KirkDiggler/adventure-engine/internal/orchestrators/game"
	"github.com/KirkDiggler/adventure-engine/internal/pkg/idgen"
	"github.com/KirkDiggler/adventure-engine/internal/repositories/worlds"
	worldsmock "github.com/KirkDiggler/adventure-engine/internal/repositories/worlds/mock"
)

const manorID = "manor"

type OrchestratorTestSuite struct {
	suite.Suite
	ctx          context.Context
	bus          events.EventBus
	repo         *worlds.InMemoryRepository
	orchestrator game.Service
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.bus = events.NewBus()

	data, err := os.ReadFile(filepath.Join("..", "..", "content", "testdata", "manor.yaml"))
	s.Require().NoError(err)

	s.repo = worlds.NewInMemory(nil)
	_, err = s.repo.Put(s.ctx, &worlds.PutInput{ID: manorID, Title: "The Quiet Manor", Content: data})
	s.Require().NoError(err)

	eng, err := engine.New(nil)
	s.Require().NoError(err)

	s.orchestrator, err = game.NewOrchestrator(&game.Config{
		WorldRepo:   s.repo,
		Engine:      eng,
		IDGenerator: idgen.NewSequential("session"),
		EventBus:    s.bus,
	})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) start() string {
	out, err := s.orchestrator.Start(s.ctx, &game.StartInput{WorldID: manorID, PlayerName: "Ada"})
	s.Require().NoError(err)
	return out.SessionID
}

func (s *OrchestratorTestSuite) do(sessionID string, verb engine.Verb, object, target string) *narration.Outcome {
	out, err := s.orchestrator.Do(s.ctx, &game.DoInput{
		SessionID: sessionID,
		Intent:    &engine.Intent{Verb: verb, Object: object, Target: target},
	})
	s.Require().NoError(err)
	return out.Outcome
}

func (s *OrchestratorTestSuite) TestNewOrchestratorValidation() {
	testCases := []struct {
		name string
		cfg  *game.Config
	}{
		{name: "nil config"},
		{name: "missing everything", cfg: &game.Config{}},
		{
			name: "unknown policy",
			cfg: &game.Config{
				WorldRepo:     s.repo,
				Engine:        enginemock.NewMockEngine(gomock.NewController(s.T())),
				IDGenerator:   idgen.NewSequential("x"),
				EventBus:      s.bus,
				SoloUsePolicy: "sometimes",
			},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			svc, err := game.NewOrchestrator(tc.cfg)
			s.Error(err)
			s.Nil(svc)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *OrchestratorTestSuite) TestStartNarratesArrival() {
	out, err := s.orchestrator.Start(s.ctx, &game.StartInput{WorldID: manorID, PlayerName: "Ada"})
	s.Require().NoError(err)

	s.Equal("session_1", out.SessionID)
	s.Equal("The Quiet Manor", out.Title)
	s.Require().Len(out.Arrival, 2)

	entered := out.Arrival[0]
	s.Equal(narration.ActionEnter, entered.Action)
	s.Equal([]string{"The front door thuds shut behind you. You are standing in a long, dusty hall."}, entered.Lines)
	s.True(entered.HasDelta(narration.DeltaRoomEntered, narration.ContainerPlayer))

	look := out.Arrival[1]
	s.Equal(narration.ActionLook, look.Action)
	s.Equal(narration.KindInfo, look.Kind)
	s.Contains(look.Text(), "An iron key lies on the flagstones.")
}

func (s *OrchestratorTestSuite) TestStartErrors() {
	s.Run("missing input", func() {
		_, err := s.orchestrator.Start(s.ctx, nil)
		s.True(errors.IsInvalidArgument(err))
	})
	s.Run("missing world ID", func() {
		_, err := s.orchestrator.Start(s.ctx, &game.StartInput{})
		s.True(errors.IsInvalidArgument(err))
	})
	s.Run("unknown world", func() {
		_, err := s.orchestrator.Start(s.ctx, &game.StartInput{WorldID: "castle"})
		s.True(errors.IsNotFound(err))
	})
	s.Run("invalid content", func() {
		_, err := s.repo.Put(s.ctx, &worlds.PutInput{
			ID:      "broken",
			Content: []byte("rooms:\n  - slug: hall\nplayer:\n  start_room: attic\n"),
		})
		s.Require().NoError(err)

		_, err = s.orchestrator.Start(s.ctx, &game.StartInput{WorldID: "broken"})
		s.Require().Error(err)
		s.Contains(errors.DefectCodes(err), errors.CodeUnknownReference)
	})
}

func (s *OrchestratorTestSuite) TestPlayThroughGate() {
	id := s.start()

	pickup := s.do(id, engine.VerbPickup, "key", "")
	s.Equal([]string{"You put the key into your bag."}, pickup.Lines)

	locked := s.do(id, engine.VerbMove, "gate", "")
	s.Equal(narration.KindRejected, locked.Kind)

	unlock := s.do(id, engine.VerbUseWith, "key", "gate")
	s.True(unlock.Succeeded())
	s.True(unlock.HasDelta(narration.DeltaUnlocked, "gate"))

	through := s.do(id, engine.VerbMove, "gate", "")
	s.True(through.HasDelta(narration.DeltaRoomEntered, narration.ContainerPlayer))
	s.Equal([]string{"Narrow steps lead down into a cold, dark cellar."}, through.Lines)
}

func (s *OrchestratorTestSuite) TestTranscriptRecordsEveryOutcome() {
	id := s.start()
	s.do(id, engine.VerbPickup, "key", "")
	s.do(id, engine.VerbPickup, "portrait", "")

	out, err := s.orchestrator.Transcript(s.ctx, &game.TranscriptInput{SessionID: id})
	s.Require().NoError(err)
	s.Require().Len(out.Entries, 4)

	for i, entry := range out.Entries {
		s.Equal(i+1, entry.Turn)
		s.Equal("Ada", entry.Actor)
	}

	s.Equal(narration.ActionEnter, out.Entries[0].Action)
	s.Equal("hall", out.Entries[0].Target)

	s.Equal(narration.ActionPickup, out.Entries[2].Action)
	s.Equal("key", out.Entries[2].Target)
	s.Require().Len(out.Entries[2].Deltas, 1)
	s.Equal(narration.DeltaMoved, out.Entries[2].Deltas[0].Type)

	s.Equal(narration.KindRejected, out.Entries[3].Kind)
	s.Equal([]string{"The portrait is bolted to the wall."}, out.Entries[3].Lines)
}

func (s *OrchestratorTestSuite) TestUnknownSlugIsNarrated() {
	id := s.start()

	out := s.do(id, engine.VerbPickup, "sword", "")
	s.Equal(narration.KindRejected, out.Kind)
	s.Equal([]string{"You don't see a sword here."}, out.Lines)
}

func (s *OrchestratorTestSuite) TestDoErrors() {
	id := s.start()

	testCases := []struct {
		name  string
		input *game.DoInput
		check func(error) bool
	}{
		{name: "nil input", check: errors.IsInvalidArgument},
		{name: "nil intent", input: &game.DoInput{SessionID: id}, check: errors.IsInvalidArgument},
		{
			name:  "missing session",
			input: &game.DoInput{Intent: &engine.Intent{Verb: engine.VerbLook}},
			check: errors.IsInvalidArgument,
		},
		{
			name:  "unknown session",
			input: &game.DoInput{SessionID: "nope", Intent: &engine.Intent{Verb: engine.VerbLook}},
			check: errors.IsNotFound,
		},
		{
			name:  "invalid intent",
			input: &game.DoInput{SessionID: id, Intent: &engine.Intent{Verb: engine.VerbUseWith, Object: "key"}},
			check: errors.IsInvalidArgument,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			out, err := s.orchestrator.Do(s.ctx, tc.input)
			s.Error(err)
			s.Nil(out)
			s.True(tc.check(err))
		})
	}
}

func (s *OrchestratorTestSuite) TestEndClosesSession() {
	id := s.start()
	s.do(id, engine.VerbInventory, "", "")

	out, err := s.orchestrator.End(s.ctx, &game.EndInput{SessionID: id})
	s.Require().NoError(err)
	s.Equal(3, out.Turns)

	_, err = s.orchestrator.Do(s.ctx, &game.DoInput{SessionID: id, Intent: &engine.Intent{Verb: engine.VerbLook}})
	s.True(errors.IsNotFound(err))

	_, err = s.orchestrator.End(s.ctx, &game.EndInput{SessionID: id})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestStartReplacesSession() {
	first := s.start()
	s.do(first, engine.VerbPickup, "key", "")

	second := s.start()
	s.NotEqual(first, second)

	_, err := s.orchestrator.Transcript(s.ctx, &game.TranscriptInput{SessionID: first})
	s.True(errors.IsNotFound(err))

	out, err := s.orchestrator.Transcript(s.ctx, &game.TranscriptInput{SessionID: second})
	s.Require().NoError(err)
	s.Len(out.Entries, 2)

	// fresh world: the key is back on the floor
	look := s.do(second, engine.VerbLook, "", "")
	s.Contains(look.Text(), "An iron key lies on the flagstones.")
}

func (s *OrchestratorTestSuite) TestOutcomesReachOtherSubscribers() {
	var seen []narration.Action
	ids := narration.SubscribeAll(s.bus, 10, func(_ context.Context, event *narration.OutcomeEvent) error {
		seen = append(seen, event.Outcome.Action)
		return nil
	})
	defer func() { s.NoError(narration.UnsubscribeAll(s.bus, ids)) }()

	id := s.start()
	s.do(id, engine.VerbExamine, "portrait", "")

	s.Equal([]narration.Action{narration.ActionEnter, narration.ActionLook, narration.ActionExamine}, seen)
}

type OrchestratorMockTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockRepo     *worldsmock.MockRepository
	mockEngine   *enginemock.MockEngine
	orchestrator game.Service
	ctx          context.Context
	manor        []byte
}

func TestOrchestratorMockSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorMockTestSuite))
}

func (s *OrchestratorMockTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = worldsmock.NewMockRepository(s.ctrl)
	s.mockEngine = enginemock.NewMockEngine(s.ctrl)
	s.ctx = context.Background()

	data, err := os.ReadFile(filepath.Join("..", "..", "content", "testdata", "manor.yaml"))
	s.Require().NoError(err)
	s.manor = data

	s.orchestrator, err = game.NewOrchestrator(&game.Config{
		WorldRepo:   s.mockRepo,
		Engine:      s.mockEngine,
		IDGenerator: idgen.NewSequential("session"),
		EventBus:    events.NewBus(),
	})
	s.Require().NoError(err)
}

func (s *OrchestratorMockTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorMockTestSuite) expectStart() string {
	s.mockRepo.EXPECT().
		Get(s.ctx, &worlds.GetInput{ID: manorID}).
		Return(&worlds.GetOutput{Data: &worlds.WorldData{ID: manorID, Content: s.manor}}, nil)
	s.mockEngine.EXPECT().
		EnterRoom(gomock.Any(), gomock.Any()).
		Return(narration.New(narration.ActionEnter, "hall").Say("In."), nil)
	s.mockEngine.EXPECT().
		LookRoom(gomock.Any()).
		Return(narration.New(narration.ActionLook, "hall").As(narration.KindInfo), nil)

	out, err := s.orchestrator.Start(s.ctx, &game.StartInput{WorldID: manorID})
	s.Require().NoError(err)
	return out.SessionID
}

func (s *OrchestratorMockTestSuite) TestStartRepositoryUnavailable() {
	s.mockRepo.EXPECT().
		Get(s.ctx, &worlds.GetInput{ID: manorID}).
		Return(nil, errors.Unavailablef("redis is down"))

	out, err := s.orchestrator.Start(s.ctx, &game.StartInput{WorldID: manorID})
	s.Error(err)
	s.Nil(out)
	s.Equal(errors.CodeUnavailable, errors.GetCode(err))
}

func (s *OrchestratorMockTestSuite) TestStartEngineFailure() {
	s.mockRepo.EXPECT().
		Get(s.ctx, &worlds.GetInput{ID: manorID}).
		Return(&worlds.GetOutput{Data: &worlds.WorldData{ID: manorID, Content: s.manor}}, nil)
	s.mockEngine.EXPECT().
		EnterRoom(gomock.Any(), gomock.Any()).
		Return(nil, errors.Internal("boom"))

	_, err := s.orchestrator.Start(s.ctx, &game.StartInput{WorldID: manorID})
	s.True(errors.IsInternal(err))
}

func (s *OrchestratorMockTestSuite) TestDoSurfacesContentDefect() {
	id := s.expectStart()

	intent := &engine.Intent{Verb: engine.VerbUse, Object: "whistle"}
	s.mockEngine.EXPECT().
		Apply(gomock.Any(), intent).
		Return(nil, errors.ContentDefect(errors.CodeSoloUseUndefined, "whistle", "no room for %s", "whistle"))

	out, err := s.orchestrator.Do(s.ctx, &game.DoInput{SessionID: id, Intent: intent})
	s.Nil(out)
	s.Require().Error(err)
	s.True(errors.IsContentDefect(err))
	s.Equal(errors.CodeSoloUseUndefined, errors.GetCode(err))
	s.Equal("whistle", errors.GetMeta(err)["slug"])

	// the session survives a defect
	s.mockEngine.EXPECT().
		Apply(gomock.Any(), gomock.Any()).
		Return(narration.New(narration.ActionInventory, "").As(narration.KindInfo), nil)

	_, err = s.orchestrator.Do(s.ctx, &game.DoInput{SessionID: id, Intent: &engine.Intent{Verb: engine.VerbInventory}})
	s.NoError(err)
}

func (s *OrchestratorMockTestSuite) TestDoPassesOtherErrorsThrough() {
	id := s.expectStart()

	s.mockEngine.EXPECT().
		Apply(gomock.Any(), gomock.Any()).
		Return(nil, errors.FailedPrecondition("player is not in a room"))

	_, err := s.orchestrator.Do(s.ctx, &game.DoInput{SessionID: id, Intent: &engine.Intent{Verb: engine.VerbLook}})
	s.True(errors.IsFailedPrecondition(err))
}
