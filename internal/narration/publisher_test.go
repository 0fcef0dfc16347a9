package narration_test

import (
	"context"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/adventure-engine/internal/entities"
	"github.com/KirkDiggler/adventure-engine/internal/errors"
	"github.com/KirkDiggler/adventure-engine/internal/narration"
)

type PublisherTestSuite struct {
	suite.Suite
	ctx       context.Context
	bus       events.EventBus
	publisher *narration.Publisher
}

func TestPublisherSuite(t *testing.T) {
	suite.Run(t, new(PublisherTestSuite))
}

func (s *PublisherTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.bus = events.NewBus()

	publisher, err := narration.NewPublisher(&narration.PublisherConfig{EventBus: s.bus})
	s.Require().NoError(err)
	s.publisher = publisher
}

func (s *PublisherTestSuite) TestNewPublisherRequiresBus() {
	_, err := narration.NewPublisher(&narration.PublisherConfig{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = narration.NewPublisher(nil)
	s.Require().Error(err)
}

func (s *PublisherTestSuite) TestPublishDeliversOutcome() {
	player := entities.NewPlayer("ada")
	key := entities.NewObject(entities.ObjectConfig{Slug: "key", CanPickup: true})

	var received []*narration.OutcomeEvent
	ids := narration.SubscribeAll(s.bus, 100, func(_ context.Context, event *narration.OutcomeEvent) error {
		received = append(received, event)
		return nil
	})
	s.Len(ids, len(narration.Actions))

	out := narration.New(narration.ActionPickup, "key").Say("Taken.")
	s.Require().NoError(s.publisher.Publish(s.ctx, player, key, out))

	s.Require().Len(received, 1)
	s.Same(out, received[0].Outcome)
	s.Equal("adventure.pickup", received[0].Type())
}

func (s *PublisherTestSuite) TestUnsubscribeAll() {
	player := entities.NewPlayer("ada")

	count := 0
	ids := narration.SubscribeAll(s.bus, 100, func(_ context.Context, _ *narration.OutcomeEvent) error {
		count++
		return nil
	})
	s.Require().NoError(narration.UnsubscribeAll(s.bus, ids))

	out := narration.New(narration.ActionLook, "").As(narration.KindInfo)
	s.Require().NoError(s.publisher.Publish(s.ctx, player, nil, out))
	s.Equal(0, count)
}

func (s *PublisherTestSuite) TestPublishRequiresOutcome() {
	err := s.publisher.Publish(s.ctx, entities.NewPlayer("ada"), nil, nil)
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}
