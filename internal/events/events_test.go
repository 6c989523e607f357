package events_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/events"
)

type BroadcasterTestSuite struct {
	suite.Suite
	broadcaster *events.Broadcaster
	ctx         context.Context
}

func TestBroadcasterSuite(t *testing.T) {
	suite.Run(t, new(BroadcasterTestSuite))
}

func (s *BroadcasterTestSuite) SetupTest() {
	s.broadcaster = events.NewBroadcaster(2)
	s.ctx = context.Background()
}

func (s *BroadcasterTestSuite) TestPublishReachesEverySubscriber() {
	_, first := s.broadcaster.Subscribe()
	_, second := s.broadcaster.Subscribe()
	s.Equal(2, s.broadcaster.SubscriberCount())

	event := events.Event{Type: events.TypeItemEquipped, CharacterID: 1, ItemID: 2, At: time.Unix(0, 0)}
	s.broadcaster.Publish(s.ctx, event)

	s.Equal(event, <-first)
	s.Equal(event, <-second)
}

func (s *BroadcasterTestSuite) TestFullQueueDropsInsteadOfBlocking() {
	_, ch := s.broadcaster.Subscribe()

	for i := int64(1); i <= 5; i++ {
		s.broadcaster.Publish(s.ctx, events.Event{Type: events.TypeItemDeleted, ItemID: i})
	}

	s.Len(ch, 2)
	s.Equal(int64(1), (<-ch).ItemID)
	s.Equal(int64(2), (<-ch).ItemID)
}

func (s *BroadcasterTestSuite) TestUnsubscribeClosesChannel() {
	id, ch := s.broadcaster.Subscribe()
	s.broadcaster.Unsubscribe(id)

	_, open := <-ch
	s.False(open)
	s.Zero(s.broadcaster.SubscriberCount())

	// unknown ids are ignored
	s.broadcaster.Unsubscribe(id)
}

func (s *BroadcasterTestSuite) TestCloseDropsAllSubscribers() {
	_, a := s.broadcaster.Subscribe()
	_, b := s.broadcaster.Subscribe()
	s.broadcaster.Close()

	_, openA := <-a
	_, openB := <-b
	s.False(openA)
	s.False(openB)
	s.Zero(s.broadcaster.SubscriberCount())
}

func (s *BroadcasterTestSuite) TestPublishWithNilPublisher() {
	s.NotPanics(func() {
		events.Publish(s.ctx, nil, events.Event{Type: events.TypeMonsterDeleted})
	})
}
