package events

import (
	"context"
	"testing"
	"time"

	toolkit "github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"
)

type BusTestSuite struct {
	suite.Suite
	broadcaster *Broadcaster
	ctx         context.Context
}

func TestBusSuite(t *testing.T) {
	suite.Run(t, new(BusTestSuite))
}

func (s *BusTestSuite) SetupTest() {
	s.broadcaster = NewBroadcaster(4)
	s.ctx = context.Background()
}

// capture records every game event of eventType seen on the underlying bus
func (s *BusTestSuite) capture(eventType Type) *[]toolkit.Event {
	seen := &[]toolkit.Event{}
	s.broadcaster.bus.SubscribeFunc(string(eventType), 0, func(_ context.Context, event toolkit.Event) error {
		*seen = append(*seen, event)
		return nil
	})
	return seen
}

func (s *BusTestSuite) TestEquipEventCarriesCharacterAndItem() {
	seen := s.capture(TypeItemEquipped)

	at := time.Date(2026, time.March, 3, 12, 0, 0, 0, time.UTC)
	s.broadcaster.Publish(s.ctx, Event{Type: TypeItemEquipped, CharacterID: 3, ItemID: 7, At: at})

	s.Require().Len(*seen, 1)
	event := (*seen)[0]
	s.Equal("item.equipped", event.Type())
	s.Equal(EntityCharacter, event.Source().GetType())
	s.Equal("3", event.Source().GetID())
	s.Equal(EntityItem, event.Target().GetType())
	s.Equal("7", event.Target().GetID())

	characterID, ok := event.Context().Get(KeyCharacterID)
	s.True(ok)
	s.Equal(int64(3), characterID)
	itemID, ok := event.Context().Get(KeyItemID)
	s.True(ok)
	s.Equal(int64(7), itemID)
	recorded, ok := event.Context().Get(KeyAt)
	s.True(ok)
	s.Equal(at, recorded)
}

func (s *BusTestSuite) TestDropEventCarriesChance() {
	seen := s.capture(TypeDropAdded)

	chance := 0.35
	s.broadcaster.Publish(s.ctx, Event{Type: TypeDropAdded, MonsterID: 5, ItemID: 2, DropChance: &chance})

	s.Require().Len(*seen, 1)
	event := (*seen)[0]
	s.Equal(EntityMonster, event.Source().GetType())
	s.Equal("5", event.Source().GetID())
	s.Equal("2", event.Target().GetID())

	stored, ok := event.Context().Get(KeyDropChance)
	s.True(ok)
	s.InDelta(0.35, stored, 1e-9)
}

func (s *BusTestSuite) TestOwnerlessEventsHaveNoTarget() {
	itemSeen := s.capture(TypeItemDeleted)
	lootSeen := s.capture(TypeLootTableReplaced)

	s.broadcaster.Publish(s.ctx, Event{Type: TypeItemDeleted, ItemID: 9})
	s.broadcaster.Publish(s.ctx, Event{Type: TypeLootTableReplaced, MonsterID: 4, ItemIDs: []int64{2, 1}})

	s.Require().Len(*itemSeen, 1)
	s.Equal(EntityItem, (*itemSeen)[0].Source().GetType())
	s.Nil((*itemSeen)[0].Target())

	s.Require().Len(*lootSeen, 1)
	s.Equal(EntityMonster, (*lootSeen)[0].Source().GetType())
	s.Nil((*lootSeen)[0].Target())
	ids, ok := (*lootSeen)[0].Context().Get(KeyItemIDs)
	s.True(ok)
	s.Equal([]int64{2, 1}, ids)
}

func (s *BusTestSuite) TestSubscribersAreBusHandlers() {
	first, _ := s.broadcaster.Subscribe()
	s.broadcaster.Subscribe()

	published := 0
	for _, eventType := range Types {
		s.broadcaster.bus.SubscribeFunc(string(eventType), 1, func(context.Context, toolkit.Event) error {
			published++
			return nil
		})
	}

	s.broadcaster.Unsubscribe(first)
	s.Equal(1, s.broadcaster.SubscriberCount())

	s.broadcaster.Publish(s.ctx, Event{Type: TypeCharacterDeleted, CharacterID: 1})
	s.Equal(1, published)

	s.broadcaster.mu.Lock()
	defer s.broadcaster.mu.Unlock()
	for _, sub := range s.broadcaster.subscribers {
		s.Len(sub.busIDs, len(Types))
		s.Len(sub.ch, 1)
	}
}

func (s *BusTestSuite) TestRoundTripKeepsLists() {
	chance := 0.5
	event := Event{
		Type:        TypeEquipmentReplaced,
		CharacterID: 2,
		ItemIDs:     []int64{4, 6},
		DropChance:  &chance,
		At:          time.Unix(1_700_000_000, 0).UTC(),
	}

	decoded := fromGameEvent(toGameEvent(event))
	s.Equal(event, decoded)

	decoded.ItemIDs[0] = 99
	s.Equal(int64(4), event.ItemIDs[0])
}
