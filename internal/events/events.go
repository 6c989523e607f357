// Package events fans catalog changes out to live subscribers. Changes travel
// over an rpg-toolkit event bus as game events whose source and target are the
// catalog records involved.
package events

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	toolkit "github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/pkg/idgen"
)

// Type names a catalog change
type Type string

// Event types
const (
	TypeItemEquipped      Type = "item.equipped"
	TypeEquipmentReplaced Type = "equipment.replaced"
	TypeDropAdded         Type = "drop.added"
	TypeLootTableReplaced Type = "loot_table.replaced"
	TypeCharacterDeleted  Type = "character.deleted"
	TypeMonsterDeleted    Type = "monster.deleted"
	TypeItemDeleted       Type = "item.deleted"
)

// Types lists every event type a subscriber receives
var Types = []Type{
	TypeItemEquipped,
	TypeEquipmentReplaced,
	TypeDropAdded,
	TypeLootTableReplaced,
	TypeCharacterDeleted,
	TypeMonsterDeleted,
	TypeItemDeleted,
}

const defaultSubscriberQueue = 64

// Event describes one committed catalog write
type Event struct {
	Type        Type      `json:"type"`
	CharacterID int64     `json:"character_id,omitempty"`
	MonsterID   int64     `json:"monster_id,omitempty"`
	ItemID      int64     `json:"item_id,omitempty"`
	ItemIDs     []int64   `json:"item_ids,omitempty"`
	DropChance  *float64  `json:"drop_chance,omitempty"`
	At          time.Time `json:"at"`
}

// Publisher accepts events after a write committed.
// Publish must not block and never fails the caller.
type Publisher interface {
	Publish(ctx context.Context, event Event)
}

// Publish sends the event when p is non-nil
func Publish(ctx context.Context, p Publisher, event Event) {
	if p == nil {
		return
	}
	p.Publish(ctx, event)
}

// Broadcaster delivers every published event to all subscribers
type Broadcaster struct {
	bus *toolkit.Bus

	mu          sync.Mutex
	subscribers map[string]*subscriber
	queueSize   int
	ids         idgen.Generator
}

// NewBroadcaster creates a broadcaster whose subscribers buffer queueSize
// events. A non-positive size uses the default.
func NewBroadcaster(queueSize int) *Broadcaster {
	if queueSize <= 0 {
		queueSize = defaultSubscriberQueue
	}
	return &Broadcaster{
		bus:         toolkit.NewBus(),
		subscribers: make(map[string]*subscriber),
		queueSize:   queueSize,
		ids:         idgen.NewUUID("sub"),
	}
}

// Subscribe registers a new subscriber and returns its id and channel.
// The channel is closed by Unsubscribe.
func (b *Broadcaster) Subscribe() (string, <-chan Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	sub := &subscriber{
		id: b.ids.Generate(),
		ch: make(chan Event, b.queueSize),
	}
	for _, eventType := range Types {
		sub.busIDs = append(sub.busIDs, b.bus.SubscribeFunc(string(eventType), 0, sub.handle))
	}
	b.subscribers[sub.id] = sub
	return sub.id, sub.ch
}

// Unsubscribe removes the subscriber and closes its channel
func (b *Broadcaster) Unsubscribe(id string) {
	b.mu.Lock()
	sub, ok := b.subscribers[id]
	delete(b.subscribers, id)
	b.mu.Unlock()

	if ok {
		b.detach(sub)
	}
}

// Publish delivers the event to every subscriber with room in its queue.
// Full queues drop the event.
func (b *Broadcaster) Publish(ctx context.Context, event Event) {
	if err := b.bus.Publish(ctx, toGameEvent(event)); err != nil {
		slog.WarnContext(ctx, "event delivery failed",
			"event_type", string(event.Type), "error", err)
	}
}

// SubscriberCount returns the number of active subscribers
func (b *Broadcaster) SubscriberCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subscribers)
}

// Close unsubscribes everyone
func (b *Broadcaster) Close() {
	b.mu.Lock()
	subs := make([]*subscriber, 0, len(b.subscribers))
	for id, sub := range b.subscribers {
		subs = append(subs, sub)
		delete(b.subscribers, id)
	}
	b.mu.Unlock()

	for _, sub := range subs {
		b.detach(sub)
	}
}

func (b *Broadcaster) detach(sub *subscriber) {
	for _, busID := range sub.busIDs {
		if err := b.bus.Unsubscribe(busID); err != nil {
			slog.Debug("bus subscription already gone", "subscriber_id", sub.id, "error", err)
		}
	}
	sub.close()
}

// subscriber owns one buffered feed. The bus may still hold a copy of its
// handlers after close, so sends check the closed flag under the lock.
type subscriber struct {
	id     string
	busIDs []string

	mu     sync.Mutex
	ch     chan Event
	closed bool
}

func (s *subscriber) handle(ctx context.Context, gameEvent toolkit.Event) error {
	event := fromGameEvent(gameEvent)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	select {
	case s.ch <- event:
	default:
		slog.DebugContext(ctx, "event dropped for slow subscriber",
			"subscriber_id", s.id, "event_type", gameEvent.Type())
	}
	return nil
}

func (s *subscriber) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.closed = true
		close(s.ch)
	}
}

// toGameEvent also carries the catalog fields in the event context, so bus
// handlers never need the Event struct
func toGameEvent(event Event) *toolkit.GameEvent {
	gameEvent := toolkit.NewGameEvent(string(event.Type), event.source(), event.target())

	data := gameEvent.Context()
	if event.CharacterID != 0 {
		data.Set(KeyCharacterID, event.CharacterID)
	}
	if event.MonsterID != 0 {
		data.Set(KeyMonsterID, event.MonsterID)
	}
	if event.ItemID != 0 {
		data.Set(KeyItemID, event.ItemID)
	}
	if event.ItemIDs != nil {
		data.Set(KeyItemIDs, slices.Clone(event.ItemIDs))
	}
	if event.DropChance != nil {
		data.Set(KeyDropChance, *event.DropChance)
	}
	data.Set(KeyAt, event.At)
	return gameEvent
}

func fromGameEvent(gameEvent toolkit.Event) Event {
	data := gameEvent.Context()
	event := Event{
		Type:        Type(gameEvent.Type()),
		CharacterID: contextValue[int64](data, KeyCharacterID),
		MonsterID:   contextValue[int64](data, KeyMonsterID),
		ItemID:      contextValue[int64](data, KeyItemID),
		At:          gameEvent.Timestamp(),
	}
	if itemIDs, ok := data.Get(KeyItemIDs); ok {
		event.ItemIDs = slices.Clone(itemIDs.([]int64))
	}
	if chance, ok := data.Get(KeyDropChance); ok {
		value := chance.(float64)
		event.DropChance = &value
	}
	if at, ok := data.Get(KeyAt); ok {
		event.At = at.(time.Time)
	}
	return event
}

func contextValue[T any](data toolkit.Context, key string) T {
	var zero T
	raw, ok := data.Get(key)
	if !ok {
		return zero
	}
	value, ok := raw.(T)
	if !ok {
		return zero
	}
	return value
}
