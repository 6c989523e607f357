package v1_test

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/events"
	v1 "github.com/Lindor-Limani/pwc-world-of-warcraft/internal/handlers/rest/v1"
	catalogmock "github.com/Lindor-Limani/pwc-world-of-warcraft/internal/orchestrators/catalog/mock"
	equipmock "github.com/Lindor-Limani/pwc-world-of-warcraft/internal/orchestrators/equip/mock"
	lootmock "github.com/Lindor-Limani/pwc-world-of-warcraft/internal/orchestrators/loot/mock"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/testutils"
)

type EventFeedTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	broadcaster *events.Broadcaster
	server      *httptest.Server
}

func TestEventFeedSuite(t *testing.T) {
	suite.Run(t, new(EventFeedTestSuite))
}

func (s *EventFeedTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.broadcaster = events.NewBroadcaster(4)

	handler, err := v1.NewHandler(&v1.HandlerConfig{
		CatalogService: catalogmock.NewMockService(s.ctrl),
		EquipService:   equipmock.NewMockService(s.ctrl),
		LootService:    lootmock.NewMockService(s.ctrl),
		Events:         s.broadcaster,
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	s.Require().NoError(err)
	s.server = httptest.NewServer(handler.Routes())
}

func (s *EventFeedTestSuite) TearDownTest() {
	s.server.Close()
	s.ctrl.Finish()
}

func (s *EventFeedTestSuite) dial() *websocket.Conn {
	url := "ws" + strings.TrimPrefix(s.server.URL, "http") + "/events"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	s.Require().NoError(err)
	s.Require().NoError(resp.Body.Close())
	return conn
}

func (s *EventFeedTestSuite) TestStreamsPublishedEvents() {
	conn := s.dial()
	defer conn.Close()

	s.Require().Eventually(func() bool {
		return s.broadcaster.SubscriberCount() == 1
	}, time.Second, 10*time.Millisecond)

	chance := 0.25
	s.broadcaster.Publish(context.Background(), events.Event{
		Type:       events.TypeDropAdded,
		MonsterID:  5,
		ItemID:     1,
		DropChance: &chance,
		At:         testutils.FixedTime,
	})

	s.Require().NoError(conn.SetReadDeadline(time.Now().Add(2 * time.Second)))
	var got events.Event
	s.Require().NoError(conn.ReadJSON(&got))
	s.Equal(events.TypeDropAdded, got.Type)
	s.Equal(int64(5), got.MonsterID)
	s.Require().NotNil(got.DropChance)
	s.Equal(0.25, *got.DropChance)
	s.True(testutils.FixedTime.Equal(got.At))
}

func (s *EventFeedTestSuite) TestDisconnectUnsubscribes() {
	conn := s.dial()
	s.Require().Eventually(func() bool {
		return s.broadcaster.SubscriberCount() == 1
	}, time.Second, 10*time.Millisecond)

	s.Require().NoError(conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")))
	s.Require().NoError(conn.Close())

	s.Eventually(func() bool {
		return s.broadcaster.SubscriberCount() == 0
	}, time.Second, 10*time.Millisecond)
}

func (s *EventFeedTestSuite) TestBroadcasterCloseEndsStream() {
	conn := s.dial()
	defer conn.Close()
	s.Require().Eventually(func() bool {
		return s.broadcaster.SubscriberCount() == 1
	}, time.Second, 10*time.Millisecond)

	s.broadcaster.Close()

	s.Require().NoError(conn.SetReadDeadline(time.Now().Add(2 * time.Second)))
	_, _, err := conn.ReadMessage()
	s.True(websocket.IsCloseError(err, websocket.CloseGoingAway), "got %v", err)
}
