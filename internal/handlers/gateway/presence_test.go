package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/KirkDiggler/holidayhub/internal/notify"
	"github.com/KirkDiggler/holidayhub/internal/presence"
	presenceMocks "github.com/KirkDiggler/holidayhub/internal/presence/mocks"
	"github.com/alicebob/miniredis/v2"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPresenceOutageKeepsSocketAlive(t *testing.T) {
	ctrl := gomock.NewController(t)
	tracker := presenceMocks.NewMockTracker(ctrl)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	notifier, err := notify.NewRedis(&notify.Config{RedisClient: client})
	require.NoError(t, err)

	outage := errors.New("presence store unavailable")
	left := make(chan struct{})
	tracker.EXPECT().Join(gomock.Any(), gomock.Any()).Return(nil, outage)
	tracker.EXPECT().Roster(gomock.Any(), &presence.RosterInput{Game: "contest"}).Return(nil, outage)
	tracker.EXPECT().Leave(gomock.Any(), &presence.LeaveInput{Game: "contest", ParticipantID: "p1"}).
		DoAndReturn(func(ctx context.Context, input *presence.LeaveInput) error {
			close(left)
			return outage
		})

	gateway, err := New(&Config{Subscriber: notifier, Presence: tracker})
	require.NoError(t, err)

	server := httptest.NewServer(gateway.Handler())
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/contest?participant_id=p1"
	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, wsURL, nil)
	require.NoError(t, err)
	resp.Body.Close()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(3*time.Second)))

	var roster relayed
	require.NoError(t, conn.ReadJSON(&roster))
	assert.Equal(t, MessageTypePresence, roster.Type)
	assert.JSONEq(t, `[]`, string(roster.Data))

	require.NoError(t, notifier.Publish(ctx, &notify.Change{Table: notify.TableVotes, Op: notify.OpUpsert, Key: "3:p2"}))

	var message relayed
	require.NoError(t, conn.ReadJSON(&message))
	assert.Equal(t, MessageTypeChange, message.Type)

	var change notify.Change
	require.NoError(t, json.Unmarshal(message.Data, &change))
	assert.Equal(t, "3:p2", change.Key)

	require.NoError(t, conn.Close())

	select {
	case <-left:
	case <-ctx.Done():
		t.Fatal("presence leave was not attempted")
	}
}
