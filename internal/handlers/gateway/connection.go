package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/KirkDiggler/holidayhub/internal/models"
	"github.com/KirkDiggler/holidayhub/internal/notify"
	"github.com/KirkDiggler/holidayhub/internal/presence"
	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
	"github.com/rs/zerolog/log"
)

// MessageType tags what a relayed message carries
type MessageType string

const (
	// MessageTypeChange carries a notify.Change
	MessageTypeChange MessageType = "change"

	// MessageTypePresence carries the full roster
	MessageTypePresence MessageType = "presence"
)

// Message is the envelope written to clients
type Message struct {
	Type MessageType `json:"type"`
	Data any         `json:"data"`
}

type connection struct {
	server        *Server
	conn          *websocket.Conn
	game          notify.Game
	participantID string
}

// serveWebsocket joins presence, relays the game's changes until the
// client goes away, then leaves presence
func (s *Server) serveWebsocket(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	game := notify.Game(p.ByName("game"))
	if !game.IsValid() {
		http.Error(w, "unknown game", http.StatusNotFound)
		return
	}

	query := r.URL.Query()
	participantID := query.Get("participant_id")
	if participantID == "" {
		http.Error(w, "participant_id is required", http.StatusBadRequest)
		return
	}
	displayName := query.Get("name")
	if displayName == "" {
		displayName = participantID
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tables := notify.TablesFor(game)
	if !containsTable(tables, notify.TablePresence) {
		tables = append(tables, notify.TablePresence)
	}

	sub, err := s.subscriber.Subscribe(ctx, tables...)
	if err != nil {
		log.Error().Err(err).Str("game", string(game)).Msg("failed to subscribe for websocket")
		http.Error(w, "failed to subscribe", http.StatusBadGateway)
		return
	}
	defer sub.Close()

	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error().Err(err).Msg("failed to upgrade websocket connection")
		return
	}
	defer ws.Close()

	c := &connection{
		server:        s,
		conn:          ws,
		game:          game,
		participantID: participantID,
	}

	// Presence is best effort; a failure here does not drop the socket
	if _, err := s.presence.Join(ctx, &presence.JoinInput{
		Game:          string(game),
		ParticipantID: participantID,
		DisplayName:   displayName,
		Avatar:        query.Get("avatar"),
	}); err != nil {
		log.Warn().Err(err).Str("participant_id", participantID).Msg("failed to join presence")
	}
	defer func() {
		leaveCtx, leaveCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer leaveCancel()
		if err := s.presence.Leave(leaveCtx, &presence.LeaveInput{
			Game:          string(game),
			ParticipantID: participantID,
		}); err != nil {
			log.Warn().Err(err).Str("participant_id", participantID).Msg("failed to leave presence")
		}
	}()

	log.Info().Str("game", string(game)).Str("participant_id", participantID).Msg("websocket connected")

	go c.readPump(cancel)

	if err := c.writeLoop(ctx, sub, displayName); err != nil && !errors.Is(err, context.Canceled) {
		log.Debug().Err(err).Str("participant_id", participantID).Msg("websocket write loop ended")
	}

	log.Info().Str("game", string(game)).Str("participant_id", participantID).Msg("websocket disconnected")
}

// readPump discards client frames; it exists to notice the close and to
// process pongs
func (c *connection) readPump(cancel context.CancelFunc) {
	defer cancel()

	c.conn.SetReadLimit(c.server.maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(c.server.readTimeout))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(c.server.readTimeout))
	})

	for {
		if _, _, err := c.conn.NextReader(); err != nil {
			return
		}
		_ = c.conn.SetReadDeadline(time.Now().Add(c.server.readTimeout))
	}
}

// writeLoop is the only writer on the socket
func (c *connection) writeLoop(ctx context.Context, sub *notify.Subscription, displayName string) error {
	ticker := time.NewTicker(c.server.heartbeat)
	defer ticker.Stop()

	if err := c.sendRoster(ctx); err != nil {
		return err
	}

	changes := sub.C()
	for {
		select {
		case <-ctx.Done():
			_ = c.conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(c.server.writeTimeout))
			return ctx.Err()

		case change, ok := <-changes:
			if !ok {
				return errors.New("change subscription closed")
			}

			if change.Table == notify.TablePresence {
				if err := c.sendRoster(ctx); err != nil {
					return err
				}
				continue
			}

			if err := c.send(&Message{Type: MessageTypeChange, Data: change}); err != nil {
				return err
			}

		case <-ticker.C:
			c.renewPresence(ctx, displayName)

			_ = c.conn.SetWriteDeadline(time.Now().Add(c.server.writeTimeout))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return err
			}
		}
	}
}

func (c *connection) renewPresence(ctx context.Context, displayName string) {
	err := c.server.presence.Heartbeat(ctx, &presence.HeartbeatInput{
		Game:          string(c.game),
		ParticipantID: c.participantID,
	})
	if errors.Is(err, presence.ErrNotPresent) {
		// The lease lapsed, e.g. after a long GC pause or a store flush
		_, err = c.server.presence.Join(ctx, &presence.JoinInput{
			Game:          string(c.game),
			ParticipantID: c.participantID,
			DisplayName:   displayName,
		})
	}
	if err != nil && ctx.Err() == nil {
		log.Warn().Err(err).Str("participant_id", c.participantID).Msg("failed to renew presence")
	}
}

func (c *connection) sendRoster(ctx context.Context) error {
	members := []*models.PresenceMember{}
	roster, err := c.server.presence.Roster(ctx, &presence.RosterInput{Game: string(c.game)})
	if err != nil {
		log.Warn().Err(err).Str("game", string(c.game)).Msg("failed to read presence roster")
	} else {
		members = roster.Members
	}

	return c.send(&Message{Type: MessageTypePresence, Data: members})
}

func (c *connection) send(message *Message) error {
	payload, err := json.Marshal(message)
	if err != nil {
		return err
	}

	_ = c.conn.SetWriteDeadline(time.Now().Add(c.server.writeTimeout))
	return c.conn.WriteMessage(websocket.TextMessage, payload)
}

func containsTable(tables []notify.Table, table notify.Table) bool {
	for _, t := range tables {
		if t == table {
			return true
		}
	}
	return false
}
