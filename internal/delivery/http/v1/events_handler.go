package v1

import (
	"net/http"
	"strings"

	"go-swipehire-backend/internal/delivery/http/response"
	"go-swipehire-backend/internal/domain"
	"go-swipehire-backend/internal/relay"
	"go-swipehire-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Origin is already enforced by the CORS middleware on the upgrade
	// request; the handshake itself accepts any origin that got this far.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type EventsHandler struct {
	hub *relay.Hub
}

// NewEventsHandler registers the live-update websocket endpoint
func NewEventsHandler(r *gin.RouterGroup, hub *relay.Hub) {
	handler := &EventsHandler{hub: hub}
	r.GET("/events", handler.Stream)
}

// Stream godoc
// @Summary      Subscribe to live row changes
// @Description  Websocket feed of profile/match/message changes visible to the caller
// @Tags         events
// @Param        tables  query  string  false  "Comma-separated tables (default all)"
// @Success      101
// @Router       /events [get]
// @Security     BearerAuth
func (h *EventsHandler) Stream(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	tables := []string{relay.TableProfiles, relay.TableMatches, relay.TableMessages}
	if raw := c.Query("tables"); raw != "" {
		tables = tables[:0]
		for _, t := range strings.Split(raw, ",") {
			switch strings.TrimSpace(t) {
			case relay.TableProfiles, relay.TableMatches, relay.TableMessages:
				tables = append(tables, strings.TrimSpace(t))
			}
		}
	}
	if len(tables) == 0 {
		response.Error(c, http.StatusBadRequest, "No valid tables requested", nil)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Log.Warn("Websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	// Buffered so a slow client sheds events instead of blocking the
	// publisher; the frontend re-fetches on every event anyway.
	events := make(chan relay.Event, 64)

	subs := make([]*relay.Subscription, 0, len(tables))
	for _, table := range tables {
		subs = append(subs, h.hub.Subscribe(table, func(ev relay.Event) {
			if !visible(userID, ev) {
				return
			}
			select {
			case events <- ev:
			default:
			}
		}))
	}
	defer func() {
		for _, sub := range subs {
			sub.Cancel()
		}
	}()

	// Reader only exists to observe the close; clients never send.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-done:
			return
		case ev := <-events:
			if err := conn.WriteJSON(ev); err != nil {
				logger.Log.Debug("Websocket write error", "error", err)
				return
			}
		}
	}
}

// visible gates events by the subscriber's access: profile changes are
// public, match and message changes only reach their participants. It
// runs inline on the publisher's goroutine, so it must stay an
// in-memory check; events carry the participant ids they need.
func visible(userID string, ev relay.Event) bool {
	switch ev.Table {
	case relay.TableProfiles:
		return true
	case relay.TableMatches:
		if m, ok := ev.Payload.(*domain.Match); ok {
			return m.Participant(userID)
		}
	case relay.TableMessages:
		if e, ok := ev.Payload.(*domain.MessageEvent); ok {
			return e.Participant(userID)
		}
	}
	return false
}
