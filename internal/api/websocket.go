package api

import (
	"net/http"
	"time"

	"github.com/UnknownOlympus/compass/internal/display"
	"github.com/gorilla/websocket"
)

const writeWait = 5 * time.Second

var upgrader = websocket.Upgrader{
	CheckOrigin: func(_ *http.Request) bool { return true },
}

// handleStream sends the current display text on connect and every later write until
// the client disconnects.
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.WarnContext(ctx, "ws upgrade error", "error", err)
		return
	}

	// Subscribe before reading the current text so no write falls in between.
	updates, unsubscribe := s.target.Subscribe()
	s.metrics.Subscribers.Inc()
	defer func() {
		unsubscribe()
		s.metrics.Subscribers.Dec()
		_ = conn.Close()
	}()

	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	if err = writeDisplay(conn, s.target.Text()); err != nil {
		return
	}

	for {
		select {
		case <-closed:
			return
		case msg, ok := <-updates:
			if !ok {
				return
			}
			if err = writeDisplay(conn, msg); err != nil {
				s.log.DebugContext(ctx, "ws write error", "error", err)
				return
			}
		}
	}
}

func writeDisplay(conn *websocket.Conn, text string) error {
	if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return conn.WriteJSON(displayResponse{ID: display.TargetID, Text: text})
}
