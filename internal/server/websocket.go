package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/muurk/numfield/internal/logging"
	"github.com/muurk/numfield/internal/protocol"
)

const (
	// FieldPath is the WebSocket endpoint for field sessions
	FieldPath = "/field"

	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period (must be less than pongWait)
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 8192
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Widgets are embedded in arbitrary pages.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// handleField upgrades the request and runs a field session until the peer
// disconnects. The "profile" query parameter selects the session's initial
// options.
func (s *Server) handleField(w http.ResponseWriter, r *http.Request) {
	remoteAddr := r.RemoteAddr

	opts, err := s.sessionOptions(r.URL.Query().Get("profile"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	id := s.nextSessionID()
	sess, err := newSession(id, opts)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// The upgrader has already answered with an HTTP error.
		logging.Warn("WebSocket upgrade failed",
			zap.String("remote_addr", remoteAddr),
			zap.Error(err),
		)
		return
	}

	s.track(id, conn)
	defer s.untrack(id)

	logging.LogConnection(remoteAddr, "websocket_upgraded")
	logging.Info("Session opened",
		zap.String("session", id),
		zap.String("remote_addr", remoteAddr),
		zap.String("locale", sess.ctrl.Format().Locale),
		zap.String("currency", sess.ctrl.Format().Currency),
	)

	if err := s.runSession(conn, remoteAddr, sess); err != nil {
		logging.Warn("Session ended with error",
			zap.String("session", id),
			zap.Error(err),
		)
	}
	logging.LogConnection(remoteAddr, "websocket_closed")
}

// runSession is the read loop of one connection.
func (s *Server) runSession(conn *websocket.Conn, remoteAddr string, sess *session) error {
	defer func() { _ = conn.Close() }()

	conn.SetReadLimit(maxMessageSize)
	if err := conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		return err
	}
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	done := make(chan struct{})
	defer close(done)
	go keepAlive(conn, done)

	if err := writeMessages(conn, remoteAddr, sess.greeting()); err != nil {
		return err
	}

	for {
		msgType, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				return fmt.Errorf("read failed: %w", err)
			}
			return nil
		}

		if msgType != websocket.TextMessage {
			if err := writeMessages(conn, remoteAddr, []*protocol.Message{
				protocol.NewError(fmt.Errorf("only text frames are accepted")),
			}); err != nil {
				return err
			}
			continue
		}

		logging.LogWebSocketMessage(remoteAddr, "received", data)

		ev, err := protocol.DecodeEvent(data)
		if err != nil {
			logging.Warn("Rejected client frame",
				zap.String("session", sess.id),
				zap.Error(err),
			)
			if err := writeMessages(conn, remoteAddr, []*protocol.Message{protocol.NewError(err)}); err != nil {
				return err
			}
			continue
		}

		if err := writeMessages(conn, remoteAddr, sess.handle(ev)); err != nil {
			return err
		}
	}
}

// keepAlive pings the peer until done is closed. WriteControl may run
// concurrently with the read loop's writes.
func keepAlive(conn *websocket.Conn, done <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		}
	}
}

func writeMessages(conn *websocket.Conn, remoteAddr string, msgs []*protocol.Message) error {
	for _, m := range msgs {
		data, err := m.Encode()
		if err != nil {
			return fmt.Errorf("encode %s message: %w", m.Type, err)
		}
		if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
			return err
		}
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			return fmt.Errorf("write failed: %w", err)
		}
		logging.LogWebSocketMessage(remoteAddr, "sent", data)
	}
	return nil
}
