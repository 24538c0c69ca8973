package httpx

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/BezouiStudio/chessmastery/internal/errors"
)

// wsCommand is the single message shape clients send: a coordinate move.
type wsCommand struct {
	Move string `json:"move"`
}

// wsError is pushed back on a rejected command; the connection stays open.
type wsError struct {
	Error string `json:"error"`
}

// handleWS upgrades the connection and serves live play on one session:
// every accepted move (from any connection or the REST endpoint) is pushed
// to all subscribers of the game.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	sess, ok := s.lookup(id)
	if !ok {
		writeError(w, http.StatusNotFound, errors.ErrGameNotFound)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	sess.subscribe(conn)
	defer sess.unsubscribe(conn)

	// Send the current state on connect.
	sess.mu.Lock()
	state := sess.state(id)
	sess.mu.Unlock()
	if err := conn.WriteJSON(state); err != nil {
		return
	}

	for {
		var cmd wsCommand
		if err := conn.ReadJSON(&cmd); err != nil {
			return
		}

		sess.mu.Lock()
		payload, err := sess.play(id, cmd.Move)
		sess.mu.Unlock()
		if err != nil {
			if werr := conn.WriteJSON(wsError{Error: err.Error()}); werr != nil {
				return
			}
			continue
		}
		sess.broadcast(payload)
	}
}

// subscribe registers a connection for state pushes.
func (sess *session) subscribe(conn *websocket.Conn) {
	sess.mu.Lock()
	sess.subs[conn] = struct{}{}
	sess.mu.Unlock()
}

// unsubscribe removes a connection and closes it.
func (sess *session) unsubscribe(conn *websocket.Conn) {
	sess.mu.Lock()
	delete(sess.subs, conn)
	sess.mu.Unlock()
	_ = conn.Close()
}

// broadcast pushes a state payload to every subscriber of the game.
func (sess *session) broadcast(payload statePayload) {
	sess.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(sess.subs))
	for conn := range sess.subs {
		conns = append(conns, conn)
	}
	sess.mu.Unlock()

	for _, conn := range conns {
		_ = conn.WriteJSON(payload)
	}
}
