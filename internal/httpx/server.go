// Package httpx exposes the engine over HTTP and WebSocket. It is the
// stand-in for the UI collaborators that consume the engine's FEN strings,
// square lists and move notations.
package httpx

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"os"
	"sync"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/BezouiStudio/chessmastery/internal/chess"
	"github.com/BezouiStudio/chessmastery/internal/engine"
	"github.com/BezouiStudio/chessmastery/internal/errors"
	"github.com/BezouiStudio/chessmastery/internal/game"
	"github.com/BezouiStudio/chessmastery/internal/policy"
)

const maxJSONBodyBytes int64 = 1 << 20

// session is one game lineage behind its own lock. Distinct sessions never
// share state, so independent games run fully in parallel.
type session struct {
	mu       sync.Mutex
	game     *game.Game
	vsEngine bool
	pick     *policy.Random
	subs     map[*websocket.Conn]struct{}
}

// Server routes HTTP traffic to game sessions.
type Server struct {
	mu       sync.Mutex
	sessions map[string]*session
	nextID   int
	seed     func() int64
	upgrader websocket.Upgrader
}

// NewServer builds a Server. seed supplies the random source for each
// engine-opponent session; pass nil for time-independent tests.
func NewServer(seed func() int64) *Server {
	if seed == nil {
		seed = func() int64 { return 1 }
	}
	return &Server{
		sessions: make(map[string]*session),
		nextID:   1,
		seed:     seed,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// Handler returns the routed handler with request logging, ready for
// http.Server.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/api/game", s.handleNewGame).Methods(http.MethodPost)
	r.HandleFunc("/api/game/{id}", s.handleState).Methods(http.MethodGet)
	r.HandleFunc("/api/game/{id}/moves", s.handleMoves).Methods(http.MethodGet)
	r.HandleFunc("/api/game/{id}/move", s.handleMove).Methods(http.MethodPost)
	r.HandleFunc("/api/game/{id}/ws", s.handleWS)
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return handlers.LoggingHandler(os.Stdout, r)
}

// statePayload is the JSON view of a session the UI collaborators consume.
type statePayload struct {
	ID       string   `json:"id"`
	FEN      string   `json:"fen"`
	ToMove   string   `json:"toMove"`
	Status   string   `json:"status"`
	LastMove string   `json:"lastMove,omitempty"`
	Log      []string `json:"log,omitempty"`
}

type newGameRequest struct {
	FEN      string `json:"fen,omitempty"`
	VsEngine bool   `json:"vsEngine,omitempty"`
}

type moveRequest struct {
	Move string `json:"move"`
}

func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameRequest
	body := http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil && !stderrors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	var g *game.Game
	var err error
	if req.FEN == "" {
		g = game.New()
	} else {
		g, err = game.NewFromFEN(req.FEN)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
	}

	sess := &session{
		game:     g,
		vsEngine: req.VsEngine,
		subs:     make(map[*websocket.Conn]struct{}),
	}
	if req.VsEngine {
		sess.pick = policy.NewRandom(rand.New(rand.NewSource(s.seed())))
	}

	s.mu.Lock()
	id := fmt.Sprintf("g%d", s.nextID)
	s.nextID++
	s.sessions[id] = sess
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, sess.state(id))
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	sess, ok := s.lookup(id)
	if !ok {
		writeError(w, http.StatusNotFound, errors.ErrGameNotFound)
		return
	}

	sess.mu.Lock()
	payload := sess.state(id)
	sess.mu.Unlock()
	writeJSON(w, http.StatusOK, payload)
}

func (s *Server) handleMoves(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	sess, ok := s.lookup(id)
	if !ok {
		writeError(w, http.StatusNotFound, errors.ErrGameNotFound)
		return
	}

	sq, err := engine.ParseSquare(r.URL.Query().Get("square"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	sess.mu.Lock()
	targets := sess.game.LegalTargets(sq)
	sess.mu.Unlock()

	out := make([]string, 0, len(targets))
	for _, t := range targets {
		out = append(out, t.String())
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"square":  sq.String(),
		"targets": out,
	})
}

func (s *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	sess, ok := s.lookup(id)
	if !ok {
		writeError(w, http.StatusNotFound, errors.ErrGameNotFound)
		return
	}

	var req moveRequest
	body := http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	sess.mu.Lock()
	payload, err := sess.play(id, req.Move)
	sess.mu.Unlock()
	if err != nil {
		writeError(w, statusForError(err), err)
		return
	}

	sess.broadcast(payload)
	writeJSON(w, http.StatusOK, payload)
}

// play applies the submitted move and, for engine-opponent sessions, the
// random reply. Callers hold the session lock.
func (sess *session) play(id, moveText string) (statePayload, error) {
	_, _, err := sess.game.PlayCoordinate(moveText)
	if err != nil {
		return statePayload{}, err
	}

	if sess.vsEngine && sess.game.Status() == chess.Ongoing {
		if reply, ok := sess.pick.Pick(sess.game.Board()); ok {
			if _, _, err := sess.game.Play(reply.From, reply.To, chess.Empty); err != nil {
				return statePayload{}, err
			}
		}
	}

	return sess.state(id), nil
}

// state builds the JSON view. Callers hold the session lock except at
// creation, before the session is published.
func (sess *session) state(id string) statePayload {
	log := sess.game.Log()
	payload := statePayload{
		ID:     id,
		FEN:    sess.game.FEN(),
		ToMove: sess.game.ToMove().String(),
		Status: sess.game.Status().String(),
		Log:    log,
	}
	if len(log) > 0 {
		payload.LastMove = log[len(log)-1]
	}
	return payload
}

func (s *Server) lookup(id string) (*session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	return sess, ok
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

// statusForError maps engine sentinels to HTTP statuses.
func statusForError(err error) int {
	switch {
	case stderrors.Is(err, errors.ErrGameNotFound):
		return http.StatusNotFound
	case stderrors.Is(err, errors.ErrIllegalMove),
		stderrors.Is(err, errors.ErrGameOver),
		stderrors.Is(err, errors.ErrInvalidMove),
		stderrors.Is(err, errors.ErrInvalidSquare):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
