// Package ws hosts one game session over websocket: a connection joins as
// a player on open, submits ACT messages, and receives the full session
// snapshot after every accepted action. All session access is serialized
// behind one mutex, so at most one action is in flight at a time.
package ws

import (
	"encoding/json"
	"log"
	"net/http"
	"path/filepath"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"brassworks/internal/game"
	"brassworks/internal/journal"
	"brassworks/internal/protocol"
)

// Recorder receives session lifecycle notifications (operational indexing,
// not game state).
type Recorder interface {
	PlayerJoined(playerID int)
	PlayerLeft(playerID int, score, money int)
}

type Server struct {
	log *log.Logger

	mu      sync.Mutex
	session *game.Session
	conns   map[*websocket.Conn]int

	jrnl *journal.Writer // optional
	rec  Recorder        // optional

	actSchema *jsonschema.Schema
	upgrader  websocket.Upgrader
}

// NewServer compiles the act schema from schemaDir and wraps the session.
// jrnl and rec may be nil.
func NewServer(session *game.Session, schemaDir string, jrnl *journal.Writer, rec Recorder, logger *log.Logger) (*Server, error) {
	schema, err := jsonschema.Compile(filepath.Join(schemaDir, "act.schema.json"))
	if err != nil {
		return nil, err
	}
	return &Server{
		log:       logger,
		session:   session,
		conns:     make(map[*websocket.Conn]int),
		jrnl:      jrnl,
		rec:       rec,
		actSchema: schema,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  16 * 1024,
			WriteBufferSize: 16 * 1024,
			CheckOrigin:     func(r *http.Request) bool { return true }, // dev default
		},
	}, nil
}

func (s *Server) Handler() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		conn, err := s.upgrader.Upgrade(rw, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		playerID := s.join(conn)
		defer s.leave(conn, playerID)

		for {
			_ = conn.SetReadDeadline(time.Now().Add(5 * time.Minute))
			_, msg, err := conn.ReadMessage()
			if err != nil {
				return
			}
			s.handleMessage(conn, playerID, msg)
		}
	}
}

func (s *Server) join(conn *websocket.Conn) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.session.AddPlayer()
	s.conns[conn] = p.ID
	s.log.Printf("player %d joined", p.ID)

	s.journalEntry(journal.Entry{Kind: journal.KindJoin, Player: p.ID})
	if s.rec != nil {
		s.rec.PlayerJoined(p.ID)
	}

	s.writeLocked(conn, protocol.WelcomeMsg{
		Type:            protocol.TypeWelcome,
		ProtocolVersion: protocol.Version,
		PlayerID:        p.ID,
	})
	s.broadcastStateLocked()
	return p.ID
}

func (s *Server) leave(conn *websocket.Conn, playerID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.conns[conn]; !ok {
		return
	}
	delete(s.conns, conn)
	var score, money int
	if p := s.session.Player(playerID); p != nil {
		score, money = p.Score, p.Money
	}
	s.session.RemovePlayer(playerID)
	s.log.Printf("player %d left", playerID)

	s.journalEntry(journal.Entry{Kind: journal.KindLeave, Player: playerID})
	if s.rec != nil {
		s.rec.PlayerLeft(playerID, score, money)
	}
	s.broadcastStateLocked()
}

func (s *Server) handleMessage(conn *websocket.Conn, playerID int, msg []byte) {
	base, err := protocol.DecodeBase(msg)
	if err != nil || base.Type != protocol.TypeAct {
		s.reject(conn, "expected ACT")
		return
	}

	// Schema-validate before the message reaches the resolver.
	var doc any
	if err := json.Unmarshal(msg, &doc); err != nil {
		s.reject(conn, "bad json")
		return
	}
	if err := s.actSchema.Validate(doc); err != nil {
		s.reject(conn, "bad request")
		return
	}

	var act protocol.ActMsg
	if err := json.Unmarshal(msg, &act); err != nil {
		s.reject(conn, "bad request")
		return
	}
	action, err := actionFromMsg(act)
	if err != nil {
		s.reject(conn, err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ok := s.session.HandleAction(playerID, action)
	if ok {
		s.journalEntry(journal.Entry{
			Kind:   journal.KindAct,
			Player: playerID,
			Action: act.Action,
			City:   act.City,
			City2:  act.City2,
			Tile:   act.Tile,
			Tile2:  act.Tile2,
			Slot:   act.SlotIndex(),
		})
		s.broadcastStateLocked()
	}
	s.writeLocked(conn, protocol.ResultMsg{Type: protocol.TypeResult, OK: ok})
}

// actionFromMsg converts the wire form. An unknown tile string is a client
// bug and errors; an unknown action string maps to ActionUnknown, which the
// resolver rejects.
func actionFromMsg(m protocol.ActMsg) (game.Action, error) {
	tile, err := game.ParseTileKind(m.Tile)
	if err != nil {
		return game.Action{}, err
	}
	tile2, err := game.ParseTileKind(m.Tile2)
	if err != nil {
		return game.Action{}, err
	}
	return game.Action{
		Kind:  game.ParseActionKind(m.Action),
		City:  m.City,
		City2: m.City2,
		Tile:  tile,
		Tile2: tile2,
		Slot:  m.SlotIndex(),
	}, nil
}

func (s *Server) reject(conn *websocket.Conn, reason string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writeLocked(conn, protocol.ResultMsg{Type: protocol.TypeResult, OK: false, Reason: reason})
}

func (s *Server) journalEntry(e journal.Entry) {
	if s.jrnl == nil {
		return
	}
	if err := s.jrnl.Append(e); err != nil {
		s.log.Printf("journal append: %v", err)
	}
}

func (s *Server) broadcastStateLocked() {
	b, err := json.Marshal(s.session.Snapshot())
	if err != nil {
		s.log.Printf("marshal state: %v", err)
		return
	}
	for conn := range s.conns {
		_ = conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
		if err := conn.WriteMessage(websocket.TextMessage, b); err != nil {
			s.log.Printf("broadcast: %v", err)
		}
	}
}

func (s *Server) writeLocked(conn *websocket.Conn, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		return
	}
	_ = conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
	_ = conn.WriteMessage(websocket.TextMessage, b)
}
