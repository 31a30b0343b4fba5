package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"brassworks/internal/game"
	"brassworks/internal/journal"
	"brassworks/internal/mapdef"
	"brassworks/internal/persistence/sessiondb"
	"brassworks/internal/transport/ws"
	"brassworks/internal/tuning"
)

func main() {
	var (
		addr       = flag.String("addr", ":8080", "http listen address")
		configDir  = flag.String("configs", "./configs", "config directory")
		schemaDir  = flag.String("schemas", "./schemas", "wire schema directory")
		dataDir    = flag.String("data", "./data", "runtime data directory")
		mapPath    = flag.String("map", "", "path to map yaml (default: <configs>/map_birmingham.yaml)")
		tuningPath = flag.String("tuning", "", "path to tuning.yaml (default: <configs>/tuning.yaml)")
		disableDB  = flag.Bool("disable_db", false, "disable the session index db")
		noJournal  = flag.Bool("no_journal", false, "disable the action journal")
	)
	flag.Parse()

	logger := log.New(os.Stdout, "[server] ", log.LstdFlags|log.Lmicroseconds)

	mp := strings.TrimSpace(*mapPath)
	if mp == "" {
		mp = filepath.Join(*configDir, "map_birmingham.yaml")
	}
	tp := strings.TrimSpace(*tuningPath)
	if tp == "" {
		tp = filepath.Join(*configDir, "tuning.yaml")
	}

	def, err := mapdef.Load(mp)
	if err != nil {
		logger.Fatalf("load map: %v", err)
	}
	board, err := def.Build()
	if err != nil {
		logger.Fatalf("build board: %v", err)
	}

	tune, err := tuning.Load(tp)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Printf("tuning not found (%s); using defaults", tp)
			tune = tuning.Defaults()
		} else {
			logger.Fatalf("load tuning: %v", err)
		}
	}

	session := game.NewSession(board, tune.Config())
	sessionID := fmt.Sprintf("%s-%d", def.Name, time.Now().UTC().Unix())
	_ = os.MkdirAll(*dataDir, 0o755)

	// Append-only action journal; cmd/replay rebuilds a session from it.
	var jrnl *journal.Writer
	journalPath := ""
	if !*noJournal {
		journalPath = filepath.Join(*dataDir, sessionID+".journal.zst")
		jrnl, err = journal.Create(journalPath)
		if err != nil {
			logger.Fatalf("create journal: %v", err)
		}
		defer jrnl.Close()
	}

	// Optional: session index (does not affect the rules engine).
	var rec ws.Recorder
	if !*disableDB {
		db, err := sessiondb.Open(filepath.Join(*dataDir, "sessions.db"))
		if err != nil {
			logger.Fatalf("open session db: %v", err)
		}
		defer db.Close()
		if err := db.SessionStarted(sessionID, journalPath); err != nil {
			logger.Printf("session db: %v", err)
		}
		defer func() {
			if err := db.SessionEnded(sessionID); err != nil {
				logger.Printf("session db: %v", err)
			}
		}()
		rec = dbRecorder{db: db, sessionID: sessionID, log: logger}
	}

	srv, err := ws.NewServer(session, *schemaDir, jrnl, rec, logger)
	if err != nil {
		logger.Fatalf("ws server: %v", err)
	}

	ctx, cancel := signalContext()
	defer cancel()

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(rw http.ResponseWriter, r *http.Request) {
		rw.WriteHeader(200)
		_, _ = rw.Write([]byte("ok"))
	})
	mux.HandleFunc("/v1/ws", srv.Handler())

	hs := &http.Server{
		Addr:              *addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel2()
		_ = hs.Shutdown(ctx2)
	}()

	logger.Printf("session %s on map %s, listening on %s", sessionID, def.Name, *addr)
	if err := hs.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("ListenAndServe: %v", err)
	}
}

// dbRecorder adapts the session db to the transport's Recorder. Index
// failures are logged and never surface into the session.
type dbRecorder struct {
	db        *sessiondb.DB
	sessionID string
	log       *log.Logger
}

func (r dbRecorder) PlayerJoined(playerID int) {
	if err := r.db.PlayerJoined(r.sessionID, playerID); err != nil {
		r.log.Printf("session db: player joined: %v", err)
	}
}

func (r dbRecorder) PlayerLeft(playerID int, score, money int) {
	if err := r.db.PlayerLeft(r.sessionID, playerID, score, money); err != nil {
		r.log.Printf("session db: player left: %v", err)
	}
}

func signalContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	ch := make(chan os.Signal, 2)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-ch
		cancel()
	}()
	return ctx, cancel
}
