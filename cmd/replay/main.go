// Command replay rebuilds a session from a journal file by driving every
// recorded event through a fresh engine, then prints the final state. A
// journaled action that the fresh engine rejects means the journal and the
// engine disagree, which is always a bug worth failing loudly on.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"brassworks/internal/game"
	"brassworks/internal/journal"
	"brassworks/internal/mapdef"
	"brassworks/internal/tuning"
)

func main() {
	var (
		journalPath = flag.String("journal", "", "path to .journal.zst")
		configDir   = flag.String("configs", "./configs", "config directory")
		mapPath     = flag.String("map", "", "path to map yaml (default: <configs>/map_birmingham.yaml)")
		tuningPath  = flag.String("tuning", "", "path to tuning.yaml (default: <configs>/tuning.yaml)")
		quiet       = flag.Bool("quiet", false, "suppress the final state dump")
	)
	flag.Parse()

	if *journalPath == "" {
		fmt.Fprintln(os.Stderr, "missing -journal")
		os.Exit(2)
	}

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
		fmt.Fprintln(os.Stderr, "load map:", err)
		os.Exit(1)
	}
	board, err := def.Build()
	if err != nil {
		fmt.Fprintln(os.Stderr, "build board:", err)
		os.Exit(1)
	}

	tune, err := tuning.Load(tp)
	if err != nil {
		if os.IsNotExist(err) {
			tune = tuning.Defaults()
		} else {
			fmt.Fprintln(os.Stderr, "load tuning:", err)
			os.Exit(1)
		}
	}

	entries, err := journal.ReadAll(*journalPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "read journal:", err)
		os.Exit(1)
	}

	session := game.NewSession(board, tune.Config())
	var joins, leaves, acts int
	for _, e := range entries {
		switch e.Kind {
		case journal.KindJoin:
			p := session.AddPlayer()
			if p.ID != e.Player {
				fmt.Fprintf(os.Stderr, "seq %d: join assigned player %d, journal says %d\n", e.Seq, p.ID, e.Player)
				os.Exit(1)
			}
			joins++
		case journal.KindLeave:
			session.RemovePlayer(e.Player)
			leaves++
		case journal.KindAct:
			act, err := actionFromEntry(e)
			if err != nil {
				fmt.Fprintf(os.Stderr, "seq %d: %v\n", e.Seq, err)
				os.Exit(1)
			}
			if !session.HandleAction(e.Player, act) {
				fmt.Fprintf(os.Stderr, "seq %d: journaled action %q rejected on replay\n", e.Seq, e.Action)
				os.Exit(1)
			}
			acts++
		default:
			fmt.Fprintf(os.Stderr, "seq %d: unknown entry kind %q\n", e.Seq, e.Kind)
			os.Exit(1)
		}
	}

	fmt.Printf("replay ok: entries=%d joins=%d leaves=%d acts=%d\n", len(entries), joins, leaves, acts)
	if !*quiet {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(session.Snapshot()); err != nil {
			fmt.Fprintln(os.Stderr, "encode state:", err)
			os.Exit(1)
		}
	}
}

func actionFromEntry(e journal.Entry) (game.Action, error) {
	tile, err := game.ParseTileKind(e.Tile)
	if err != nil {
		return game.Action{}, err
	}
	tile2, err := game.ParseTileKind(e.Tile2)
	if err != nil {
		return game.Action{}, err
	}
	return game.Action{
		Kind:  game.ParseActionKind(e.Action),
		City:  e.City,
		City2: e.City2,
		Tile:  tile,
		Tile2: tile2,
		Slot:  e.Slot,
	}, nil
}
