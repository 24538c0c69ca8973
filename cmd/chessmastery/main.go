// chessmastery is the command-line front end to the rules engine: interactive
// play against the random policy, parallel self-play batches, position
// inspection, and the HTTP/WebSocket API server.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/BezouiStudio/chessmastery/internal/chess"
	"github.com/BezouiStudio/chessmastery/internal/engine"
	"github.com/BezouiStudio/chessmastery/internal/game"
	"github.com/BezouiStudio/chessmastery/internal/httpx"
	"github.com/BezouiStudio/chessmastery/internal/policy"
	"github.com/BezouiStudio/chessmastery/internal/worker"
)

const programVersion = "0.1.0"

var (
	version = flag.Bool("version", false, "print version and exit")

	fenFlag  = flag.String("fen", "", "starting position in FEN (default: initial position)")
	seedFlag = flag.Int64("seed", 0, "random seed (default: time-based)")

	selfplayRun     = flag.Int("selfplay", 0, "play N random-vs-random games and summarize")
	selfplayDraw    = flag.Bool("selfplay.draw", false, "print final boards in selfplay mode")
	selfplayWorkers = flag.Int("selfplay.workers", runtime.NumCPU(), "worker count in selfplay mode")

	serveAddr = flag.String("serve", "", "serve the HTTP API on this address (e.g. :8080)")

	showFlag = flag.Bool("show", false, "print the position and its status, then exit")
)

func main() {
	flag.Parse()

	if *version {
		fmt.Printf("chessmastery version %s\n", programVersion)
		os.Exit(0)
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var err error
	switch {
	case *serveAddr != "":
		err = runServe(*serveAddr, seed)
	case *selfplayRun > 0:
		err = runSelfplay(*selfplayRun, *selfplayWorkers, seed, *fenFlag, *selfplayDraw)
	case *showFlag:
		err = runShow(*fenFlag)
	default:
		err = runPlay(*fenFlag, seed)
	}
	if err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

// runShow prints a position, its legal-move count and its status.
func runShow(fen string) error {
	if fen == "" {
		fen = engine.InitialFEN
	}
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		return err
	}
	drawBoard(os.Stdout, board)
	fmt.Printf("%s to move, %d legal moves, %s\n",
		board.ToMove, len(engine.AllLegalMoves(board)), engine.Status(board))
	return nil
}

// runServe starts the HTTP API.
func runServe(addr string, seed int64) error {
	src := rand.New(rand.NewSource(seed))
	server := httpx.NewServer(func() int64 { return src.Int63() })
	log.Printf("HTTP listening on %s", addr)
	return http.ListenAndServe(addr, server.Handler())
}

// runSelfplay plays out n independent games on a worker pool.
func runSelfplay(n, workers int, seed int64, fen string, draw bool) error {
	pool := worker.NewPool(workers, n)
	pool.Start()
	for i := 0; i < n; i++ {
		pool.Submit(worker.SelfPlayJob{Index: i, Seed: seed + int64(i), FEN: fen})
	}
	pool.Close()

	counts := map[chess.GameStatus]int{}
	unfinished := 0
	for res := range pool.Results() {
		if res.Err != nil {
			return res.Err
		}
		if res.Status == chess.Ongoing {
			unfinished++
		} else {
			counts[res.Status]++
		}
		if draw {
			board, err := engine.NewBoardFromFEN(res.FinalFEN)
			if err != nil {
				return err
			}
			drawBoard(os.Stdout, board)
			fmt.Printf("game %d: %s after %d plies\n", res.Index, res.Status, res.Ply)
		}
	}
	fmt.Printf("%d games: %d checkmate, %d stalemate, %d unfinished\n",
		n, counts[chess.Checkmate], counts[chess.Stalemate], unfinished)
	return nil
}

// runPlay drives an interactive game: the user enters coordinate moves and
// the random policy answers.
func runPlay(fen string, seed int64) error {
	var g *game.Game
	var err error
	if fen == "" {
		g = game.New()
	} else {
		g, err = game.NewFromFEN(fen)
		if err != nil {
			return err
		}
	}

	pick := policy.NewRandom(rand.New(rand.NewSource(seed)))
	scanner := bufio.NewScanner(os.Stdin)

	for {
		drawBoard(os.Stdout, g.Board())
		if status := g.Status(); status != chess.Ongoing {
			fmt.Printf("%s\n", status)
			return nil
		}

		fmt.Printf("%s to move (e.g. e2e4, or 'quit'): ", g.ToMove())
		if !scanner.Scan() {
			return scanner.Err()
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "quit" {
			return nil
		}

		_, notation, err := g.PlayCoordinate(input)
		if err != nil {
			fmt.Printf("rejected: %v\n", err)
			continue
		}
		fmt.Printf("played %s\n", notation)

		if g.Status() != chess.Ongoing {
			continue
		}
		reply, ok := pick.Pick(g.Board())
		if !ok {
			continue
		}
		_, notation, err = g.Play(reply.From, reply.To, chess.Empty)
		if err != nil {
			return err
		}
		fmt.Printf("engine plays %s\n", notation)
	}
}
