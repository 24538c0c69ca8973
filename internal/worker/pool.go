// Package worker provides a worker pool for running independent games in
// parallel. Distinct games share no state, so self-play batches scale with
// worker count without locking.
package worker

import (
	"math/rand"
	"sync"
	"sync/atomic"

	"github.com/BezouiStudio/chessmastery/internal/chess"
	"github.com/BezouiStudio/chessmastery/internal/game"
	"github.com/BezouiStudio/chessmastery/internal/policy"
)

// SelfPlayJob describes one game to play out with the random policy.
type SelfPlayJob struct {
	Index  int    // Original index for tracking
	Seed   int64  // Seed for the game's own random source
	FEN    string // Starting position; empty means the initial position
	MaxPly int    // Ply cap before the game is abandoned as unfinished
}

// SelfPlayResult is the outcome of one completed self-play game.
type SelfPlayResult struct {
	Index    int
	Status   chess.GameStatus
	FinalFEN string
	Moves    []string
	Ply      int
	Err      error
}

// Pool manages a pool of workers playing out self-play jobs.
type Pool struct {
	numWorkers int
	bufferSize int
	workChan   chan SelfPlayJob
	resultChan chan SelfPlayResult
	wg         sync.WaitGroup
	stopFlag   int32 // Atomic flag for early termination
}

// NewPool creates a pool with the given worker count and channel buffer.
func NewPool(numWorkers, bufferSize int) *Pool {
	if numWorkers < 1 {
		numWorkers = 1
	}
	if bufferSize < 1 {
		bufferSize = 1
	}
	return &Pool{
		numWorkers: numWorkers,
		bufferSize: bufferSize,
		workChan:   make(chan SelfPlayJob, bufferSize),
		resultChan: make(chan SelfPlayResult, bufferSize),
	}
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker plays out jobs from the work channel until it is closed.
func (p *Pool) worker() {
	defer p.wg.Done()

	for job := range p.workChan {
		if p.IsStopped() {
			continue // Drain channel without processing
		}
		p.resultChan <- playOut(job)
	}
}

// playOut drives one game with the random policy until it is terminal or
// the ply cap is reached. Each game owns its own random source.
func playOut(job SelfPlayJob) SelfPlayResult {
	var g *game.Game
	var err error
	if job.FEN == "" {
		g = game.New()
	} else {
		g, err = game.NewFromFEN(job.FEN)
		if err != nil {
			return SelfPlayResult{Index: job.Index, Err: err}
		}
	}

	pick := policy.NewRandom(rand.New(rand.NewSource(job.Seed)))
	maxPly := job.MaxPly
	if maxPly <= 0 {
		maxPly = 400
	}

	for g.Ply() < maxPly {
		move, ok := pick.Pick(g.Board())
		if !ok {
			break
		}
		if _, _, err := g.Play(move.From, move.To, chess.Empty); err != nil {
			return SelfPlayResult{Index: job.Index, Err: err}
		}
	}

	return SelfPlayResult{
		Index:    job.Index,
		Status:   g.Status(),
		FinalFEN: g.FEN(),
		Moves:    g.Log(),
		Ply:      g.Ply(),
	}
}

// Submit submits a job for processing.
// This may block if the work channel buffer is full.
func (p *Pool) Submit(job SelfPlayJob) {
	p.workChan <- job
}

// Stop signals workers to stop processing new jobs.
// Jobs already in the channel will be drained but not played.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the work channel and waits for all workers to finish.
// After calling Close, the result channel will be closed when all workers are done.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel for reading completed games.
func (p *Pool) Results() <-chan SelfPlayResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}
