package simulate

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/svcgraph/partitioner/core"
)

// ErrCanceled is returned by Run when ctx is canceled before every node
// finishes.
var ErrCanceled = errors.New("simulate: canceled before completion")

// Options configures the worker pool. Workers bounds how many nodes may
// run concurrently; Scale compresses each node's millisecond runtime so a
// simulation finishes quickly in tests (Scale<=0 defaults to 1).
type Options struct {
	Workers int
	Scale   float64
	Logger  zerolog.Logger
}

// Report is the outcome of one simulated run: each node's simulated finish
// time, in milliseconds since the run started, and the overall makespan.
type Report struct {
	Finish   map[int]time.Duration
	Makespan time.Duration
}

// Run executes every node of g concurrently, honoring the tree's
// predecessor dependencies (a node cannot start until its predecessor has
// finished) and the worker cap in opt.Workers. Nodes with no unfinished
// dependency run as soon as a worker slot is free.
//
// This never runs inside the DP core — it exists only to let callers
// observe how a partitioning behaves under bounded concurrency.
func Run(ctx context.Context, g *core.ServiceGraph, opt Options) (Report, error) {
	workers := opt.Workers
	if workers < 1 {
		workers = 1
	}
	scale := opt.Scale
	if scale <= 0 {
		scale = 1
	}

	nodes := g.Nodes()
	remaining := make(map[int]bool, len(nodes))
	for _, id := range nodes {
		remaining[id] = true
	}

	var mu sync.Mutex
	finish := make(map[int]time.Duration, len(nodes))
	finish[core.PLATFORM] = 0

	ready := make(chan int, len(nodes))
	done := make(chan int, len(nodes))
	sem := make(chan struct{}, workers)

	pump := func() {
		mu.Lock()
		defer mu.Unlock()
		for id := range remaining {
			pred, _ := g.Predecessor(id)
			if _, ok := finish[pred]; ok {
				delete(remaining, id)
				ready <- id
			}
		}
	}
	pump()

	var wg sync.WaitGroup
	total := len(nodes)
	finished := 0

	for finished < total {
		select {
		case <-ctx.Done():
			wg.Wait()
			return Report{}, ErrCanceled
		case id := <-ready:
			wg.Add(1)
			sem <- struct{}{}
			go func(id int) {
				defer wg.Done()
				defer func() { <-sem }()

				pred, _ := g.Predecessor(id)
				mu.Lock()
				predFinish := finish[pred]
				mu.Unlock()

				runtime := time.Duration(float64(g.Runtime(id))*scale) * time.Millisecond
				opt.Logger.Debug().Int("node", id).Dur("runtime", runtime).Msg("node started")

				select {
				case <-ctx.Done():
					return
				case <-time.After(runtime):
				}

				mu.Lock()
				finish[id] = predFinish + runtime
				mu.Unlock()
				opt.Logger.Debug().Int("node", id).Msg("node finished")
				done <- id
			}(id)
		case <-done:
			finished++
			pump()
		}
	}
	wg.Wait()
	delete(finish, core.PLATFORM)

	var makespan time.Duration
	for _, f := range finish {
		if f > makespan {
			makespan = f
		}
	}
	return Report{Finish: finish, Makespan: makespan}, nil
}
