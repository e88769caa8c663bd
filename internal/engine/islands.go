package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/demetriusdemiurge/placer/internal/model"
)

// migrantMsg is an owned copy of one island's best individual at a
// migration point, carried over a channel to the next island in the ring.
type migrantMsg struct {
	score float64
	genes Chromosome
}

// RunIslandGA runs the island-model GA coordinator (spec.md §4.7): if
// islands <= 1 it runs a single GA with migration disabled; otherwise it
// spawns `islands` workers in a unidirectional ring, each sending its
// current best to its outbound channel and non-blockingly draining its
// inbound channel at every migration point. It blocks until every worker
// finishes or ctx is canceled, then returns the globally best chromosome.
//
// Channels are buffered (islands*4 slots) and an outbound send that finds
// its channel full is skipped, so a send never blocks; a worker that finds
// nothing waiting on its inbound channel simply skips that round.
//
// If any worker panics, the coordinator cancels the remaining workers and
// reports ErrWorkerFailure once they have joined; migrants still buffered
// in the channels are dropped with them rather than read.
func RunIslandGA(ctx context.Context, d model.Design, field model.PositionField, compOrder []string, cfg GAConfig, islands int) (Chromosome, float64, error) {
	if islands <= 1 {
		cfg.MigrationInterval = 0
		cancel := ctxDoneChan(ctx)
		genes, score, err := runIslandSafe(d, field, compOrder, cfg, cancel, nil)
		return genes, score, err
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, abort := context.WithCancel(ctx)
	defer abort()

	queues := make([]chan migrantMsg, islands)
	for i := range queues {
		queues[i] = make(chan migrantMsg, islands*4)
	}

	results := make([]struct {
		genes Chromosome
		score float64
	}, islands)
	failures := make([]error, islands)

	var wg sync.WaitGroup
	wg.Add(islands)
	for i := 0; i < islands; i++ {
		go func(i int) {
			defer wg.Done()

			outbound := queues[i]
			inbound := queues[(i-1+islands)%islands]

			islandCfg := cfg
			islandCfg.Seed = cfg.Seed + 100*int64(i)

			hook := &migrantHook{
				send: func(score float64, genes Chromosome) {
					select {
					case outbound <- migrantMsg{score: score, genes: genes}:
					default:
						// Outbound channel is momentarily full; skip this
						// round rather than block — per spec.md §5 a send
						// must never block indefinitely.
					}
				},
				receive: func() ([]individual, bool) {
					var migrants []individual
					for {
						select {
						case msg := <-inbound:
							migrants = append(migrants, individual{genes: msg.genes, fitness: msg.score})
						default:
							return migrants, len(migrants) > 0
						}
					}
				},
			}

			cancel := ctxDoneChan(ctx)
			genes, score, err := runIslandSafe(d, field, compOrder, islandCfg, cancel, hook)
			results[i].genes = genes
			results[i].score = score
			failures[i] = err
			if err != nil {
				abort()
			}
		}(i)
	}
	wg.Wait()

	for i, err := range failures {
		if err != nil {
			return nil, 0, fmt.Errorf("island %d: %w", i, err)
		}
	}

	bestIdx := 0
	for i := range results {
		if results[i].score < results[bestIdx].score {
			bestIdx = i
		}
	}
	return results[bestIdx].genes, results[bestIdx].score, nil
}

// runIslandSafe wraps runIsland with panic recovery so a single worker's
// abnormal termination surfaces as model.ErrWorkerFailure instead of
// crashing the whole process (spec.md §7).
func runIslandSafe(d model.Design, field model.PositionField, compOrder []string, cfg GAConfig, cancel <-chan struct{}, hook *migrantHook) (genes Chromosome, score float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", model.ErrWorkerFailure, r)
		}
	}()
	genes, score = runIsland(d, field, compOrder, cfg, cancel, hook)
	return genes, score, nil
}

// ctxDoneChan adapts a possibly-nil context into the cancellation channel
// runIsland expects, so callers that don't need cancellation can pass
// context.Background() without special-casing anything.
func ctxDoneChan(ctx context.Context) <-chan struct{} {
	if ctx == nil {
		return nil
	}
	return ctx.Done()
}
