package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/huynhanx03/go-vector/pkg/datastructs/vector"
	"github.com/huynhanx03/go-vector/pkg/settings"
	"github.com/huynhanx03/go-vector/pkg/utils"
)

var benchSeed uint64

func init() {
	cmd := newBenchCmd()
	cmd.Flags().Uint64Var(&benchSeed, "seed", 1, "Seed for insert and remove positions")
	rootCmd.AddCommand(cmd)
}

func newBenchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bench",
		Short: "Run append, insert and remove workloads in parallel",
		Long: `The bench command runs one workload per configured worker. Each worker
owns an independent array: it appends vector.elements values, inserts
vector.inserts values and removes vector.removes values at random positions.
Timings are logged per worker and summarised on stdout.

Example:
  vectorctl bench --config bench.yaml
  vectorctl bench --seed 42`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			log, err := newLogger(cfg.Logger)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			results, err := runBench(cmd.Context(), cfg.Vector, benchSeed, log)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, r := range results {
				fmt.Fprintf(out, "worker=%d ops=%d length=%d capacity=%d elapsed=%s\n",
					r.Worker, r.Ops, r.Length, r.Capacity, r.Elapsed)
			}
			return nil
		},
	}
}

// benchResult is the outcome of one worker.
type benchResult struct {
	Worker   int
	Ops      int
	Length   int
	Capacity int
	Elapsed  time.Duration
}

// runBench runs cfg.Workers workloads concurrently. The first failure cancels
// the remaining workers.
func runBench(ctx context.Context, cfg settings.Vector, seed uint64, log *zap.Logger) ([]benchResult, error) {
	ops, ok := utils.AddOverflowSafe(cfg.Elements, cfg.Inserts)
	if ok {
		ops, ok = utils.AddOverflowSafe(ops, cfg.Removes)
	}
	if !ok {
		return nil, errors.New("bench: operation count overflows")
	}

	results := make([]benchResult, cfg.Workers)
	g, ctx := errgroup.WithContext(ctx)
	for w := range cfg.Workers {
		g.Go(func() error {
			wlog := log.With(zap.Int("worker", w))
			rng := rand.New(rand.NewPCG(seed, uint64(w)))
			start := time.Now()

			arr, err := benchWorkload(ctx, cfg, rng, wlog)
			if err != nil {
				return errors.Wrapf(err, "worker %d", w)
			}
			results[w] = benchResult{
				Worker:   w,
				Ops:      ops,
				Length:   arr.Len(),
				Capacity: arr.Cap(),
				Elapsed:  time.Since(start),
			}
			wlog.Info("bench: worker done",
				zap.Int("ops", ops),
				zap.Int("length", arr.Len()),
				zap.Int("capacity", arr.Cap()),
				zap.Int("bytes", arr.Allocated()),
				zap.Duration("elapsed", results[w].Elapsed),
			)
			arr.Destroy()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// checkEvery is how many operations run between cancellation checks.
const checkEvery = 1024

func benchWorkload(ctx context.Context, cfg settings.Vector, rng *rand.Rand, log *zap.Logger) (*vector.Array[int], error) {
	arr := vector.New[int](
		vector.WithLogger(log),
		vector.WithMemoryLimit(cfg.MemoryLimit),
	)
	for i := range cfg.Elements {
		if i%checkEvery == 0 && ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if err := arr.PushBack(i); err != nil {
			return nil, err
		}
	}
	for i := range cfg.Inserts {
		if i%checkEvery == 0 && ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if _, err := arr.InsertAt(rng.IntN(arr.Len()+1), -i); err != nil {
			return nil, err
		}
	}
	for i := range cfg.Removes {
		if i%checkEvery == 0 && ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if arr.IsEmpty() {
			break
		}
		if _, err := arr.RemoveAt(rng.IntN(arr.Len())); err != nil {
			return nil, err
		}
	}
	return arr, nil
}
