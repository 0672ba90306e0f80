// Package benchmark measures derivation throughput per algorithm version.
//
// Every derivation is independent, so the driver simply fans calls out over
// a bounded set of goroutines. It shares nothing with the derivations but
// the latency samples.
package benchmark

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	mpw "github.com/masterpassword/mpw-go"
)

const (
	benchIdentity = "Robert Lee Mitchell"
	benchSecret   = "banana colored duckling"
	benchSite     = "masterpasswordapp.com"

	// DefaultIterations is the number of derivations per algorithm.
	DefaultIterations = 8
)

// Config controls a benchmark run. Zero fields take defaults.
type Config struct {
	Iterations int
	Workers    int
	Algorithms []mpw.Algorithm

	// derive replaces mpw.Derive in tests.
	derive func(secret []byte, identity string, site *mpw.Site, algorithm mpw.Algorithm) (string, error)
}

// Stats summarises one algorithm's run.
type Stats struct {
	Algorithm mpw.Algorithm
	Ops       int
	Failures  int
	Total     time.Duration
	P50       time.Duration
	P95       time.Duration
	Max       time.Duration
	OpsPerSec float64
}

// Run derives cfg.Iterations credentials for every algorithm, cfg.Workers at
// a time, and returns one Stats per algorithm in the order given.
func Run(ctx context.Context, cfg Config) ([]Stats, error) {
	if cfg.Iterations <= 0 {
		cfg.Iterations = DefaultIterations
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.GOMAXPROCS(0)
	}
	if len(cfg.Algorithms) == 0 {
		cfg.Algorithms = mpw.Algorithms()
	}
	if cfg.derive == nil {
		cfg.derive = mpw.Derive
	}

	site, err := mpw.NewSite(benchSite)
	if err != nil {
		return nil, err
	}

	out := make([]Stats, 0, len(cfg.Algorithms))
	for _, algorithm := range cfg.Algorithms {
		stats, err := runAlgorithm(ctx, cfg, site, algorithm)
		if err != nil {
			return out, err
		}
		out = append(out, stats)
	}
	return out, nil
}

func runAlgorithm(ctx context.Context, cfg Config, site *mpw.Site, algorithm mpw.Algorithm) (Stats, error) {
	var (
		mu        sync.Mutex
		failures  int
		latencies = make([]time.Duration, 0, cfg.Iterations)
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)

	start := time.Now()
	for i := 0; i < cfg.Iterations; i++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			t0 := time.Now()
			_, err := cfg.derive([]byte(benchSecret), benchIdentity, site, algorithm)
			d := time.Since(t0)

			mu.Lock()
			defer mu.Unlock()
			latencies = append(latencies, d)
			if err != nil {
				failures++
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Stats{}, err
	}
	if err := ctx.Err(); err != nil {
		return Stats{}, err
	}

	stats := computeStats(time.Since(start), latencies)
	stats.Algorithm = algorithm
	stats.Failures = failures
	return stats, nil
}

func computeStats(total time.Duration, samples []time.Duration) Stats {
	if len(samples) == 0 {
		return Stats{Total: total}
	}
	sort.Slice(samples, func(i, j int) bool { return samples[i] < samples[j] })
	return Stats{
		Ops:       len(samples),
		Total:     total,
		P50:       percentile(samples, 50),
		P95:       percentile(samples, 95),
		Max:       samples[len(samples)-1],
		OpsPerSec: float64(len(samples)) / total.Seconds(),
	}
}

func percentile(samples []time.Duration, p int) time.Duration {
	if len(samples) == 0 {
		return 0
	}
	if p <= 0 {
		return samples[0]
	}
	if p >= 100 {
		return samples[len(samples)-1]
	}
	idx := (len(samples) - 1) * p / 100
	return samples[idx]
}

// Print writes one line per Stats.
func Print(w io.Writer, stats []Stats) error {
	for _, s := range stats {
		_, err := fmt.Fprintf(w, "algorithm %-4s: ops=%d failures=%d total=%s ops/sec=%.2f p50=%s p95=%s max=%s\n",
			s.Algorithm,
			s.Ops,
			s.Failures,
			s.Total.Round(time.Millisecond),
			s.OpsPerSec,
			s.P50.Round(time.Microsecond),
			s.P95.Round(time.Microsecond),
			s.Max.Round(time.Microsecond),
		)
		if err != nil {
			return err
		}
	}
	return nil
}
