package warmup

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/baditaflorin/go_password_strength/internal/adapters/wordlist"
	"github.com/baditaflorin/go_password_strength/internal/ports"
)

// WarmupConfig defines configuration for warming up the system
type WarmupConfig struct {
	// Number of concurrent warmup routines to run
	Concurrency int
	// Number of scorer iterations per routine
	Iterations int
	// Warmup duration (0 means no time limit)
	Duration time.Duration
	// Whether to perform GC after warmup
	ForceGC bool
}

// DefaultWarmupConfig returns the default warmup configuration
func DefaultWarmupConfig() WarmupConfig {
	return WarmupConfig{
		Concurrency: runtime.NumCPU(),
		Iterations:  200,
		Duration:    2 * time.Second,
		ForceGC:     true,
	}
}

// Manager handles system warmup operations. It pre-builds the embedded
// wordlist singleton and pre-runs scorer scans so that the first real
// request does not pay for lazy initialization and pool growth.
type Manager struct {
	logger  ports.Logger
	scorers []ports.Scorer
	config  WarmupConfig
}

// NewManager creates a new warmup manager
func NewManager(logger ports.Logger, config WarmupConfig) *Manager {
	return &Manager{
		logger: logger,
		config: config,
	}
}

// RegisterScorer adds a scorer to be warmed up
func (wm *Manager) RegisterScorer(scorer ports.Scorer) {
	wm.scorers = append(wm.scorers, scorer)
}

// WarmUp runs the warmup process for all registered components
func (wm *Manager) WarmUp(ctx context.Context) {
	startTime := time.Now()
	wm.logger.Info("Starting system warmup",
		"scorers", len(wm.scorers),
		"concurrency", wm.config.Concurrency,
		"iterations", wm.config.Iterations,
	)

	// Create a context with timeout if duration is specified
	var warmupCtx context.Context
	var cancel context.CancelFunc
	if wm.config.Duration > 0 {
		warmupCtx, cancel = context.WithTimeout(ctx, wm.config.Duration)
		defer cancel()
	} else {
		warmupCtx = ctx
	}

	// Force the embedded wordlist singleton to be built.
	entries := wordlist.Embedded().Entries()
	wm.logger.Debug("Embedded wordlist built", "entries", len(entries))

	wm.warmUpScorers(warmupCtx, entries)

	// Force garbage collection if configured
	if wm.config.ForceGC {
		wm.logger.Debug("Forcing garbage collection after warmup")
		runtime.GC()
	}

	wm.logger.Info("System warmup completed",
		"duration", time.Since(startTime),
	)
}

// warmUpScorers runs warmup scans for all registered scorers
func (wm *Manager) warmUpScorers(ctx context.Context, entries []string) {
	if len(wm.scorers) == 0 {
		return
	}

	// Sample candidates of varying closeness to typical wordlist entries.
	samples := []string{
		"password",
		"p4ssw0rd!",
		"Tr0ub4dor&3",
		"correct horse battery staple",
	}

	// Keep warmup scans short; the point is pool growth, not throughput.
	corpus := entries
	if len(corpus) > 256 {
		corpus = corpus[:256]
	}

	var wg sync.WaitGroup
	for i := 0; i < wm.config.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for j := 0; j < wm.config.Iterations; j++ {
				// Check for context cancellation
				select {
				case <-ctx.Done():
					return
				default:
					// Continue
				}

				for _, scorer := range wm.scorers {
					_, _, _ = scorer.BestMatch(samples[j%len(samples)], corpus)
				}
			}
		}()
	}

	wg.Wait()
}
