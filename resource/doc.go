// Package resource limits how much memory mappers pin and how fast
// sysio Readers and Writers move bytes.
//
// # Architecture
//
//	┌─────────────────────────────────────────────┐
//	│                 Controller                  │
//	├──────────────────────┬──────────────────────┤
//	│  Mapped memory       │  IO rate limiter     │
//	│  (fail-fast sem)     │  (token bucket)      │
//	├──────────────────────┼──────────────────────┤
//	│  AcquireMemory       │  AcquireIO           │
//	│  ReleaseMemory       │  RateLimitedReader   │
//	│  MemoryUsage         │  RateLimitedWriter   │
//	└──────────────────────┴──────────────────────┘
//
// # Memory Budget
//
// *Controller implements sysio.MemoryBudget, so a mapper can reserve its
// size before mapping:
//
//	rc := resource.NewController(resource.Config{
//	    MemoryLimitBytes: 1 << 30, // 1GB of mapped files
//	})
//	m, err := sysio.NewMapper(path, sysio.WithMemoryBudget(rc))
//	// errors.Is(err, sysio.ErrResourceLimit) when the budget is exhausted
//
// # IO Rate Limiting
//
// The wrappers pace any sysio.Reader or sysio.Writer. Tokens for a whole call are
// acquired before the call is delegated, so a refused acquisition never
// leaves a partial transfer behind:
//
//	w := resource.NewRateLimitedWriter(ctx, sysio.NewFDWriter(f.Fd()), rc)
//
// The context only bounds waiting for tokens. The delegated transfer
// itself still blocks until it completes.
//
// # Nil Safety
//
// All methods handle nil Controller gracefully - they become no-ops.
package resource
