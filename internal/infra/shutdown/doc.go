// Package shutdown runs cleanup hooks when a long-running command is
// interrupted (SIGINT, SIGTERM) or its context is cancelled.
//
// Usage:
//
//	h := shutdown.NewHandler(5 * time.Second)
//	h.OnShutdown(func(ctx context.Context) error { return w.Stop() })
//	err := h.Wait(ctx)
package shutdown
