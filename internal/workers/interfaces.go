// Package workers runs the background jobs of the client and the daemon.
// It defines the Worker interface and a Workers aggregate that starts and
// stops several workers in a unified way.
package workers

import "context"

// Worker is a background job. Run starts it and must not block for longer
// than the start-up work; long running loops spawn their own goroutine.
// Stop ends the job and waits for it to exit.
//
// Example implementation:
//
//	type MyWorker struct{ job service.PollJob }
//
//	func (w *MyWorker) Run(ctx context.Context) { w.job.Start(ctx, cfg) }
//	func (w *MyWorker) Stop()                    { w.job.Stop() }
type Worker interface {
	Run(ctx context.Context)
	Stop()
}
