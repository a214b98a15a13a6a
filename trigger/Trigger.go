// Package trigger implements save-trigger scheduling for checkpoints.
// A Trigger observes the stream of per-step and per-epoch events from a
// training loop and decides whether the current event is a save point.
package trigger

// Trigger decides, for a monotonic stream of training events, whether
// a checkpoint should be saved now. Exactly one counting mode is
// selected at construction and fixed for the session.
type Trigger interface {
	// OnStep observes the end of one training step, identified by its
	// 0-indexed step number within the current epoch, and reports
	// whether a save should happen now.
	OnStep(step int) bool

	// OnEpochEnd observes the end of an epoch and reports whether a
	// save should happen now.
	OnEpochEnd() bool

	// StepHooks reports whether this trigger needs per-step events at
	// all. When false, the driver may skip calling OnStep entirely.
	StepHooks() bool
}
