package trigger

import "fmt"

// nStep implements saving every n training steps
type nStep struct {
	interval int

	// Step numbers restart from zero at each epoch, so the raw step
	// index cannot be accumulated directly. lastStep remembers the
	// previously observed index to both compute deltas and detect the
	// restart: a new index at or below the previous one signals that a
	// new epoch began.
	lastStep int
	seen     int
}

// EveryNSteps returns a Trigger that fires once every n observed
// training steps, counting across epoch boundaries. The step indices
// passed to OnStep are 0-indexed and reset to zero at each new epoch;
// the trigger accounts for the rollover rather than computing a
// negative delta.
//
// EveryNSteps returns an error if n is not positive.
func EveryNSteps(n int) (Trigger, error) {
	if n <= 0 {
		return nil, fmt.Errorf("everyNSteps: interval must be > 0, got %d", n)
	}
	return &nStep{interval: n}, nil
}

// OnStep observes the 0-indexed step number of the step that just
// finished and reports whether the save interval has been reached.
// When it fires, the running count resets to zero; steps beyond the
// threshold are not carried forward.
func (t *nStep) OnStep(step int) bool {
	if step <= t.lastStep {
		// New epoch: the counter restarted, so every step up to and
		// including this 0-indexed one is newly observed.
		t.seen += step + 1
	} else {
		t.seen += step - t.lastStep
	}
	t.lastStep = step

	if t.seen >= t.interval {
		t.seen = 0
		return true
	}
	return false
}

// OnEpochEnd never fires; step-granularity saving ignores epoch
// boundaries.
func (t *nStep) OnEpochEnd() bool { return false }

// StepHooks reports that per-step events must be delivered.
func (t *nStep) StepHooks() bool { return true }
