package trigger

// epoch implements saving once per completed epoch
type epoch struct{}

// OnEpoch returns a Trigger that fires at every epoch boundary. It
// engages no per-step hooks, so drivers can avoid per-step overhead
// entirely when using it.
func OnEpoch() Trigger {
	return epoch{}
}

// OnStep never fires; epoch-granularity saving ignores steps.
func (epoch) OnStep(int) bool { return false }

// OnEpochEnd always fires.
func (epoch) OnEpochEnd() bool { return true }

// StepHooks reports that no per-step events are needed.
func (epoch) StepHooks() bool { return false }
