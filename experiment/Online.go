package experiment

import (
	"fmt"

	"github.com/samuelfneumann/gocheckpoint/checkpoint"
	"github.com/samuelfneumann/gocheckpoint/utils/progressbar"
)

// Online is an Experiment that trains an agent online for a fixed
// number of epochs with a fixed number of steps per epoch, notifying
// its Callbacks as training progresses.
type Online struct {
	trainer       Trainer
	epochs        int
	stepsPerEpoch int
	callbacks     []Callback

	// stepHooks caches whether any callback needs per-step events, so
	// the inner loop pays no callback cost when none does.
	stepHooks bool

	pbar *progressbar.TrainingBar
}

// NewOnline creates and returns a new online experiment driving the
// given trainer. The epochs and stepsPerEpoch parameters determine how
// long training runs, and the callbacks receive progress events.
func NewOnline(t Trainer, epochs, stepsPerEpoch int,
	callbacks ...Callback) *Online {
	o := &Online{
		trainer:       t,
		epochs:        epochs,
		stepsPerEpoch: stepsPerEpoch,
		pbar:          progressbar.NewTrainingBar(25, epochs*stepsPerEpoch),
	}
	for _, c := range callbacks {
		o.Register(c)
	}
	return o
}

// Register registers a Callback with the Experiment so that it
// receives progress events from now on.
func (o *Online) Register(c Callback) {
	o.callbacks = append(o.callbacks, c)
	o.stepHooks = o.stepHooks || c.StepHooks()
}

// RunEpoch runs a single 0-indexed epoch of the experiment.
func (o *Online) RunEpoch(epoch int) error {
	for _, c := range o.callbacks {
		c.OnEpochBegin(epoch)
	}

	for step := 0; step < o.stepsPerEpoch; step++ {
		logs, err := o.trainer.Step(epoch, step)
		if err != nil {
			return fmt.Errorf("runEpoch: could not run step %d of epoch "+
				"%d: %v", step, epoch, err)
		}

		if o.stepHooks {
			if err := o.notifyStep(step, logs); err != nil {
				return err
			}
		}
		o.pbar.Increment()
	}

	logs := o.trainer.EpochEnd(epoch)
	for _, c := range o.callbacks {
		if err := c.OnEpochEnd(epoch, logs); err != nil {
			return fmt.Errorf("runEpoch: callback failed at end of epoch "+
				"%d: %v", epoch, err)
		}
	}
	o.pbar.Describe(epoch, logs)
	return nil
}

// Run runs the entire experiment for all epochs.
func (o *Online) Run() error {
	o.pbar.Display()
	defer o.pbar.Close()

	for epoch := 0; epoch < o.epochs; epoch++ {
		if err := o.RunEpoch(epoch); err != nil {
			return fmt.Errorf("run: %v", err)
		}
	}
	return nil
}

// notifyStep fans a step event out to the callbacks that asked for
// per-step events.
func (o *Online) notifyStep(step int, logs checkpoint.Logs) error {
	for _, c := range o.callbacks {
		if !c.StepHooks() {
			continue
		}
		if err := c.OnStepEnd(step, logs); err != nil {
			return fmt.Errorf("runEpoch: callback failed at step %d: %v",
				step, err)
		}
	}
	return nil
}
