// Package experiment implements functionality for running a training
// experiment. An Experiment drives a Trainer through epochs and steps
// and notifies registered Callbacks of progress, so that concerns like
// checkpointing and learning-rate scheduling stay outside the training
// loop itself.
package experiment

import (
	"fmt"

	"github.com/samuelfneumann/gocheckpoint/checkpoint"
)

// Trainer is the model-specific part of an experiment: it performs one
// optimization step at a time and measures metrics. The experiment
// owns the epoch/step bookkeeping; the Trainer owns everything else.
type Trainer interface {
	// Step performs the 0-indexed step of the 0-indexed epoch and
	// returns the metrics measured on it.
	Step(epoch, step int) (checkpoint.Logs, error)

	// EpochEnd returns the metrics aggregated over the 0-indexed epoch
	// that just finished, e.g. mean loss and validation loss.
	EpochEnd(epoch int) checkpoint.Logs
}

// Callback receives training progress notifications. The checkpoint
// Manager and the learning-rate Scheduler are both Callbacks.
type Callback interface {
	// OnEpochBegin observes the start of the 0-indexed epoch
	OnEpochBegin(epoch int)

	// OnEpochEnd observes the end of the 0-indexed epoch with the
	// metrics measured over it
	OnEpochEnd(epoch int, logs checkpoint.Logs) error

	// OnStepEnd observes the end of the 0-indexed step with the
	// metrics measured on it
	OnStepEnd(step int, logs checkpoint.Logs) error

	// StepHooks reports whether OnStepEnd calls are needed at all
	StepHooks() bool
}

// Interface Experiment outlines structs that can run experiments. The
// Run() method runs every epoch to completion; RunEpoch() runs a
// single epoch. New Callbacks can be registered with an Experiment
// through the constructor or through the Register() function.
type Experiment interface {
	Run() error
	RunEpoch(epoch int) error

	// Adds a new Callback to the (possibly already running) experiment
	Register(c Callback)
}

type Type string

const (
	OnlineExp Type = "OnlineExperiment"
)

// Config represents a configuration of an experiment.
type Config struct {
	Type
	Epochs        int
	StepsPerEpoch int
}

// Validate returns an error describing why the configuration is
// invalid, or nil if it is valid.
func (c Config) Validate() error {
	if c.Epochs <= 0 {
		return fmt.Errorf("validate: epochs must be > 0, got %d", c.Epochs)
	}
	if c.StepsPerEpoch <= 0 {
		return fmt.Errorf("validate: steps per epoch must be > 0, got %d",
			c.StepsPerEpoch)
	}
	return nil
}

// CreateExp creates the experiment that the config describes, driving
// the argument Trainer and notifying the argument Callbacks.
func (c Config) CreateExp(t Trainer, callbacks ...Callback) (Experiment, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("createExp: %v", err)
	}

	switch c.Type {
	case OnlineExp:
		return NewOnline(t, c.Epochs, c.StepsPerEpoch, callbacks...), nil
	}

	return nil, fmt.Errorf("createExp: no such experiment type %v", c.Type)
}
