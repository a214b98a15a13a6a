package lrschedule

import (
	"fmt"

	"github.com/samuelfneumann/gocheckpoint/checkpoint"
)

// Target is anything whose learning rate a Scheduler can adjust,
// usually the learner being trained.
type Target interface {
	LearningRate() float64
	SetLearningRate(lr float64)
}

// Scheduler applies a Schedule to a Target at the start of every
// epoch. It implements the experiment callback hooks so that it can be
// registered with a training loop alongside a checkpoint manager.
type Scheduler struct {
	schedule Schedule
	target   Target
	verbose  bool
}

// NewScheduler returns a Scheduler applying schedule to target.
func NewScheduler(schedule Schedule, target Target, verbose bool) *Scheduler {
	return &Scheduler{schedule: schedule, target: target, verbose: verbose}
}

// OnEpochBegin sets the target's learning rate for the 0-indexed epoch
// that is starting.
func (s *Scheduler) OnEpochBegin(epoch int) {
	lr := s.schedule(epoch, s.target.LearningRate())
	s.target.SetLearningRate(lr)
	if s.verbose {
		fmt.Printf("\nEpoch %d: learning rate set to %v\n", epoch+1, lr)
	}
}

// OnEpochEnd does nothing; the learning rate only changes at epoch
// boundaries.
func (s *Scheduler) OnEpochEnd(int, checkpoint.Logs) error { return nil }

// OnStepEnd does nothing.
func (s *Scheduler) OnStepEnd(int, checkpoint.Logs) error { return nil }

// StepHooks reports that no per-step events are needed.
func (s *Scheduler) StepHooks() bool { return false }
