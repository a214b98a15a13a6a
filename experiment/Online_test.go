package experiment

import (
	"testing"

	"github.com/samuelfneumann/gocheckpoint/checkpoint"
)

// countingTrainer produces a deterministic metric stream
type countingTrainer struct {
	steps  int
	epochs int
}

func (c *countingTrainer) Step(epoch, step int) (checkpoint.Logs, error) {
	c.steps++
	return checkpoint.Logs{"loss": 1.0}, nil
}

func (c *countingTrainer) EpochEnd(epoch int) checkpoint.Logs {
	c.epochs++
	return checkpoint.Logs{"loss": 1.0, "val_loss": 2.0}
}

// recordingCallback records the events it receives
type recordingCallback struct {
	stepHooks   bool
	epochBegins []int
	epochEnds   []int
	stepEnds    []int
}

func (r *recordingCallback) OnEpochBegin(epoch int) {
	r.epochBegins = append(r.epochBegins, epoch)
}

func (r *recordingCallback) OnEpochEnd(epoch int, _ checkpoint.Logs) error {
	r.epochEnds = append(r.epochEnds, epoch)
	return nil
}

func (r *recordingCallback) OnStepEnd(step int, _ checkpoint.Logs) error {
	r.stepEnds = append(r.stepEnds, step)
	return nil
}

func (r *recordingCallback) StepHooks() bool { return r.stepHooks }

func TestOnlineNotifiesCallbacks(t *testing.T) {
	trainer := &countingTrainer{}
	stepAware := &recordingCallback{stepHooks: true}
	epochOnly := &recordingCallback{}

	conf := Config{Type: OnlineExp, Epochs: 2, StepsPerEpoch: 3}
	e, err := conf.CreateExp(trainer, stepAware, epochOnly)
	if err != nil {
		t.Fatalf("could not create experiment: %v", err)
	}

	if err := e.Run(); err != nil {
		t.Fatalf("experiment failed: %v", err)
	}

	if trainer.steps != 6 {
		t.Errorf("trainer ran %d steps, want 6", trainer.steps)
	}
	if len(stepAware.stepEnds) != 6 {
		t.Errorf("step-aware callback saw %d steps, want 6",
			len(stepAware.stepEnds))
	}
	if len(epochOnly.stepEnds) != 0 {
		t.Error("epoch-only callback received step events")
	}

	for _, c := range []*recordingCallback{stepAware, epochOnly} {
		if len(c.epochBegins) != 2 || len(c.epochEnds) != 2 {
			t.Errorf("callback saw %d/%d epoch begins/ends, want 2/2",
				len(c.epochBegins), len(c.epochEnds))
		}
	}
}

func TestConfigValidate(t *testing.T) {
	if err := (Config{Type: OnlineExp, Epochs: 0, StepsPerEpoch: 1}).Validate(); err == nil {
		t.Error("expected error for zero epochs")
	}
	if err := (Config{Type: OnlineExp, Epochs: 1, StepsPerEpoch: 0}).Validate(); err == nil {
		t.Error("expected error for zero steps per epoch")
	}
	if _, err := (Config{Type: "Offline", Epochs: 1, StepsPerEpoch: 1}).CreateExp(&countingTrainer{}); err == nil {
		t.Error("expected error for unknown experiment type")
	}
}
