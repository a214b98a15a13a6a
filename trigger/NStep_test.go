package trigger

import "testing"

func TestEveryNStepsFiresAtInterval(t *testing.T) {
	trig, err := EveryNSteps(3)
	if err != nil {
		t.Fatalf("could not create trigger: %v", err)
	}

	if trig.OnStep(0) {
		t.Error("fired after 1 step")
	}
	if trig.OnStep(1) {
		t.Error("fired after 2 steps")
	}
	if !trig.OnStep(2) {
		t.Error("did not fire after 3 steps")
	}
}

func TestEveryNStepsEpochRollover(t *testing.T) {
	trig, err := EveryNSteps(3)
	if err != nil {
		t.Fatalf("could not create trigger: %v", err)
	}

	trig.OnStep(0)
	trig.OnStep(1)
	if !trig.OnStep(2) {
		t.Fatal("did not fire after 3 steps")
	}

	// New epoch: the step index resets to 0. The counter must restart
	// from the fired state rather than going negative.
	if trig.OnStep(0) {
		t.Error("fired after 1 step of new epoch")
	}
	if trig.OnStep(1) {
		t.Error("fired after 2 steps of new epoch")
	}
	if !trig.OnStep(2) {
		t.Error("did not fire after 3 steps of new epoch")
	}
}

func TestEveryNStepsRolloverMidInterval(t *testing.T) {
	trig, err := EveryNSteps(5)
	if err != nil {
		t.Fatalf("could not create trigger: %v", err)
	}

	// Three steps of a short epoch, then the epoch rolls over. The
	// rolled-over step must count as one newly observed step.
	trig.OnStep(0)
	trig.OnStep(1)
	trig.OnStep(2)
	if trig.OnStep(0) {
		t.Error("fired after 4 steps")
	}
	if !trig.OnStep(1) {
		t.Error("did not fire after 5 steps")
	}
}

func TestEveryNStepsTotalTriggerCount(t *testing.T) {
	const (
		epochs        = 7
		stepsPerEpoch = 13
		interval      = 5
	)

	trig, err := EveryNSteps(interval)
	if err != nil {
		t.Fatalf("could not create trigger: %v", err)
	}

	fired := 0
	for epoch := 0; epoch < epochs; epoch++ {
		for step := 0; step < stepsPerEpoch; step++ {
			if trig.OnStep(step) {
				fired++
			}
		}
	}

	want := epochs * stepsPerEpoch / interval
	if fired != want {
		t.Errorf("fired %d times over %d steps, want %d", fired,
			epochs*stepsPerEpoch, want)
	}
}

func TestEveryNStepsRejectsNonPositiveInterval(t *testing.T) {
	if _, err := EveryNSteps(0); err == nil {
		t.Error("expected error for interval 0")
	}
	if _, err := EveryNSteps(-2); err == nil {
		t.Error("expected error for negative interval")
	}
}

func TestOnEpochSuppressesStepHooks(t *testing.T) {
	trig := OnEpoch()

	if trig.StepHooks() {
		t.Error("epoch trigger should not engage step hooks")
	}
	if trig.OnStep(0) {
		t.Error("epoch trigger fired on a step")
	}
	if !trig.OnEpochEnd() {
		t.Error("epoch trigger did not fire at epoch end")
	}
}
