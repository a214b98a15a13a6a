package lrschedule

import (
	"encoding/json"
	"math"
	"testing"
)

func TestCosineAnnealing(t *testing.T) {
	schedule := CosineConfig{
		EpochsPerCycle: 10,
		LRMin:          0.001,
		LRMax:          0.1,
	}.Create()

	if lr := schedule(0, 0); lr != 0.1 {
		t.Errorf("lr at cycle start = %v, want 0.1", lr)
	}

	mid := schedule(5, 0)
	want := (0.001 + 0.1) / 2
	if math.Abs(mid-want) > 1e-12 {
		t.Errorf("lr at mid cycle = %v, want %v", mid, want)
	}

	// The schedule restarts at each cycle boundary
	if lr := schedule(10, 0); lr != 0.1 {
		t.Errorf("lr at cycle restart = %v, want 0.1", lr)
	}

	// The rate approaches but never goes below LRMin within a cycle
	end := schedule(9, 0)
	if end < 0.001 {
		t.Errorf("lr at cycle end = %v, below LRMin", end)
	}
}

func TestStepDecayFloor(t *testing.T) {
	schedule := StepDecayConfig{
		Initial:     0.1,
		Factor:      0.5,
		EveryEpochs: 2,
		Floor:       0.02,
	}.Create()

	if lr := schedule(0, 0); lr != 0.1 {
		t.Errorf("lr at epoch 0 = %v, want 0.1", lr)
	}
	if lr := schedule(2, 0); lr != 0.05 {
		t.Errorf("lr at epoch 2 = %v, want 0.05", lr)
	}
	if lr := schedule(10, 0); lr != 0.02 {
		t.Errorf("lr at epoch 10 = %v, want the 0.02 floor", lr)
	}
}

func TestLRScheduleJSONRoundTrip(t *testing.T) {
	original := New(CosineConfig{
		EpochsPerCycle: 8,
		LRMin:          0.01,
		LRMax:          0.2,
	})

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("could not marshal: %v", err)
	}

	restored := &LRSchedule{}
	if err := json.Unmarshal(data, restored); err != nil {
		t.Fatalf("could not unmarshal: %v", err)
	}

	if restored.Type != Cosine {
		t.Errorf("restored type = %v, want %v", restored.Type, Cosine)
	}
	for _, epoch := range []int{0, 3, 7, 11} {
		if got, want := restored.Schedule()(epoch, 0),
			original.Schedule()(epoch, 0); got != want {
			t.Errorf("epoch %d: restored lr = %v, want %v", epoch, got, want)
		}
	}
}
