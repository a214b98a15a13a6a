package monitor

import (
	"math"
	"testing"
)

func TestMinModeNeverIncreasesBest(t *testing.T) {
	m := New("val_loss", Min, nil)

	values := []float64{0.9, 0.5, 0.7, 0.5, 0.2}
	previous := math.Inf(1)
	for _, v := range values {
		if m.Improved(v) {
			m.Commit(v)
		}
		if m.Best() > previous {
			t.Errorf("best increased from %v to %v under min mode",
				previous, m.Best())
		}
		previous = m.Best()
	}

	if m.Best() != 0.2 {
		t.Errorf("best = %v, want 0.2", m.Best())
	}

	// 0.7 came after 0.5 and must not have been an improvement
	m2 := New("val_loss", Min, nil)
	m2.Commit(0.5)
	if m2.Improved(0.7) {
		t.Error("0.7 improved on best 0.5 under min mode")
	}
	if m2.Improved(0.5) {
		t.Error("equal value counted as improvement")
	}
}

func TestMaxModeNeverDecreasesBest(t *testing.T) {
	m := New("accuracy", Max, nil)

	if !m.Improved(0.4) {
		t.Fatal("0.4 did not improve on -Inf")
	}
	m.Commit(0.4)

	if m.Improved(0.3) {
		t.Error("0.3 improved on best 0.4 under max mode")
	}
	if !m.Improved(0.6) {
		t.Error("0.6 did not improve on best 0.4 under max mode")
	}
}

func TestAutoModeResolvesFromMetricName(t *testing.T) {
	acc := New("accuracy", Auto, nil)
	if !acc.Improved(0.1) {
		t.Error("accuracy should be monitored under max mode")
	}
	acc.Commit(0.5)
	if acc.Improved(0.4) {
		t.Error("smaller accuracy counted as improvement")
	}

	loss := New("val_loss", Auto, nil)
	if !loss.Improved(12.0) {
		t.Error("val_loss should be monitored under min mode")
	}
	loss.Commit(0.5)
	if loss.Improved(0.6) {
		t.Error("larger val_loss counted as improvement")
	}

	fmeasure := New("fmeasure_weighted", Auto, nil)
	fmeasure.Commit(0.5)
	if !fmeasure.Improved(0.6) {
		t.Error("fmeasure metrics should be monitored under max mode")
	}
}

func TestUnknownModeFallsBackToAuto(t *testing.T) {
	m := New("accuracy", Mode("sideways"), nil)
	m.Commit(0.5)
	if !m.Improved(0.6) {
		t.Error("fallback did not resolve accuracy to max mode")
	}
}

func TestInitialValueThreshold(t *testing.T) {
	threshold := 0.3
	m := New("val_loss", Min, &threshold)

	if m.Improved(0.4) {
		t.Error("0.4 improved on threshold 0.3")
	}
	if !m.Improved(0.2) {
		t.Error("0.2 did not improve on threshold 0.3")
	}
}
