package state

import (
	"path/filepath"
	"testing"

	"gonum.org/v1/gonum/mat"
	"gorgonia.org/tensor"
)

func TestVectorSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weights.bin")

	weights := mat.NewVecDense(4, []float64{0.5, -1.25, 3, 0})
	if err := NewVector(weights).Save(path); err != nil {
		t.Fatalf("could not save: %v", err)
	}

	if !Exists(path) {
		t.Fatal("saved artifact does not exist")
	}

	restored := &Vector{}
	if err := restored.Load(path); err != nil {
		t.Fatalf("could not load: %v", err)
	}

	if !mat.Equal(weights, restored.Weights()) {
		t.Errorf("restored weights = %v, want %v",
			mat.Formatted(restored.Weights()), mat.Formatted(weights))
	}
}

func TestVectorLoadRestoresInPlace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weights.bin")

	trained := mat.NewVecDense(3, []float64{1, 2, 3})
	if err := NewVector(trained).Save(path); err != nil {
		t.Fatalf("could not save: %v", err)
	}

	// A learner holds live; restoring into the same-sized vector must
	// update it rather than replace it.
	live := mat.NewVecDense(3, []float64{9, 9, 9})
	if err := NewVector(live).Load(path); err != nil {
		t.Fatalf("could not load: %v", err)
	}
	if !mat.Equal(live, trained) {
		t.Errorf("live weights = %v, want %v", mat.Formatted(live),
			mat.Formatted(trained))
	}
}

func TestTensorSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layers.bin")

	layer1 := tensor.New(tensor.WithShape(2, 2),
		tensor.WithBacking([]float64{1, 2, 3, 4}))
	layer2 := tensor.New(tensor.WithShape(2),
		tensor.WithBacking([]float64{-0.5, 0.5}))

	if err := NewTensor(layer1, layer2).Save(path); err != nil {
		t.Fatalf("could not save: %v", err)
	}

	restored := &Tensor{}
	if err := restored.Load(path); err != nil {
		t.Fatalf("could not load: %v", err)
	}

	weights := restored.Weights()
	if len(weights) != 2 {
		t.Fatalf("restored %d layers, want 2", len(weights))
	}
	for i, want := range []*tensor.Dense{layer1, layer2} {
		if !weights[i].Shape().Eq(want.Shape()) {
			t.Errorf("layer %d shape = %v, want %v", i,
				weights[i].Shape(), want.Shape())
		}
		got := weights[i].Data().([]float64)
		for j, w := range want.Data().([]float64) {
			if got[j] != w {
				t.Errorf("layer %d weight %d = %v, want %v", i, j,
					got[j], w)
			}
		}
	}
}

func TestExistsMissingFile(t *testing.T) {
	if Exists(filepath.Join(t.TempDir(), "missing.bin")) {
		t.Error("missing artifact reported as existing")
	}
}
