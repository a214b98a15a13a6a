package state

import (
	"bytes"
	"encoding/gob"

	"gonum.org/v1/gonum/mat"
)

// Vector holds trained weights as a single gonum vector, the natural
// representation for linear function approximators.
type Vector struct {
	weights *mat.VecDense
}

// NewVector returns a Vector state holding the given weights. The
// weights are not copied; the Vector saves and restores the live
// vector that the learner trains.
func NewVector(weights *mat.VecDense) *Vector {
	return &Vector{weights: weights}
}

// Weights returns the held weight vector.
func (v *Vector) Weights() *mat.VecDense { return v.weights }

// Save persists the weights to the file at path.
func (v *Vector) Save(path string) error { return save(path, v) }

// Load restores the weights from the file at path.
func (v *Vector) Load(path string) error { return load(path, v) }

// GobEncode implements the gob.GobEncoder interface
func (v *Vector) GobEncode() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)

	if err := enc.Encode(v.weights.Len()); err != nil {
		return nil, err
	}
	if err := enc.Encode(v.weights.RawVector().Data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GobDecode implements the gob.GobDecoder interface
func (v *Vector) GobDecode(data []byte) error {
	dec := gob.NewDecoder(bytes.NewReader(data))

	var n int
	if err := dec.Decode(&n); err != nil {
		return err
	}
	raw := make([]float64, n)
	if err := dec.Decode(&raw); err != nil {
		return err
	}

	if v.weights != nil && v.weights.Len() == n {
		// Restore in place so that a learner holding this vector sees
		// the recovered weights.
		copy(v.weights.RawVector().Data, raw)
		return nil
	}
	v.weights = mat.NewVecDense(n, raw)
	return nil
}
