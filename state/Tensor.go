package state

import (
	"bytes"
	"encoding/gob"

	"gorgonia.org/tensor"
)

// Tensor holds trained weights as a list of dense tensors, one per
// layer, the representation used by neural function approximators.
type Tensor struct {
	weights []*tensor.Dense
}

// NewTensor returns a Tensor state holding the given layer weights.
// The tensors are not copied.
func NewTensor(weights ...*tensor.Dense) *Tensor {
	return &Tensor{weights: weights}
}

// Weights returns the held layer weights.
func (t *Tensor) Weights() []*tensor.Dense { return t.weights }

// Save persists the layer weights to the file at path.
func (t *Tensor) Save(path string) error { return save(path, t) }

// Load restores the layer weights from the file at path.
func (t *Tensor) Load(path string) error { return load(path, t) }

// GobEncode implements the gob.GobEncoder interface. Each layer's
// tensor encodes itself; tensor.Dense is itself a gob.GobEncoder.
func (t *Tensor) GobEncode() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)

	if err := enc.Encode(len(t.weights)); err != nil {
		return nil, err
	}
	for _, w := range t.weights {
		if err := enc.Encode(w); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

// GobDecode implements the gob.GobDecoder interface
func (t *Tensor) GobDecode(data []byte) error {
	dec := gob.NewDecoder(bytes.NewReader(data))

	var n int
	if err := dec.Decode(&n); err != nil {
		return err
	}
	weights := make([]*tensor.Dense, n)
	for i := range weights {
		weights[i] = &tensor.Dense{}
		if err := dec.Decode(weights[i]); err != nil {
			return err
		}
	}
	t.weights = weights
	return nil
}
