package lrschedule

import "math"

// CosineConfig describes a cosine-annealing schedule: the learning
// rate starts each cycle at LRMax and follows half a cosine wave down
// to LRMin over EpochsPerCycle epochs, then restarts.
type CosineConfig struct {
	EpochsPerCycle int
	LRMin          float64
	LRMax          float64
}

// Create returns the cosine-annealing Schedule that the Config
// describes.
func (c CosineConfig) Create() Schedule {
	return func(epoch int, _ float64) float64 {
		cycle := float64(epoch % c.EpochsPerCycle)
		phase := math.Pi * cycle / float64(c.EpochsPerCycle)
		return c.LRMin + (c.LRMax-c.LRMin)*(1+math.Cos(phase))/2
	}
}

// Type returns the type of Schedule that is returned
func (c CosineConfig) Type() Type { return Cosine }
