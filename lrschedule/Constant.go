package lrschedule

import "math"

// ConstantConfig describes a schedule that always yields the same
// learning rate.
type ConstantConfig struct {
	LR float64
}

// Create returns the constant Schedule that the Config describes.
func (c ConstantConfig) Create() Schedule {
	return func(int, float64) float64 { return c.LR }
}

// Type returns the type of Schedule that is returned
func (c ConstantConfig) Type() Type { return Constant }

// StepDecayConfig describes a schedule that multiplies the initial
// learning rate by Factor once every EveryEpochs epochs, never going
// below Floor.
type StepDecayConfig struct {
	Initial     float64
	Factor      float64
	EveryEpochs int
	Floor       float64
}

// Create returns the step-decay Schedule that the Config describes.
func (c StepDecayConfig) Create() Schedule {
	return func(epoch int, _ float64) float64 {
		decays := epoch / c.EveryEpochs
		lr := c.Initial * math.Pow(c.Factor, float64(decays))
		return math.Max(lr, c.Floor)
	}
}

// Type returns the type of Schedule that is returned
func (c StepDecayConfig) Type() Type { return StepDecay }
