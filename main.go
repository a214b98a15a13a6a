package main

import (
	"fmt"
	"log"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/samuelfneumann/gocheckpoint/checkpoint"
	"github.com/samuelfneumann/gocheckpoint/coordinator"
	"github.com/samuelfneumann/gocheckpoint/experiment"
	"github.com/samuelfneumann/gocheckpoint/lrschedule"
	"github.com/samuelfneumann/gocheckpoint/state"
)

// linearTrainer fits a weight vector to a hidden target by gradient
// descent, producing the kind of noisy metric stream a real model
// would. It exists to demonstrate the checkpoint manager end to end.
type linearTrainer struct {
	weights *mat.VecDense
	target  *mat.VecDense
	lr      float64
	noise   distuv.Normal

	epochLoss float64
	steps     int
}

func newLinearTrainer(features int, lr float64, seed uint64) *linearTrainer {
	src := rand.NewSource(seed)
	sample := distuv.Normal{Mu: 0, Sigma: 1, Src: src}

	target := make([]float64, features)
	for i := range target {
		target[i] = sample.Rand()
	}

	return &linearTrainer{
		weights: mat.NewVecDense(features, nil),
		target:  mat.NewVecDense(features, target),
		lr:      lr,
		noise:   distuv.Normal{Mu: 0, Sigma: 0.01, Src: src},
	}
}

func (t *linearTrainer) LearningRate() float64      { return t.lr }
func (t *linearTrainer) SetLearningRate(lr float64) { t.lr = lr }

// Step performs one gradient descent step toward the target and
// returns the step's training loss.
func (t *linearTrainer) Step(epoch, step int) (checkpoint.Logs, error) {
	w := t.weights.RawVector().Data
	goal := t.target.RawVector().Data

	loss := 0.0
	for i := range w {
		diff := w[i] - goal[i]
		loss += diff * diff
		w[i] -= t.lr * 2 * diff
	}
	loss /= float64(len(w))

	t.epochLoss += loss
	t.steps++
	return checkpoint.Logs{"loss": loss}, nil
}

// EpochEnd reports the mean training loss over the epoch and a noisy
// validation loss.
func (t *linearTrainer) EpochEnd(epoch int) checkpoint.Logs {
	mean := t.epochLoss / float64(t.steps)
	t.epochLoss = 0.0
	t.steps = 0

	return checkpoint.Logs{
		"loss":     mean,
		"val_loss": mean + math.Abs(t.noise.Rand()),
	}
}

func main() {
	var seed uint64 = 192382

	trainer := newLinearTrainer(8, 0.1, seed)
	weights := state.NewVector(trainer.weights)

	conf := checkpoint.Config{
		Filepath:     "./checkpoints/model-{epoch:02d}-{val_loss:.4f}.bin",
		Monitor:      "val_loss",
		Verbose:      1,
		SaveBestOnly: true,
		SaveFreq:     checkpoint.PerEpoch(),
	}
	manager, err := checkpoint.NewManager(conf, weights, coordinator.Solo{})
	if err != nil {
		log.Fatalf("could not create checkpoint manager: %v", err)
	}

	// Resume from the most recent checkpoint of a previous run, if any
	if path, ok, err := manager.LoadLatest(weights); err != nil {
		log.Fatalf("could not restore checkpoint: %v", err)
	} else if ok {
		fmt.Println("Restored checkpoint", path)
	}

	cosine := lrschedule.New(lrschedule.CosineConfig{
		EpochsPerCycle: 10,
		LRMin:          0.001,
		LRMax:          0.1,
	})
	scheduler := lrschedule.NewScheduler(cosine.Schedule(), trainer, false)

	expConf := experiment.Config{
		Type:          experiment.OnlineExp,
		Epochs:        30,
		StepsPerEpoch: 200,
	}
	e, err := expConf.CreateExp(trainer, manager, scheduler)
	if err != nil {
		log.Fatalf("could not create experiment: %v", err)
	}

	if err := e.Run(); err != nil {
		log.Fatalf("experiment failed: %v", err)
	}

	fmt.Printf("Best val_loss: %.5f\n", manager.Best())
}
