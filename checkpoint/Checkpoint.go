// Package checkpoint implements a manager that persists trained state
// to disk during training: deciding when to save (per epoch or every N
// steps), whether the current state is the best seen so far, where to
// write it under a templated path, and which artifact to restore from
// after an interruption. The manager performs no training and no
// serialization itself; it drives a state.Saver supplied by the host.
package checkpoint

import (
	"fmt"
	"log"

	"github.com/samuelfneumann/gocheckpoint/artifact"
	"github.com/samuelfneumann/gocheckpoint/coordinator"
	"github.com/samuelfneumann/gocheckpoint/monitor"
	"github.com/samuelfneumann/gocheckpoint/state"
	"github.com/samuelfneumann/gocheckpoint/template"
	"github.com/samuelfneumann/gocheckpoint/trigger"
)

// Manager saves checkpoints of trained state during a training
// session. The training loop notifies it of progress through
// OnEpochBegin, OnEpochEnd and, when step-granularity saving is
// configured, OnStepEnd. All methods must be called from the loop's
// goroutine; the Manager does no internal locking or threading.
type Manager struct {
	conf    Config
	trig    trigger.Trigger
	mon     *monitor.Monitor
	writer  *artifact.Writer
	locator *artifact.Locator
	saver   state.Saver

	currentEpoch        int
	epochsSinceLastSave int
	period              int
}

// NewManager returns a Manager that persists state through saver under
// the writer roles assigned by coord. Configuration errors are fatal
// to construction; per-event errors are returned by the hook methods
// instead.
func NewManager(conf Config, saver state.Saver,
	coord coordinator.Coordinator) (*Manager, error) {
	if err := conf.Validate(); err != nil {
		return nil, fmt.Errorf("newManager: invalid config: %v", err)
	}

	m := &Manager{
		conf:   conf,
		saver:  saver,
		period: 1,
	}

	if conf.SaveFreq.mode == everySteps {
		trig, err := trigger.EveryNSteps(conf.SaveFreq.n)
		if err != nil {
			return nil, fmt.Errorf("newManager: %v", err)
		}
		m.trig = trig
	} else {
		m.trig = trigger.OnEpoch()
	}

	m.mon = monitor.New(conf.monitorName(), conf.mode(),
		conf.InitialValueThreshold)

	fs := conf.fileSystem()
	m.writer = artifact.NewWriter(fs, coord)
	m.locator = artifact.NewLocator(fs, conf.Marker)

	if d := conf.Deprecated; d != nil {
		if d.Period > 0 {
			log.Printf("checkpoint: the Period option is deprecated, " +
				"use SaveFreq to control save granularity")
			m.period = d.Period
		}
		if d.LoadOnRestart {
			log.Printf("checkpoint: the LoadOnRestart option is " +
				"deprecated, call LoadLatest before training instead")
		}
	}

	return m, nil
}

// StepHooks reports whether the Manager needs OnStepEnd calls at all.
// With epoch-granularity saving it does not, and the training loop can
// skip per-step notification entirely.
func (m *Manager) StepHooks() bool { return m.trig.StepHooks() }

// OnEpochBegin records the 0-indexed epoch that is starting, so that
// step-granularity saves within the epoch resolve path templates with
// the right epoch number.
func (m *Manager) OnEpochBegin(epoch int) {
	m.currentEpoch = epoch
}

// OnStepEnd observes the end of one training step. The step argument
// is the 0-indexed step number within the current epoch; logs carries
// the metrics measured on this step. If the step completes a save
// interval, a checkpoint is saved. A returned error aborts only this
// save, not the session.
func (m *Manager) OnStepEnd(step int, logs Logs) error {
	if !m.trig.StepHooks() {
		return nil
	}
	if !m.trig.OnStep(step) {
		return nil
	}
	return m.save(m.currentEpoch, step, true, logs)
}

// OnEpochEnd observes the end of the 0-indexed epoch; logs carries the
// metrics measured over the epoch. With epoch-granularity saving a
// checkpoint is saved, subject to the deprecated Period gate. A
// returned error aborts only this save, not the session.
func (m *Manager) OnEpochEnd(epoch int, logs Logs) error {
	m.epochsSinceLastSave++
	if !m.trig.OnEpochEnd() {
		return nil
	}
	if m.epochsSinceLastSave < m.period {
		return nil
	}
	return m.save(epoch, 0, false, logs)
}

// save resolves the artifact path for the event and writes the
// checkpoint, applying the best-only gate when configured.
func (m *Manager) save(epoch, step int, hasStep bool, logs Logs) error {
	m.epochsSinceLastSave = 0

	path, err := template.Resolve(m.conf.Filepath, epoch, step, hasStep, logs)
	if err != nil {
		return fmt.Errorf("save: could not resolve checkpoint path: %w", err)
	}

	if !m.conf.SaveBestOnly {
		if m.conf.Verbose > 0 {
			fmt.Printf("\nEpoch %d: saving checkpoint to %v\n", epoch+1, path)
		}
		return m.writer.Write(path, m.saver)
	}

	current, ok := logs[m.mon.Metric()]
	if !ok {
		log.Printf("checkpoint: can save best checkpoint only with %v "+
			"available, skipping", m.mon.Metric())
		return nil
	}

	if !m.mon.Improved(current) {
		if m.conf.Verbose > 0 {
			fmt.Printf("\nEpoch %d: %v did not improve from %.5f\n",
				epoch+1, m.mon.Metric(), m.mon.Best())
		}
		return nil
	}

	if m.conf.Verbose > 0 {
		fmt.Printf("\nEpoch %d: %v improved from %.5f to %.5f, saving "+
			"checkpoint to %v\n", epoch+1, m.mon.Metric(), m.mon.Best(),
			current, path)
	}
	m.mon.Commit(current)
	return m.writer.Write(path, m.saver)
}

// Best returns the best monitored value recorded so far.
func (m *Manager) Best() float64 { return m.mon.Best() }

// LoadLatest finds the most recent artifact matching the configured
// path template and restores it through loader. A missing artifact is
// a normal "no prior checkpoint" outcome, reported as ("", false, nil).
func (m *Manager) LoadLatest(loader state.Loader) (string, bool, error) {
	path, ok := m.locator.Locate(m.conf.Filepath)
	if !ok {
		return "", false, nil
	}
	if err := loader.Load(path); err != nil {
		return path, true, fmt.Errorf("loadLatest: could not restore "+
			"checkpoint %v: %v", path, err)
	}
	return path, true, nil
}

// OnTrainBegin observes the start of training. If the deprecated
// LoadOnRestart option is set, the most recent matching checkpoint is
// restored through loader.
func (m *Manager) OnTrainBegin(loader state.Loader) error {
	if m.conf.Deprecated == nil || !m.conf.Deprecated.LoadOnRestart {
		return nil
	}
	_, _, err := m.LoadLatest(loader)
	return err
}

// LoadLatest finds the most recent artifact matching the path template
// tmpl on the operating system's file system and restores it through
// loader. It is a convenience wrapper for recovery outside a Manager.
func LoadLatest(tmpl string, loader state.Loader) (string, bool, error) {
	locator := artifact.NewLocator(artifact.OS{}, nil)
	path, ok := locator.Locate(tmpl)
	if !ok {
		return "", false, nil
	}
	if !state.Exists(path) {
		return "", false, nil
	}
	if err := loader.Load(path); err != nil {
		return path, true, fmt.Errorf("loadLatest: could not restore "+
			"checkpoint %v: %v", path, err)
	}
	return path, true, nil
}
