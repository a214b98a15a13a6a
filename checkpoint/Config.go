package checkpoint

import (
	"fmt"

	"github.com/samuelfneumann/gocheckpoint/artifact"
	"github.com/samuelfneumann/gocheckpoint/monitor"
)

// Logs maps metric names to the values a training loop measured for
// one event, e.g. {"loss": 0.3, "val_loss": 0.4, "accuracy": 0.91}.
type Logs map[string]float64

const (
	perEpoch   = "epoch"
	everySteps = "steps"
)

// SaveFreq determines when checkpoints are saved: either once per
// completed epoch, or once every fixed number of training steps. The
// zero value means once per epoch.
type SaveFreq struct {
	mode string
	n    int
}

// PerEpoch returns the epoch-granularity save frequency.
func PerEpoch() SaveFreq {
	return SaveFreq{mode: perEpoch}
}

// EverySteps returns the save frequency that saves once every n
// training steps. The frequency is only valid for n > 0.
func EverySteps(n int) SaveFreq {
	return SaveFreq{mode: everySteps, n: n}
}

func (f SaveFreq) String() string {
	if f.mode == everySteps {
		return fmt.Sprintf("every %d steps", f.n)
	}
	return perEpoch
}

// DeprecatedOptions enumerates configuration options that remain
// recognized for backwards compatibility. Setting any of them logs a
// deprecation warning at construction.
type DeprecatedOptions struct {
	// Period is the number of epochs between epoch-granularity saves.
	// Deprecated: use EverySteps to save at a granularity other than
	// every epoch.
	Period int

	// LoadOnRestart restores the most recent matching checkpoint when
	// training begins. Deprecated: call Manager.LoadLatest before
	// starting training instead.
	LoadOnRestart bool
}

// Config describes a checkpoint Manager. It is constructed once at
// setup and never mutated afterwards.
type Config struct {
	// Filepath is the path template for saved artifacts. It may
	// contain placeholders such as {epoch:02d}, {step:03d} or
	// {val_loss:.2f}, resolved per save from the event's epoch, step
	// and logged metrics.
	Filepath string

	// Monitor names the logged metric that gates best-only saving.
	// Defaults to "val_loss".
	Monitor string

	// Verbose prints a line describing each save decision when > 0
	Verbose int

	// SaveBestOnly saves only when the monitored metric improves on
	// the best value seen so far.
	SaveBestOnly bool

	// Mode is the comparison direction for the monitored metric.
	// Defaults to monitor.Auto.
	Mode monitor.Mode

	// SaveFreq selects epoch- or step-granularity saving. Defaults to
	// once per epoch.
	SaveFreq SaveFreq

	// InitialValueThreshold optionally seeds the best value, so that
	// best-only saving only accepts values that also beat a previous
	// session's result.
	InitialValueThreshold *float64

	// FileSystem is the file system artifacts are written to and
	// located on. Nil means the operating system's.
	FileSystem artifact.FileSystem

	// Marker optionally reports an authoritative latest checkpoint,
	// consulted before timestamp scans during recovery.
	Marker artifact.LatestMarker

	// Deprecated holds recognized but deprecated options
	Deprecated *DeprecatedOptions
}

// Validate returns an error describing why the configuration is
// invalid, or nil if it is valid.
func (c Config) Validate() error {
	if c.Filepath == "" {
		return fmt.Errorf("validate: no checkpoint filepath set")
	}

	switch c.SaveFreq.mode {
	case "", perEpoch:
	case everySteps:
		if c.SaveFreq.n <= 0 {
			return fmt.Errorf("validate: save frequency must be a "+
				"positive step count, got %d", c.SaveFreq.n)
		}
	default:
		return fmt.Errorf("validate: unrecognized save frequency %q, "+
			"expected per-epoch or a positive step count", c.SaveFreq.mode)
	}

	if c.Deprecated != nil && c.Deprecated.Period < 0 {
		return fmt.Errorf("validate: period must be positive, got %d",
			c.Deprecated.Period)
	}
	return nil
}

// monitorName returns the monitored metric, applying the default.
func (c Config) monitorName() string {
	if c.Monitor == "" {
		return "val_loss"
	}
	return c.Monitor
}

// mode returns the comparison mode, applying the default.
func (c Config) mode() monitor.Mode {
	if c.Mode == "" {
		return monitor.Auto
	}
	return c.Mode
}

// fileSystem returns the configured file system, applying the default.
func (c Config) fileSystem() artifact.FileSystem {
	if c.FileSystem == nil {
		return artifact.OS{}
	}
	return c.FileSystem
}
