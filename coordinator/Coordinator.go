// Package coordinator designates which training process performs the
// authoritative checkpoint write in a distributed session, and maps
// checkpoint paths to writer-local temporary locations for everyone
// else. The package implements no distributed coordination itself;
// role assignment is decided externally (e.g. by the cluster launcher)
// and handed in at construction.
package coordinator

import (
	"fmt"
	"path/filepath"
)

// Coordinator tells a checkpoint writer what its role in the current
// training session is.
type Coordinator interface {
	// IsDesignatedWriter reports whether this process performs the
	// authoritative write for checkpoint artifacts.
	IsDesignatedWriter() bool

	// TempPath maps a checkpoint path to this writer's local temporary
	// location. Non-designated writers save their placeholder artifact
	// there and remove it once the save round completes.
	TempPath(path string) string
}

// Solo is the Coordinator for single-process training: the process is
// always the designated writer and needs no temporary locations.
type Solo struct{}

func (Solo) IsDesignatedWriter() bool    { return true }
func (Solo) TempPath(path string) string { return path }

// Worker is the Coordinator for one process of a multi-process
// training session. Exactly one rank, the chief, is the designated
// writer; every other rank writes placeholders under a rank-scoped
// temporary directory beside the real artifact.
type Worker struct {
	rank  int
	chief int
}

// NewWorker returns the Coordinator for the process with the given
// rank in a session whose designated writer has rank chief.
func NewWorker(rank, chief int) Worker {
	return Worker{rank: rank, chief: chief}
}

// IsDesignatedWriter reports whether this worker is the chief.
func (w Worker) IsDesignatedWriter() bool { return w.rank == w.chief }

// TempPath inserts a rank-scoped temporary directory between the
// directory and base name of path, keeping each worker's placeholder
// artifacts disjoint from every other worker's files.
func (w Worker) TempPath(path string) string {
	dir, base := filepath.Split(path)
	return filepath.Join(dir, fmt.Sprintf("workertemp_%d", w.rank), base)
}
