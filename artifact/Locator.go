package artifact

import (
	"path/filepath"
	"time"

	"github.com/samuelfneumann/gocheckpoint/template"
)

// LatestMarker reports an authoritative latest-checkpoint candidate
// for a directory, if one is known. It is an optional accelerant: a
// training setup that maintains its own latest-checkpoint bookkeeping
// can expose it here, and the Locator will trust it over file-system
// timestamps.
type LatestMarker interface {
	// Latest returns the path of the most recent checkpoint in dir and
	// whether one is known.
	Latest(dir string) (string, bool)
}

// Locator finds the most recent checkpoint artifact matching a path
// template, for restoring state at the start of a session.
type Locator struct {
	fs     FileSystem
	marker LatestMarker
}

// NewLocator returns a Locator scanning through the given file system.
// The marker may be nil, in which case only file-system timestamps are
// consulted.
func NewLocator(fs FileSystem, marker LatestMarker) *Locator {
	return &Locator{fs: fs, marker: marker}
}

// Locate returns the path of the most recently modified file matching
// tmpl, and whether one was found. The template is split into a
// directory and a base name; placeholders in the base name match any
// text, so every artifact the template could have produced is a
// candidate.
//
// If a LatestMarker is configured and reports a candidate whose base
// name matches the template, that candidate is returned immediately:
// it is more robust than modification times. Otherwise the directory
// is scanned and the entry with the strictly latest modification time
// wins. When several entries tie for the latest modification time
// (within the file system's timestamp resolution), the entry with the
// lexicographically greatest full path wins, which keeps the result
// deterministic and independent of directory iteration order. A
// greater path often means a later artifact when epoch or step numbers
// appear in the name, though not when metric values do; the tie-break
// is a best effort, not a guarantee of recency.
//
// A missing directory or an empty match set is a normal
// "no prior checkpoint" outcome, reported as ("", false).
func (l *Locator) Locate(tmpl string) (string, bool) {
	dir, base := filepath.Split(tmpl)
	dir = filepath.Clean(dir)
	pattern := template.Pattern(base)

	if l.marker != nil {
		if latest, ok := l.marker.Latest(dir); ok &&
			pattern.MatchString(filepath.Base(latest)) {
			return latest, true
		}
	}

	entries, err := l.fs.ReadDir(dir)
	if err != nil {
		return "", false
	}

	var (
		latestMod   time.Time
		latestPath  string
		latestCount int
		largestPath string
	)
	for _, entry := range entries {
		if entry.IsDir() || !pattern.MatchString(entry.Name()) {
			continue
		}
		path := filepath.Join(dir, entry.Name())

		if path > largestPath {
			largestPath = path
		}
		switch mod := entry.ModTime(); {
		case mod.After(latestMod):
			latestMod = mod
			latestPath = path
			latestCount = 1
		case mod.Equal(latestMod):
			latestCount++
		}
	}

	if latestCount == 1 && latestPath != "" {
		return latestPath, true
	}
	if largestPath != "" {
		return largestPath, true
	}
	return "", false
}
