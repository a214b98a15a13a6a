// Package state defines the contracts for persisting trained state and
// provides gob-backed containers for common weight representations.
// The checkpoint manager treats state as opaque: anything exposing
// Save can be checkpointed, anything exposing Load can be restored.
package state

import (
	"encoding/gob"
	"fmt"
	"os"
)

// Serializable is an object that can be saved/serialized
type Serializable interface {
	gob.GobEncoder
	gob.GobDecoder
}

// Saver persists trained state to the file at path.
type Saver interface {
	Save(path string) error
}

// Loader restores trained state from the file at path.
type Loader interface {
	Load(path string) error
}

// Exists reports whether a checkpoint artifact exists at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// save gob-encodes a Serializable to the file at path
func save(path string, s Serializable) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save: could not create save file: %v", err)
	}
	defer file.Close()

	if err := gob.NewEncoder(file).Encode(s); err != nil {
		return fmt.Errorf("save: could not encode state: %v", err)
	}
	return nil
}

// load gob-decodes a Serializable from the file at path
func load(path string, s Serializable) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("load: could not open save file: %v", err)
	}
	defer file.Close()

	if err := gob.NewDecoder(file).Decode(s); err != nil {
		return fmt.Errorf("load: could not decode state: %v", err)
	}
	return nil
}
