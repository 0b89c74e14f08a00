// Package model holds the types shared by the selector, strategies, renamer
// and orchestrator.
package model

import (
	"time"
)

// FileEntry is a snapshot of one candidate file, taken once per pass.
type FileEntry struct {
	Path           string // Absolute or root-joined path; identity of the entry
	Name           string // Base name including extension
	Stem           string // Name without Ext
	Ext            string // Extension with leading dot, "" if none
	Size           int64
	ModTime        time.Time
	CreatedTime    time.Time // Birth time, change time or ModTime, see HasCreatedTime
	HasCreatedTime bool      // False when CreatedTime fell back to ModTime
}

// RenamePlan pairs a source file with the base name a strategy proposed for it.
type RenamePlan struct {
	Entry FileEntry
	Base  string
}

// Status describes what happened (or would happen) to a single file.
type Status int

const (
	// StatusPlanned means a dry run would rename the file.
	StatusPlanned Status = iota
	// StatusUnchanged means the computed target is the current path.
	StatusUnchanged
	// StatusRenamed means the rename was applied.
	StatusRenamed
	// StatusFailed means planning or applying failed for this file.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusPlanned:
		return "planned"
	case StatusUnchanged:
		return "unchanged"
	case StatusRenamed:
		return "renamed"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcome is the structured record of one rename decision.
type Outcome struct {
	Source  string
	Target  string // Empty when planning failed before a target was found
	OldName string
	NewName string
	Status  Status
	Err     error
}

// Failed reports whether the outcome carries an error.
func (o Outcome) Failed() bool {
	return o.Status == StatusFailed
}
