package orchestrator

import (
	"github.com/Cyclone1070/renban/internal/model"
	"github.com/Cyclone1070/renban/internal/strategy"
)

// Report is the structured result of one pass.
type Report struct {
	DryRun      bool
	Root        string
	Strategy    strategy.Kind
	Outcomes    []model.Outcome // In selection order (AI order for ai-sort)
	Notices     []string
	Interrupted bool // The context was cancelled before every file was handled
}

// Counts tallies outcomes by status.
type Counts struct {
	Planned   int
	Unchanged int
	Renamed   int
	Failed    int
}

// Total is the number of outcomes counted.
func (c Counts) Total() int {
	return c.Planned + c.Unchanged + c.Renamed + c.Failed
}

func (r *Report) Counts() Counts {
	var c Counts
	for _, o := range r.Outcomes {
		switch o.Status {
		case model.StatusPlanned:
			c.Planned++
		case model.StatusUnchanged:
			c.Unchanged++
		case model.StatusRenamed:
			c.Renamed++
		case model.StatusFailed:
			c.Failed++
		}
	}
	return c
}

// Failures returns the failed outcomes.
func (r *Report) Failures() []model.Outcome {
	var failed []model.Outcome
	for _, o := range r.Outcomes {
		if o.Failed() {
			failed = append(failed, o)
		}
	}
	return failed
}

// HasChanges reports whether applying would rename at least one file.
func (r *Report) HasChanges() bool {
	for _, o := range r.Outcomes {
		if o.Status == model.StatusPlanned || o.Status == model.StatusRenamed {
			return true
		}
	}
	return false
}
