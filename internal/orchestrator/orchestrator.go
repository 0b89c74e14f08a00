// Package orchestrator runs a rename pass end to end: select the files,
// let the configured strategy propose names, then resolve and apply them
// through the collision-safe renamer. The preview (ComputeDryRun) and the
// real run (ApplyPlan) are separate calls; the confirmation between them
// belongs to the caller.
package orchestrator

import (
	"context"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/Cyclone1070/renban/internal/model"
	"github.com/Cyclone1070/renban/internal/naming"
	"github.com/Cyclone1070/renban/internal/selector"
	"github.com/Cyclone1070/renban/internal/strategy"
)

// Notices recorded when a mode's capability was not provided.
const (
	NoticeSummaryUnavailable = "AI capability unavailable; every file gets the " + strategy.SummaryUnavailable + " placeholder"
	NoticeOrderUnavailable   = "AI capability unavailable; keeping selection order"
	NoticeAuthorUnavailable  = "metadata capability unavailable; every file gets the " + strategy.AuthorNotSupported + " placeholder"
)

// Dependencies are the collaborators of a run. FS is required; the
// capabilities are optional.
type Dependencies struct {
	FS         fileSystem
	Author     strategy.AuthorReader
	Summarizer strategy.Summarizer
	Orderer    strategy.Orderer
}

// Orchestrator drives one configured run through its states.
type Orchestrator struct {
	cfg      RunConfig
	fs       fileSystem
	selector *selector.Selector
	strategy strategy.Strategy
	notices  []string
	state    State
}

// New validates cfg and builds the strategy it names.
func New(cfg RunConfig, deps Dependencies) (*Orchestrator, error) {
	if deps.FS == nil {
		panic("fs is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var notices []string
	sdeps := strategy.Dependencies{Content: deps.FS, Author: deps.Author}
	switch cfg.Mode {
	case strategy.KindAISummary:
		if deps.Summarizer == nil {
			notices = append(notices, NoticeSummaryUnavailable)
		} else {
			sdeps.Summarizer = newMemoSummarizer(deps.Summarizer)
		}
	case strategy.KindAISort:
		if deps.Orderer == nil {
			notices = append(notices, NoticeOrderUnavailable)
		} else {
			sdeps.Orderer = newMemoOrderer(deps.Orderer)
		}
	case strategy.KindAuthor:
		if deps.Author == nil {
			notices = append(notices, NoticeAuthorUnavailable)
		}
	}

	s, err := strategy.New(cfg.Mode, cfg.params(), sdeps)
	if err != nil {
		return nil, err
	}

	return &Orchestrator{
		cfg:      cfg,
		fs:       deps.FS,
		selector: selector.New(deps.FS),
		strategy: s,
		notices:  notices,
		state:    StateConfigured,
	}, nil
}

// State returns the current lifecycle state.
func (o *Orchestrator) State() State {
	return o.state
}

// ComputeDryRun selects and plans without touching the filesystem. It may
// be called again while awaiting confirmation to refresh the preview.
func (o *Orchestrator) ComputeDryRun(ctx context.Context) (*Report, error) {
	if o.state != StateConfigured && o.state != StateAwaitingConfirmation {
		return nil, errors.WithDetails(ErrInvalidState, "state", o.state.String(), "operation", "dry run")
	}

	report, err := o.pass(ctx, true)
	if err != nil {
		if report != nil {
			o.transition(ctx, StateFailed)
		}
		return report, err
	}
	o.transition(ctx, StateDryRunPreview)
	o.transition(ctx, StateAwaitingConfirmation)
	return report, nil
}

// ApplyPlan re-selects and re-plans against the current directory, then
// renames. Per-file failures are in the report; only setup errors and
// cancellation are returned.
func (o *Orchestrator) ApplyPlan(ctx context.Context) (*Report, error) {
	if o.state != StateConfigured && o.state != StateAwaitingConfirmation {
		return nil, errors.WithDetails(ErrInvalidState, "state", o.state.String(), "operation", "apply")
	}

	report, err := o.pass(ctx, false)
	if report == nil {
		return nil, err
	}
	// An interrupted apply still ends the run; renames already made stay.
	o.transition(ctx, StateDone)
	return report, err
}

// pass runs selection, planning and renaming once.
func (o *Orchestrator) pass(ctx context.Context, dryRun bool) (*Report, error) {
	log := zerolog.Ctx(ctx)

	if err := ctx.Err(); err != nil {
		o.transition(ctx, StateFailed)
		return nil, errors.WrapWith(err, ErrInterrupted)
	}

	o.transition(ctx, StatePlanning)
	files, err := o.selector.Select(ctx, o.cfg.selectorOptions())
	if err != nil {
		o.transition(ctx, StateFailed)
		return nil, errors.Errorf("selecting files: %w", err)
	}
	log.Debug().Int("files", len(files)).Bool("dry_run", dryRun).Msg("selection complete")

	for _, n := range o.notices {
		log.Warn().Str("mode", o.cfg.Mode.String()).Msg(n)
	}

	plans := o.strategy.Plan(ctx, files)
	if !dryRun {
		o.transition(ctx, StateApplying)
	}

	report := &Report{
		DryRun:   dryRun,
		Root:     o.cfg.Root,
		Strategy: o.cfg.Mode,
		Outcomes: make([]model.Outcome, 0, len(plans)),
		Notices:  append([]string(nil), o.notices...),
	}

	renamer := naming.NewRenamer(o.fs, dryRun, o.cfg.MaxAttempts)
	for _, plan := range plans {
		if err := ctx.Err(); err != nil {
			report.Interrupted = true
			log.Warn().Int("handled", len(report.Outcomes)).Int("total", len(plans)).Msg("run interrupted")
			return report, errors.WrapWith(err, ErrInterrupted)
		}

		outcome := renamer.Rename(plan.Entry.Path, naming.Target{
			Prefix: o.cfg.Prefix,
			Base:   plan.Base,
			Suffix: o.cfg.Suffix,
			Ext:    plan.Entry.Ext,
		})
		logOutcome(log, outcome)
		report.Outcomes = append(report.Outcomes, outcome)
	}
	return report, nil
}

func (o *Orchestrator) transition(ctx context.Context, next State) {
	zerolog.Ctx(ctx).Debug().Str("from", o.state.String()).Str("to", next.String()).Msg("state transition")
	o.state = next
}

func logOutcome(log *zerolog.Logger, o model.Outcome) {
	event := log.Debug()
	if o.Failed() {
		event = log.Warn().Err(o.Err)
	}
	event.Str("source", o.Source).Str("target", o.Target).Str("status", o.Status.String()).Msg("rename")
}
