package orchestrator

import (
	"reflect"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"gitlab.com/tozd/go/errors"

	"github.com/Cyclone1070/renban/internal/naming"
	"github.com/Cyclone1070/renban/internal/selector"
	"github.com/Cyclone1070/renban/internal/strategy"
)

// RunConfig is everything one run needs. Build it with DefaultRunConfig or
// DecodeRunConfig; it is not modified after New.
type RunConfig struct {
	Root             string   `mapstructure:"root"`
	Recursive        bool     `mapstructure:"recursive"`
	Extensions       []string `mapstructure:"extensions"`
	Include          []string `mapstructure:"include"`
	Exclude          []string `mapstructure:"exclude"`
	RespectGitignore bool     `mapstructure:"gitignore"`

	Prefix string        `mapstructure:"prefix"`
	Suffix string        `mapstructure:"suffix"`
	Mode   strategy.Kind `mapstructure:"mode"`

	Start       int               `mapstructure:"start"`
	Digits      int               `mapstructure:"digits"`
	DateKind    strategy.DateKind `mapstructure:"date_kind"`
	DateFormat  string            `mapstructure:"date_format"`
	SummaryMax  int               `mapstructure:"summary_max_chars"`
	MaxAttempts int               `mapstructure:"max_collision_attempts"`

	// Location formats date-mode timestamps; nil means time.Local.
	Location *time.Location `mapstructure:"-"`
}

// DefaultRunConfig returns a sequential, non-recursive run over root.
func DefaultRunConfig(root string) RunConfig {
	p := strategy.DefaultParams()
	return RunConfig{
		Root:        root,
		Mode:        strategy.KindSequential,
		Start:       p.Start,
		Digits:      p.Digits,
		DateKind:    p.DateKind,
		DateFormat:  p.DateFormat,
		SummaryMax:  p.SummaryMaxChars,
		MaxAttempts: naming.DefaultMaxCollisionAttempts,
	}
}

// DecodeRunConfig builds a RunConfig from a loosely typed option bag, as
// the CLI gathers it from the config file and flags. Unset keys keep their defaults;
// unknown keys are an error. "mode" accepts the names ParseKind accepts
// and list options accept comma separated strings.
func DecodeRunConfig(opts map[string]any) (RunConfig, error) {
	cfg := DefaultRunConfig("")

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			kindDecodeHook,
			mapstructure.StringToSliceHookFunc(","),
		),
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           &cfg,
	})
	if err != nil {
		return RunConfig{}, errors.WithStack(err)
	}
	if err := decoder.Decode(opts); err != nil {
		return RunConfig{}, errors.Errorf("%w: %w", ErrInvalidRunConfig, err)
	}
	return cfg, nil
}

var kindType = reflect.TypeOf(strategy.Kind(0))

func kindDecodeHook(from, to reflect.Type, data any) (any, error) {
	if to != kindType || from.Kind() != reflect.String {
		return data, nil
	}
	return strategy.ParseKind(data.(string))
}

// Validate reports every problem with the configuration at once.
// Glob patterns are checked by the selector when the pass starts.
func (c RunConfig) Validate() error {
	var errs []error

	if strings.TrimSpace(c.Root) == "" {
		errs = append(errs, ErrRootRequired)
	}
	if c.Mode.String() == "unknown" {
		errs = append(errs, errors.WithDetails(ErrInvalidMode, "mode", int(c.Mode)))
	}
	if c.Digits < 0 {
		errs = append(errs, errors.WithDetails(strategy.ErrInvalidDigits, "digits", c.Digits))
	}
	if c.MaxAttempts < 0 {
		errs = append(errs, errors.WithDetails(ErrInvalidAttempts, "max_collision_attempts", c.MaxAttempts))
	}

	return errors.Join(errs...)
}

func (c RunConfig) params() strategy.Params {
	return strategy.Params{
		Start:           c.Start,
		Digits:          c.Digits,
		DateKind:        c.DateKind,
		DateFormat:      c.DateFormat,
		SummaryMaxChars: c.SummaryMax,
		Location:        c.Location,
	}
}

func (c RunConfig) selectorOptions() selector.Options {
	return selector.Options{
		Root:             c.Root,
		Recursive:        c.Recursive,
		Extensions:       selector.NormalizeExtensions(c.Extensions),
		Include:          c.Include,
		Exclude:          c.Exclude,
		RespectGitignore: c.RespectGitignore,
	}
}
