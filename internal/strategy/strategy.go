// Package strategy implements the naming strategies: each maps the ordered
// selection to proposed base names, before prefix, suffix, extension and
// sanitizing are applied by the renamer.
package strategy

import (
	"gitlab.com/tozd/go/errors"
)

// New builds the strategy for kind. It is called once per pass, at
// configuration time; invalid parameters are reported here.
func New(kind Kind, params Params, deps Dependencies) (Strategy, error) {
	if params.Digits < 0 {
		return nil, errors.WithDetails(ErrInvalidDigits, "digits", params.Digits)
	}

	switch kind {
	case KindSequential:
		return NewSequential(params.Start, params.Digits), nil
	case KindDate:
		d, err := NewDate(params.DateKind, params.DateFormat, params.Location)
		if err != nil {
			return nil, err
		}
		return d, nil
	case KindSize:
		return Size{}, nil
	case KindAuthor:
		return NewAuthor(deps.Author), nil
	case KindAISummary:
		return NewAISummary(deps.Content, deps.Summarizer, params.SummaryMaxChars), nil
	case KindAISort:
		return NewAISort(deps.Orderer, params.Start, params.Digits), nil
	default:
		return nil, errors.WithDetails(ErrUnknownKind, "kind", int(kind))
	}
}
