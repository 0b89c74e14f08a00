package strategy

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/Cyclone1070/renban/internal/model"
)

// summaryExtensions are the text-like types whose content is summarized.
var summaryExtensions = map[string]bool{
	".txt":  true,
	".md":   true,
	".py":   true,
	".html": true,
	".css":  true,
	".js":   true,
}

// AISummary names text files after an AI-generated summary of their content.
type AISummary struct {
	content    ContentReader
	summarizer Summarizer
	maxChars   int
}

// NewAISummary creates the summary strategy. A nil summarizer yields the
// unavailable placeholder for every file.
func NewAISummary(content ContentReader, summarizer Summarizer, maxChars int) *AISummary {
	if maxChars <= 0 {
		maxChars = DefaultSummaryMaxChars
	}
	return &AISummary{content: content, summarizer: summarizer, maxChars: maxChars}
}

func (s *AISummary) Kind() Kind { return KindAISummary }

func (s *AISummary) Plan(ctx context.Context, files []model.FileEntry) []model.RenamePlan {
	plans := make([]model.RenamePlan, len(files))
	for i, f := range files {
		plans[i] = model.RenamePlan{Entry: f, Base: s.summary(ctx, f)}
	}
	return plans
}

func (s *AISummary) summary(ctx context.Context, f model.FileEntry) string {
	log := zerolog.Ctx(ctx)

	if s.summarizer == nil || s.content == nil {
		return SummaryUnavailable
	}
	if !summaryExtensions[strings.ToLower(f.Ext)] {
		return SummaryNotSupported
	}

	// At most four bytes per rune, so this prefix holds maxChars runes.
	raw, err := s.content.ReadFileRange(f.Path, 0, int64(s.maxChars)*utf8.UTFMax)
	if err != nil {
		log.Debug().Err(err).Str("path", f.Path).Msg("reading content for summary failed")
		return SummaryAIError
	}
	text := truncateRunes(strings.ToValidUTF8(string(raw), ""), s.maxChars)
	if strings.TrimSpace(text) == "" {
		return SummaryEmptyFile
	}

	answer, err := s.summarizer.Summarize(ctx, text)
	if err != nil {
		log.Debug().Err(err).Str("path", f.Path).Msg("summarize failed")
		return SummaryAIError
	}
	token := strings.Join(strings.Fields(answer), "_")
	if token == "" {
		return SummaryAIError
	}
	return token
}

// truncateRunes returns at most n runes of s.
func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
