package gemini

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Cyclone1070/renban/internal/provider"
)

const summaryInstruction = "You name files. Reply with a very short English summary of 3 to 5 words " +
	"that works as a file name. Reply with the words only, no punctuation, quotes or extension."

const orderInstruction = "You sort files into a logical order. Reply only with the index numbers " +
	"separated by commas, for example: 3,0,1,2"

func summaryPrompt(content string) string {
	return fmt.Sprintf("Summarize the following file content:\n\n---\n%s\n---", content)
}

func orderPrompt(labels []string) string {
	return "Sort the following files into a logical order:\n\n" + strings.Join(labels, "\n")
}

// ParseIndexList parses a comma separated list of integers such as "3, 0,1".
// Surrounding whitespace, brackets and a trailing period are tolerated.
func ParseIndexList(answer string) ([]int, error) {
	trimmed := strings.Trim(strings.TrimSpace(answer), "[]().` \n")
	if trimmed == "" {
		return nil, &provider.ProviderError{
			Code:    provider.ErrorCodeMalformed,
			Message: "no indices in response",
		}
	}

	fields := strings.Split(trimmed, ",")
	indices := make([]int, 0, len(fields))
	for _, field := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, &provider.ProviderError{
				Code:       provider.ErrorCodeMalformed,
				Message:    fmt.Sprintf("invalid index %q", strings.TrimSpace(field)),
				Underlying: err,
			}
		}
		indices = append(indices, n)
	}
	return indices, nil
}
