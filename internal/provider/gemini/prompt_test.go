package gemini

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cyclone1070/renban/internal/provider"
)

func TestParseIndexList(t *testing.T) {
	tests := []struct {
		input string
		want  []int
	}{
		{"3,0,1,2", []int{3, 0, 1, 2}},
		{" 1 , 0 ", []int{1, 0}},
		{"[2, 1, 0]", []int{2, 1, 0}},
		{"0,1.", []int{0, 1}},
		{"7", []int{7}},
	}

	for _, tt := range tests {
		got, err := ParseIndexList(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}
}

func TestParseIndexList_Invalid_Malformed(t *testing.T) {
	for _, input := range []string{"", "   ", "a,b", "1,,2", "1;2"} {
		_, err := ParseIndexList(input)
		assert.ErrorIs(t, err, provider.ErrMalformedResponse, input)
	}
}
