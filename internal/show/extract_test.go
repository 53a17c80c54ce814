package show

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeasonNumber(t *testing.T) {
	tests := []struct {
		name     string
		folder   string
		expected int
	}{
		{"plain season folder", "Season 1", 1},
		{"two digit number", "Season 12", 12},
		{"number only", "3", 3},
		{"leading zeros", "Season 07", 7},
		{"number embedded in words", "The 4th Season", 4},
		{"large number", "Season 111", 111},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SeasonNumber(tt.folder)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSeasonNumber_Ambiguous(t *testing.T) {
	tests := []struct {
		name   string
		folder string
	}{
		{"no numbers", "Specials"},
		{"empty name", ""},
		{"two numbers", "Season 1 Extended 2"},
		{"two adjacent runs", "Season 1 Part 2"},
		{"three numbers", "1 2 3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SeasonNumber(tt.folder)
			assert.ErrorIs(t, err, ErrAmbiguousSeason)
		})
	}
}

func TestSeasonNumber_ErrorMessages(t *testing.T) {
	_, err := SeasonNumber("Extras")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no numbers found")

	_, err = SeasonNumber("Season 1 Extended 2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "multiple numbers found")
	assert.Contains(t, err.Error(), "1, 2")
}

func TestSeasonNumber_Overflow(t *testing.T) {
	// One digit run, but too large for int: a range error, not ambiguity.
	_, err := SeasonNumber("Season 99999999999999999999")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrAmbiguousSeason)
	assert.ErrorIs(t, err, strconv.ErrRange)
}

func TestExtension(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		expected string
	}{
		{"simple", "episode.mkv", "mkv"},
		{"multiple dots", "a.b.mkv", "mkv"},
		{"dotted release name", "Show.S01E01.1080p.mp4", "mp4"},
		{"hidden file", ".hidden", "hidden"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Extension(tt.filename)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestExtension_Missing(t *testing.T) {
	tests := []struct {
		name     string
		filename string
	}{
		{"no dot", "README"},
		{"trailing dot", "episode."},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Extension(tt.filename)
			assert.ErrorIs(t, err, ErrNoExtension)
		})
	}
}
