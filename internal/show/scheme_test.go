package show

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewScheme_TrimsTrailingDots(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
	}{
		{"no trailing dot", "MyShow"},
		{"one trailing dot", "MyShow."},
		{"many trailing dots", "MyShow..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScheme(tt.prefix, 2, 2)
			assert.Equal(t, "MyShow", s.Prefix)
			assert.Equal(t, "MyShow.S01E02.mkv", s.FileName(1, 2, "mkv"))
		})
	}
}

func TestScheme_FileName(t *testing.T) {
	tests := []struct {
		name         string
		seasonWidth  int
		episodeWidth int
		season       int
		episode      int
		ext          string
		expected     string
	}{
		{"default widths", 2, 2, 1, 3, "mkv", "MyShow.S01E03.mkv"},
		{"two digit values", 2, 2, 11, 42, "avi", "MyShow.S11E42.avi"},
		{"wide episodes", 2, 3, 2, 7, "mkv", "MyShow.S02E007.mkv"},
		{"wide seasons", 3, 2, 111, 1, "mp4", "MyShow.S111E01.mp4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScheme("MyShow", tt.seasonWidth, tt.episodeWidth)
			assert.Equal(t, tt.expected, s.FileName(tt.season, tt.episode, tt.ext))
		})
	}
}

func TestScheme_FileNameInjective(t *testing.T) {
	// Distinct (season, episode) pairs never collide under fixed widths.
	s := NewScheme("Show", 2, 2)
	seen := make(map[string]bool)
	for season := 1; season <= 5; season++ {
		for episode := 1; episode <= 20; episode++ {
			name := s.FileName(season, episode, "mkv")
			assert.False(t, seen[name], "duplicate name %s", name)
			seen[name] = true
		}
	}
}

func TestScheme_Sample(t *testing.T) {
	s := NewScheme("MyShow", 2, 2)
	assert.Equal(t, "MyShow.S00E00.<extension>", s.Sample())
}

func TestTrimTrailing(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		ch       byte
		expected string
	}{
		{"no trailing", "Show", '.', "Show"},
		{"single", "Show.", '.', "Show"},
		{"multiple", "Show..", '.', "Show"},
		{"slashes", "/show/path///", '/', "/show/path"},
		{"all trailing", "////", '/', ""},
		{"empty", "", '.', ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TrimTrailing(tt.text, tt.ch))
		})
	}
}
