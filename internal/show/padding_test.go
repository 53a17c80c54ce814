package show

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPadWidth(t *testing.T) {
	tests := []struct {
		max      int
		expected int
	}{
		{0, 2},
		{1, 2},
		{9, 2},
		{10, 2},
		{11, 2},
		{99, 2},
		{100, 3},
		{111, 3},
		{999, 3},
		{1000, 4},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("max %d", tt.max), func(t *testing.T) {
			assert.Equal(t, tt.expected, PadWidth(tt.max))
		})
	}
}

func TestPadWidth_Rendering(t *testing.T) {
	// Width 2 prints 9 as "09" and 11 as "11".
	assert.Equal(t, "09", fmt.Sprintf("%0*d", PadWidth(9), 9))
	assert.Equal(t, "11", fmt.Sprintf("%0*d", PadWidth(11), 11))
	assert.Equal(t, "111", fmt.Sprintf("%0*d", PadWidth(111), 111))
}
