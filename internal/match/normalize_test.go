package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"src", "src"},
		{"SRC", "src"},
		{"Caption", "caption"},
		{"image_src", "imagesrc"},
		{"image-src", "imagesrc"},
		{"imageSrc", "imagesrc"},
		{"layout.columns", "layoutcolumns"},
		{" width ", "width"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeKey(tt.input))
		})
	}
}
