package gallery

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckVersion(t *testing.T) {
	tests := []struct {
		version string
		ok      bool
	}{
		{"1", true},
		{"1.0", true},
		{"1.0.0", true},
		{"1.4.2", true},
		{"0.9.0", false},
		{"2.0.0", false},
		{"one", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			err := CheckVersion(tt.version)
			if tt.ok {
				assert.NoError(t, err)
				return
			}

			assert.ErrorIs(t, err, ErrUnsupportedVersion)
		})
	}
}
