package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNext(t *testing.T) {
	tests := []struct {
		name       string
		alive      bool
		neighbours int
		want       bool
	}{
		{"alive underpopulated 0", true, 0, false},
		{"alive underpopulated 1", true, 1, false},
		{"alive survives 2", true, 2, true},
		{"alive survives 3", true, 3, true},
		{"alive overcrowded 4", true, 4, false},
		{"alive overcrowded 8", true, 8, false},
		{"dead stays 0", false, 0, false},
		{"dead stays 2", false, 2, false},
		{"dead born 3", false, 3, true},
		{"dead stays 4", false, 4, false},
		{"dead stays 8", false, 8, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Next(tt.alive, tt.neighbours))
		})
	}
}
