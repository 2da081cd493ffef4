package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDoesCollide(t *testing.T) {
	tests := []struct {
		name                           string
		x1, y1, w1, h1, x2, y2, w2, h2 float64
		want                           bool
	}{
		{"overlapping interiors", 0, 0, 10, 10, 5, 5, 10, 10, true},
		{"identical", 0, 0, 10, 10, 0, 0, 10, 10, true},
		{"contained", 0, 0, 10, 10, 2, 2, 2, 2, true},
		{"sharing an edge only", 0, 0, 10, 10, 10, 0, 10, 10, false},
		{"sharing a corner only", 0, 0, 10, 10, 10, 10, 10, 10, false},
		{"disjoint", 0, 0, 10, 10, 20, 20, 5, 5, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DoesCollide(tt.x1, tt.y1, tt.w1, tt.h1, tt.x2, tt.y2, tt.w2, tt.h2)
			assert.Equal(t, tt.want, got)
			// Symmetric.
			assert.Equal(t, tt.want, DoesCollide(tt.x2, tt.y2, tt.w2, tt.h2, tt.x1, tt.y1, tt.w1, tt.h1))
		})
	}
}
