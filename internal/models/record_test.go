package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSystolic(t *testing.T) {
	tests := []struct {
		bp     string
		want   float64
		wantOK bool
	}{
		{"120/80", 120, true},
		{"0/70", 0, true},
		{" 135 /90", 135, true},
		{"abc/90", 0, false},
		{"120", 0, false},
		{"", 0, false},
		{"/80", 0, false},
	}
	for _, tt := range tests {
		got, ok := HealthRecord{BloodPressure: tt.bp}.Systolic()
		assert.Equal(t, tt.wantOK, ok, "bp %q", tt.bp)
		if tt.wantOK {
			assert.InDelta(t, tt.want, got, 1e-9, "bp %q", tt.bp)
		}
	}
}
