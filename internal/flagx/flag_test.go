package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "separate value kept",
			args:    []string{"-d", "health.db", "-x", "junk"},
			allowed: []string{"-d"},
			want:    []string{"-d", "health.db"},
		},
		{
			name:    "equals form kept",
			args:    []string{"--database=health.db", "-x=1"},
			allowed: []string{"--database"},
			want:    []string{"--database=health.db"},
		},
		{
			name:    "flag without value kept alone",
			args:    []string{"-d", "-g", "logs"},
			allowed: []string{"-d"},
			want:    []string{"-d"},
		},
		{
			name:    "nothing allowed",
			args:    []string{"-a", "b"},
			allowed: nil,
			want:    []string{},
		},
		{
			name:    "empty args",
			args:    nil,
			allowed: []string{"-d"},
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}
