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
			name:    "separate value form",
			args:    []string{"-a", "example.org", "-x", "ignored"},
			allowed: []string{"-a"},
			want:    []string{"-a", "example.org"},
		},
		{
			name:    "equals form",
			args:    []string{"--host=example.org", "--other=nope"},
			allowed: []string{"--host"},
			want:    []string{"--host=example.org"},
		},
		{
			name:    "flag without value before another flag",
			args:    []string{"-v", "-a", "example.org"},
			allowed: []string{"-v", "-a"},
			want:    []string{"-v", "-a", "example.org"},
		},
		{
			name:    "positional arguments are dropped",
			args:    []string{"movie.mp4", "-t", "tag1"},
			allowed: []string{"-t"},
			want:    []string{"-t", "tag1"},
		},
		{
			name:    "nothing allowed",
			args:    []string{"-a", "example.org"},
			allowed: nil,
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}

func TestPositional(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		valueFlags []string
		want       []string
	}{
		{
			name:       "trailing files after flags",
			args:       []string{"-t", "tag1", "a.mp4", "b.mp4"},
			valueFlags: []string{"-t"},
			want:       []string{"a.mp4", "b.mp4"},
		},
		{
			name:       "equals form does not consume the next arg",
			args:       []string{"--tags=tag1", "a.mp4"},
			valueFlags: []string{"--tags"},
			want:       []string{"a.mp4"},
		},
		{
			name:       "boolean flag keeps its neighbor",
			args:       []string{"-v", "a.mp4"},
			valueFlags: nil,
			want:       []string{"a.mp4"},
		},
		{
			name:       "only flags",
			args:       []string{"-t", "tag1"},
			valueFlags: []string{"-t"},
			want:       []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Positional(tt.args, tt.valueFlags))
		})
	}
}
