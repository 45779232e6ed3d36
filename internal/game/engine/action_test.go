package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    Action
		wantErr bool
	}{
		{"wheelbarrow", ActionWheelbarrow, false},
		{"bricks", ActionBricks, false},
		{"build_near", ActionBuildNear, false},
		{"build_far", ActionBuildFar, false},
		{"observe", ActionObserve, false},
		{"", "", true},
		{"fly", "", true},
		{"Observe", "", true}, // case sensitive
	}

	for _, tt := range tests {
		got, err := ParseAction(tt.input)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.input)
		} else {
			assert.NoError(t, err, "input %q", tt.input)
			assert.Equal(t, tt.want, got)
		}
	}
}

func TestTeamOpponent(t *testing.T) {
	t.Parallel()

	assert.Equal(t, TeamEast, TeamWest.Opponent())
	assert.Equal(t, TeamWest, TeamEast.Opponent())
	assert.True(t, TeamWest.Valid())
	assert.False(t, Team("north").Valid())
}
