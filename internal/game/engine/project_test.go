package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProject_PerspectiveFields(t *testing.T) {
	t.Parallel()

	s := newPlayingState(t)
	s.Players[TeamWest].Wheelbarrows = 2
	s.Players[TeamWest].Bricks = 1

	proj := s.Project(TeamWest)

	assert.Equal(t, TeamWest, proj.MyTeam)
	assert.Equal(t, "Alice", proj.MyName)
	assert.Equal(t, "Bob", proj.OpponentName)
	assert.Equal(t, PhasePlaying, proj.Phase)
	assert.Equal(t, 1, proj.CurrentTurn)
	assert.Equal(t, Resources{Wheelbarrows: 2, Bricks: 1}, proj.MyResources)
	assert.Equal(t, s.Towers, proj.Towers)
}

func TestProject_NeverLeaksOpponentPendingAction(t *testing.T) {
	t.Parallel()

	s := newPlayingState(t)

	_, err := s.Submit(TeamEast, ActionBuildFar)
	require.NoError(t, err)

	proj := s.Project(TeamWest)

	// West only learns THAT east submitted, never WHAT
	assert.True(t, proj.OpponentHasSubmitted)
	assert.Nil(t, proj.MyPendingAction)

	east := s.Project(TeamEast)
	require.NotNil(t, east.MyPendingAction)
	assert.Equal(t, ActionBuildFar, east.MyPendingAction.Action)
	assert.False(t, east.OpponentHasSubmitted)
}

func TestProject_HistoryIsOwnPerspectiveOnly(t *testing.T) {
	t.Parallel()

	s := newPlayingState(t)

	playTurn(t, s, ActionWheelbarrow, ActionObserve)
	playTurn(t, s, ActionBricks, ActionWheelbarrow)

	proj := s.Project(TeamWest)
	require.Len(t, proj.ActionHistory, 2)
	assert.Equal(t, ActionWheelbarrow, proj.ActionHistory[0].Action)
	assert.Equal(t, ActionBricks, proj.ActionHistory[1].Action)
	require.NotNil(t, proj.LastTurnSummary)
	assert.Equal(t, ActionBricks, proj.LastTurnSummary.Action)

	// East's scout result lives only in east's history
	east := s.Project(TeamEast)
	require.Len(t, east.ActionHistory, 2)
	assert.NotNil(t, east.ActionHistory[0].ObserveResult)
	assert.Nil(t, proj.ActionHistory[0].ObserveResult)
}

func TestProject_ObserveResultOnlyForScout(t *testing.T) {
	t.Parallel()

	s := newPlayingState(t)

	playTurn(t, s, ActionObserve, ActionWheelbarrow)

	west := s.Project(TeamWest)
	require.NotNil(t, west.ObserveResult)
	assert.Equal(t, ActionWheelbarrow, west.ObserveResult.Action)

	east := s.Project(TeamEast)
	assert.Nil(t, east.ObserveResult)
}

func TestProject_DefensiveCopies(t *testing.T) {
	t.Parallel()

	s := newPlayingState(t)
	playTurn(t, s, ActionWheelbarrow, ActionWheelbarrow)

	proj := s.Project(TeamWest)
	proj.ActionHistory[0].Action = ActionObserve
	require.NotNil(t, proj.LastTurnSummary)
	proj.LastTurnSummary.Action = ActionObserve

	// Mutating the projection must not touch the authoritative state
	assert.Equal(t, ActionWheelbarrow, s.History[TeamWest][0].Action)
}

func TestProject_WinnerVisibleToBothTeams(t *testing.T) {
	t.Parallel()

	s := newPlayingState(t)
	s.Players[TeamWest].Bricks = 6
	playTurn(t, s, ActionBuildFar, ActionWheelbarrow)
	playTurn(t, s, ActionBuildFar, ActionWheelbarrow)
	require.NotNil(t, s.Winner)

	for _, team := range []Team{TeamWest, TeamEast} {
		proj := s.Project(team)
		require.NotNil(t, proj.Winner)
		assert.Equal(t, TeamWest, *proj.Winner)
		assert.Equal(t, PhaseFinished, proj.Phase)
	}
}
