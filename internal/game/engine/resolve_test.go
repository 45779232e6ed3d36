package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newPlayingState returns a state with both teams bound, ready and playing.
func newPlayingState(t *testing.T) *State {
	t.Helper()
	s := NewState(DefaultRules())
	s.Bind(TeamWest, "Alice")
	s.Bind(TeamEast, "Bob")
	s.SetReady(TeamWest)
	s.SetReady(TeamEast)
	s.Start()
	require.Equal(t, PhasePlaying, s.Phase)
	require.Equal(t, 1, s.Turn)
	return s
}

// playTurn submits both actions and resolves.
func playTurn(t *testing.T, s *State, westAct, eastAct Action) (west, east TurnSummary) {
	t.Helper()
	_, err := s.Submit(TeamWest, westAct)
	require.NoError(t, err)
	both, err := s.Submit(TeamEast, eastAct)
	require.NoError(t, err)
	require.True(t, both, "both actions should be pending before resolve")
	return s.Resolve()
}

func TestNewState_Baseline(t *testing.T) {
	t.Parallel()

	s := NewState(DefaultRules())

	assert.Equal(t, PhaseLobby, s.Phase)
	assert.Equal(t, 0, s.Turn)
	// Each team starts with its near tower at 5, far towers at 0
	assert.Equal(t, 5, s.Towers.WestSide.TeamWestHeight)
	assert.Equal(t, 0, s.Towers.WestSide.TeamEastHeight)
	assert.Equal(t, 5, s.Towers.EastSide.TeamEastHeight)
	assert.Equal(t, 0, s.Towers.EastSide.TeamWestHeight)
	assert.Nil(t, s.Winner)
}

func TestSubmit_PhaseErrors(t *testing.T) {
	t.Parallel()

	s := NewState(DefaultRules())
	s.Bind(TeamWest, "Alice")

	// Lobby: game not started
	_, err := s.Submit(TeamWest, ActionWheelbarrow)
	assert.ErrorIs(t, err, ErrGameNotStarted)

	// Waiting: still not started
	s.Bind(TeamEast, "Bob")
	_, err = s.Submit(TeamWest, ActionWheelbarrow)
	assert.ErrorIs(t, err, ErrGameNotStarted)
}

func TestSubmit_AfterFinish(t *testing.T) {
	t.Parallel()

	s := newPlayingState(t)
	s.setPhase(PhaseFinished)

	_, err := s.Submit(TeamWest, ActionWheelbarrow)
	assert.ErrorIs(t, err, ErrGameFinished)
}

func TestSubmit_Resubmit_OverwritesPending(t *testing.T) {
	t.Parallel()

	s := newPlayingState(t)

	_, err := s.Submit(TeamWest, ActionWheelbarrow)
	require.NoError(t, err)
	_, err = s.Submit(TeamWest, ActionObserve)
	require.NoError(t, err)

	assert.Equal(t, ActionObserve, s.Pending[TeamWest].Action)
}

func TestResolve_WheelbarrowAndBricksEconomy(t *testing.T) {
	t.Parallel()

	s := newPlayingState(t)

	// Turn 1: both make wheelbarrows
	west, _ := playTurn(t, s, ActionWheelbarrow, ActionWheelbarrow)
	assert.Equal(t, 1, s.Players[TeamWest].Wheelbarrows)
	assert.Equal(t, &ResourceChange{Wheelbarrows: 1}, west.ResourceChange)

	// Turn 2: west hauls bricks (1 per wheelbarrow), east makes another wheelbarrow
	west, _ = playTurn(t, s, ActionBricks, ActionWheelbarrow)
	assert.Equal(t, 1, s.Players[TeamWest].Bricks)
	assert.Equal(t, &ResourceChange{Bricks: 1}, west.ResourceChange)
	assert.Equal(t, 2, s.Players[TeamEast].Wheelbarrows)

	// Turn 3: east hauls with 2 wheelbarrows
	_, east := playTurn(t, s, ActionWheelbarrow, ActionBricks)
	assert.Equal(t, 2, s.Players[TeamEast].Bricks)
	assert.Equal(t, &ResourceChange{Bricks: 2}, east.ResourceChange)
}

func TestResolve_BricksWithoutWheelbarrow_GainsNothing(t *testing.T) {
	t.Parallel()

	s := newPlayingState(t)

	west, _ := playTurn(t, s, ActionBricks, ActionWheelbarrow)
	assert.Equal(t, 0, s.Players[TeamWest].Bricks)
	assert.Equal(t, &ResourceChange{Bricks: 0}, west.ResourceChange)
}

func TestResolve_BuildNear_FlushesAllBricks(t *testing.T) {
	t.Parallel()

	s := newPlayingState(t)
	s.Players[TeamWest].Bricks = 3

	west, _ := playTurn(t, s, ActionBuildNear, ActionWheelbarrow)

	assert.Equal(t, 8, s.Towers.WestSide.TeamWestHeight)
	assert.Equal(t, 0, s.Players[TeamWest].Bricks)
	assert.Equal(t, &TowerChange{Tower: TowerNear, Amount: 3}, west.TowerChange)
}

func TestResolve_BuildNear_ZeroBricksIsNoop(t *testing.T) {
	t.Parallel()

	s := newPlayingState(t)

	west, _ := playTurn(t, s, ActionBuildNear, ActionWheelbarrow)

	assert.Equal(t, 5, s.Towers.WestSide.TeamWestHeight)
	assert.Equal(t, &TowerChange{Tower: TowerNear, Amount: 0}, west.TowerChange)
}

func TestResolve_BuildFar_TwoTurnFlush(t *testing.T) {
	t.Parallel()

	s := newPlayingState(t)
	s.Players[TeamWest].Bricks = 3

	// Turn 1 of the build: lock engages, nothing flushes yet
	west, _ := playTurn(t, s, ActionBuildFar, ActionWheelbarrow)
	assert.Equal(t, 1, s.Players[TeamWest].FarTowerLockTurns)
	assert.Equal(t, &TowerChange{Tower: TowerFar, Amount: 0}, west.TowerChange)
	assert.Equal(t, 0, s.Towers.EastSide.TeamWestHeight)
	assert.Equal(t, 3, s.Players[TeamWest].Bricks)

	// Turn 2: lock reaches zero, bricks flush into the far tower on east's side
	west, _ = playTurn(t, s, ActionBuildFar, ActionWheelbarrow)
	assert.Equal(t, 0, s.Players[TeamWest].FarTowerLockTurns)
	assert.Equal(t, &TowerChange{Tower: TowerFar, Amount: 3}, west.TowerChange)
	assert.Equal(t, 3, s.Towers.EastSide.TeamWestHeight)
	assert.Equal(t, 0, s.Players[TeamWest].Bricks)
}

func TestResolve_BuildFar_LockedTeamIsCoerced(t *testing.T) {
	t.Parallel()

	s := newPlayingState(t)
	s.Players[TeamWest].Bricks = 2

	playTurn(t, s, ActionBuildFar, ActionWheelbarrow)
	require.Equal(t, 1, s.Players[TeamWest].FarTowerLockTurns)

	// While locked, any non-build_far submission is rejected
	_, err := s.Submit(TeamWest, ActionWheelbarrow)
	assert.ErrorIs(t, err, ErrActionLocked)

	// build_far still goes through and completes the build
	west, _ := playTurn(t, s, ActionBuildFar, ActionWheelbarrow)
	assert.Equal(t, ActionBuildFar, west.Action)
	assert.Equal(t, 2, s.Towers.EastSide.TeamWestHeight)
}

func TestResolve_Observe_SeesPostResolutionValues(t *testing.T) {
	t.Parallel()

	s := newPlayingState(t)
	s.Players[TeamEast].Wheelbarrows = 2

	// East hauls bricks this turn; west's scout must see the values
	// AFTER east's action was applied, plus the action itself.
	west, _ := playTurn(t, s, ActionObserve, ActionBricks)

	require.NotNil(t, west.ObserveResult)
	assert.Equal(t, 2, west.ObserveResult.Wheelbarrows)
	assert.Equal(t, 2, west.ObserveResult.Bricks) // post-resolution, not 0
	assert.Equal(t, ActionBricks, west.ObserveResult.Action)

	// Snapshot is stored for the projection until the next resolve
	require.NotNil(t, s.Observe[TeamWest])
	assert.Equal(t, 2, s.Observe[TeamWest].Bricks)
}

func TestResolve_Observe_ReportsCoercedAction(t *testing.T) {
	t.Parallel()

	s := newPlayingState(t)

	// Lock east into build_far
	playTurn(t, s, ActionWheelbarrow, ActionBuildFar)
	require.Equal(t, 1, s.Players[TeamEast].FarTowerLockTurns)

	// West scouts: the reported action is the applied one (build_far)
	west, _ := playTurn(t, s, ActionObserve, ActionBuildFar)
	require.NotNil(t, west.ObserveResult)
	assert.Equal(t, ActionBuildFar, west.ObserveResult.Action)
}

func TestResolve_Observe_ClearedNextTurn(t *testing.T) {
	t.Parallel()

	s := newPlayingState(t)

	playTurn(t, s, ActionObserve, ActionWheelbarrow)
	require.NotNil(t, s.Observe[TeamWest])

	playTurn(t, s, ActionWheelbarrow, ActionWheelbarrow)
	assert.Nil(t, s.Observe[TeamWest], "observe snapshot should only survive one turn")
}

func TestResolve_MutualObserve(t *testing.T) {
	t.Parallel()

	s := newPlayingState(t)
	s.Players[TeamWest].Wheelbarrows = 1
	s.Players[TeamEast].Bricks = 4

	west, east := playTurn(t, s, ActionObserve, ActionObserve)

	require.NotNil(t, west.ObserveResult)
	require.NotNil(t, east.ObserveResult)
	assert.Equal(t, 4, west.ObserveResult.Bricks)
	assert.Equal(t, 1, east.ObserveResult.Wheelbarrows)
	assert.Equal(t, ActionObserve, west.ObserveResult.Action)
}

func TestResolve_PendingClearedUnconditionally(t *testing.T) {
	t.Parallel()

	s := newPlayingState(t)

	playTurn(t, s, ActionWheelbarrow, ActionWheelbarrow)
	assert.Nil(t, s.Pending[TeamWest])
	assert.Nil(t, s.Pending[TeamEast])
}

func TestResolve_TurnAndHistoryAdvance(t *testing.T) {
	t.Parallel()

	s := newPlayingState(t)

	west, _ := playTurn(t, s, ActionWheelbarrow, ActionWheelbarrow)
	assert.Equal(t, 2, s.Turn)
	assert.Equal(t, 2, west.Turn)
	assert.Len(t, s.History[TeamWest], 1)

	playTurn(t, s, ActionWheelbarrow, ActionWheelbarrow)
	assert.Equal(t, 3, s.Turn)
	assert.Len(t, s.History[TeamWest], 2)
	assert.Len(t, s.History[TeamEast], 2)
}

func TestResolve_OpponentTowerDeltas(t *testing.T) {
	t.Parallel()

	s := newPlayingState(t)
	s.Players[TeamEast].Bricks = 4

	// East builds near: west should see a +4 delta on east's side
	west, east := playTurn(t, s, ActionWheelbarrow, ActionBuildNear)
	assert.Equal(t, TowerDeltas{WestSide: 0, EastSide: 4}, west.OpponentTowerChanges)
	assert.Equal(t, TowerDeltas{WestSide: 0, EastSide: 0}, east.OpponentTowerChanges)
}

func TestResolve_TowersAreMonotonic(t *testing.T) {
	t.Parallel()

	s := newPlayingState(t)
	s.Players[TeamWest].Bricks = 2
	s.Players[TeamEast].Bricks = 3

	before := s.Towers
	playTurn(t, s, ActionBuildNear, ActionBuildFar)
	playTurn(t, s, ActionWheelbarrow, ActionBuildFar)

	after := s.Towers
	assert.GreaterOrEqual(t, after.WestSide.TeamWestHeight, before.WestSide.TeamWestHeight)
	assert.GreaterOrEqual(t, after.WestSide.TeamEastHeight, before.WestSide.TeamEastHeight)
	assert.GreaterOrEqual(t, after.EastSide.TeamWestHeight, before.EastSide.TeamWestHeight)
	assert.GreaterOrEqual(t, after.EastSide.TeamEastHeight, before.EastSide.TeamEastHeight)
}

func TestVictory_RequiresStrictLeadOnBothSides(t *testing.T) {
	t.Parallel()

	s := newPlayingState(t)

	// West completes a far build taller than east's near tower,
	// while west's near tower still leads on its own side.
	s.Players[TeamWest].Bricks = 6
	playTurn(t, s, ActionBuildFar, ActionWheelbarrow)
	playTurn(t, s, ActionBuildFar, ActionWheelbarrow)

	// West side: 5 vs 0, east side: 6 vs 5 — strict lead on both
	require.NotNil(t, s.Winner)
	assert.Equal(t, TeamWest, *s.Winner)
	assert.Equal(t, PhaseFinished, s.Phase)
}

func TestVictory_TieOnOneSideIsNotAWin(t *testing.T) {
	t.Parallel()

	s := newPlayingState(t)

	// Far build equal to the opponent's near tower: 5 vs 5 is a tie
	s.Players[TeamWest].Bricks = 5
	playTurn(t, s, ActionBuildFar, ActionWheelbarrow)
	playTurn(t, s, ActionBuildFar, ActionWheelbarrow)

	assert.Nil(t, s.Winner)
	assert.Equal(t, PhasePlaying, s.Phase)
}

func TestVictory_WinnersAreMutuallyExclusive(t *testing.T) {
	t.Parallel()

	s := newPlayingState(t)

	// Both teams complete far builds the same turn; east's is taller,
	// but east can only win if it leads strictly on BOTH sides.
	s.Players[TeamWest].Bricks = 6
	s.Players[TeamEast].Bricks = 7
	playTurn(t, s, ActionBuildFar, ActionBuildFar)
	playTurn(t, s, ActionBuildFar, ActionBuildFar)

	// West side: west 5 vs east 7 → east leads; east side: east 5 vs west 6 → west leads.
	// Neither team leads on both sides, so there is no winner.
	assert.Nil(t, s.Winner)
	assert.Equal(t, PhasePlaying, s.Phase)
}

func TestRematch_ResetsToFreshGame(t *testing.T) {
	t.Parallel()

	s := newPlayingState(t)

	// Finish a game
	s.Players[TeamWest].Bricks = 6
	playTurn(t, s, ActionBuildFar, ActionWheelbarrow)
	playTurn(t, s, ActionBuildFar, ActionWheelbarrow)
	require.Equal(t, PhaseFinished, s.Phase)

	both, err := s.RequestRematch(TeamWest)
	require.NoError(t, err)
	assert.False(t, both)
	both, err = s.RequestRematch(TeamEast)
	require.NoError(t, err)
	assert.True(t, both)

	s.ResetForRematch()

	assert.Equal(t, PhasePlaying, s.Phase)
	assert.Equal(t, 1, s.Turn)
	assert.Equal(t, s.baselineTowers(), s.Towers)
	assert.Nil(t, s.Winner)
	assert.Empty(t, s.History[TeamWest])
	assert.Empty(t, s.Rematch)
	for _, team := range []Team{TeamWest, TeamEast} {
		p := s.Players[team]
		assert.Equal(t, 0, p.Wheelbarrows)
		assert.Equal(t, 0, p.Bricks)
		assert.Equal(t, 0, p.FarTowerLockTurns)
		assert.True(t, p.Ready)
	}
}

func TestRematch_BeforeFinishIsRejected(t *testing.T) {
	t.Parallel()

	s := newPlayingState(t)

	_, err := s.RequestRematch(TeamWest)
	assert.ErrorIs(t, err, ErrGameNotFinished)
}

func TestPhase_TransitionTable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		from, to Phase
		allowed  bool
	}{
		{PhaseLobby, PhaseWaiting, true},
		{PhaseWaiting, PhasePlaying, true},
		{PhasePlaying, PhaseFinished, true},
		{PhaseFinished, PhasePlaying, true},
		{PhaseLobby, PhasePlaying, false},
		{PhaseWaiting, PhaseFinished, false},
		{PhaseFinished, PhaseLobby, false},
		{PhasePlaying, PhaseWaiting, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.allowed, tt.from.CanTransition(tt.to), "%s → %s", tt.from, tt.to)
	}
}
