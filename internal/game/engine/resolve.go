package engine

// Submit 存储某队本回合的行动。
// 返回值表示双方是否都已提交（即可以结算）。
// 锁定在修建远塔中的队伍只能提交 build_far，其余行动返回 ErrActionLocked。
func (s *State) Submit(team Team, action Action) (bothPending bool, err error) {
	switch s.Phase {
	case PhasePlaying:
	case PhaseFinished:
		return false, ErrGameFinished
	default:
		return false, ErrGameNotStarted
	}

	p := s.Players[team]
	if p == nil {
		return false, ErrGameNotStarted
	}
	if p.FarTowerLockTurns > 0 && action != ActionBuildFar {
		return false, ErrActionLocked
	}

	s.Pending[team] = &PendingAction{Action: action, Turn: s.Turn}
	return s.Pending[team.Opponent()] != nil, nil
}

// Resolve 原子结算一个回合，要求双方的行动都已提交。
//
// 行动按 west、east 的固定顺序作用于状态；侦察快照在两个行动
// 都作用完之后统一计算，因此侦察方看到的是对手本回合结算后的
// 资源值以及对手实际执行的行动。这个顺序依赖是规则的一部分。
func (s *State) Resolve() (west, east TurnSummary) {
	s.Turn++

	// 上回合的侦察结果只保留一个回合
	delete(s.Observe, TeamWest)
	delete(s.Observe, TeamEast)

	prev := s.Towers

	westAct := s.appliedAction(TeamWest)
	eastAct := s.appliedAction(TeamEast)

	west = s.applyAction(TeamWest, westAct)
	east = s.applyAction(TeamEast, eastAct)

	if westAct == ActionObserve {
		west.ObserveResult = s.recordObserve(TeamWest, eastAct)
	}
	if eastAct == ActionObserve {
		east.ObserveResult = s.recordObserve(TeamEast, westAct)
	}

	west.Turn, east.Turn = s.Turn, s.Turn

	// 每队只看到对手两侧塔高的净增量
	west.OpponentTowerChanges = TowerDeltas{
		WestSide: s.Towers.WestSide.TeamEastHeight - prev.WestSide.TeamEastHeight,
		EastSide: s.Towers.EastSide.TeamEastHeight - prev.EastSide.TeamEastHeight,
	}
	east.OpponentTowerChanges = TowerDeltas{
		WestSide: s.Towers.WestSide.TeamWestHeight - prev.WestSide.TeamWestHeight,
		EastSide: s.Towers.EastSide.TeamWestHeight - prev.EastSide.TeamWestHeight,
	}

	s.History[TeamWest] = append(s.History[TeamWest], west)
	s.History[TeamEast] = append(s.History[TeamEast], east)

	// 无论是否分出胜负，待结算行动都无条件清空
	delete(s.Pending, TeamWest)
	delete(s.Pending, TeamEast)

	if winner := s.checkVictory(); winner != nil {
		s.Winner = winner
		s.setPhase(PhaseFinished)
	}

	return west, east
}

// appliedAction 返回某队本回合实际执行的行动。
// 锁定中的队伍无论提交了什么都被强制执行 build_far。
func (s *State) appliedAction(team Team) Action {
	act := s.Pending[team].Action
	if s.Players[team].FarTowerLockTurns > 0 {
		return ActionBuildFar
	}
	return act
}

// applyAction 执行单队行动并返回结算摘要（侦察快照由 Resolve 统一填充）
func (s *State) applyAction(team Team, act Action) TurnSummary {
	p := s.Players[team]
	sum := TurnSummary{Action: act}

	switch act {
	case ActionWheelbarrow:
		p.Wheelbarrows++
		sum.ResourceChange = &ResourceChange{Wheelbarrows: 1}

	case ActionBricks:
		// 搬砖数量等于行动执行前已有的手推车数
		gained := p.Wheelbarrows
		p.Bricks += gained
		sum.ResourceChange = &ResourceChange{Bricks: gained}

	case ActionBuildNear:
		amount := p.Bricks
		if team == TeamWest {
			s.Towers.WestSide.TeamWestHeight += amount
		} else {
			s.Towers.EastSide.TeamEastHeight += amount
		}
		p.Bricks = 0
		sum.TowerChange = &TowerChange{Tower: TowerNear, Amount: amount}

	case ActionBuildFar:
		started := false
		if p.FarTowerLockTurns == 0 {
			// 首次触发：进入锁定，本回合塔高不变
			p.FarTowerLockTurns = s.rules.FarBuildTurns
			started = true
			sum.TowerChange = &TowerChange{Tower: TowerFar, Amount: 0}
		}
		// 锁每回合恰好递减一次，归零时把全部砖块灌入对方侧的远塔
		p.FarTowerLockTurns--
		if p.FarTowerLockTurns == 0 && !started {
			amount := p.Bricks
			if team == TeamWest {
				s.Towers.EastSide.TeamWestHeight += amount
			} else {
				s.Towers.WestSide.TeamEastHeight += amount
			}
			p.Bricks = 0
			sum.TowerChange = &TowerChange{Tower: TowerFar, Amount: amount}
		}

	case ActionObserve:
		// 侦察本身不改变任何资源或塔高
	}

	return sum
}

// recordObserve 生成并保存侦察快照，基于对手结算后的资源值
func (s *State) recordObserve(team Team, opponentAct Action) *ObserveResult {
	opponent := s.Players[team.Opponent()]
	result := ObserveResult{
		Wheelbarrows: opponent.Wheelbarrows,
		Bricks:       opponent.Bricks,
		Action:       opponentAct,
	}
	s.Observe[team] = &result

	summaryCopy := result
	return &summaryCopy
}

// checkVictory 胜利判定：某队在两侧的塔都严格高于对手时获胜。
// 任一侧打平都不产生胜者，两个条件互斥。
func (s *State) checkVictory() *Team {
	t := s.Towers

	westWins := t.WestSide.TeamWestHeight > t.WestSide.TeamEastHeight &&
		t.EastSide.TeamWestHeight > t.EastSide.TeamEastHeight
	eastWins := t.EastSide.TeamEastHeight > t.EastSide.TeamWestHeight &&
		t.WestSide.TeamEastHeight > t.WestSide.TeamWestHeight

	switch {
	case westWins:
		winner := TeamWest
		return &winner
	case eastWins:
		winner := TeamEast
		return &winner
	default:
		return nil
	}
}
