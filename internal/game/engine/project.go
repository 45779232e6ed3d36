package engine

// Resources 投影中自己一方的资源
type Resources struct {
	Wheelbarrows      int `json:"wheelbarrows"`
	Bricks            int `json:"bricks"`
	FarTowerLockTurns int `json:"far_tower_lock_turns"`
}

// Projection 某队视角下的对局状态视图。
// 两队的投影独立派生自同一份权威状态：塔高矩阵完全公开，
// 对手的待结算行动内容和对手的回合历史绝不出现在投影中，
// 对手是否已提交只暴露一个布尔值。
type Projection struct {
	RoomCode             string         `json:"room_code"`
	MyTeam               Team           `json:"my_team"`
	MyName               string         `json:"my_name"`
	OpponentName         string         `json:"opponent_name"`
	Phase                Phase          `json:"phase"`
	CurrentTurn          int            `json:"current_turn"`
	Towers               Towers         `json:"towers"`
	MyResources          Resources      `json:"my_resources"`
	MyPendingAction      *PendingAction `json:"my_pending_action,omitempty"`
	OpponentHasSubmitted bool           `json:"opponent_has_submitted"`
	LastTurnSummary      *TurnSummary   `json:"last_turn_summary,omitempty"`
	ObserveResult        *ObserveResult `json:"observe_result,omitempty"`
	Winner               *Team          `json:"winner,omitempty"`
	ActionHistory        []TurnSummary  `json:"action_history"`
}

// Project 派生某队的只读投影。RoomCode 由房间层填充。
func (s *State) Project(team Team) Projection {
	opponent := team.Opponent()

	proj := Projection{
		MyTeam:               team,
		Phase:                s.Phase,
		CurrentTurn:          s.Turn,
		Towers:               s.Towers,
		OpponentHasSubmitted: s.Pending[opponent] != nil,
		Winner:               s.Winner,
	}

	if p := s.Players[team]; p != nil {
		proj.MyName = p.Name
		proj.MyResources = Resources{
			Wheelbarrows:      p.Wheelbarrows,
			Bricks:            p.Bricks,
			FarTowerLockTurns: p.FarTowerLockTurns,
		}
	}
	if o := s.Players[opponent]; o != nil {
		proj.OpponentName = o.Name
	}

	if pending := s.Pending[team]; pending != nil {
		pendingCopy := *pending
		proj.MyPendingAction = &pendingCopy
	}
	if observe := s.Observe[team]; observe != nil {
		observeCopy := *observe
		proj.ObserveResult = &observeCopy
	}

	// 历史只含本队视角的摘要，拷贝一份避免共享底层数组
	if history := s.History[team]; len(history) > 0 {
		proj.ActionHistory = append([]TurnSummary(nil), history...)
		last := proj.ActionHistory[len(proj.ActionHistory)-1]
		proj.LastTurnSummary = &last
	}

	return proj
}
