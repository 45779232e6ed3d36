package engine

import "errors"

// 结算引擎返回的错误，由上层映射为协议错误码
var (
	ErrGameNotStarted  = errors.New("game has not started")
	ErrGameFinished    = errors.New("game is already finished")
	ErrGameNotFinished = errors.New("game is not finished")
	ErrActionLocked    = errors.New("locked into build_far")
)

// Rules 对局规则参数
type Rules struct {
	InitialTowerHeight int // 己方近塔初始高度
	FarBuildTurns      int // 修建远塔需要锁定的回合数
}

// DefaultRules 返回默认规则
func DefaultRules() Rules {
	return Rules{
		InitialTowerHeight: 5,
		FarBuildTurns:      2,
	}
}

// State 一个房间的权威对局状态。
// State 本身不做并发控制，所有修改必须由持有它的 Room 串行化。
type State struct {
	rules Rules

	Phase   Phase
	Turn    int
	Towers  Towers
	Players map[Team]*Player
	Pending map[Team]*PendingAction
	Observe map[Team]*ObserveResult
	Winner  *Team
	History map[Team][]TurnSummary
	Rematch map[Team]bool
}

// NewState 创建初始对局状态
func NewState(rules Rules) *State {
	s := &State{
		rules:   rules,
		Phase:   PhaseLobby,
		Players: make(map[Team]*Player),
		Pending: make(map[Team]*PendingAction),
		Observe: make(map[Team]*ObserveResult),
		History: make(map[Team][]TurnSummary),
		Rematch: make(map[Team]bool),
	}
	s.Towers = s.baselineTowers()
	return s
}

// baselineTowers 初始塔高：己方近塔为 InitialTowerHeight，远塔为 0
func (s *State) baselineTowers() Towers {
	return Towers{
		WestSide: SideTowers{TeamWestHeight: s.rules.InitialTowerHeight},
		EastSide: SideTowers{TeamEastHeight: s.rules.InitialTowerHeight},
	}
}

// Bind 将玩家绑定到队伍。东队绑定后房间进入 waiting 阶段。
func (s *State) Bind(team Team, name string) {
	s.Players[team] = &Player{Name: name}
	if team == TeamEast {
		s.setPhase(PhaseWaiting)
	}
}

// Player 返回某队的玩家，未绑定时为 nil
func (s *State) Player(team Team) *Player {
	return s.Players[team]
}

// SetReady 标记某队已准备，返回是否双方都已准备
func (s *State) SetReady(team Team) bool {
	if p := s.Players[team]; p != nil {
		p.Ready = true
	}
	return s.BothReady()
}

// BothReady 双方是否都已绑定并准备
func (s *State) BothReady() bool {
	west, east := s.Players[TeamWest], s.Players[TeamEast]
	return west != nil && east != nil && west.Ready && east.Ready
}

// Start 开始对局：waiting → playing，回合计数从 1 开始
func (s *State) Start() {
	if s.setPhase(PhasePlaying) {
		s.Turn = 1
	}
}

// RequestRematch 记录某队的再来一局请求，返回是否双方都已请求
func (s *State) RequestRematch(team Team) (bool, error) {
	if s.Phase != PhaseFinished {
		return false, ErrGameNotFinished
	}
	s.Rematch[team] = true
	return s.Rematch[TeamWest] && s.Rematch[TeamEast], nil
}

// ResetForRematch 重置所有可变状态，保留队伍绑定与昵称。
// 双方 ready 直接置位，跳过等待室确认，阶段直接进入 playing。
// 回合基线与首局一致，从 1 开始。
func (s *State) ResetForRematch() {
	s.setPhase(PhasePlaying)
	s.Turn = 1
	s.Towers = s.baselineTowers()
	s.Pending = make(map[Team]*PendingAction)
	s.Observe = make(map[Team]*ObserveResult)
	s.Winner = nil
	s.History = make(map[Team][]TurnSummary)
	s.Rematch = make(map[Team]bool)

	for _, p := range s.Players {
		p.Wheelbarrows = 0
		p.Bricks = 0
		p.FarTowerLockTurns = 0
		p.Ready = true
	}
}

// setPhase 按跃迁表切换阶段，非法跃迁被忽略
func (s *State) setPhase(to Phase) bool {
	if !s.Phase.CanTransition(to) {
		return false
	}
	s.Phase = to
	return true
}
