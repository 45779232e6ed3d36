package engine

// Team 比赛双方之一
type Team string

const (
	TeamWest Team = "west"
	TeamEast Team = "east"
)

// Opponent 返回对方队伍
func (t Team) Opponent() Team {
	if t == TeamWest {
		return TeamEast
	}
	return TeamWest
}

// Valid 检查队伍取值是否合法
func (t Team) Valid() bool {
	return t == TeamWest || t == TeamEast
}

// Phase 房间所处阶段
type Phase string

const (
	PhaseLobby    Phase = "lobby"    // 仅房主在房间中
	PhaseWaiting  Phase = "waiting"  // 双方到齐，等待准备
	PhasePlaying  Phase = "playing"  // 对局进行中
	PhaseFinished Phase = "finished" // 已分出胜负
)

// phaseTransitions 合法的阶段跃迁表，不在表中的跃迁会被忽略
var phaseTransitions = map[Phase]map[Phase]bool{
	PhaseLobby:    {PhaseWaiting: true},
	PhaseWaiting:  {PhasePlaying: true},
	PhasePlaying:  {PhaseFinished: true},
	PhaseFinished: {PhasePlaying: true}, // 仅限再来一局
}

// CanTransition 检查阶段跃迁是否合法
func (p Phase) CanTransition(to Phase) bool {
	return phaseTransitions[p][to]
}

// SideTowers 棋盘一侧的两座塔，按归属队伍分别计高
type SideTowers struct {
	TeamWestHeight int `json:"team_west_height"`
	TeamEastHeight int `json:"team_east_height"`
}

// Towers 四座塔的完整高度矩阵，对双方完全公开
type Towers struct {
	WestSide SideTowers `json:"west_side"`
	EastSide SideTowers `json:"east_side"`
}

// Player 队伍的资源状态
type Player struct {
	Name              string // 加入时固定的昵称
	Ready             bool   // 开局准备标记
	Wheelbarrows      int    // 手推车数量
	Bricks            int    // 砖块数量
	FarTowerLockTurns int    // >0 表示被锁定在修建远塔中
}

// PendingAction 某队在当前回合已提交、尚未结算的行动
type PendingAction struct {
	Action Action `json:"action"`
	Turn   int    `json:"turn"`
}

// ObserveResult 一次侦察获得的对手情报快照
type ObserveResult struct {
	Wheelbarrows int    `json:"wheelbarrows"`
	Bricks       int    `json:"bricks"`
	Action       Action `json:"action"` // 对手本回合实际执行的行动
}

// ResourceChange 单回合的资源变化
type ResourceChange struct {
	Wheelbarrows int `json:"wheelbarrows,omitempty"`
	Bricks       int `json:"bricks,omitempty"`
}

// TowerChange 单回合的塔高变化
type TowerChange struct {
	Tower  TowerKind `json:"tower"`
	Amount int       `json:"amount"`
}

// TowerDeltas 对手在两侧塔上的本回合净增量（叙事字段，塔高本身公开）
type TowerDeltas struct {
	WestSide int `json:"west_side"`
	EastSide int `json:"east_side"`
}

// TurnSummary 某队视角下一个回合的结算摘要
type TurnSummary struct {
	Turn                 int             `json:"turn"`
	Action               Action          `json:"action"`
	ResourceChange       *ResourceChange `json:"resource_change,omitempty"`
	TowerChange          *TowerChange    `json:"tower_change,omitempty"`
	ObserveResult        *ObserveResult  `json:"observe_result,omitempty"`
	OpponentTowerChanges TowerDeltas     `json:"opponent_tower_changes"`
}
