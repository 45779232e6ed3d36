package engine

import "fmt"

// Action 玩家每回合可提交的行动
type Action string

const (
	ActionWheelbarrow Action = "wheelbarrow" // 制作手推车
	ActionBricks      Action = "bricks"      // 搬砖（数量等于已有手推车数）
	ActionBuildNear   Action = "build_near"  // 修建己方近塔
	ActionBuildFar    Action = "build_far"   // 修建对方远塔（需锁定多回合）
	ActionObserve     Action = "observe"     // 侦察对手
)

// ParseAction 解析行动字符串，未知行动返回错误
func ParseAction(s string) (Action, error) {
	switch a := Action(s); a {
	case ActionWheelbarrow, ActionBricks, ActionBuildNear, ActionBuildFar, ActionObserve:
		return a, nil
	default:
		return "", fmt.Errorf("unknown action: %q", s)
	}
}

// TowerKind 塔的相对位置（以行动方视角）
type TowerKind string

const (
	TowerNear TowerKind = "near" // 己方近塔
	TowerFar  TowerKind = "far"  // 对方远塔
)
