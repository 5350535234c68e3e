package domain

// TargetStatus is the lifecycle state of a career target.
type TargetStatus string

const (
	StatusResearching  TargetStatus = "researching"
	StatusActive       TargetStatus = "active"
	StatusPaused       TargetStatus = "paused"
	StatusPlanningDone TargetStatus = "planning_done"
)

// Activated reports whether the target has been committed to, including
// targets that already finished planning.
func (s TargetStatus) Activated() bool {
	return s == StatusActive || s == StatusPlanningDone
}

// TargetAction is a user decision applied to a career target.
type TargetAction string

const (
	ActionActivate       TargetAction = "activate"
	ActionPause          TargetAction = "pause"
	ActionFinishPlanning TargetAction = "finish_planning"
	ActionReresearch     TargetAction = "reresearch"
)

// Mode identifies one of the four workflow stages. The string values double
// as chat-history bucket keys in storage.
type Mode string

const (
	ModeResearch Mode = "mode1"
	ModeDecision Mode = "mode2"
	ModePlanning Mode = "mode3"
	ModeTrends   Mode = "mode4"
)

// AllModes lists the four stages in workflow order.
var AllModes = []Mode{ModeResearch, ModeDecision, ModePlanning, ModeTrends}

// Title returns the user-facing name of the mode.
func (m Mode) Title() string {
	switch m {
	case ModeResearch:
		return "模式一：目标研究"
	case ModeDecision:
		return "模式二：决策与评估"
	case ModePlanning:
		return "模式三：计划与行动"
	case ModeTrends:
		return "模式四：未来发展因应"
	}
	return string(m)
}

// ChatRole distinguishes the two sides of a chat exchange.
type ChatRole string

const (
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
)
