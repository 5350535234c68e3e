package domain

// ModeUnlocked reports whether a workflow mode is reachable given the
// current set of the user's career targets. It is a pure function of entity
// state and is recomputed on every render, never cached.
//
// Unlocking is not monotonic: abandoning or pausing every qualifying target
// re-locks the later modes.
func ModeUnlocked(mode Mode, targets []*CareerTarget) bool {
	switch mode {
	case ModeResearch:
		return true
	case ModeDecision:
		for _, t := range targets {
			switch t.Status {
			case StatusResearching, StatusActive, StatusPaused, StatusPlanningDone:
				return true
			}
		}
		return false
	case ModePlanning, ModeTrends:
		return anyActivated(targets)
	}
	return false
}

func anyActivated(targets []*CareerTarget) bool {
	for _, t := range targets {
		if t.Status.Activated() {
			return true
		}
	}
	return false
}

// UnlockHint returns the dashboard caption explaining how a locked mode is
// opened.
func UnlockHint(mode Mode) string {
	switch mode {
	case ModeDecision:
		return "完成模式一的目标研究后解锁"
	case ModePlanning:
		return "在模式二中激活一个目标后解锁"
	case ModeTrends:
		return "在模式三中完成计划后解锁"
	}
	return ""
}
