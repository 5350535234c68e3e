package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is returned when an action is not allowed from the
// target's current status.
var ErrInvalidTransition = errors.New("invalid status transition")

// Transition computes the status that results from applying an action to a
// target in the given status. All status mutations route through this table;
// nothing sets the field directly.
//
// Abandoning a target is not a transition — it deletes the record and is
// handled at the store layer.
func Transition(current TargetStatus, action TargetAction) (TargetStatus, error) {
	switch action {
	case ActionActivate:
		if current == StatusResearching || current == StatusPaused {
			return StatusActive, nil
		}
	case ActionPause:
		if current == StatusResearching || current == StatusActive {
			return StatusPaused, nil
		}
	case ActionFinishPlanning:
		if current == StatusActive || current == StatusPlanningDone {
			return StatusPlanningDone, nil
		}
	case ActionReresearch:
		// Re-running research is always allowed and regresses the target to
		// the researching state, even from planning_done. Downstream plan
		// data is kept; only the display status moves back.
		return StatusResearching, nil
	}
	return "", fmt.Errorf("%w: cannot %s a %s target", ErrInvalidTransition, action, current)
}
