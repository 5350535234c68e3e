package domain

import (
	"encoding/json"
	"strings"
	"time"
)

// CareerTarget is a candidate job or profession under consideration.
// Targets are unique per user by name (exact, case-sensitive match).
type CareerTarget struct {
	ID             string
	UserID         string
	Name           string
	Status         TargetStatus
	ResearchReport string
	ChartData      *ResearchChart
	ValidationPlan string
	// ActionPlan holds the raw stored payload. Older records may contain a
	// bare JSON string instead of an object; use StructuredPlan to read it.
	ActionPlan json.RawMessage
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ResearchChart is the visualization payload extracted from a research report.
type ResearchChart struct {
	SalaryRange     []SalaryBand  `json:"salary_range"`
	SkillImportance []SkillWeight `json:"skill_importance"`
}

// SalaryBand is a monthly salary range for one seniority level.
type SalaryBand struct {
	Level string  `json:"level"`
	Low   float64 `json:"low"`
	High  float64 `json:"high"`
}

// SkillWeight scores the importance of one skill for the target role (1-10).
type SkillWeight struct {
	Skill      string  `json:"skill"`
	Importance float64 `json:"importance"`
}

// ActionPlan is the three-part action blueprint produced in the planning mode.
type ActionPlan struct {
	PlanDetails string `json:"plan_details"`
	Academic    string `json:"academic"`
	Practice    string `json:"practice"`
	Skills      string `json:"skills"`
}

// StructuredPlan decodes the stored action plan. It returns false when no
// plan is stored, or when the stored payload is not a JSON object (legacy
// records stored a bare string; those count as absent).
func (t *CareerTarget) StructuredPlan() (*ActionPlan, bool) {
	raw := strings.TrimSpace(string(t.ActionPlan))
	if raw == "" || !strings.HasPrefix(raw, "{") {
		return nil, false
	}
	var plan ActionPlan
	if err := json.Unmarshal([]byte(raw), &plan); err != nil {
		return nil, false
	}
	return &plan, true
}
