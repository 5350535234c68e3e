package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructuredPlan_Absent(t *testing.T) {
	target := &CareerTarget{Name: "数据分析师"}
	_, ok := target.StructuredPlan()
	assert.False(t, ok)
}

func TestStructuredPlan_LegacyStringTreatedAsAbsent(t *testing.T) {
	// Early records stored the raw LLM text as a JSON string. Those must not
	// count as an existing plan, or the user can never generate a real one.
	target := &CareerTarget{ActionPlan: json.RawMessage(`"foo"`)}
	_, ok := target.StructuredPlan()
	assert.False(t, ok)
}

func TestStructuredPlan_MalformedTreatedAsAbsent(t *testing.T) {
	target := &CareerTarget{ActionPlan: json.RawMessage(`{"academic": 12`)}
	_, ok := target.StructuredPlan()
	assert.False(t, ok)
}

func TestStructuredPlan_RoundTrip(t *testing.T) {
	plan := ActionPlan{
		PlanDetails: "总体描述",
		Academic:    "学业清单",
		Practice:    "实习清单",
		Skills:      "社团清单",
	}
	raw, err := json.Marshal(plan)
	require.NoError(t, err)

	target := &CareerTarget{ActionPlan: raw}
	got, ok := target.StructuredPlan()
	require.True(t, ok)
	assert.Equal(t, plan, *got)
}
