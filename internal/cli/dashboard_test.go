package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yunqiwei/licheng/internal/domain"
	"github.com/yunqiwei/licheng/internal/intelligence"
	"github.com/yunqiwei/licheng/internal/llm"
	"github.com/yunqiwei/licheng/internal/repository"
	"github.com/yunqiwei/licheng/internal/service"
	"github.com/yunqiwei/licheng/internal/testutil"
)

func newTestApp(t *testing.T) (*App, repository.TargetRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)
	targets := repository.NewSQLiteTargetRepo(database)
	chat := repository.NewSQLiteChatRepo(database)
	scripted := &testutil.ScriptedLLM{Responses: map[llm.TaskType]string{}}

	app := &App{
		UserID:        "main_user",
		Decision:      service.NewDecisionService(targets, intelligence.NewCoachService(scripted), testutil.NewTestUoW(database)),
		History:       service.NewHistoryService(chat, targets),
		IsInteractive: func() bool { return false },
	}
	return app, targets
}

func TestDashboardView_LockedModesShowHints(t *testing.T) {
	m := dashboardModel{unlocked: map[domain.Mode]bool{domain.ModeResearch: true}}
	view := m.View()

	assert.Contains(t, view, "模式一：目标研究")
	assert.Contains(t, view, "已解锁")
	assert.Contains(t, view, domain.UnlockHint(domain.ModeDecision))
	assert.Contains(t, view, "暂无目标")
}

func TestDashboardView_ListsTargets(t *testing.T) {
	m := dashboardModel{
		unlocked: map[domain.Mode]bool{domain.ModeResearch: true, domain.ModeDecision: true},
		targets: []*domain.CareerTarget{
			{Name: "产品经理", Status: domain.StatusActive},
			{Name: "数据分析师", Status: domain.StatusPaused},
		},
	}
	view := m.View()
	assert.Contains(t, view, "产品经理")
	assert.Contains(t, view, "数据分析师")
}

func TestRequireMode_BlocksLockedMode(t *testing.T) {
	app, _ := newTestApp(t)

	err := requireMode(context.Background(), app, domain.ModePlanning)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "尚未解锁")
	assert.Contains(t, err.Error(), domain.UnlockHint(domain.ModePlanning))
}

func TestRequireMode_PassesWhenUnlocked(t *testing.T) {
	app, targets := newTestApp(t)
	_, err := targets.UpsertByName(context.Background(), "main_user", "产品经理")
	require.NoError(t, err)

	assert.NoError(t, requireMode(context.Background(), app, domain.ModeDecision))
}

func TestTargetListCmd_EmptyLibrary(t *testing.T) {
	app, _ := newTestApp(t)

	cmd := newTargetListCmd(app)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	require.NoError(t, cmd.Execute())
}

func TestSplitTraits_MixedSeparators(t *testing.T) {
	got := splitTraits("好奇心强，擅长沟通, 动手能力强 ,")
	assert.Equal(t, []string{"好奇心强", "擅长沟通", "动手能力强"}, got)
}

func TestRenderHistory_StripsAssistantPayload(t *testing.T) {
	msgs := []*domain.ChatMessage{
		{Role: domain.RoleUser, Content: "这是我的个人画像，请分析并生成职业建议。"},
		{Role: domain.RoleAssistant, Content: "建议如下。\n```json\n{\"summary\": \"x\"}\n```"},
	}
	out := renderHistory(domain.ModeResearch, msgs)

	assert.Contains(t, out, "这是我的个人画像")
	assert.Contains(t, out, "建议如下。")
	assert.NotContains(t, out, "```json")
	assert.NotContains(t, out, "summary")
}
