package service_test

import (
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

type decisionFixture struct {
	targets repository.TargetRepo
	logs    repository.ProgressLogRepo
	chat    repository.ChatRepo
	llm     *testutil.ScriptedLLM
	svc     service.DecisionService
}

func newDecisionFixture(t *testing.T) *decisionFixture {
	database := testutil.NewTestDB(t)
	f := &decisionFixture{
		targets: repository.NewSQLiteTargetRepo(database),
		logs:    repository.NewSQLiteProgressLogRepo(database),
		chat:    repository.NewSQLiteChatRepo(database),
		llm:     &testutil.ScriptedLLM{Responses: map[llm.TaskType]string{}},
	}
	f.svc = service.NewDecisionService(
		f.targets,
		intelligence.NewCoachService(f.llm),
		testutil.NewTestUoW(database),
	)
	return f
}

func (f *decisionFixture) addTarget(t *testing.T, name string, status domain.TargetStatus) {
	t.Helper()
	_, err := f.targets.UpsertByName(context.Background(), testUser, name)
	require.NoError(t, err)
	if status != domain.StatusResearching {
		require.NoError(t, f.targets.SetStatus(context.Background(), testUser, name, status))
	}
}

func TestActivate_FromResearching(t *testing.T) {
	f := newDecisionFixture(t)
	f.addTarget(t, "产品经理", domain.StatusResearching)

	require.NoError(t, f.svc.Activate(context.Background(), testUser, "产品经理"))
	got, err := f.targets.GetByName(context.Background(), testUser, "产品经理")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusActive, got.Status)
}

func TestActivate_RejectedFromPlanningDone(t *testing.T) {
	f := newDecisionFixture(t)
	f.addTarget(t, "产品经理", domain.StatusPlanningDone)

	err := f.svc.Activate(context.Background(), testUser, "产品经理")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	got, err := f.targets.GetByName(context.Background(), testUser, "产品经理")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPlanningDone, got.Status, "completed planning never regresses via activate")
}

func TestPauseAndReactivate_PreservesContent(t *testing.T) {
	f := newDecisionFixture(t)
	f.addTarget(t, "产品经理", domain.StatusActive)
	require.NoError(t, f.targets.SetValidationPlan(context.Background(), testUser, "产品经理", "访谈两位从业者"))

	require.NoError(t, f.svc.Pause(context.Background(), testUser, "产品经理"))
	require.NoError(t, f.svc.Activate(context.Background(), testUser, "产品经理"))

	got, err := f.targets.GetByName(context.Background(), testUser, "产品经理")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusActive, got.Status)
	assert.Equal(t, "访谈两位从业者", got.ValidationPlan, "pausing never clears accumulated content")
}

func TestAbandon_LeavesProgressLogs(t *testing.T) {
	f := newDecisionFixture(t)
	f.addTarget(t, "产品经理", domain.StatusActive)
	require.NoError(t, f.logs.Append(context.Background(), &domain.ProgressLog{
		ID: "l1", UserID: testUser, TargetName: "产品经理", Body: "完成了访谈",
	}))

	require.NoError(t, f.svc.Abandon(context.Background(), testUser, "产品经理"))

	_, err := f.targets.GetByName(context.Background(), testUser, "产品经理")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	logs, err := f.logs.List(context.Background(), testUser)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "产品经理", logs[0].TargetName)
}

func TestValidationPlan_GeneratedOnceThenCached(t *testing.T) {
	f := newDecisionFixture(t)
	f.addTarget(t, "产品经理", domain.StatusActive)
	f.llm.Responses[llm.TaskValidate] = "第一周：访谈两位从业者。"

	first, err := f.svc.ValidationPlan(context.Background(), testUser, "产品经理")
	require.NoError(t, err)
	assert.False(t, first.Cached)
	assert.Contains(t, first.Plan, "访谈")

	second, err := f.svc.ValidationPlan(context.Background(), testUser, "产品经理")
	require.NoError(t, err)
	assert.True(t, second.Cached)
	assert.Equal(t, first.Plan, second.Plan)
	assert.Len(t, f.llm.Requests, 1, "cached plan makes no second model call")

	msgs, err := f.chat.ListByMode(context.Background(), testUser, domain.ModeDecision)
	require.NoError(t, err)
	assert.Empty(t, msgs, "validation plan generation writes no chat history")
}

func TestValidationPlan_GeneratedBeforeActivation(t *testing.T) {
	f := newDecisionFixture(t)
	f.addTarget(t, "产品经理", domain.StatusResearching)
	f.llm.Responses[llm.TaskValidate] = "第一周：访谈两位从业者。"

	// Reality testing informs the activate decision, so a target fresh out
	// of research qualifies.
	result, err := f.svc.ValidationPlan(context.Background(), testUser, "产品经理")
	require.NoError(t, err)
	assert.False(t, result.Cached)
	assert.Contains(t, result.Plan, "访谈")
}

func TestValidationPlan_PausedTargetQualifies(t *testing.T) {
	f := newDecisionFixture(t)
	f.addTarget(t, "产品经理", domain.StatusPaused)
	f.llm.Responses[llm.TaskValidate] = "第一周：访谈两位从业者。"

	result, err := f.svc.ValidationPlan(context.Background(), testUser, "产品经理")
	require.NoError(t, err)
	assert.Contains(t, result.Plan, "访谈")
}

func TestValidationPlan_RejectedAfterPlanningDone(t *testing.T) {
	f := newDecisionFixture(t)
	f.addTarget(t, "产品经理", domain.StatusPlanningDone)

	_, err := f.svc.ValidationPlan(context.Background(), testUser, "产品经理")
	assert.ErrorIs(t, err, service.ErrTargetNotReady)
	assert.Empty(t, f.llm.Requests)
}

func TestValidationPlan_PlanningDoneStillServesCachedPlan(t *testing.T) {
	f := newDecisionFixture(t)
	f.addTarget(t, "产品经理", domain.StatusPlanningDone)
	require.NoError(t, f.targets.SetValidationPlan(context.Background(), testUser, "产品经理", "访谈两位从业者"))

	result, err := f.svc.ValidationPlan(context.Background(), testUser, "产品经理")
	require.NoError(t, err)
	assert.True(t, result.Cached)
	assert.Equal(t, "访谈两位从业者", result.Plan)
}

func TestEvaluationTargets_ExcludesCompletedPlanning(t *testing.T) {
	f := newDecisionFixture(t)
	f.addTarget(t, "产品经理", domain.StatusResearching)
	f.addTarget(t, "数据分析师", domain.StatusPaused)
	f.addTarget(t, "软件工程师", domain.StatusPlanningDone)

	open, err := f.svc.EvaluationTargets(context.Background(), testUser)
	require.NoError(t, err)
	require.Len(t, open, 2)
	names := []string{open[0].Name, open[1].Name}
	assert.ElementsMatch(t, []string{"产品经理", "数据分析师"}, names)

	all, err := f.svc.ListTargets(context.Background(), testUser)
	require.NoError(t, err)
	assert.Len(t, all, 3, "the full library still includes completed targets")
}

func TestSubmitFeedback_AppendsChatAndProgressLog(t *testing.T) {
	f := newDecisionFixture(t)
	f.addTarget(t, "产品经理", domain.StatusActive)
	f.llm.Responses[llm.TaskFeedback] = "建议继续投入。"

	analysis, err := f.svc.SubmitFeedback(context.Background(), testUser, "产品经理", "访谈后更有信心了")
	require.NoError(t, err)
	assert.Contains(t, analysis, "继续投入")

	msgs, err := f.chat.ListByMode(context.Background(), testUser, domain.ModeDecision)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Contains(t, msgs[0].Content, "这是我关于“产品经理”的检验反馈：")
	assert.Contains(t, msgs[0].Content, "访谈后更有信心了")
	assert.Equal(t, "建议继续投入。", msgs[1].Content)

	logs, err := f.logs.List(context.Background(), testUser)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "产品经理", logs[0].TargetName)
	assert.Equal(t, "【检验反馈】:\n访谈后更有信心了", logs[0].Body)
}
