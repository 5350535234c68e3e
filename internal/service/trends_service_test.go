package service_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yunqiwei/licheng/internal/domain"
	"github.com/yunqiwei/licheng/internal/intelligence"
	"github.com/yunqiwei/licheng/internal/llm"
	"github.com/yunqiwei/licheng/internal/repository"
	"github.com/yunqiwei/licheng/internal/search"
	"github.com/yunqiwei/licheng/internal/service"
	"github.com/yunqiwei/licheng/internal/testutil"
)

type trendsFixture struct {
	targets  repository.TargetRepo
	chat     repository.ChatRepo
	llm      *testutil.ScriptedLLM
	searcher *testutil.FakeSearch
	svc      service.TrendsService
}

func newTrendsFixture(t *testing.T) *trendsFixture {
	database := testutil.NewTestDB(t)
	f := &trendsFixture{
		targets:  repository.NewSQLiteTargetRepo(database),
		chat:     repository.NewSQLiteChatRepo(database),
		llm:      &testutil.ScriptedLLM{Responses: map[llm.TaskType]string{}},
		searcher: &testutil.FakeSearch{},
	}
	f.svc = service.NewTrendsService(
		f.targets,
		intelligence.NewNavigatorService(f.llm),
		f.searcher,
		testutil.NewTestUoW(database),
		zerolog.Nop(),
	)
	return f
}

func TestTrendsReport_ChatOnlyPersistence(t *testing.T) {
	f := newTrendsFixture(t)
	_, err := f.targets.UpsertByName(context.Background(), testUser, "产品经理")
	require.NoError(t, err)
	require.NoError(t, f.targets.SetStatus(context.Background(), testUser, "产品经理", domain.StatusActive))

	f.searcher.Snippets = map[string][]search.Snippet{
		`"产品经理" 技术趋势 2025`: {{Text: "AI 工具正在重塑产品工作流", Link: "https://example.com/trend"}},
	}
	f.llm.Responses[llm.TaskTrends] = "未来三年，产品经理将……"

	before, err := f.targets.GetByName(context.Background(), testUser, "产品经理")
	require.NoError(t, err)

	report, err := f.svc.Report(context.Background(), testUser, "产品经理")
	require.NoError(t, err)
	assert.Contains(t, report, "未来三年")
	assert.Len(t, f.searcher.Queries, 3)
	assert.Contains(t, f.llm.Requests[0].UserPrompt, "AI 工具正在重塑产品工作流")
	assert.Contains(t, f.llm.Requests[0].UserPrompt, "来源：https://example.com/trend", "trend findings cite their sources")

	after, err := f.targets.GetByName(context.Background(), testUser, "产品经理")
	require.NoError(t, err)
	assert.Equal(t, before.Status, after.Status)
	assert.Equal(t, before.ResearchReport, after.ResearchReport, "trends reports never touch the target row")

	msgs, err := f.chat.ListByMode(context.Background(), testUser, domain.ModeTrends)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "请为我的目标“产品经理”生成一份未来趋势洞察报告。", msgs[0].Content)
}

func TestTrendsReport_RequiresActivatedTarget(t *testing.T) {
	f := newTrendsFixture(t)
	_, err := f.targets.UpsertByName(context.Background(), testUser, "产品经理")
	require.NoError(t, err)

	_, err = f.svc.Report(context.Background(), testUser, "产品经理")
	assert.ErrorIs(t, err, service.ErrTargetNotReady)
}

func TestTrendsReport_SearchUnavailableAborts(t *testing.T) {
	f := newTrendsFixture(t)
	_, err := f.targets.UpsertByName(context.Background(), testUser, "产品经理")
	require.NoError(t, err)
	require.NoError(t, f.targets.SetStatus(context.Background(), testUser, "产品经理", domain.StatusActive))
	f.searcher.Unavailable = true

	_, err = f.svc.Report(context.Background(), testUser, "产品经理")
	assert.ErrorIs(t, err, search.ErrUnavailable)
	assert.Empty(t, f.llm.Requests)
}
