package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"github.com/yunqiwei/licheng/internal/cli"
	"github.com/yunqiwei/licheng/internal/db"
	"github.com/yunqiwei/licheng/internal/intelligence"
	"github.com/yunqiwei/licheng/internal/llm"
	"github.com/yunqiwei/licheng/internal/repository"
	"github.com/yunqiwei/licheng/internal/search"
	"github.com/yunqiwei/licheng/internal/service"
)

// defaultUserID identifies the single local user. All storage is keyed by
// user id, so a future multi-user surface only needs to bind a different one.
const defaultUserID = "main_user"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.licheng/licheng.db
	dbPath := os.Getenv("LICHENG_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".licheng", "licheng.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(zerolog.WarnLevel).
		With().Timestamp().Logger()
	if os.Getenv("LICHENG_DEBUG") != "" {
		logger = logger.Level(zerolog.DebugLevel)
	}

	// Wire repositories
	profileRepo := repository.NewSQLiteProfileRepo(database)
	targetRepo := repository.NewSQLiteTargetRepo(database)
	logRepo := repository.NewSQLiteProgressLogRepo(database)
	chatRepo := repository.NewSQLiteChatRepo(database)

	uow := db.NewSQLiteUnitOfWork(database)

	// Wire LLM and search; both degrade to clear errors when unconfigured.
	llmCfg := llm.LoadConfig()
	llmClient := llm.NewClient(llmCfg, llm.NewLogObserver(logger))
	searcher := search.NewProvider(search.LoadConfig())

	mentor := intelligence.NewMentorService(llmClient)
	coach := intelligence.NewCoachService(llmClient)
	planner := intelligence.NewPlannerService(llmClient)
	navigator := intelligence.NewNavigatorService(llmClient)

	app := &cli.App{
		UserID:   defaultUserID,
		Profile:  service.NewProfileService(profileRepo),
		Research: service.NewResearchService(profileRepo, targetRepo, mentor, searcher, uow, logger),
		Decision: service.NewDecisionService(targetRepo, coach, uow),
		Planning: service.NewPlanningService(profileRepo, targetRepo, logRepo, planner, uow),
		Trends:   service.NewTrendsService(targetRepo, navigator, searcher, uow, logger),
		History:  service.NewHistoryService(chatRepo, targetRepo),
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
