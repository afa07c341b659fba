package command

// root.go defines the root command and the helpers shared by subcommands.

import (
	"context"
	"fmt"
	"os"

	"ncnews/database"
	"ncnews/internal/config"
	"ncnews/internal/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var envFile string // .env path, optional

var rootCmd = &cobra.Command{
	Use:   "newsapi",
	Short: "newsapi - NC News REST API",
	Long: `newsapi serves the NC News API: topics, articles, comments and users
backed by PostgreSQL.

Use "newsapi command --help" to see the flags of each command.`,
	SilenceUsage: true,
}

// Execute runs the root command. Called once by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading the environment")
}

// app is what every subcommand needs: validated config, a logger and an open pool.
type app struct {
	cfg    *config.Config
	logger *zap.Logger
	db     *gorm.DB
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.LoadConfig(envFile)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, err
	}

	db, err := database.Open(ctx, cfg, log)
	if err != nil {
		_ = log.Sync()
		return nil, err
	}
	return &app{cfg: cfg, logger: log, db: db}, nil
}

func (a *app) close() {
	if err := database.Close(a.db); err != nil {
		a.logger.Warn("failed to close database", zap.Error(err))
	}
	_ = a.logger.Sync()
}
