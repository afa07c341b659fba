package command

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"ncnews/database"
	"ncnews/internal/config"
	httpapi "ncnews/internal/http-api"
	"ncnews/internal/http-api/middleware"
	"ncnews/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

var migrateOnStart bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long: `Start the HTTP API on HTTP_HOST:HTTP_PORT.

Examples:
  newsapi serve
  newsapi serve --migrate --env-file .env.production`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return runServe(ctx)
	},
}

func init() {
	serveCmd.Flags().BoolVar(&migrateOnStart, "migrate", false, "apply the schema before serving")
	rootCmd.AddCommand(serveCmd)
}

func runServe(ctx context.Context) error {
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	if migrateOnStart {
		if err := database.Migrate(a.cfg.DatabaseURL, a.logger); err != nil {
			return err
		}
	}

	gin.SetMode(ginMode(a.cfg))

	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}

	opts := httpapi.RouterOptions{
		Logger:         a.logger,
		DB:             sqlDB,
		RequestTimeout: a.cfg.RequestTimeout,
	}
	if a.cfg.PrometheusEnabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewDBStatsCollector(sqlDB, "ncnews"),
		)
		opts.Metrics = middleware.NewMetrics(reg)
		opts.MetricsHandler = promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
	}

	router, err := httpapi.NewRouter(httpapi.NewServices(a.db), opts)
	if err != nil {
		return err
	}

	return server.New(a.cfg.HTTPAddr(), router, a.cfg.ShutdownTimeout, a.logger).Run(ctx)
}

// ginMode keeps gin's debug route dump for local development only.
func ginMode(cfg *config.Config) string {
	if cfg.IsDevelopment() {
		return gin.DebugMode
	}
	return gin.ReleaseMode
}
