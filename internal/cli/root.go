package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/tonyroud/replicheck/internal/check"
	"github.com/tonyroud/replicheck/internal/core/config"
	"github.com/tonyroud/replicheck/internal/emit"
	"github.com/tonyroud/replicheck/internal/infra/agent"
	"github.com/tonyroud/replicheck/internal/infra/replica/dfsr"
)

var (
	cfgPath string
	isDebug bool
	jsonOut bool
)

var rootCmd = &cobra.Command{
	Use:   "replicheck",
	Short: "Replication health checks",
	Long:  `Replicheck runs one pass of health checks against the local file-replication engine and reports a verdict per check.`,
	Run:   runChecks,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "config.yaml", "config file (default is config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&isDebug, "debug", false, "enable debug logging")
	rootCmd.Flags().BoolVar(&jsonOut, "json", false, "emit results as JSON lines instead of a table")
}

// setup loads env, config and logging; shared by every command.
func setup() *config.AppConfig {
	_ = godotenv.Load()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	slogLevel := slog.LevelInfo
	if isDebug || cfg.Logging.Level == "debug" {
		slogLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      slogLevel,
		TimeFormat: time.RFC3339,
	})))

	return cfg
}

// buildRunner wires the provider, optional agent probe and check parameters.
func buildRunner(cfg *config.AppConfig) *check.Runner {
	var prober check.AgentProber
	if cfg.Agent.Address != "" {
		p, err := agent.NewProber(cfg.Agent.Address)
		if err != nil {
			slog.Error("Failed to set up agent probe", "error", err)
			os.Exit(1)
		}
		prober = p
	}

	return check.NewRunner(dfsr.NewProvider(), check.Params{
		Node: cfg.Node.ComputerName,
		Thresholds: check.Thresholds{
			Warn:     cfg.Thresholds.Warn,
			Critical: cfg.Thresholds.Critical,
		},
		Events: check.EventQuery{
			LogName:       cfg.Events.LogName,
			LookbackHours: cfg.Events.LookbackHours,
			Levels:        cfg.Events.Levels,
			EventIDs:      cfg.Events.EventIDs,
		},
		EngineService: cfg.Services.Engine,
		RemoteService: cfg.Services.Remote,
		HealthyStates: cfg.States.Healthy,
	}, prober)
}

func runChecks(cmd *cobra.Command, args []string) {
	cfg := setup()
	runner := buildRunner(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	report := runner.Run(ctx)

	sinks := emit.Multi{}
	if jsonOut {
		sinks = append(sinks, emit.JSONLines{Out: os.Stdout})
	} else {
		sinks = append(sinks, emit.Console{Out: os.Stdout})
	}

	var stream *emit.RedisStream
	if cfg.Redis.URL != "" {
		var err error
		stream, err = emit.NewRedisStream(cfg.Redis)
		if err != nil {
			slog.Error("Failed to connect result stream", "error", err)
			os.Exit(1)
		}
		sinks = append(sinks, stream)
	}

	emitErr := sinks.Emit(ctx, report)
	if stream != nil {
		_ = stream.Close()
	}
	if emitErr != nil {
		slog.Error("Failed to emit report", "error", emitErr)
		os.Exit(1)
	}

	// Exit code mirrors the overall status so schedulers can alert on it.
	os.Exit(int(report.Overall()))
}
