package config

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/tonyroud/replicheck/internal/core/domain"
)

// Load reads configuration from a YAML file.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg AppConfig
	// Expand environment variables in the YAML content
	expandedData := os.ExpandEnv(string(data))
	if err := yaml.Unmarshal([]byte(expandedData), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)

	if cfg.Thresholds.Warn > cfg.Thresholds.Critical {
		// Tolerated: the evaluator checks the critical branch first, so a
		// reversed pair still yields well-defined verdicts.
		slog.Warn("Backlog warn threshold exceeds critical threshold",
			"warn", cfg.Thresholds.Warn,
			"critical", cfg.Thresholds.Critical)
	}

	return &cfg, nil
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Node.ComputerName == "" {
		if host, err := os.Hostname(); err == nil {
			cfg.Node.ComputerName = host
		}
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Thresholds.Warn == 0 {
		cfg.Thresholds.Warn = 50
	}
	if cfg.Thresholds.Critical == 0 {
		cfg.Thresholds.Critical = 200
	}
	if cfg.Events.LogName == "" {
		cfg.Events.LogName = "DFS Replication"
	}
	if cfg.Events.LookbackHours == 0 {
		cfg.Events.LookbackHours = 1
	}
	if len(cfg.Events.EventIDs) == 0 {
		cfg.Events.EventIDs = []int{2104, 4004, 4012}
	}
	if len(cfg.Events.Levels) == 0 {
		cfg.Events.Levels = []int{1, 2, 3}
	}
	if cfg.Services.Engine == "" {
		cfg.Services.Engine = "DFSR"
	}
	if cfg.Services.Remote == "" {
		cfg.Services.Remote = "WinRM"
	}
	if len(cfg.States.Healthy) == 0 {
		cfg.States.Healthy = domain.DefaultHealthyStates()
	}
	if cfg.Redis.Stream == "" {
		cfg.Redis.Stream = "replicheck:results"
	}
}
