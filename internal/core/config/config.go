package config

import (
	"github.com/tonyroud/replicheck/internal/core/domain"
	"github.com/tonyroud/replicheck/internal/emit"
)

// AppConfig represents the top-level configuration.
type AppConfig struct {
	Node       NodeConfig       `yaml:"node"`
	Server     ServerConfig     `yaml:"server"`
	Thresholds ThresholdConfig  `yaml:"thresholds"`
	Events     EventConfig      `yaml:"events"`
	Services   ServiceConfig    `yaml:"services"`
	States     StateConfig      `yaml:"states"`
	Agent      AgentConfig      `yaml:"agent"`
	Redis      emit.RedisConfig `yaml:"redis"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// NodeConfig identifies the local replication member.
type NodeConfig struct {
	ComputerName string `yaml:"computer_name"` // defaults to os.Hostname
}

// ServerConfig holds HTTP server settings for serve mode.
type ServerConfig struct {
	Port int `yaml:"port"`
}

// ThresholdConfig is the operator-supplied backlog threshold pair. Critical
// is expected to be >= warn; a reversed pair is tolerated because the
// evaluator tests the critical branch first.
type ThresholdConfig struct {
	Warn     int `yaml:"warn"`
	Critical int `yaml:"critical"`
}

// EventConfig controls the critical-event check.
type EventConfig struct {
	LogName       string `yaml:"log_name"`
	LookbackHours int    `yaml:"lookback_hours"`
	EventIDs      []int  `yaml:"event_ids"`
	Levels        []int  `yaml:"levels"`
}

// ServiceConfig names the services whose run-state is checked. Severities are
// fixed per service identity, not configurable: a stopped engine halts
// replication (critical), a stopped remote-management service only degrades
// remote backlog queries (warning).
type ServiceConfig struct {
	Engine string `yaml:"engine"`
	Remote string `yaml:"remote"`
}

// StateConfig is the explicit healthy-state set for the folder-state check.
type StateConfig struct {
	Healthy []domain.FolderStateCode `yaml:"healthy"`
}

// AgentConfig points at an optional remote replication agent exposing the
// gRPC health protocol. Empty address disables the probe.
type AgentConfig struct {
	Address string `yaml:"address"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}
