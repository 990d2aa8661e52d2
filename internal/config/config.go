// Package config holds the application's configuration model and loading logic.
package config

import (
	"fmt"
	"time"

	"github.com/turtacn/mfo-shield/pkg/utils"
)

// Config holds the application's configuration.
type Config struct {
	Server        ServerConfig        `mapstructure:"server"`
	Log           LogConfig           `mapstructure:"log"`
	Tracing       TracingConfig       `mapstructure:"tracing"`
	Orchestration OrchestrationConfig `mapstructure:"orchestration"`
	Idempotency   IdempotencyConfig   `mapstructure:"idempotency"`
	CORS          CORSConfig          `mapstructure:"cors"`
}

type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port" validate:"gte=1,lte=65535"`
	Mode         string `mapstructure:"mode" validate:"oneof=debug release test"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds
	EnablePprof  bool   `mapstructure:"enable_pprof"`
}

// Addr returns the listen address in host:port form.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error fatal"`
	Format string `mapstructure:"format" validate:"oneof=json console"`
}

type TracingConfig struct {
	Enabled        bool    `mapstructure:"enabled"`
	JaegerEndpoint string  `mapstructure:"jaeger_endpoint"`
	ServiceName    string  `mapstructure:"service_name"`
	Environment    string  `mapstructure:"environment"`
	SamplingRate   float64 `mapstructure:"sampling_rate" validate:"gte=0,lte=1"`
}

type OrchestrationConfig struct {
	// AgentWorkDelay is the simulated processing time of each stub agent.
	AgentWorkDelay time.Duration `mapstructure:"agent_work_delay"`
}

type IdempotencyConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	TTL     time.Duration `mapstructure:"ttl"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Validate checks for essential configuration values.
func (c *Config) Validate() error {
	if err := utils.ValidateStruct(c); err != nil {
		return err
	}

	if c.Orchestration.AgentWorkDelay < 0 {
		return fmt.Errorf("orchestration.agent_work_delay must not be negative, got %s", c.Orchestration.AgentWorkDelay)
	}
	if c.Idempotency.Enabled && c.Idempotency.TTL <= 0 {
		return fmt.Errorf("idempotency.ttl must be positive when idempotency is enabled, got %s", c.Idempotency.TTL)
	}

	return nil
}
