package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/turtacn/mfo-shield/pkg/constants"
	"github.com/turtacn/mfo-shield/pkg/logger"
)

// Loader reads configuration from file and environment and supports hot reload.
type Loader struct {
	v   *viper.Viper
	log logger.Logger
}

// NewLoader creates a configuration loader.
func NewLoader(log logger.Logger) *Loader {
	return &Loader{
		v:   viper.New(),
		log: log.WithComponent("config"),
	}
}

// Load reads the configuration from defaults, config file, and environment variables.
func (l *Loader) Load() (*Config, error) {
	setDefaults(l.v)

	// Load from config file
	l.v.SetConfigName("config")
	l.v.SetConfigType("yaml")
	l.v.AddConfigPath("/etc/mfo-shield/")
	l.v.AddConfigPath(".")
	if err := l.v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		l.log.Debug(context.Background(), "No config file found, using defaults and environment")
	}

	// Load from environment variables
	l.v.SetEnvPrefix("MFO_SHIELD")
	l.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	l.v.AutomaticEnv()

	return l.unmarshal()
}

// Watch re-reads the configuration whenever the config file changes and passes
// the validated result to onChange. Invalid updates are logged and dropped so a
// bad edit never replaces a known-good configuration.
func (l *Loader) Watch(onChange func(*Config)) {
	l.v.OnConfigChange(func(event fsnotify.Event) {
		l.log.Info(context.Background(), "Config file changed, reloading",
			logger.String("file", event.Name),
			logger.String("op", event.Op.String()),
		)

		cfg, err := l.unmarshal()
		if err != nil {
			l.log.Error(context.Background(), "Rejected config reload", err,
				logger.String("file", event.Name),
			)
			return
		}

		onChange(cfg)
	})
	l.v.WatchConfig()
}

func (l *Loader) unmarshal() (*Config, error) {
	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// LoadConfig loads the configuration using a one-shot loader.
func LoadConfig(log logger.Logger) (*Config, error) {
	return NewLoader(log).Load()
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", constants.DefaultServicePort)
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.read_timeout", int(constants.DefaultRequestTimeout/time.Second))
	v.SetDefault("server.write_timeout", int(constants.DefaultRequestTimeout/time.Second))
	v.SetDefault("server.idle_timeout", 60)
	v.SetDefault("server.enable_pprof", false)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("tracing.enabled", false)
	v.SetDefault("tracing.jaeger_endpoint", "http://localhost:14268/api/traces")
	v.SetDefault("tracing.service_name", constants.ServiceName)
	v.SetDefault("tracing.environment", "development")
	v.SetDefault("tracing.sampling_rate", 1.0)

	v.SetDefault("orchestration.agent_work_delay", constants.DefaultAgentWorkDelay)

	v.SetDefault("idempotency.enabled", true)
	v.SetDefault("idempotency.ttl", constants.DefaultIdempotencyTTL)

	v.SetDefault("cors.allowed_origins", []string{"*"})
}
