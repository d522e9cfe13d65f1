package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Config holds the settings shared by every subcommand
type Config struct {
	InputFile  string
	OutputFile string
	Format     string
	Pretty     bool
	LogLevel   string

	// serve
	Port     string
	Schedule string
	CacheTTL time.Duration

	// generate
	Seed int64
	Rows int
}

// Load reads the optional .env file, then the environment. Variables already set in the
// environment win over the file.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", envFile, err)
		}
	}

	cfg := &Config{
		InputFile:  getEnv("DASHBOARD_INPUT", "transactions.csv"),
		OutputFile: getEnv("DASHBOARD_OUTPUT", "dashboard_data.json"),
		Format:     getEnv("DASHBOARD_FORMAT", "json"),
		Pretty:     getEnvBool("DASHBOARD_PRETTY", true),
		LogLevel:   getEnv("LOG_LEVEL", "info"),

		Port:     getEnv("PORT", "8080"),
		Schedule: getEnv("DASHBOARD_SCHEDULE", ""),
		CacheTTL: getEnvDuration("DASHBOARD_CACHE_TTL", 15*time.Minute),

		Seed: 42,
		Rows: 500,
	}

	return cfg, nil
}

// RegisterFlags binds the flags of a subcommand to cfg. Current values become the defaults,
// so flags win over the environment.
func (c *Config) RegisterFlags(flags *flag.FlagSet, serve, generate bool) {
	flags.StringVar(&c.InputFile, "input", c.InputFile, "Path to the transactions CSV file")
	flags.StringVar(&c.OutputFile, "output", c.OutputFile, "Path to the output file (\"-\" writes to stdout)")
	flags.StringVar(&c.LogLevel, "log-level", c.LogLevel, "Log level: debug, info, warn, error")

	if generate {
		flags.Int64Var(&c.Seed, "seed", c.Seed, "Random seed for the generator")
		flags.IntVar(&c.Rows, "rows", c.Rows, "Number of rows to generate")
		return
	}

	flags.StringVar(&c.Format, "format", c.Format, "Output format: json or xml")
	flags.BoolVar(&c.Pretty, "pretty", c.Pretty, "Pretty print the output")

	if serve {
		flags.StringVar(&c.Port, "port", c.Port, "HTTP port")
		flags.StringVar(&c.Schedule, "schedule", c.Schedule, "Cron spec for regenerating the output file (empty disables)")
		flags.DurationVar(&c.CacheTTL, "cache-ttl", c.CacheTTL, "How long generated reports are cached")
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errs []string

	if strings.TrimSpace(c.InputFile) == "" {
		errs = append(errs, "input file path cannot be empty")
	}

	if strings.TrimSpace(c.OutputFile) == "" {
		errs = append(errs, "output file path cannot be empty")
	}

	if c.Format != "json" && c.Format != "xml" {
		errs = append(errs, fmt.Sprintf("invalid format '%s': must be json or xml", c.Format))
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Sprintf("invalid log level '%s'", c.LogLevel))
	}

	if port, err := strconv.Atoi(c.Port); err != nil {
		errs = append(errs, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errs = append(errs, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if c.Schedule != "" {
		if _, err := cron.ParseStandard(c.Schedule); err != nil {
			errs = append(errs, fmt.Sprintf("invalid schedule '%s': %v", c.Schedule, err))
		}
	}

	if c.CacheTTL < 0 {
		errs = append(errs, fmt.Sprintf("invalid cache ttl %v: must not be negative", c.CacheTTL))
	}

	if c.Rows < 1 {
		errs = append(errs, fmt.Sprintf("invalid row count %d: must be at least 1", c.Rows))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
