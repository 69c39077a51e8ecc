package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/vk/campaignflow/internal/app"
	"github.com/vk/campaignflow/internal/config"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("campaignflow", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
CampaignFlow - a real-time collaborative campaign workflow server.

Usage:
  campaignflow [options]

Options:
`)
		flagSet.PrintDefaults()
	}

	addrFlag := flagSet.String("addr", ":3002", "Listen address for the HTTP and Socket.IO server.")
	storageFlag := flagSet.String("storage", app.StorageMemory, "Document backend. Options: 'memory', 'redis', or 'postgres'.")
	redisURLFlag := flagSet.String("redis-url", os.Getenv("REDIS_URL"), "Redis connection URL. Defaults to $REDIS_URL.")
	postgresURLFlag := flagSet.String("postgres-url", os.Getenv("DATABASE_URL"), "PostgreSQL connection URL. Defaults to $DATABASE_URL.")
	corsFlag := flagSet.String("cors-origins", "http://localhost:3000,http://localhost:5173", "Comma-separated list of allowed browser origins.")
	logFormatFlag := flagSet.String("log-format", "json", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	dayFlag := flagSet.Duration("day-duration", 0, "Wall-clock length of one campaign 'day'. 0 uses the built-in scale.")
	configFlag := flagSet.String("config", "", "Path to an optional HCL configuration file.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	// Flags the user set explicitly must survive the config file overlay.
	set := map[string]bool{}
	flagSet.Visit(func(f *flag.Flag) { set[f.Name] = true })

	addr := *addrFlag
	storage := *storageFlag
	redisURL := *redisURLFlag
	postgresURL := *postgresURLFlag
	corsOrigins := *corsFlag
	logFormat := *logFormatFlag
	logLevel := *logLevelFlag
	dayDuration := *dayFlag

	if *configFlag != "" {
		file, err := config.Load(*configFlag)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		if !set["addr"] && file.Addr != "" {
			addr = file.Addr
		}
		if !set["storage"] && file.Storage != "" {
			storage = file.Storage
		}
		if !set["redis-url"] && file.RedisURL != "" {
			redisURL = file.RedisURL
		}
		if !set["postgres-url"] && file.PostgresURL != "" {
			postgresURL = file.PostgresURL
		}
		if !set["cors-origins"] && len(file.CORSOrigins) > 0 {
			corsOrigins = strings.Join(file.CORSOrigins, ",")
		}
		if !set["log-format"] && file.LogFormat != "" {
			logFormat = file.LogFormat
		}
		if !set["log-level"] && file.LogLevel != "" {
			logLevel = file.LogLevel
		}
		if !set["day-duration"] && file.DayDuration != "" {
			d, err := time.ParseDuration(file.DayDuration)
			if err != nil {
				return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("invalid day_duration in config file: %v", err)}
			}
			dayDuration = d
		}
		slog.Debug("Config file merged.", "path", *configFlag)
	}

	logFormat = strings.ToLower(logFormat)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel = strings.ToLower(logLevel)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	cfg, err := app.NewConfig(app.Config{
		Addr:        addr,
		Storage:     strings.ToLower(storage),
		RedisURL:    redisURL,
		PostgresURL: postgresURL,
		CORSOrigins: splitOrigins(corsOrigins),
		LogFormat:   logFormat,
		LogLevel:    logLevel,
		DayDuration: dayDuration,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.")
	return cfg, false, nil
}

// splitOrigins turns the comma-separated origins flag into a clean list.
func splitOrigins(s string) []string {
	parts := strings.Split(s, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}
