package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	app "github.com/rocketscienceinc/pebbles-backend/internal"
	"github.com/rocketscienceinc/pebbles-backend/internal/config"
)

const configFile = "config.yml"

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "pebbles: %v\n", err)
			os.Exit(1)
		}
	}()

	baseDir, err := os.Getwd()
	if err != nil {
		panic(fmt.Errorf("failed to get current directory: %w", err))
	}

	conf := config.MustLoad(filepath.Join(baseDir, configFile))

	level, known := parseLogLevel(conf.LogLevel)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	if !known {
		logger.Warn("unknown log level, using info", "logLevel", conf.LogLevel)
	}

	logger.Info("starting pebbles service", startupAttrs(conf)...)

	if err = app.RunApp(logger, conf); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

// parseLogLevel - accepts debug, info, warn and error in any case. Anything else falls back to info.
func parseLogLevel(value string) (slog.Level, bool) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(value)); err != nil {
		return slog.LevelInfo, false
	}

	return level, true
}

// startupAttrs - describes what the service is about to run with.
func startupAttrs(conf *config.Config) []any {
	attrs := []any{
		"storage", conf.Storage,
		"httpPort", conf.HTTPPort,
		"socketPort", conf.SocketPort,
		"seedMode", seedMode(conf.Game.Seed),
		slog.Group("defaultGame",
			"pebblesCount", conf.Game.PebblesCount,
			"maxPebblesPerTurn", conf.Game.MaxPebblesPerTurn,
			"difficulty", conf.Game.Difficulty),
	}

	if conf.Storage == config.StorageRedis {
		attrs = append(attrs, "redisAddr", conf.Redis.GetRedisAddr())
	}

	return attrs
}

// a fixed seed makes games replayable from the logged draw ids.
func seedMode(seed uint64) string {
	if seed == 0 {
		return "random"
	}

	return "fixed"
}
