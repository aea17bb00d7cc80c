package cmd

import (
	"errors"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"gooze.dev/pkg/covtrace/internal/domain"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "covtrace"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	poolFlagName      = "pool"
	outputFlagName    = "output"
	objectFlagName    = "object"
	useFlagName       = "use"
	coverFlagName     = "cover"
	rangeFlagName     = "range"
	variableFlagName  = "var"
	markEntryFlagName = "mark-entry"
	verboseFlagName   = "verbose"
	logFileFlagName   = "log-file"

	poolConfigKey   = "replay.pool"
	outputConfigKey = "replay.output"

	traceCallsKey           = "trace.calls"
	traceCoverageKey        = "trace.coverage"
	traceMarkMethodEntryKey = "trace.mark_method_entry"
	traceBranchEvalsKey     = "trace.branch_evals"
	traceCallContextsKey    = "trace.call_contexts"
	traceInitialCapacityKey = "trace.initial_capacity"

	envPrefix = "COVTRACE"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".covtrace.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	defaults := domain.DefaultConfig()

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(poolConfigKey, "")
	viper.SetDefault(outputConfigKey, "")
	viper.SetDefault(traceCallsKey, defaults.TraceCalls)
	viper.SetDefault(traceCoverageKey, defaults.TraceCoverage)
	viper.SetDefault(traceMarkMethodEntryKey, defaults.MarkMethodEntry)
	viper.SetDefault(traceBranchEvalsKey, defaults.RecordBranchEvals)
	viper.SetDefault(traceCallContextsKey, defaults.RecordCallContexts)
	viper.SetDefault(traceInitialCapacityKey, defaults.InitialCallCapacity)

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return
		}

		return
	}
}

// engineConfig builds the trace switches from config file, env and flags.
func engineConfig() domain.Config {
	return domain.Config{
		TraceCalls:          viper.GetBool(traceCallsKey),
		TraceCoverage:       viper.GetBool(traceCoverageKey),
		MarkMethodEntry:     viper.GetBool(traceMarkMethodEntryKey),
		RecordBranchEvals:   viper.GetBool(traceBranchEvalsKey),
		RecordCallContexts:  viper.GetBool(traceCallContextsKey),
		InitialCallCapacity: viper.GetInt(traceInitialCapacityKey),
	}
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at the configured level; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
