package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"line-stats/internal/app"
	"line-stats/internal/infrastructure"
	"os"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("linestats", flag.ContinueOnError)
	flags.SetOutput(stderr)
	configPath := flags.String("config", "", "Path to YAML config file")
	infrastructure.RegisterFlags(flags)
	flags.Usage = func() {
		fmt.Fprintln(stderr, "Usage: linestats [flags] FILE...")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, `Prints min, average, max and standard deviation of the first number
found on every line of each FILE. Use "-" to read standard input.`)
		fmt.Fprintln(stderr)
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	// Инициализация логгера
	logger := initLogger("warn", stderr, "stderr")

	if flags.NArg() == 0 {
		flags.Usage()
		return exitUsage
	}

	// Чтение конфигурации
	configReader := infrastructure.NewYAMLConfigReader(logger, flags)
	config, err := configReader.ReadConfig(*configPath)
	if err != nil {
		logger.Error("Failed to read config", zap.Error(err))
		logger.Sync()
		return exitUsage
	}

	// Обновляем уровень логирования
	logger = initLogger(config.LogLevel, stderr, config.LogFile)
	defer logger.Sync()

	// Инициализация компонентов
	reader := infrastructure.NewTXTSampleReader(logger, config.MaxLineBytes)
	writer := infrastructure.NewTXTTableWriter(logger, config.Separator)
	summarizer := app.NewFileSummarizer(logger, config, reader, writer)

	if err := summarizer.Run(stdout, flags.Args()); err != nil {
		// With keep_going every failure has already been logged by Run.
		if config.GetKeepGoing() {
			logger.Error("Summary failed", zap.Int("failed_files", len(multierr.Errors(err))))
		} else {
			logger.Error("Summary failed", zap.Error(err))
		}
		return exitFailure
	}
	return exitOK
}

// initLogger initializes the logger with the specified level and log file name.
// "stderr" (or no name) logs to stderr; a log file that cannot be opened also
// falls back to stderr.
func initLogger(level string, stderr io.Writer, logfileName string) *zap.Logger {
	config := zap.NewProductionConfig()

	switch level {
	case "debug":
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "info":
		config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	case "error":
		config.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	default:
		config.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}

	config.EncoderConfig.TimeKey = "t"
	config.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder
	config.DisableCaller = false

	stderrLogger := func() *zap.Logger {
		core := zapcore.NewCore(
			zapcore.NewJSONEncoder(config.EncoderConfig),
			zapcore.AddSync(stderr),
			config.Level)
		return zap.New(core, zap.AddCaller())
	}
	if logfileName == "" || logfileName == "stderr" {
		return stderrLogger()
	}

	config.OutputPaths = []string{logfileName}
	config.ErrorOutputPaths = []string{logfileName}
	logger, err := config.Build()
	if err != nil {
		logger = stderrLogger()
		logger.Warn("Failed to open log file, logging to stderr",
			zap.String("file", logfileName),
			zap.Error(err))
	}
	return logger
}
