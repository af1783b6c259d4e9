package infrastructure

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"line-stats/internal/domain"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Names of the command line flags that override config values.
const (
	FlagLogLevel     = "log-level"
	FlagLogFile      = "log-file"
	FlagPrecision    = "precision"
	FlagSeparator    = "sep"
	FlagHistogram    = "hist"
	FlagKeepGoing    = "keep-going"
	FlagMaxLineBytes = "max-line-bytes"
)

// RegisterFlags defines the config override flags on fs.
func RegisterFlags(fs *flag.FlagSet) {
	fs.String(FlagLogLevel, "warn", "Log level: debug, info, warn or error")
	fs.String(FlagLogFile, "stderr", "Log output path")
	fs.Int(FlagPrecision, domain.ShortestPrecision, "Decimals to print (negative: shortest exact form)")
	fs.String(FlagSeparator, DefaultSeparator, "Column separator")
	fs.Int(FlagHistogram, 0, "Also print a histogram with this many buckets")
	fs.Bool(FlagKeepGoing, true, "Continue with the next file after a failure")
	fs.Int(FlagMaxLineBytes, DefaultMaxLineBytes, "Longest accepted input line in bytes")
}

// MaxHistogramBins bounds histogram_bins.
const MaxHistogramBins = 10000

type YAMLConfigReader struct {
	logger *zap.Logger
	flags  *flag.FlagSet
}

// NewYAMLConfigReader returns a reader that lets the flags explicitly set in
// flags override values from the file. flags may be nil.
func NewYAMLConfigReader(logger *zap.Logger, flags *flag.FlagSet) *YAMLConfigReader {
	return &YAMLConfigReader{logger: logger, flags: flags}
}

// ReadConfig loads the YAML file at path. An empty path yields the defaults.
func (r *YAMLConfigReader) ReadConfig(path string) (*domain.Config, error) {
	var config domain.Config
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %s: %v", domain.ErrInvalidConfig, path, err)
		}
		r.logger.Debug("Config loaded", zap.String("path", path))
	}

	// Применяем аргументы командной строки
	if err := r.applyCommandLineFlags(&config); err != nil {
		return nil, err
	}

	// Устанавливаем значения по умолчанию
	r.setDefaults(&config)

	if err := validate(&config); err != nil {
		return nil, err
	}
	return &config, nil
}

func (r *YAMLConfigReader) applyCommandLineFlags(config *domain.Config) error {
	if r.flags == nil {
		return nil
	}

	var err error
	r.flags.Visit(func(f *flag.Flag) {
		getter, ok := f.Value.(flag.Getter)
		if !ok {
			return
		}
		v := getter.Get()
		switch f.Name {
		case FlagLogLevel:
			config.LogLevel, ok = v.(string)
		case FlagLogFile:
			config.LogFile, ok = v.(string)
		case FlagPrecision:
			var p int
			p, ok = v.(int)
			config.Precision = &p
		case FlagSeparator:
			config.Separator, ok = v.(string)
		case FlagHistogram:
			config.HistogramBins, ok = v.(int)
		case FlagKeepGoing:
			var k bool
			k, ok = v.(bool)
			config.KeepGoing = &k
		case FlagMaxLineBytes:
			config.MaxLineBytes, ok = v.(int)
		}
		if !ok && err == nil {
			err = fmt.Errorf("%w: flag -%s has unexpected type %T", domain.ErrInvalidConfig, f.Name, v)
		}
	})
	return err
}

func (r *YAMLConfigReader) setDefaults(config *domain.Config) {
	if config.LogLevel == "" {
		config.LogLevel = "warn"
	}
	if config.LogFile == "" {
		config.LogFile = "stderr"
	}
	if config.Separator == "" {
		config.Separator = DefaultSeparator
	}
	if config.MaxLineBytes == 0 {
		config.MaxLineBytes = DefaultMaxLineBytes
	}
}

func validate(config *domain.Config) error {
	switch config.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log level %q", domain.ErrInvalidConfig, config.LogLevel)
	}
	if config.HistogramBins < 0 || config.HistogramBins > MaxHistogramBins {
		return fmt.Errorf("%w: histogram_bins must be between 0 and %d", domain.ErrInvalidConfig, MaxHistogramBins)
	}
	if config.MaxLineBytes < 0 {
		return fmt.Errorf("%w: max_line_bytes must not be negative", domain.ErrInvalidConfig)
	}
	return nil
}
