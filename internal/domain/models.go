package domain

import (
	"errors"
)

// Config представляет конфигурацию приложения
type Config struct {
	LogLevel      string `yaml:"log_level"`
	LogFile       string `yaml:"log_file"`
	Precision     *int   `yaml:"precision"`
	Separator     string `yaml:"separator"`
	HistogramBins int    `yaml:"histogram_bins"`
	KeepGoing     *bool  `yaml:"keep_going"`
	MaxLineBytes  int    `yaml:"max_line_bytes"`
}

// ShortestPrecision selects the shortest round-trip rendering of a sample.
const ShortestPrecision = -1

// GetPrecision returns the configured number of decimals, or ShortestPrecision.
func (c *Config) GetPrecision() int {
	if c.Precision == nil {
		return ShortestPrecision
	}
	return *c.Precision
}

func (c *Config) GetKeepGoing() bool {
	return c.KeepGoing == nil || *c.KeepGoing
}

// Samples is the ordered sequence of values extracted from an input, one per line.
type Samples []float64

// Summary представляет описательную статистику выборки
type Summary struct {
	Count int
	Min   float64
	Avg   float64
	Max   float64
	Std   float64
}

// Table is a list of rows of already rendered cells.
type Table [][]string

type Histogram struct {
	Bins   []float64
	Counts []int
	Width  float64
}

var (
	ErrEmptyInput    = errors.New("empty input: no samples to summarize")
	ErrInvalidConfig = errors.New("invalid config")
	ErrInvalidBins   = errors.New("histogram needs at least one bin")
	ErrNonFinite     = errors.New("histogram of non-finite samples")
)
