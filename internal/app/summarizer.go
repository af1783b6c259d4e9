package app

import (
	"bytes"
	"fmt"
	"io"
	"line-stats/internal/domain"
	"line-stats/internal/infrastructure"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// ReportWriter renders tables and the per-file header.
type ReportWriter interface {
	domain.TableWriter
	WriteHeader(w io.Writer, title string) error
}

type FileSummarizer struct {
	logger *zap.Logger
	reader domain.SampleReader
	writer ReportWriter
	format infrastructure.FmtFunc
	config *domain.Config
}

func NewFileSummarizer(logger *zap.Logger, config *domain.Config, reader domain.SampleReader, writer ReportWriter) *FileSummarizer {
	return &FileSummarizer{
		logger: logger,
		reader: reader,
		writer: writer,
		format: infrastructure.NewFmtFunc(config.GetPrecision()),
		config: config,
	}
}

// Run summarizes every path in order. Unless the config disables keep_going,
// a failing file is logged and the remaining files are still processed; the
// returned error then combines all failures.
func (s *FileSummarizer) Run(w io.Writer, paths []string) error {
	var errs error
	for _, path := range paths {
		err := s.ShowFile(w, path)
		if err == nil {
			continue
		}
		if !s.config.GetKeepGoing() {
			return err
		}
		s.logger.Error("Failed to summarize file",
			zap.String("file", path),
			zap.Error(err))
		errs = multierr.Append(errs, err)
	}
	return errs
}

// ShowFile prints the statistics of one file: its name, an underline, the
// statistics table, the optional histogram and a blank line. Nothing is
// written when the file cannot be summarized.
func (s *FileSummarizer) ShowFile(w io.Writer, path string) error {
	samples, err := s.reader.ReadSamples(path)
	if err != nil {
		return err
	}

	summary, err := domain.Summarize(samples)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	s.logger.Info("Summarized file",
		zap.String("file", path),
		zap.Int("samples", summary.Count),
		zap.Float64("min", summary.Min),
		zap.Float64("avg", summary.Avg),
		zap.Float64("max", summary.Max),
		zap.Float64("std", summary.Std))

	var buf bytes.Buffer
	if err := s.writer.WriteHeader(&buf, path); err != nil {
		return err
	}
	if err := s.writer.WriteTable(&buf, summary.Table(s.format)); err != nil {
		return err
	}
	if s.config.HistogramBins > 0 {
		hist, err := samples.Hist(s.config.HistogramBins)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		buf.WriteByte('\n')
		if err := s.writer.WriteTable(&buf, hist.Table(s.format)); err != nil {
			return err
		}
	}
	buf.WriteByte('\n')

	_, err = w.Write(buf.Bytes())
	return err
}
