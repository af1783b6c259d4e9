package app

import (
	"bytes"
	"io/fs"
	"line-stats/internal/domain"
	"line-stats/internal/infrastructure"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newSummarizer(t *testing.T, config *domain.Config) (*FileSummarizer, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)
	return NewFileSummarizer(logger, config,
		infrastructure.NewTXTSampleReader(logger, 0),
		infrastructure.NewTXTTableWriter(logger, config.Separator)), logs
}

func writeInput(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestShowFile(t *testing.T) {
	path := writeInput(t, t.TempDir(), "values.txt", "2\n4\n4\n4\n5\n5\n7\n9\n")
	s, logs := newSummarizer(t, &domain.Config{})

	var buf bytes.Buffer
	require.NoError(t, s.ShowFile(&buf, path))

	want := path + "\n" + strings.Repeat("-", len(path)) + "\n" +
		"Min|Avg|Max|std\n" +
		"2.0|5.0|9.0|2.0\n" +
		"\n"
	assert.Equal(t, want, buf.String())
	assert.Equal(t, 1, logs.FilterMessage("Summarized file").Len())
}

func TestShowFileEndToEnd(t *testing.T) {
	path := writeInput(t, t.TempDir(), "latency.log", "req 10ms\nreq 20ms\nreq 30ms\n")
	s, _ := newSummarizer(t, &domain.Config{})

	var buf bytes.Buffer
	require.NoError(t, s.ShowFile(&buf, path))

	lines := strings.Split(buf.String(), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "", lines[4])

	header := strings.Split(lines[2], "|")
	values := strings.Split(lines[3], "|")
	require.Len(t, header, 4)
	require.Len(t, values, 4)
	for i, label := range []string{"Min", "Avg", "Max", "std"} {
		assert.Equal(t, label, strings.TrimSpace(header[i]))
		// One width for every cell of the table.
		assert.Len(t, header[i], len(values[3]))
		assert.Len(t, values[i], len(values[3]))
	}
	assert.Equal(t, "10.0", strings.TrimSpace(values[0]))
	assert.Equal(t, "20.0", strings.TrimSpace(values[1]))
	assert.Equal(t, "30.0", strings.TrimSpace(values[2]))
	assert.True(t, strings.HasPrefix(values[3], "8.164965809277"), values[3])
}

func TestShowFileSingleEmptyLine(t *testing.T) {
	path := writeInput(t, t.TempDir(), "blank.txt", "\n")
	s, _ := newSummarizer(t, &domain.Config{})

	var buf bytes.Buffer
	require.NoError(t, s.ShowFile(&buf, path))
	assert.Contains(t, buf.String(), "0.0|0.0|0.0|0.0\n")
}

func TestShowFileEmptyInput(t *testing.T) {
	path := writeInput(t, t.TempDir(), "empty.txt", "")
	s, _ := newSummarizer(t, &domain.Config{})

	var buf bytes.Buffer
	err := s.ShowFile(&buf, path)
	assert.ErrorIs(t, err, domain.ErrEmptyInput)
	assert.Zero(t, buf.Len())
}

func TestShowFileHistogram(t *testing.T) {
	path := writeInput(t, t.TempDir(), "values.txt", "1\n2\n3\n4\n")
	s, _ := newSummarizer(t, &domain.Config{HistogramBins: 3})

	var buf bytes.Buffer
	require.NoError(t, s.ShowFile(&buf, path))

	assert.Contains(t, buf.String(), "\n\n bin |count\n 1.0 |  1  \n 2.0 |  1  \n 3.0 |  2  \n\n")
}

func TestShowFilePrecision(t *testing.T) {
	path := writeInput(t, t.TempDir(), "values.txt", "1\n2\n")
	precision := 2
	s, _ := newSummarizer(t, &domain.Config{Precision: &precision})

	var buf bytes.Buffer
	require.NoError(t, s.ShowFile(&buf, path))
	assert.Contains(t, buf.String(), "1.00|1.50|2.00|0.50\n")
}

func TestRunKeepsGoing(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "missing.txt")
	empty := writeInput(t, dir, "empty.txt", "")
	good := writeInput(t, dir, "good.txt", "3\n3\n")
	s, logs := newSummarizer(t, &domain.Config{})

	var buf bytes.Buffer
	err := s.Run(&buf, []string{missing, empty, good})
	require.Error(t, err)

	errs := multierr.Errors(err)
	require.Len(t, errs, 2)
	assert.ErrorIs(t, errs[0], fs.ErrNotExist)
	assert.ErrorIs(t, errs[1], domain.ErrEmptyInput)

	assert.Equal(t, good+"\n"+strings.Repeat("-", len(good))+"\nMin|Avg|Max|std\n3.0|3.0|3.0|0.0\n\n", buf.String())
	assert.Equal(t, 2, logs.FilterMessage("Failed to summarize file").Len())
}

func TestRunStopsOnFirstError(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "missing.txt")
	good := writeInput(t, dir, "good.txt", "3\n")
	keepGoing := false
	s, _ := newSummarizer(t, &domain.Config{KeepGoing: &keepGoing})

	var buf bytes.Buffer
	err := s.Run(&buf, []string{missing, good})
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Zero(t, buf.Len())
}

func TestRunSuccess(t *testing.T) {
	dir := t.TempDir()
	a := writeInput(t, dir, "a.txt", "1\n")
	b := writeInput(t, dir, "b.txt", "2\n")
	s, _ := newSummarizer(t, &domain.Config{})

	var buf bytes.Buffer
	require.NoError(t, s.Run(&buf, []string{a, b}))
	out := buf.String()
	assert.Less(t, strings.Index(out, a+"\n"), strings.Index(out, b+"\n"))
}
