package infrastructure

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"line-stats/internal/domain"
	"os"

	"go.uber.org/zap"
)

// StdinPath is the file name that selects standard input.
const StdinPath = "-"

const DefaultMaxLineBytes = 64 * 1024 * 1024

type TXTSampleReader struct {
	logger       *zap.Logger
	maxLineBytes int
	stdin        io.Reader
}

func NewTXTSampleReader(logger *zap.Logger, maxLineBytes int) *TXTSampleReader {
	if maxLineBytes <= 0 {
		maxLineBytes = DefaultMaxLineBytes
	}
	return &TXTSampleReader{
		logger:       logger,
		maxLineBytes: maxLineBytes,
		stdin:        os.Stdin,
	}
}

// ReadSamples extracts one sample per line of the named file, or of
// standard input when path is "-".
func (r *TXTSampleReader) ReadSamples(path string) (domain.Samples, error) {
	if path == StdinPath {
		return r.ReadSamplesFrom(r.stdin)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	samples, err := r.ReadSamplesFrom(file)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return samples, nil
}

func (r *TXTSampleReader) ReadSamplesFrom(in io.Reader) (domain.Samples, error) {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, min(64*1024, r.maxLineBytes)), r.maxLineBytes)
	scanner.Split(scanUniversalLines)

	var samples domain.Samples
	zeros := 0
	for scanner.Scan() {
		v := domain.ExtractNumber(scanner.Text())
		if v == 0 {
			zeros++
		}
		samples = append(samples, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	r.logger.Debug("Samples loaded",
		zap.Int("lines", len(samples)),
		zap.Int("zeros", zeros))
	return samples, nil
}

// scanUniversalLines is a bufio.SplitFunc that ends lines at "\n", "\r\n"
// or a lone "\r".
func scanUniversalLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		// "\r" at the end of the buffer may be the first half of "\r\n".
		if i+1 == len(data) && !atEOF {
			return 0, nil, nil
		}
		if i+1 < len(data) && data[i+1] == '\n' {
			return i + 2, data[:i], nil
		}
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
