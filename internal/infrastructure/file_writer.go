package infrastructure

import (
	"bufio"
	"io"
	"line-stats/internal/domain"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
)

type FmtFunc func(float64) string

// DefaultSeparator joins the cells of a row.
const DefaultSeparator = "|"

type TXTTableWriter struct {
	logger    *zap.Logger
	separator string
}

func NewTXTTableWriter(logger *zap.Logger, separator string) *TXTTableWriter {
	if separator == "" {
		separator = DefaultSeparator
	}
	return &TXTTableWriter{logger: logger, separator: separator}
}

// WriteTable prints every row of table with all cells centered to the width
// of the widest cell in the whole table.
func (w *TXTTableWriter) WriteTable(out io.Writer, table domain.Table) error {
	width := 0
	for _, row := range table {
		for _, cell := range row {
			width = max(width, utf8.RuneCountInString(cell))
		}
	}
	w.logger.Debug("Writing table", zap.Int("rows", len(table)), zap.Int("width", width))

	writer := bufio.NewWriter(out)
	for _, row := range table {
		for i, cell := range row {
			if i > 0 {
				writer.WriteString(w.separator)
			}
			writer.WriteString(Center(cell, width))
		}
		writer.WriteByte('\n')
	}
	return writer.Flush()
}

// WriteHeader prints title underlined with dashes.
func (w *TXTTableWriter) WriteHeader(out io.Writer, title string) error {
	_, err := io.WriteString(out, title+"\n"+strings.Repeat("-", utf8.RuneCountInString(title))+"\n")
	return err
}

// Center pads s with spaces on both sides to width runes. When the padding
// is odd, the extra space goes on the left only if width is odd too.
func Center(s string, width int) string {
	marg := width - utf8.RuneCountInString(s)
	if marg <= 0 {
		return s
	}
	left := marg/2 + (marg & width & 1)
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", marg-left)
}

// FormatSample renders v as the shortest decimal that parses back to v.
// Integral values keep a ".0" suffix; very large and very small magnitudes
// use exponent notation.
func FormatSample(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	e := strconv.FormatFloat(v, 'e', -1, 64)
	exp, _ := strconv.Atoi(e[strings.IndexByte(e, 'e')+1:])
	if exp < -4 || exp >= 16 {
		return e
	}
	f := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsRune(f, '.') {
		f += ".0"
	}
	return f
}

// NewFmtFunc returns FormatSample for a negative precision, and fixed-point
// formatting with that many decimals otherwise.
func NewFmtFunc(precision int) FmtFunc {
	if precision < 0 {
		return FormatSample
	}
	return func(v float64) string {
		return strconv.FormatFloat(v, 'f', precision, 64)
	}
}
