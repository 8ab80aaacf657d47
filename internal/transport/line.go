// Package transport frames snapshots onto the serial link: one CSV record
// per line, six ASCII decimal integers, newline-terminated. No checksum,
// no acknowledgment.
package transport

import (
	"bufio"
	"fmt"
	"io"

	"hwpanel/internal/models"
)

// FormatLine serializes a snapshot into one wire record, newline included.
func FormatLine(s models.Snapshot) string {
	return fmt.Sprintf("%d,%d,%d,%d,%d,%d\n",
		s.CPUTemp, s.GPUTemp, s.CPUUsage, s.RAMUsage, s.GPUUsage, s.FPS)
}

// LineReader yields newline-framed records from any byte stream: a serial
// port, a pipe, or stdin.
type LineReader struct {
	scanner *bufio.Scanner
}

// NewLineReader wraps the stream. Lines longer than 256 bytes are never
// valid records, so the scan buffer stays small.
func NewLineReader(r io.Reader) *LineReader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 256), 256)
	return &LineReader{scanner: sc}
}

// Next blocks until a full line arrives. It returns io.EOF when the stream
// ends and the scanner's error otherwise.
func (lr *LineReader) Next() (string, error) {
	if lr.scanner.Scan() {
		return lr.scanner.Text(), nil
	}
	if err := lr.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}
