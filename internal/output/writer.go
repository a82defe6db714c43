package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// Writer appends step outputs as name=value lines to a file or io.Writer.
// It is safe for concurrent use and flushes every line as it is written.
type Writer struct {
	mu        sync.Mutex
	output    io.Writer
	count     int
	closeFunc func() error
	closed    bool
}

// NewWriter creates a step output writer that writes to the specified output.
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		output: w,
	}
}

// NewFileWriter creates a step output writer that appends to a file.
// Append mode matters: the Actions runtime shares one output file across
// every tool a step runs, and truncating it would destroy their outputs.
// The caller must call Close() when done to ensure the file is properly closed.
func NewFileWriter(filename string) (*Writer, error) {
	file, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open step output file: %w", err)
	}

	return &Writer{
		output:    file,
		closeFunc: file.Close,
	}, nil
}

// FromEnvironment creates a writer for the file named by GITHUB_OUTPUT.
// When the variable is unset or empty, outputs are silently discarded so
// runs outside of GitHub Actions behave the same as runs inside it.
func FromEnvironment() (*Writer, error) {
	path := os.Getenv("GITHUB_OUTPUT")
	if path == "" {
		return NewWriter(io.Discard), nil
	}
	return NewFileWriter(path)
}

// Set writes a single name=value output line.
// Names and values must fit the single-line format; multiline values need
// the runtime's heredoc syntax, which this tool has no use for.
func (w *Writer) Set(name, value string) error {
	if name == "" {
		return fmt.Errorf("step output name must not be empty")
	}
	if strings.ContainsAny(name, "=\n") {
		return fmt.Errorf("step output name %q contains reserved characters", name)
	}
	if strings.Contains(value, "\n") {
		return fmt.Errorf("step output value for %q must be a single line", name)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if _, err := fmt.Fprintf(w.output, "%s=%s\n", name, value); err != nil {
		return fmt.Errorf("failed to write step output %s: %w", name, err)
	}

	w.count++
	return nil
}

// Count returns the number of outputs written.
func (w *Writer) Count() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.count
}

// Close closes the underlying writer if it's a file.
// Calling Close more than once is safe.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}
	w.closed = true

	if w.closeFunc != nil {
		return w.closeFunc()
	}
	return nil
}
