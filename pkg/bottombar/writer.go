package bottombar

import (
	"bytes"
	"strings"
	"sync"
)

// LineWriter adapts a Bar to io.Writer so loggers and anything using
// fmt.Fprintf can print above the region. Writes are buffered until a
// newline completes a line; each completed line is forwarded to PrintLine.
type LineWriter struct {
	bar *Bar
	mu  sync.Mutex
	buf bytes.Buffer
}

// Writer returns an io.Writer that scrolls each written line above the
// region.
func (b *Bar) Writer() *LineWriter {
	return &LineWriter{bar: b}
}

// Write buffers p and forwards completed lines to the bar. Partial lines
// are held until the terminating newline arrives, so split writes from
// buffered producers reassemble correctly.
func (w *LineWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buf.Write(p)
	for {
		content := w.buf.String()
		idx := strings.IndexByte(content, '\n')
		if idx < 0 {
			return len(p), nil
		}
		line := strings.TrimSuffix(content[:idx], "\r")
		w.buf.Next(idx + 1)
		if err := w.bar.PrintLine(line); err != nil {
			return len(p), err
		}
	}
}

// Flush forwards any buffered partial line to the bar.
func (w *LineWriter) Flush() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.buf.Len() == 0 {
		return nil
	}
	line := w.buf.String()
	w.buf.Reset()
	return w.bar.PrintLine(line)
}
