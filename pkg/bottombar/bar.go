package bottombar

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

type barState int

const (
	stateUninitialized barState = iota
	stateActive
	stateFinalized
)

// Bar owns a reserved region of terminal lines at the bottom of the screen.
// It is the sole writer of escape sequences for that terminal while active;
// all methods are safe for concurrent use, but concurrent writes to the
// same terminal from elsewhere will corrupt the display.
type Bar struct {
	mu       sync.Mutex
	out      io.Writer
	height   int
	lines    []string
	state    barState
	mode     outputMode
	width    int
	truncate bool
}

// New creates a Bar reserving height terminal lines. It performs no
// terminal I/O; call Init to reserve the screen space. Returns
// ErrInvalidHeight when height < 1.
func New(height int, opts ...Option) (*Bar, error) {
	if height < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidHeight, height)
	}

	b := &Bar{
		out:      os.Stdout,
		height:   height,
		lines:    make([]string, height),
		truncate: true,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// Height returns the fixed number of reserved lines.
func (b *Bar) Height() int {
	return b.height
}

// Line returns the last content set for the given region row.
func (b *Bar) Line(index int) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if index < 0 || index >= b.height {
		return "", fmt.Errorf("%w: index %d, height %d", ErrIndexOutOfRange, index, b.height)
	}
	return b.lines[index], nil
}

// Lines returns a snapshot of all region row contents, top to bottom.
func (b *Bar) Lines() []string {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]string, b.height)
	copy(out, b.lines)
	return out
}

// Init reserves the vertical screen space for the region and leaves the
// cursor at the region's first row. The cursor's current line becomes row
// 0, so only height-1 extra lines are emitted. Calling Init more than once
// returns ErrInvalidState.
func (b *Bar) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state != stateUninitialized {
		return fmt.Errorf("%w: already initialized", ErrInvalidState)
	}

	b.resolveMode()
	if b.mode == modePlain {
		b.state = stateActive
		return nil
	}

	var payload strings.Builder
	payload.WriteString(strings.Repeat("\r\n", b.height-1))
	payload.WriteString(cursorUpSeq(b.height - 1))
	payload.WriteString("\r")

	if err := b.write(payload.String()); err != nil {
		return err
	}
	b.state = stateActive
	return nil
}

// PrintLine prints text as ordinary scrolling output above the region,
// pushing the region down by one terminal line per line of text. The text
// may contain newlines. The whole update is emitted as a single write so
// no intermediate, half-painted frame is visible.
func (b *Bar) PrintLine(text string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state != stateActive {
		return fmt.Errorf("%w: bar is not active", ErrInvalidState)
	}

	if b.mode == modePlain {
		return b.write(text + "\n")
	}

	// Cursor rests at the region's first row. Erase the old region
	// painting, write the scrolled text where the region used to start,
	// then repaint every row below it and move back up.
	var payload strings.Builder
	payload.WriteString(eraseToEndSeq)
	for _, part := range strings.Split(text, "\n") {
		payload.WriteString(part)
		payload.WriteString("\r\n")
	}
	for i, row := range b.lines {
		payload.WriteString(eraseLineSeq)
		payload.WriteString(b.fit(row))
		if i < b.height-1 {
			payload.WriteString("\r\n")
		}
	}
	payload.WriteString(cursorUpSeq(b.height - 1))
	payload.WriteString("\r")

	return b.write(payload.String())
}

// PrintBarLine sets the content of one region row and redraws only that
// terminal line. The cursor returns to the position used for scrolling
// output, so other rows are untouched and the terminal does not scroll.
func (b *Bar) PrintBarLine(index int, text string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state != stateActive {
		return fmt.Errorf("%w: bar is not active", ErrInvalidState)
	}
	if index < 0 || index >= b.height {
		return fmt.Errorf("%w: index %d, height %d", ErrIndexOutOfRange, index, b.height)
	}
	if strings.ContainsRune(text, '\n') {
		return fmt.Errorf("%w: row %d", ErrMultiline, index)
	}

	b.lines[index] = text
	if b.mode == modePlain {
		return nil
	}

	var payload strings.Builder
	payload.WriteString(cursorDownSeq(index))
	payload.WriteString("\r")
	payload.WriteString(eraseLineSeq)
	payload.WriteString(b.fit(text))
	payload.WriteString(cursorUpSeq(index))
	payload.WriteString("\r")

	return b.write(payload.String())
}

// Finalize moves the cursor below the region and emits a trailing newline
// so subsequent output starts on a clean line. It is a no-op when the bar
// was never initialized or has already been finalized, which makes it safe
// to call unconditionally from cleanup paths. A failed write is returned
// but not retried; the bar is considered finalized either way.
func (b *Bar) Finalize() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state != stateActive {
		return nil
	}
	b.state = stateFinalized

	if b.mode == modePlain {
		return b.dumpPlain()
	}

	return b.write(cursorDownSeq(b.height-1) + "\r\n")
}

// resolveMode settles auto mode and the terminal width on first use.
func (b *Bar) resolveMode() {
	isTerm := false
	fd := -1
	if f, ok := b.out.(*os.File); ok {
		fd = int(f.Fd())
		isTerm = term.IsTerminal(fd)
	}

	if b.mode == modeAuto {
		if isTerm {
			b.mode = modeTerminal
		} else {
			b.mode = modePlain
		}
	}
	if b.mode == modeTerminal && b.width == 0 && isTerm {
		if w, _, err := term.GetSize(fd); err == nil {
			b.width = w
		}
	}
}

// dumpPlain prints the final region contents once, for sinks where the
// region was never painted in place.
func (b *Bar) dumpPlain() error {
	last := len(b.lines) - 1
	for last >= 0 && b.lines[last] == "" {
		last--
	}
	if last < 0 {
		return nil
	}
	return b.write(strings.Join(b.lines[:last+1], "\n") + "\n")
}

// fit truncates a row to the known terminal width by display cells.
func (b *Bar) fit(row string) string {
	if !b.truncate || b.width <= 0 {
		return row
	}
	if runewidth.StringWidth(row) <= b.width {
		return row
	}
	return runewidth.Truncate(row, b.width, "")
}

func (b *Bar) write(payload string) error {
	if _, err := io.WriteString(b.out, payload); err != nil {
		return fmt.Errorf("%w: %w", ErrOutputSink, err)
	}
	return nil
}
