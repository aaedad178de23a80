package bottombar

import "io"

type outputMode int

const (
	// modeAuto probes the sink at Init: escape sequences for interactive
	// terminals, plain output otherwise.
	modeAuto outputMode = iota
	modeTerminal
	modePlain
)

// Option configures a Bar at construction time.
type Option func(*Bar)

// WithWriter directs all output to w instead of os.Stdout. Unless an
// explicit mode option is also given, a non-terminal writer gets plain
// output.
func WithWriter(w io.Writer) Option {
	return func(b *Bar) {
		if w != nil {
			b.out = w
		}
	}
}

// WithTerminalOutput forces escape-sequence output regardless of what the
// sink looks like, assuming a terminal width of width columns. A width of 0
// means unknown, which disables row truncation.
func WithTerminalOutput(width int) Option {
	return func(b *Bar) {
		b.mode = modeTerminal
		b.width = width
	}
}

// WithPlainOutput forces plain output: scrolled lines pass through
// verbatim and the final region contents are printed once at Finalize.
func WithPlainOutput() Option {
	return func(b *Bar) {
		b.mode = modePlain
	}
}

// WithoutTruncation keeps bar rows at full length even when they exceed
// the terminal width. Wrapping behavior is then up to the terminal and may
// disturb the region layout.
func WithoutTruncation() Option {
	return func(b *Bar) {
		b.truncate = false
	}
}
