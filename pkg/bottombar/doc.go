// Package bottombar maintains a fixed-height status region pinned to the
// bottom of an interactive terminal while ordinary output scrolls above it.
//
// A Bar reserves a number of terminal lines, lets callers update each line
// in place, and prints normal output above the reserved region without
// tearing it apart:
//
//	err := bottombar.Run(2, func(bar *bottombar.Bar) error {
//		bar.PrintBarLine(0, "status: running")
//		for i := 0; i < 10; i++ {
//			bar.PrintLine(fmt.Sprintf("processed item %d", i))
//			bar.PrintBarLine(1, fmt.Sprintf("progress: %d/10", i+1))
//		}
//		return nil
//	})
//
// When the output sink is not an interactive terminal (a pipe, a file, a CI
// log), the Bar switches to plain output: scrolled lines pass through
// verbatim and the final region contents are dumped once at the end, so
// captured logs stay free of escape sequences.
//
// Limitations: the Bar assumes it is the sole writer to the terminal while
// active, and that the terminal size does not change between writes. Only
// one Bar may be active against a given terminal at a time. Terminal resize
// is not detected or handled. The escape sequences used (cursor movement,
// line and display erase) require a VT100/ANSI-compatible terminal.
package bottombar
