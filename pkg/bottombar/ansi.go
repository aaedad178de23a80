package bottombar

import "fmt"

// ANSI escape sequences for cursor movement and erasing.
const (
	// eraseLineSeq clears the entire current line.
	eraseLineSeq = "\033[2K"
	// eraseToEndSeq clears from the cursor to the end of the screen.
	eraseToEndSeq = "\033[J"
)

// cursorUpSeq returns the sequence to move the cursor up n lines.
// Returns the empty string for n <= 0 so callers can pass computed offsets.
func cursorUpSeq(n int) string {
	if n <= 0 {
		return ""
	}
	return fmt.Sprintf("\033[%dA", n)
}

// cursorDownSeq returns the sequence to move the cursor down n lines.
func cursorDownSeq(n int) string {
	if n <= 0 {
		return ""
	}
	return fmt.Sprintf("\033[%dB", n)
}
