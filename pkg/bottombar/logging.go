package bottombar

import "log/slog"

// NewLogHandler returns a slog.Handler whose records scroll above the
// region, one line per record, in slog's text format. opts may be nil for
// defaults. Records logged while the bar is not active are dropped.
func NewLogHandler(bar *Bar, opts *slog.HandlerOptions) slog.Handler {
	return slog.NewTextHandler(bar.Writer(), opts)
}
