package cmd

import (
	"io"
	"log/slog"
	"time"

	"github.com/alantheprice/bottombar/pkg/bottombar"
	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	logDemoRounds int
	logDemoFile   string
)

var logDemoCmd = &cobra.Command{
	Use:   "logdemo",
	Short: "Scroll structured log records above a framed status region",
	Long: `Emits slog records at every level; they scroll above a three-line
frame pinned to the bottom of the terminal. With --log-file the records are
also appended to a size-rotated log file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return bottombar.Run(3, func(bar *bottombar.Bar) error {
			opts := &slog.HandlerOptions{Level: slog.LevelDebug}

			var handler slog.Handler
			if logDemoFile != "" {
				rotated := &lumberjack.Logger{
					Filename:   logDemoFile,
					MaxSize:    15, // megabytes
					MaxBackups: 3,
					MaxAge:     28, // days
					Compress:   true,
				}
				defer rotated.Close()
				handler = slog.NewTextHandler(io.MultiWriter(bar.Writer(), rotated), opts)
			} else {
				handler = bottombar.NewLogHandler(bar, opts)
			}
			logger := slog.New(handler)

			_ = bar.PrintBarLine(0, "=========== Logging Bottom Bar ==========")
			_ = bar.PrintBarLine(1, " Logs will appear above this bar. ")
			_ = bar.PrintBarLine(2, "=========================================")

			for i := 1; i <= logDemoRounds; i++ {
				logger.Info("info message", "round", i)
				logger.Debug("debug message", "round", i)
				logger.Warn("warning message", "round", i)
				logger.Error("error message", "round", i)
				time.Sleep(200 * time.Millisecond)
			}
			return nil
		})
	},
}

func init() {
	logDemoCmd.Flags().IntVar(&logDemoRounds, "rounds", 2, "number of log rounds to emit")
	logDemoCmd.Flags().StringVar(&logDemoFile, "log-file", "", "also append records to this rotating log file")
}
