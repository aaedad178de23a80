package cmd

import (
	"fmt"
	"math/big"
	"time"

	"github.com/alantheprice/bottombar/pkg/bottombar"
	"github.com/spf13/cobra"
)

var (
	demoCount int
	demoDelay time.Duration
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the factorial progress demo",
	Long: `Computes factorials one by one, printing each result above a
five-line status region that shows a live counter and elapsed time.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		start := time.Now()
		return bottombar.Run(5, func(bar *bottombar.Bar) error {
			_ = bar.PrintBarLine(0, "============== factorial ==============")
			_ = bar.PrintBarLine(1, " Just a simple factorial calculator !")
			_ = bar.PrintBarLine(2, fmt.Sprintf(" Computed : 0 / %d", demoCount))
			_ = bar.PrintBarLine(3, " Elapsed Time: 0.00 seconds")
			_ = bar.PrintBarLine(4, "=======================================")

			for i := 0; i < demoCount; i++ {
				result := factorial(i)
				if err := bar.PrintLine(fmt.Sprintf("Factorial of %d is %s", i, result)); err != nil {
					return err
				}
				_ = bar.PrintBarLine(2, fmt.Sprintf(" Computed : %d / %d", i+1, demoCount))
				_ = bar.PrintBarLine(3, fmt.Sprintf(" Elapsed Time: %.2f seconds", time.Since(start).Seconds()))
				time.Sleep(demoDelay)
			}
			return nil
		})
	},
}

func factorial(n int) *big.Int {
	result := big.NewInt(1)
	for i := 2; i <= n; i++ {
		result.Mul(result, big.NewInt(int64(i)))
	}
	return result
}

func init() {
	demoCmd.Flags().IntVar(&demoCount, "count", 50, "number of factorials to compute")
	demoCmd.Flags().DurationVar(&demoDelay, "delay", 100*time.Millisecond, "pause between computations")
}
