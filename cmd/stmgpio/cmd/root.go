package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "stmgpio",
	Short: "STM32-style GPIO port model",
	Long: `A register-level model of an STM32-style GPIO port: the per-pin
configuration registers, the data registers, and the resolution of
externally-driven versus software-driven pin levels.

Examples:
  stmgpio run blink.pv           # Execute a pin-vector file
  stmgpio map                    # Print the register address map
  stmgpio regs --port B          # Dump a bank's register state`,
	Version: "0.1.0",
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
