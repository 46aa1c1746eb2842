package cmd

import (
	"fmt"
	"os"

	"github.com/DIE-SILVASE/qemu-new/pkg/gpio"
	"github.com/DIE-SILVASE/qemu-new/pkg/pinvec"
	"github.com/spf13/cobra"
)

var (
	regsPort   string
	regsPins   int
	regsScript string
)

var regsCmd = &cobra.Command{
	Use:   "regs",
	Short: "Dump a bank's register state",
	Long: `Dump the register state of a freshly reset bank, optionally after
executing a pin-vector file against it. With --verbose the per-pin mode
and pull configuration is decoded as well.

Examples:
  stmgpio regs --port A
  stmgpio regs --port B --pins 8
  stmgpio regs --script setup.pv --verbose`,
	Args: cobra.NoArgs,
	RunE: runRegs,
}

func init() {
	rootCmd.AddCommand(regsCmd)

	regsCmd.Flags().StringVarP(&regsPort, "port", "p", "A",
		"port letter (A..K), selects reset defaults")
	regsCmd.Flags().IntVarP(&regsPins, "pins", "n", 0,
		"pin count (1..16, 0 means 16)")
	regsCmd.Flags().StringVarP(&regsScript, "script", "s", "",
		"pin-vector file to execute before dumping")
}

func runRegs(cmd *cobra.Command, args []string) error {
	var bank *gpio.Bank

	if regsScript != "" {
		parser, err := pinvec.NewParser()
		if err != nil {
			return err
		}
		file, err := parser.ParseFile(regsScript)
		if err != nil {
			return err
		}
		result, err := pinvec.Run(file)
		if err != nil {
			return err
		}
		if result.Failed() {
			for _, f := range result.Failures {
				fmt.Printf("FAIL %s\n", f)
			}
			return fmt.Errorf("%d expectation(s) failed", len(result.Failures))
		}
		bank = result.Bank
	}

	if bank == nil {
		port, err := gpio.ParsePort(regsPort)
		if err != nil {
			return err
		}
		bank, err = gpio.New(gpio.Config{
			Port: port,
			Pins: regsPins,
			Diag: gpio.LogSink{W: os.Stderr},
		})
		if err != nil {
			return err
		}
	}

	dumpBank(bank)

	if verbose {
		fmt.Println()
		for pin := 0; pin < bank.Pins(); pin++ {
			fmt.Printf("  pin %-2d  %-9s  %s\n", pin, bank.PinMode(pin), bank.PinPull(pin))
		}
	}

	return nil
}
