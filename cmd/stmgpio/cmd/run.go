package cmd

import (
	"fmt"

	"github.com/DIE-SILVASE/qemu-new/pkg/gpio"
	"github.com/DIE-SILVASE/qemu-new/pkg/pinvec"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run <file.pv>",
	Short: "Execute a pin-vector file",
	Long: `Parse a pin-vector file and execute it against a fresh GPIO bank.
Read values, output-changed events and diagnostics are printed as the
run progresses; the command fails when any expectation does not hold.

Examples:
  stmgpio run blink.pv
  stmgpio run --verbose testdata/bsrr.pv`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	parser, err := pinvec.NewParser()
	if err != nil {
		return err
	}

	file, err := parser.ParseFile(args[0])
	if err != nil {
		return err
	}

	if verbose {
		fmt.Printf("Executing %d statement(s) from %s\n", len(file.Statements), args[0])
	}

	result, err := pinvec.Run(file)
	if err != nil {
		return err
	}

	for _, rd := range result.Reads {
		fmt.Printf("line %d: %-7s = %#010x\n", rd.Line, rd.Reg, rd.Value)
	}
	for _, ev := range result.Events {
		level := "low"
		if ev.Level {
			level = "high"
		}
		fmt.Printf("output: pin %d -> %s\n", ev.Pin, level)
	}
	for _, pin := range result.Shorts {
		fmt.Printf("diagnostic: pin %d short-circuited\n", pin)
	}
	for _, ba := range result.BadAccesses {
		fmt.Printf("diagnostic: bad %s offset %#03x\n", ba.Kind, ba.Offset)
	}

	if result.Failed() {
		for _, f := range result.Failures {
			fmt.Printf("FAIL %s\n", f)
		}
		return fmt.Errorf("%d expectation(s) failed", len(result.Failures))
	}

	if verbose && result.Bank != nil {
		fmt.Println()
		dumpBank(result.Bank)
	}

	fmt.Println("OK")
	return nil
}

// dumpBank prints every readable register of a bank.
func dumpBank(b *gpio.Bank) {
	fmt.Printf("Port %s, %d pin(s)\n", b.Port(), b.Pins())
	for off := uint32(0); off < uint32(gpio.NumRegs)*4; off += 4 {
		v, _ := b.Read(off)
		fmt.Printf("  %#05x %-7s = %#010x\n", off, gpio.RegName(off), v)
	}
}
