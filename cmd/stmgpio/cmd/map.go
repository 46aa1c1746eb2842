package cmd

import (
	"fmt"

	"github.com/DIE-SILVASE/qemu-new/pkg/gpio"
	"github.com/spf13/cobra"
)

var mapCmd = &cobra.Command{
	Use:   "map",
	Short: "Print the register address map",
	Long: `Print the byte offset, name and access attributes of every register
in a port's address window.`,
	Args: cobra.NoArgs,
	RunE: runMap,
}

func init() {
	rootCmd.AddCommand(mapCmd)
}

func runMap(cmd *cobra.Command, args []string) error {
	fmt.Printf("Offset  Name     Access  Description\n")

	rows := []struct {
		offset uint32
		access string
		desc   string
	}{
		{gpio.RegMODER, "rw", "pin mode, 2 bits per pin"},
		{gpio.RegOTYPER, "rw", "output type (stored only)"},
		{gpio.RegOSPEEDR, "rw", "output speed (stored only)"},
		{gpio.RegPUPDR, "rw", "pull-up/pull-down, 2 bits per pin"},
		{gpio.RegIDR, "ro", "resolved pin levels"},
		{gpio.RegODR, "rw", "requested output levels"},
		{gpio.RegBSRR, "wo", "bit set (low half) / reset (high half)"},
		{gpio.RegLCKR, "rw", "configuration lock (stored only)"},
		{gpio.RegAFRL, "rw", "alternate function, pins 0-7 (stored only)"},
		{gpio.RegAFRH, "rw", "alternate function, pins 8-15 (stored only)"},
	}

	for _, r := range rows {
		fmt.Printf("%#05x  %-7s  %-6s  %s\n", r.offset, gpio.RegName(r.offset), r.access, r.desc)
	}

	fmt.Printf("\nWindow size %#x bytes; all other offsets are invalid.\n", gpio.PeripheralSize)
	return nil
}
