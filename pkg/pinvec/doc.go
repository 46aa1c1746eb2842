// Package pinvec implements a small stimulus language for exercising a
// GPIO bank: pin-vector files describe a sequence of register accesses,
// external pin drives, and expectations, and the runner executes them
// against a fresh bank.
//
// # File format
//
// One statement per line, # comments, case-insensitive keywords:
//
//	port A              # reset defaults (before the first action)
//	pins 16             # pin count, 1..16
//	write MODER 0x1     # register write by name
//	write BSRR 0x1
//	expect ODR 0x1      # register assertion
//	expect IDR 0x1
//	expect output 0 high
//	drive 3 high        # external drive
//	release 3           # back to floating
//	read IDR            # value recorded in the run result
//	reset               # warm reset
//
// Without a port statement the bank runs on port C, which has no
// pull-up reset defaults.
//
// # Usage
//
//	parser, err := pinvec.NewParser()
//	file, err := parser.ParseFile("blink.pv")
//	result, err := pinvec.Run(file)
//	if result.Failed() { ... }
package pinvec
