// Package gpio models the digital-pin behaviour of an STM32-style
// general-purpose I/O port: the per-pin configuration registers, the
// data registers, and the interaction between externally-driven pin
// levels and software-requested output levels.
//
// # Overview
//
// The package provides:
//   - Bank: one peripheral instance, a bank of up to 16 pins with its
//     ten-register address window
//   - Read/Write: the word-access register contract, including the
//     write-only set/reset shortcut register
//   - SetExternal: the tri-state external signal interface
//   - Snapshot: a flat record of a bank's architectural state
//   - Ports: address decode for a row of banks mapped at fixed strides
//
// # Usage
//
//	bank, err := gpio.New(gpio.Config{
//		Port: gpio.PortA,
//		OutputChanged: func(pin int, level bool) {
//			fmt.Printf("pin %d -> %v\n", pin, level)
//		},
//	})
//
//	bank.Write(gpio.RegMODER, 0x1) // pin 0 to output mode
//	bank.Write(gpio.RegBSRR, 0x1)  // set pin 0, fires OutputChanged
//	idr, _ := bank.Read(gpio.RegIDR)
//
// # Pin state resolution
//
// The input data register (IDR) is never written directly. After every
// register write and every external signal change the bank re-resolves
// all of its pins: an externally-driven pin takes the external level
// (even when the pin is configured as an output — that is a
// short-circuit, reported but not arbitrated away), an output pin takes
// its ODR bit, and a floating pin reads high only under a pull-up.
// There is no high-impedance resolved state; every pin always reads as
// a definite level.
//
// # Concurrency
//
// A Bank is not safe for concurrent use. Every operation is a bounded,
// synchronous computation over the register file; callers that share a
// bank across goroutines must serialise access themselves. Distinct
// banks are fully independent.
package gpio
