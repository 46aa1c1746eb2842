package main

import "github.com/DIE-SILVASE/qemu-new/cmd/stmgpio/cmd"

func main() {
	cmd.Execute()
}
