// Command z80asm is the CLI front end for the two-pass Z80 assembler core.
package main

func main() {
	Execute()
}
