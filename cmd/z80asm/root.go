package main

import (
	goflag "flag"

	"github.com/golang/glog"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "z80asm",
	Short: "A two-pass Z80 assembler",
	Long: `z80asm assembles Z80 source into a flat binary image.

It resolves labels and directives in a first pass, then emits the
instruction bytes in a second pass against the symbol table built by
the first.`,
}

func init() {
	// Wire glog's own flags (-v, -logtostderr, ...) through cobra's pflag set.
	rootCmd.PersistentFlags().AddGoFlagSet(goflag.CommandLine)
}

// Execute runs the root command, exiting the process on failure. Apart from
// diag.Sink.Bug's fatal exit on an assembler defect, it is the only place in
// this module that terminates the process.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		glog.Fatalf("%v", err)
	}
}
