package main

import (
	"os"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/bshepherdson/z80asm/internal/assembler"
	"github.com/bshepherdson/z80asm/internal/diag"
	"github.com/bshepherdson/z80asm/internal/lex"
	"github.com/bshepherdson/z80asm/internal/opcode"
)

var outputPath string

var assembleCmd = &cobra.Command{
	Use:   "assemble sourceFile",
	Short: "Assemble a Z80 source file into a flat binary image",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		lines, err := lex.Scan(string(src))
		if err != nil {
			return err
		}

		res, err := assembler.Assemble(lines, opcode.DefaultTable)
		if err != nil {
			return err
		}
		for _, w := range res.Warnings {
			glog.Warning(w.String())
		}

		out := outputPath
		if out == "" {
			out = args[0] + ".bin"
		}
		return os.WriteFile(out, res.Bytes, 0644)
	},
}

func init() {
	assembleCmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file path (default: <input>.bin)")
	assembleCmd.Flags().BoolVar(&diag.Verbose, "verbose", false, "dump the Pass 1 context, queue and assembled bytes")
	rootCmd.AddCommand(assembleCmd)
}
