package diag

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/logrusorgru/aurora"
)

// Verbose gates Dump and Banner. cmd/z80asm sets this from --verbose.
var Verbose bool

// Dump pretty-prints v under label when Verbose is set, straight to stdout —
// debug output, not a log line, so it bypasses glog deliberately.
func Dump(label string, v interface{}) {
	if !Verbose {
		return
	}
	fmt.Println(aurora.Cyan(label).Bold())
	fmt.Println(spew.Sdump(v))
}

// Banner prints a colored stage header ("Pass 1", "Pass 2", ...) when
// Verbose is set.
func Banner(stage string) {
	if !Verbose {
		return
	}
	fmt.Println(aurora.Cyan(stage).Bold())
}
