// Package cmd is the cobra-based command-line front end for hfe99,
// covering xhm99.py's Xhm99Processor verbs (tohfe, fromhfe, dump, info)
// as one subcommand apiece.
//
// Grounded on the teacher's cobra root (adapter/root.go): same
// CompletionOptions/cobra.CheckErr idiom, with the USB-adapter discovery
// PersistentPreRun dropped (this tool never talks to a physical drive).
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "hfe99",
	Short: "Convert between TI 99 HFE disk images and raw sector images",
	Long: `hfe99 converts between HxC Floppy Emulator (HFE) disk images and the
raw sector images used by TI 99 disk-manipulation tools.

Supported image formats:
  *.hfe          - HxC Floppy Emulator (v1 container, FM or MFM encoding)
  *.img or *.ima - raw binary contents of the entire disk`,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func checkErrf(format string, args ...any) {
	cobra.CheckErr(fmt.Errorf(format, args...))
}
