package cmd

import (
	"github.com/spf13/cobra"
	"github.com/xdt99/hfe99/hfe"
)

var dumpCmd = &cobra.Command{
	Use:   "dump IN.HFE OUT.DUMP",
	Short: "Dump every decoded track of an HFE image to a flat binary file",
	Long: `dump decodes every track of an HFE image (both sides, in ascending
track order, side 0 first) and writes the concatenated decoded bytes with
no separators, for inspecting the raw gap/mark/sector layout xhm99.py's
dump verb exposes.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		hfePath, dumpPath := args[0], args[1]
		if err := hfe.WriteDumpFile(hfePath, dumpPath); err != nil {
			checkErrf("hfe99: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(dumpCmd)
}
