package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xdt99/hfe99/hfe"
)

var infoCmd = &cobra.Command{
	Use:   "info IN.HFE",
	Short: "Print an HFE image's header parameters",
	Long: `info reports an HFE image's track count, side count, encoding, and
interface mode without decoding any track data, mirroring xhm99.py's
default (no-flag) verb.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		info, err := hfe.ReadInfoFile(args[0])
		if err != nil {
			checkErrf("hfe99: %v", err)
		}
		fmt.Printf("tracks:         %d\n", info.Tracks)
		fmt.Printf("sides:          %d\n", info.Sides)
		fmt.Printf("encoding:       %s\n", info.EncodingName())
		fmt.Printf("interface mode: %d\n", info.InterfaceMode)
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
