package cmd

import (
	"github.com/spf13/cobra"
	"github.com/xdt99/hfe99/hfe"
)

var fromhfeCmd = &cobra.Command{
	Use:   "fromhfe IN.HFE SECTORS.IMG",
	Short: "Extract a raw sector image from an HFE image",
	Long: `fromhfe reads an HFE v1 image, decodes every track's FM or MFM
bitstream back into sector bytes, and writes the result as a raw sector
image (.img/.ima).`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		hfePath, imgPath := args[0], args[1]
		if err := hfe.FromHFE(hfePath, imgPath); err != nil {
			checkErrf("hfe99: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(fromhfeCmd)
}
