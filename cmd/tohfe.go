package cmd

import (
	"github.com/spf13/cobra"
	"github.com/xdt99/hfe99/config"
	"github.com/xdt99/hfe99/hfe"
)

var tohfeProfile string

var tohfeCmd = &cobra.Command{
	Use:   "tohfe SECTORS.IMG OUT.HFE",
	Short: "Build an HFE image from a raw sector image",
	Long: `tohfe reads a raw sector image (.img/.ima) and writes the HFE v1 image
built from it. Geometry (track count, side count, encoding) is read from
the sector image's own header bytes, the way xhm99.py's tohfe verb does;
--profile only patches those bytes first, for sector images that don't
already carry them.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		imgPath, hfePath := args[0], args[1]

		if tohfeProfile != "" {
			if err := patchGeometry(imgPath, tohfeProfile); err != nil {
				checkErrf("hfe99: %v", err)
			}
		}

		if err := hfe.ToHFE(imgPath, hfePath); err != nil {
			checkErrf("hfe99: %v", err)
		}
	},
}

// patchGeometry overwrites a sector image's geometry header bytes
// (0x11-0x13, per hfe.SectorImageToHFE's doc comment; the write-protect
// byte 0x10 is left as it is) in place, using the named profile, before
// the image is read back for conversion.
func patchGeometry(imgPath, profileName string) error {
	p, err := config.Lookup(profileName)
	if err != nil {
		return err
	}
	image, err := hfe.ReadIMG(imgPath)
	if err != nil {
		return err
	}
	image[0x11] = byte(p.Tracks)
	image[0x12] = byte(p.Sides)
	if p.DD() {
		image[0x13] = 2
	} else {
		image[0x13] = 0
	}
	return hfe.WriteIMG(imgPath, image)
}

func init() {
	tohfeCmd.Flags().StringVar(&tohfeProfile, "profile", "", "disk geometry profile to stamp into the sector image before conversion (SSSD40, DSDD80, ...)")
	rootCmd.AddCommand(tohfeCmd)
}
