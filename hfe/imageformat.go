package hfe

import (
	"path/filepath"
	"strings"
)

// ImageFormat represents a disk-image file format this module understands.
type ImageFormat int

const (
	// ImageFormatUnknown represents an unknown or unrecognized format.
	ImageFormatUnknown ImageFormat = iota
	ImageFormatHFE                 // HFE format - HxC Floppy Emulator (v1 only)
	ImageFormatIMG                 // IMG or IMA format - a raw, sector-by-sector binary copy of the disk
)

// String returns the string representation of the ImageFormat.
func (f ImageFormat) String() string {
	switch f {
	case ImageFormatHFE:
		return "HFE"
	case ImageFormatIMG:
		return "IMG"
	default:
		return "Unknown"
	}
}

// DetectImageFormat detects the image format from a filename based on its
// extension. The extension check is case-insensitive. Returns
// ImageFormatUnknown if the format cannot be determined.
func DetectImageFormat(filename string) ImageFormat {
	ext := filepath.Ext(filename)
	if ext == "" {
		return ImageFormatUnknown
	}
	switch strings.ToLower(ext[1:]) {
	case "hfe":
		return ImageFormatHFE
	case "img", "ima":
		return ImageFormatIMG
	default:
		return ImageFormatUnknown
	}
}
