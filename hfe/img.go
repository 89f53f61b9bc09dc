package hfe

import (
	"fmt"
	"os"
)

// ReadIMG reads a raw sector-image file (.img/.ima). Unlike the HFE
// container, a sector image has no framing of its own — spec.md §3's
// SectorImage is exactly the flat byte buffer xhm99.py passes between
// HFEDisk.to_disk_image/create_from_disk and its external sector-level
// tool, so reading one is a plain file read.
func ReadIMG(filename string) ([]byte, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return data, nil
}

// WriteIMG writes a raw sector image to a .img/.ima file.
func WriteIMG(filename string, image []byte) error {
	if err := os.WriteFile(filename, image, 0o644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}
