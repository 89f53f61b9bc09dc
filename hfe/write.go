package hfe

import (
	"fmt"
	"os"
)

// WriteHFEFile writes a fully built HFE v1 image to disk.
func WriteHFEFile(filename string, data []byte) error {
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// ToHFE reads a raw sector image (.img/.ima) and writes the HFE v1 image
// built from it. Grounded on xhm99.py's Xhm99Processor.tohfe.
func ToHFE(imgPath, hfePath string) error {
	image, err := ReadIMG(imgPath)
	if err != nil {
		return err
	}
	data, err := SectorImageToHFE(image)
	if err != nil {
		return fmt.Errorf("failed to build HFE image from %s: %w", imgPath, err)
	}
	return WriteHFEFile(hfePath, data)
}

// WriteDumpFile writes the flattened decoded-track dump of an HFE file to
// a plain binary file. Grounded on xhm99.py's Xhm99Processor.dump.
func WriteDumpFile(hfePath, dumpPath string) error {
	disk, err := ReadHFEFile(hfePath)
	if err != nil {
		return err
	}
	return os.WriteFile(dumpPath, DumpTracks(disk), 0o644)
}
