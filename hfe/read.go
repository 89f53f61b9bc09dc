package hfe

import (
	"fmt"
	"os"
)

// ReadHFEFile reads an HFE v1 file from disk and parses it into a Disk.
func ReadHFEFile(filename string) (*Disk, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return ParseHFE(data)
}

// ReadInfoFile reports the header parameters of an HFE file without fully
// decoding its track data.
func ReadInfoFile(filename string) (Info, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Info{}, fmt.Errorf("failed to read file: %w", err)
	}
	return ReadInfo(data)
}

// FromHFE reads an HFE file and writes its decoded sector image to a raw
// .img/.ima file. Grounded on xhm99.py's Xhm99Processor.fromhfe.
func FromHFE(hfePath, imgPath string) error {
	disk, err := ReadHFEFile(hfePath)
	if err != nil {
		return err
	}
	image, err := ExtractSectorImage(disk)
	if err != nil {
		return fmt.Errorf("failed to extract sectors from %s: %w", hfePath, err)
	}
	return WriteIMG(imgPath, image)
}
