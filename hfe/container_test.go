package hfe

import (
	"bytes"
	"testing"
)

// S1: spec.md §8 — exact header bytes for (tracks=40, sides=2, dd=false,
// protected=false).
func TestBuildHeaderS1(t *testing.T) {
	want := []byte{
		0x48, 0x58, 0x43, 0x50, 0x49, 0x43, 0x46, 0x45,
		0x00, 0x28, 0x02, 0x02, 0xfa, 0x00, 0x00, 0x00,
		0x07, 0x01, 0x01, 0x00, 0xff,
	}
	got := BuildHeader(40, 2, EncodingSD, false)
	if len(got) != HeaderSize {
		t.Fatalf("header length = %d, want %d", len(got), HeaderSize)
	}
	if !bytes.Equal(got[:len(want)], want) {
		t.Errorf("header[:21] = % x, want % x", got[:len(want)], want)
	}
	for i := len(want); i < HeaderSize; i++ {
		if got[i] != 0xff {
			t.Fatalf("header[%d] = %#x, want 0xff", i, got[i])
		}
	}
}

// S2: spec.md §8 — exact LUT bytes for (tracks=2, dd=true).
func TestBuildLUTS2(t *testing.T) {
	want := []byte{0x02, 0x00, 0xc0, 0x61, 0x33, 0x00, 0xc0, 0x61}
	got := BuildLUT(2, true)
	if len(got) != LUTSize {
		t.Fatalf("LUT length = %d, want %d", len(got), LUTSize)
	}
	if !bytes.Equal(got[:len(want)], want) {
		t.Errorf("lut[:8] = % x, want % x", got[:len(want)], want)
	}
	for i := len(want); i < LUTSize; i++ {
		if got[i] != 0xff {
			t.Fatalf("lut[%d] = %#x, want 0xff", i, got[i])
		}
	}
}

// S6: a 360-sector (40 tracks, 1 side, 9 sectors, 256 bytes) all-zero SD
// sector image must convert to an HFE image that is bit-exactly
// reproducible across runs and made of whole 256-byte chunks.
func TestSectorImageToHFEDeterministicS6(t *testing.T) {
	image := make([]byte, 40*1*9*256)
	image[0x10] = 0x00 // not protected
	image[0x11] = 40
	image[0x12] = 1
	image[0x13] = 0 // SD

	out1, err := SectorImageToHFE(image)
	if err != nil {
		t.Fatalf("SectorImageToHFE: %v", err)
	}
	out2, err := SectorImageToHFE(image)
	if err != nil {
		t.Fatalf("SectorImageToHFE (second run): %v", err)
	}
	if !bytes.Equal(out1, out2) {
		t.Fatalf("SectorImageToHFE is not deterministic across runs")
	}

	if len(out1)%256 != 0 {
		t.Errorf("HFE image length %d is not a multiple of 256", len(out1))
	}
	if len(out1) <= HeaderSize+LUTSize {
		t.Fatalf("HFE image too short: %d bytes", len(out1))
	}
}

// A full all-zero SD disk round-trips through SectorImageToHFE and back to
// an identical sector image via ParseHFE/ExtractSectorImage.
func TestSectorImageRoundTripSD(t *testing.T) {
	image := make([]byte, 40*1*9*256)
	image[0x11] = 40
	image[0x12] = 1
	image[0x13] = 0

	hfeImage, err := SectorImageToHFE(image)
	if err != nil {
		t.Fatalf("SectorImageToHFE: %v", err)
	}
	disk, err := ParseHFE(hfeImage)
	if err != nil {
		t.Fatalf("ParseHFE: %v", err)
	}
	if disk.Header.Tracks != 40 || disk.Header.Sides != 1 || disk.Header.Encoding != EncodingSD {
		t.Fatalf("unexpected header: %+v", disk.Header)
	}
	out, err := ExtractSectorImage(disk)
	if err != nil {
		t.Fatalf("ExtractSectorImage: %v", err)
	}
	if !bytes.Equal(out, image) {
		t.Errorf("round-tripped SD sector image does not match original")
	}
}

// Same round trip for a double-sided DD image, with non-zero sector
// content so sector-id and side bookkeeping is actually exercised.
func TestSectorImageRoundTripDD(t *testing.T) {
	tracks, sides, sectors := 40, 2, 18
	image := make([]byte, tracks*sides*sectors*256)
	for i := range image {
		image[i] = byte(i)
	}
	image[0x11] = byte(tracks)
	image[0x12] = byte(sides)
	image[0x13] = 2 // DD

	hfeImage, err := SectorImageToHFE(image)
	if err != nil {
		t.Fatalf("SectorImageToHFE: %v", err)
	}
	disk, err := ParseHFE(hfeImage)
	if err != nil {
		t.Fatalf("ParseHFE: %v", err)
	}
	out, err := ExtractSectorImage(disk)
	if err != nil {
		t.Fatalf("ExtractSectorImage: %v", err)
	}
	if !bytes.Equal(out, image) {
		t.Errorf("round-tripped DD sector image does not match original")
	}
}

func TestParseHFERejectsBadSignature(t *testing.T) {
	data := make([]byte, HeaderSize+LUTSize)
	copy(data, "NOTHXCPI")
	if _, err := ParseHFE(data); err == nil {
		t.Fatal("expected error for bad signature")
	}
}

func TestReadInfo(t *testing.T) {
	image := make([]byte, 40*1*9*256)
	image[0x11] = 40
	image[0x12] = 1
	image[0x13] = 0

	hfeImage, err := SectorImageToHFE(image)
	if err != nil {
		t.Fatalf("SectorImageToHFE: %v", err)
	}
	info, err := ReadInfo(hfeImage)
	if err != nil {
		t.Fatalf("ReadInfo: %v", err)
	}
	if info.Tracks != 40 || info.Sides != 1 || info.EncodingName() != "SD/FM" {
		t.Errorf("unexpected info: %+v", info)
	}
}

func TestDumpTracksLength(t *testing.T) {
	image := make([]byte, 40*2*9*256)
	image[0x11] = 40
	image[0x12] = 2
	image[0x13] = 0

	hfeImage, err := SectorImageToHFE(image)
	if err != nil {
		t.Fatalf("SectorImageToHFE: %v", err)
	}
	disk, err := ParseHFE(hfeImage)
	if err != nil {
		t.Fatalf("ParseHFE: %v", err)
	}
	dump := DumpTracks(disk)
	want := 2 * 40 * SDFormat.TrackLen
	if len(dump) != want {
		t.Errorf("dump length = %d, want %d", len(dump), want)
	}
}
