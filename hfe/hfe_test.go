package hfe

import (
	"bytes"
	"testing"
)

// assembleAndDisassemble builds a single-track, single-side disk from
// sectorImage (which must be f.Sectors*256 bytes). AssembleTracks returns
// the raw bit-encoded stream, so it must be bit-decoded first — exactly
// as ParseHFE does before handing a track to DisassembleTrack, which
// walks decoded field widths (LVLeadin, ...) and expects a
// f.TrackLen-sized decoded track.
func assembleAndDisassemble(t *testing.T, f Format, sectorImage []byte) []byte {
	t.Helper()
	side0, _ := AssembleTracks(1, 1, f, sectorImage)
	decoded := f.DecodeBytes(side0)
	if len(decoded) != f.TrackLen {
		t.Fatalf("decoded track length = %d, want %d (f.TrackLen)", len(decoded), f.TrackLen)
	}
	out, err := DisassembleTrack(decoded, f)
	if err != nil {
		t.Fatalf("DisassembleTrack: %v", err)
	}
	return out
}

func TestAssembleDisassembleTrackSD(t *testing.T) {
	image := make([]byte, SDFormat.Sectors*256)
	for i := range image {
		image[i] = byte(i)
	}
	out := assembleAndDisassemble(t, SDFormat, image)
	if !bytes.Equal(out, image) {
		t.Errorf("SD track round trip mismatch")
	}
}

func TestAssembleDisassembleTrackDD(t *testing.T) {
	image := make([]byte, DDFormat.Sectors*256)
	for i := range image {
		image[i] = byte(255 - i%256)
	}
	out := assembleAndDisassemble(t, DDFormat, image)
	if !bytes.Equal(out, image) {
		t.Errorf("DD track round trip mismatch")
	}
}

func TestDisassembleTrackRejectsBadAddressMark(t *testing.T) {
	image := make([]byte, SDFormat.Sectors*256)
	side0, _ := AssembleTracks(1, 1, SDFormat, image)
	decoded := SDFormat.DecodeBytes(side0)
	corrupted := append([]byte{}, decoded...)
	corrupted[SDFormat.LVLeadin+SDFormat.LVPregap] ^= 0xff

	if _, err := DisassembleTrack(corrupted, SDFormat); err == nil {
		t.Fatal("expected error for corrupted address mark")
	}
}

func TestFormatForUnsupportedEncoding(t *testing.T) {
	if _, err := formatFor(0x7f); err == nil {
		t.Fatal("expected error for unsupported encoding byte")
	}
}

func TestFormatForDispatch(t *testing.T) {
	f, err := formatFor(EncodingSD)
	if err != nil {
		t.Fatalf("formatFor(EncodingSD): %v", err)
	}
	if f.Sectors != SDFormat.Sectors {
		t.Errorf("formatFor(EncodingSD).Sectors = %d, want %d", f.Sectors, SDFormat.Sectors)
	}
	f, err = formatFor(EncodingDD)
	if err != nil {
		t.Fatalf("formatFor(EncodingDD): %v", err)
	}
	if f.Sectors != DDFormat.Sectors {
		t.Errorf("formatFor(EncodingDD).Sectors = %d, want %d", f.Sectors, DDFormat.Sectors)
	}
}
