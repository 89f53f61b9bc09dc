package fm

import "testing"

// S4: spec.md §8 — literal FM encode/decode vectors.
func TestEncodeDecodeS4(t *testing.T) {
	if got := Encode(0x00); got != [4]byte{0x22, 0x22, 0x22, 0x22} {
		t.Errorf("Encode(0x00) = % x", got)
	}
	if got := Encode(0xff); got != [4]byte{0xaa, 0xaa, 0xaa, 0xaa} {
		t.Errorf("Encode(0xff) = % x", got)
	}
	if got := Decode([4]byte{0x22, 0x22, 0x22, 0x22}); got != 0x00 {
		t.Errorf("Decode(0x22222222) = %#x, want 0x00", got)
	}
	if got := Decode([4]byte{0xaa, 0xaa, 0xaa, 0xaa}); got != 0xff {
		t.Errorf("Decode(0xaaaaaaaa) = %#x, want 0xff", got)
	}
}

func TestCodesInjective(t *testing.T) {
	seen := make(map[[4]byte]int, 256)
	for b, enc := range Codes {
		if prev, dup := seen[enc]; dup {
			t.Fatalf("Codes[%d] == Codes[%d] == % x: table not injective", b, prev, enc)
		}
		seen[enc] = b
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for b := 0; b < 256; b++ {
		enc := Encode(byte(b))
		if got := Decode(enc); got != byte(b) {
			t.Errorf("round trip byte %#x: Decode(Encode(b)) = %#x", b, got)
		}
	}
}

func TestEncodeDecodeBytesRoundTrip(t *testing.T) {
	data := make([]byte, 256)
	for i := range data {
		data[i] = byte(i)
	}
	encoded := EncodeBytes(data)
	if len(encoded) != len(data)*4 {
		t.Fatalf("EncodeBytes length = %d, want %d", len(encoded), len(data)*4)
	}
	decoded := DecodeBytes(encoded)
	for i, b := range data {
		if decoded[i] != b {
			t.Fatalf("byte %d: decoded %#x, want %#x", i, decoded[i], b)
		}
	}
}

func TestTrackLenArithmetic(t *testing.T) {
	want := LVLeadin + Sectors*(LVPregap+LVAddressMark+6+LVGap1+LVDataMark+LVSectorRecord+LVGap2) + LVLeadout
	if TrackLen != want {
		t.Errorf("TrackLen = %d, want %d", TrackLen, want)
	}
}

func TestInterleaveCoversAllSectors(t *testing.T) {
	for track := 0; track < 3; track++ {
		seen := make(map[int]bool, Sectors)
		for slot := 0; slot < Sectors; slot++ {
			id := Interleave(0, track, slot, false)
			if id < 0 || id >= Sectors {
				t.Fatalf("track %d slot %d: sector id %d out of range", track, slot, id)
			}
			if seen[id] {
				t.Fatalf("track %d: sector id %d written twice", track, id)
			}
			seen[id] = true
		}
	}
}

func TestInterleaveWTF80CoversAllSectors(t *testing.T) {
	for _, track := range []int{0, 10, 36, 37, 50} {
		seen := make(map[int]bool, Sectors)
		for slot := 0; slot < Sectors; slot++ {
			id := Interleave(1, track, slot, true)
			if id < 0 || id >= Sectors {
				t.Fatalf("track %d slot %d: sector id %d out of range", track, slot, id)
			}
			if seen[id] {
				t.Fatalf("track %d: sector id %d written twice", track, id)
			}
			seen[id] = true
		}
	}
}

func TestFixClocksIsNoOp(t *testing.T) {
	data := []byte{0x11, 0x22, 0x33, 0x44}
	want := append([]byte{}, data...)
	FixClocks(data)
	for i, b := range data {
		if b != want[i] {
			t.Errorf("FixClocks mutated byte %d: %#x -> %#x", i, want[i], b)
		}
	}
}
