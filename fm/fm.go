// Package fm implements the single-density (FM) bit-level codec used by
// HFE disk images for the TI 99: encoding a decoded byte into its 4-byte
// on-media representation and back, the SD sector interleave, and the
// fixed field widths and raw gap/mark byte sequences a track is built
// from.
//
// Grounded on SDFormat in xhm99.py (xdt99's HFE manager for the TI 99);
// table shape and package position borrowed from the teacher's mfm
// package (github.com/sergev/floppy/mfm), a sibling of hfe imported by
// it.
package fm

// Sectors is the number of 256-byte sectors per SD track.
const Sectors = 9

// TrackLen is the length, in decoded bytes, of one fully decoded SD
// track: one leadin, Sectors sector blocks, one leadout.
const TrackLen = LVLeadin + Sectors*334 + LVLeadout

// Field widths, in decoded bytes, of the fixed SD track layout (spec.md
// §4.1).
const (
	LVLeadin       = 17
	LVLeadout      = 113
	LVPregap       = 6
	LVAddressMark  = 1
	LVGap1         = 17
	LVDataMark     = 1
	LVSectorRecord = 258 // 256 data bytes + 2 CRC bytes
	LVGap2         = 45
)

// Decoded mark values.
var (
	VAddressMark = []byte{0xfe}
	VDataMark    = []byte{0xfb}
)

// Raw (already FM-encoded) field byte sequences, exactly as they are
// stored on the media — these are what TrackAssembler concatenates.
// ParseHFE bit-decodes them along with the rest of the track, and
// TrackDisassembler's cursor skips their decoded widths without checking
// the values (the leadout does not decode to meaningful bytes: xhm99.py
// notes "cannot decode" next to LEADOUT).
var (
	Leadin  = buildLeadin()
	Leadout = buildLeadout()

	AddressMark = []byte{0xaa, 0x88, 0xa8, 0x2a}
	DataMark    = []byte{0xaa, 0x88, 0x28, 0xaa}

	Pregap = repeat(0x22, 4*6)
	Gap1   = append(repeat(0xaa, 4*11), repeat(0x22, 4*6)...)
	Gap2   = repeat(0xaa, 4*45)
)

func repeat(b byte, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = b
	}
	return out
}

func buildLeadin() []byte {
	out := []byte{0xaa, 0xa8, 0xa8, 0x22}
	return append(out, repeat(0xaa, 4*16)...)
}

func buildLeadout() []byte {
	out := repeat(0xaa, 4*77)
	out = append(out, 0xaa, 0x50)
	out = append(out, repeat(0x55, 2+4*35)...)
	return out
}

// SectorInterleave is the regular SD sector-interleave table (spec.md
// §6), 27 entries wide (3 full revolutions of 9 sectors).
var SectorInterleave = [27]int{
	0, 7, 5, 3, 1, 8, 6, 4, 2,
	6, 4, 2, 0, 7, 5, 3, 1, 8,
	3, 1, 8, 6, 4, 2, 0, 7, 5,
}

// SectorInterleaveWTF is the side-1, 80-track-quirk interleave table used
// for tracks 0..36 only (spec.md §4.1, §9 "80-track quirk").
var SectorInterleaveWTF = [27]int{
	4, 2, 0, 7, 5, 3, 1, 8, 6,
	1, 8, 6, 4, 2, 0, 7, 5, 3,
	7, 5, 3, 1, 8, 6, 4, 2, 0,
}

// Codes is the 256-entry lookup table mapping a decoded byte to its
// 4-byte FM-encoded (clock+data interleaved) representation. Reproduced
// verbatim from xhm99.py's FM_CODES.
var Codes = [256][4]byte{
	{0x22, 0x22, 0x22, 0x22}, {0x22, 0x22, 0x22, 0xa2}, {0x22, 0x22, 0x22, 0x2a}, {0x22, 0x22, 0x22, 0xaa},
	{0x22, 0x22, 0xa2, 0x22}, {0x22, 0x22, 0xa2, 0xa2}, {0x22, 0x22, 0xa2, 0x2a}, {0x22, 0x22, 0xa2, 0xaa},
	{0x22, 0x22, 0x2a, 0x22}, {0x22, 0x22, 0x2a, 0xa2}, {0x22, 0x22, 0x2a, 0x2a}, {0x22, 0x22, 0x2a, 0xaa},
	{0x22, 0x22, 0xaa, 0x22}, {0x22, 0x22, 0xaa, 0xa2}, {0x22, 0x22, 0xaa, 0x2a}, {0x22, 0x22, 0xaa, 0xaa},
	{0x22, 0xa2, 0x22, 0x22}, {0x22, 0xa2, 0x22, 0xa2}, {0x22, 0xa2, 0x22, 0x2a}, {0x22, 0xa2, 0x22, 0xaa},
	{0x22, 0xa2, 0xa2, 0x22}, {0x22, 0xa2, 0xa2, 0xa2}, {0x22, 0xa2, 0xa2, 0x2a}, {0x22, 0xa2, 0xa2, 0xaa},
	{0x22, 0xa2, 0x2a, 0x22}, {0x22, 0xa2, 0x2a, 0xa2}, {0x22, 0xa2, 0x2a, 0x2a}, {0x22, 0xa2, 0x2a, 0xaa},
	{0x22, 0xa2, 0xaa, 0x22}, {0x22, 0xa2, 0xaa, 0xa2}, {0x22, 0xa2, 0xaa, 0x2a}, {0x22, 0xa2, 0xaa, 0xaa},
	{0x22, 0x2a, 0x22, 0x22}, {0x22, 0x2a, 0x22, 0xa2}, {0x22, 0x2a, 0x22, 0x2a}, {0x22, 0x2a, 0x22, 0xaa},
	{0x22, 0x2a, 0xa2, 0x22}, {0x22, 0x2a, 0xa2, 0xa2}, {0x22, 0x2a, 0xa2, 0x2a}, {0x22, 0x2a, 0xa2, 0xaa},
	{0x22, 0x2a, 0x2a, 0x22}, {0x22, 0x2a, 0x2a, 0xa2}, {0x22, 0x2a, 0x2a, 0x2a}, {0x22, 0x2a, 0x2a, 0xaa},
	{0x22, 0x2a, 0xaa, 0x22}, {0x22, 0x2a, 0xaa, 0xa2}, {0x22, 0x2a, 0xaa, 0x2a}, {0x22, 0x2a, 0xaa, 0xaa},
	{0x22, 0xaa, 0x22, 0x22}, {0x22, 0xaa, 0x22, 0xa2}, {0x22, 0xaa, 0x22, 0x2a}, {0x22, 0xaa, 0x22, 0xaa},
	{0x22, 0xaa, 0xa2, 0x22}, {0x22, 0xaa, 0xa2, 0xa2}, {0x22, 0xaa, 0xa2, 0x2a}, {0x22, 0xaa, 0xa2, 0xaa},
	{0x22, 0xaa, 0x2a, 0x22}, {0x22, 0xaa, 0x2a, 0xa2}, {0x22, 0xaa, 0x2a, 0x2a}, {0x22, 0xaa, 0x2a, 0xaa},
	{0x22, 0xaa, 0xaa, 0x22}, {0x22, 0xaa, 0xaa, 0xa2}, {0x22, 0xaa, 0xaa, 0x2a}, {0x22, 0xaa, 0xaa, 0xaa},
	{0xa2, 0x22, 0x22, 0x22}, {0xa2, 0x22, 0x22, 0xa2}, {0xa2, 0x22, 0x22, 0x2a}, {0xa2, 0x22, 0x22, 0xaa},
	{0xa2, 0x22, 0xa2, 0x22}, {0xa2, 0x22, 0xa2, 0xa2}, {0xa2, 0x22, 0xa2, 0x2a}, {0xa2, 0x22, 0xa2, 0xaa},
	{0xa2, 0x22, 0x2a, 0x22}, {0xa2, 0x22, 0x2a, 0xa2}, {0xa2, 0x22, 0x2a, 0x2a}, {0xa2, 0x22, 0x2a, 0xaa},
	{0xa2, 0x22, 0xaa, 0x22}, {0xa2, 0x22, 0xaa, 0xa2}, {0xa2, 0x22, 0xaa, 0x2a}, {0xa2, 0x22, 0xaa, 0xaa},
	{0xa2, 0xa2, 0x22, 0x22}, {0xa2, 0xa2, 0x22, 0xa2}, {0xa2, 0xa2, 0x22, 0x2a}, {0xa2, 0xa2, 0x22, 0xaa},
	{0xa2, 0xa2, 0xa2, 0x22}, {0xa2, 0xa2, 0xa2, 0xa2}, {0xa2, 0xa2, 0xa2, 0x2a}, {0xa2, 0xa2, 0xa2, 0xaa},
	{0xa2, 0xa2, 0x2a, 0x22}, {0xa2, 0xa2, 0x2a, 0xa2}, {0xa2, 0xa2, 0x2a, 0x2a}, {0xa2, 0xa2, 0x2a, 0xaa},
	{0xa2, 0xa2, 0xaa, 0x22}, {0xa2, 0xa2, 0xaa, 0xa2}, {0xa2, 0xa2, 0xaa, 0x2a}, {0xa2, 0xa2, 0xaa, 0xaa},
	{0xa2, 0x2a, 0x22, 0x22}, {0xa2, 0x2a, 0x22, 0xa2}, {0xa2, 0x2a, 0x22, 0x2a}, {0xa2, 0x2a, 0x22, 0xaa},
	{0xa2, 0x2a, 0xa2, 0x22}, {0xa2, 0x2a, 0xa2, 0xa2}, {0xa2, 0x2a, 0xa2, 0x2a}, {0xa2, 0x2a, 0xa2, 0xaa},
	{0xa2, 0x2a, 0x2a, 0x22}, {0xa2, 0x2a, 0x2a, 0xa2}, {0xa2, 0x2a, 0x2a, 0x2a}, {0xa2, 0x2a, 0x2a, 0xaa},
	{0xa2, 0x2a, 0xaa, 0x22}, {0xa2, 0x2a, 0xaa, 0xa2}, {0xa2, 0x2a, 0xaa, 0x2a}, {0xa2, 0x2a, 0xaa, 0xaa},
	{0xa2, 0xaa, 0x22, 0x22}, {0xa2, 0xaa, 0x22, 0xa2}, {0xa2, 0xaa, 0x22, 0x2a}, {0xa2, 0xaa, 0x22, 0xaa},
	{0xa2, 0xaa, 0xa2, 0x22}, {0xa2, 0xaa, 0xa2, 0xa2}, {0xa2, 0xaa, 0xa2, 0x2a}, {0xa2, 0xaa, 0xa2, 0xaa},
	{0xa2, 0xaa, 0x2a, 0x22}, {0xa2, 0xaa, 0x2a, 0xa2}, {0xa2, 0xaa, 0x2a, 0x2a}, {0xa2, 0xaa, 0x2a, 0xaa},
	{0xa2, 0xaa, 0xaa, 0x22}, {0xa2, 0xaa, 0xaa, 0xa2}, {0xa2, 0xaa, 0xaa, 0x2a}, {0xa2, 0xaa, 0xaa, 0xaa},
	{0x2a, 0x22, 0x22, 0x22}, {0x2a, 0x22, 0x22, 0xa2}, {0x2a, 0x22, 0x22, 0x2a}, {0x2a, 0x22, 0x22, 0xaa},
	{0x2a, 0x22, 0xa2, 0x22}, {0x2a, 0x22, 0xa2, 0xa2}, {0x2a, 0x22, 0xa2, 0x2a}, {0x2a, 0x22, 0xa2, 0xaa},
	{0x2a, 0x22, 0x2a, 0x22}, {0x2a, 0x22, 0x2a, 0xa2}, {0x2a, 0x22, 0x2a, 0x2a}, {0x2a, 0x22, 0x2a, 0xaa},
	{0x2a, 0x22, 0xaa, 0x22}, {0x2a, 0x22, 0xaa, 0xa2}, {0x2a, 0x22, 0xaa, 0x2a}, {0x2a, 0x22, 0xaa, 0xaa},
	{0x2a, 0xa2, 0x22, 0x22}, {0x2a, 0xa2, 0x22, 0xa2}, {0x2a, 0xa2, 0x22, 0x2a}, {0x2a, 0xa2, 0x22, 0xaa},
	{0x2a, 0xa2, 0xa2, 0x22}, {0x2a, 0xa2, 0xa2, 0xa2}, {0x2a, 0xa2, 0xa2, 0x2a}, {0x2a, 0xa2, 0xa2, 0xaa},
	{0x2a, 0xa2, 0x2a, 0x22}, {0x2a, 0xa2, 0x2a, 0xa2}, {0x2a, 0xa2, 0x2a, 0x2a}, {0x2a, 0xa2, 0x2a, 0xaa},
	{0x2a, 0xa2, 0xaa, 0x22}, {0x2a, 0xa2, 0xaa, 0xa2}, {0x2a, 0xa2, 0xaa, 0x2a}, {0x2a, 0xa2, 0xaa, 0xaa},
	{0x2a, 0x2a, 0x22, 0x22}, {0x2a, 0x2a, 0x22, 0xa2}, {0x2a, 0x2a, 0x22, 0x2a}, {0x2a, 0x2a, 0x22, 0xaa},
	{0x2a, 0x2a, 0xa2, 0x22}, {0x2a, 0x2a, 0xa2, 0xa2}, {0x2a, 0x2a, 0xa2, 0x2a}, {0x2a, 0x2a, 0xa2, 0xaa},
	{0x2a, 0x2a, 0x2a, 0x22}, {0x2a, 0x2a, 0x2a, 0xa2}, {0x2a, 0x2a, 0x2a, 0x2a}, {0x2a, 0x2a, 0x2a, 0xaa},
	{0x2a, 0x2a, 0xaa, 0x22}, {0x2a, 0x2a, 0xaa, 0xa2}, {0x2a, 0x2a, 0xaa, 0x2a}, {0x2a, 0x2a, 0xaa, 0xaa},
	{0x2a, 0xaa, 0x22, 0x22}, {0x2a, 0xaa, 0x22, 0xa2}, {0x2a, 0xaa, 0x22, 0x2a}, {0x2a, 0xaa, 0x22, 0xaa},
	{0x2a, 0xaa, 0xa2, 0x22}, {0x2a, 0xaa, 0xa2, 0xa2}, {0x2a, 0xaa, 0xa2, 0x2a}, {0x2a, 0xaa, 0xa2, 0xaa},
	{0x2a, 0xaa, 0x2a, 0x22}, {0x2a, 0xaa, 0x2a, 0xa2}, {0x2a, 0xaa, 0x2a, 0x2a}, {0x2a, 0xaa, 0x2a, 0xaa},
	{0x2a, 0xaa, 0xaa, 0x22}, {0x2a, 0xaa, 0xaa, 0xa2}, {0x2a, 0xaa, 0xaa, 0x2a}, {0x2a, 0xaa, 0xaa, 0xaa},
	{0xaa, 0x22, 0x22, 0x22}, {0xaa, 0x22, 0x22, 0xa2}, {0xaa, 0x22, 0x22, 0x2a}, {0xaa, 0x22, 0x22, 0xaa},
	{0xaa, 0x22, 0xa2, 0x22}, {0xaa, 0x22, 0xa2, 0xa2}, {0xaa, 0x22, 0xa2, 0x2a}, {0xaa, 0x22, 0xa2, 0xaa},
	{0xaa, 0x22, 0x2a, 0x22}, {0xaa, 0x22, 0x2a, 0xa2}, {0xaa, 0x22, 0x2a, 0x2a}, {0xaa, 0x22, 0x2a, 0xaa},
	{0xaa, 0x22, 0xaa, 0x22}, {0xaa, 0x22, 0xaa, 0xa2}, {0xaa, 0x22, 0xaa, 0x2a}, {0xaa, 0x22, 0xaa, 0xaa},
	{0xaa, 0xa2, 0x22, 0x22}, {0xaa, 0xa2, 0x22, 0xa2}, {0xaa, 0xa2, 0x22, 0x2a}, {0xaa, 0xa2, 0x22, 0xaa},
	{0xaa, 0xa2, 0xa2, 0x22}, {0xaa, 0xa2, 0xa2, 0xa2}, {0xaa, 0xa2, 0xa2, 0x2a}, {0xaa, 0xa2, 0xa2, 0xaa},
	{0xaa, 0xa2, 0x2a, 0x22}, {0xaa, 0xa2, 0x2a, 0xa2}, {0xaa, 0xa2, 0x2a, 0x2a}, {0xaa, 0xa2, 0x2a, 0xaa},
	{0xaa, 0xa2, 0xaa, 0x22}, {0xaa, 0xa2, 0xaa, 0xa2}, {0xaa, 0xa2, 0xaa, 0x2a}, {0xaa, 0xa2, 0xaa, 0xaa},
	{0xaa, 0x2a, 0x22, 0x22}, {0xaa, 0x2a, 0x22, 0xa2}, {0xaa, 0x2a, 0x22, 0x2a}, {0xaa, 0x2a, 0x22, 0xaa},
	{0xaa, 0x2a, 0xa2, 0x22}, {0xaa, 0x2a, 0xa2, 0xa2}, {0xaa, 0x2a, 0xa2, 0x2a}, {0xaa, 0x2a, 0xa2, 0xaa},
	{0xaa, 0x2a, 0x2a, 0x22}, {0xaa, 0x2a, 0x2a, 0xa2}, {0xaa, 0x2a, 0x2a, 0x2a}, {0xaa, 0x2a, 0x2a, 0xaa},
	{0xaa, 0x2a, 0xaa, 0x22}, {0xaa, 0x2a, 0xaa, 0xa2}, {0xaa, 0x2a, 0xaa, 0x2a}, {0xaa, 0x2a, 0xaa, 0xaa},
	{0xaa, 0xaa, 0x22, 0x22}, {0xaa, 0xaa, 0x22, 0xa2}, {0xaa, 0xaa, 0x22, 0x2a}, {0xaa, 0xaa, 0x22, 0xaa},
	{0xaa, 0xaa, 0xa2, 0x22}, {0xaa, 0xaa, 0xa2, 0xa2}, {0xaa, 0xaa, 0xa2, 0x2a}, {0xaa, 0xaa, 0xa2, 0xaa},
	{0xaa, 0xaa, 0x2a, 0x22}, {0xaa, 0xaa, 0x2a, 0xa2}, {0xaa, 0xaa, 0x2a, 0x2a}, {0xaa, 0xaa, 0x2a, 0xaa},
	{0xaa, 0xaa, 0xaa, 0x22}, {0xaa, 0xaa, 0xaa, 0xa2}, {0xaa, 0xaa, 0xaa, 0x2a}, {0xaa, 0xaa, 0xaa, 0xaa},}

// Encode returns the 4-byte FM encoding of a single decoded byte.
func Encode(b byte) [4]byte {
	return Codes[b]
}

// EncodeBytes encodes a full decoded byte slice into its FM bitstream.
func EncodeBytes(data []byte) []byte {
	out := make([]byte, 0, len(data)*4)
	for _, b := range data {
		enc := Codes[b]
		out = append(out, enc[:]...)
	}
	return out
}

// Decode reassembles a single decoded byte from a 4-byte FM-encoded
// group. group[3] is the most significant byte of the 32-bit word
// (mirroring xhm99.py's Util.rordl), whose bit positions 31,27,23,19,15,
// 11,7,3 hold output bits 0..7 respectively (spec.md §4.1).
func Decode(group [4]byte) byte {
	word := uint32(group[0]) | uint32(group[1])<<8 | uint32(group[2])<<16 | uint32(group[3])<<24
	var b byte
	if word&0x80000000 != 0 {
		b |= 0x01
	}
	if word&0x08000000 != 0 {
		b |= 0x02
	}
	if word&0x00800000 != 0 {
		b |= 0x04
	}
	if word&0x00080000 != 0 {
		b |= 0x08
	}
	if word&0x00008000 != 0 {
		b |= 0x10
	}
	if word&0x00000800 != 0 {
		b |= 0x20
	}
	if word&0x00000080 != 0 {
		b |= 0x40
	}
	if word&0x00000008 != 0 {
		b |= 0x80
	}
	return b
}

// DecodeBytes decodes a full FM bitstream (a multiple of 4 bytes long)
// into its decoded byte sequence.
func DecodeBytes(stream []byte) []byte {
	out := make([]byte, 0, len(stream)/4)
	for i := 0; i+4 <= len(stream); i += 4 {
		out = append(out, Decode([4]byte{stream[i], stream[i+1], stream[i+2], stream[i+3]}))
	}
	return out
}

// Interleave returns the logical sector id written at physical slot
// (side, track, slot) — the SD sector-interleave function of spec.md
// §4.1, including the documented 80-track side-1 quirk.
func Interleave(side, track, slot int, wtf80 bool) int {
	if !wtf80 || side == 0 {
		return SectorInterleave[(track*Sectors+slot)%27]
	}
	if track < 37 {
		return SectorInterleaveWTF[(track*Sectors+slot)%27]
	}
	return SectorInterleave[((track-37)*Sectors+slot)%27]
}

// FixClocks is a no-op for FM: the encoded clock bits are already
// correct, unlike MFM's clock bits which depend on neighboring data.
func FixClocks(stream []byte) {}
