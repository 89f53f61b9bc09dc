// Package mfm implements the double-density (MFM) bit-level codec used
// by HFE disk images for the TI 99: encoding a decoded byte into its
// 2-byte on-media representation and back (with the documented
// alternate-clock-bit fallback), the DD sector interleave, and the clock
// bit fixup pass applied once a track has been assembled.
//
// Grounded on DDFormat in xhm99.py (xdt99's HFE manager for the TI 99).
// This replaces the teacher's mfm package content — which scans a live
// flux-recovered bitstream from a physical floppy drive for IBM PC/Amiga
// sector markers — with a fixed 256-entry lookup table codec; the two
// packages solve different problems (recovering bits from analog flux
// timing vs. translating between two in-memory byte representations) but
// occupy the same position in the module (a sibling of hfe, imported by
// it).
package mfm

// Sectors is the number of 256-byte sectors per DD track.
const Sectors = 18

// TrackLen is the length, in decoded bytes, of one fully decoded DD
// track: one leadin, Sectors sector blocks, one leadout.
const TrackLen = LVLeadin + Sectors*342 + LVLeadout

// Field widths, in decoded bytes, of the fixed DD track layout (spec.md
// §4.2).
const (
	LVLeadin       = 32
	LVLeadout      = 84
	LVPregap       = 12
	LVAddressMark  = 4
	LVGap1         = 34
	LVDataMark     = 4
	LVSectorRecord = 258 // 256 data bytes + 2 CRC bytes
	LVGap2         = 24
)

// AddressMarkWord is the 16-bit big-endian word Decode recognizes as the
// address-mark shortcut (no entry of Codes equals it, directly or with the
// alt-clock bit set — TestAddressMarkWordHasNoOrdinaryEntry checks this).
const AddressMarkWord = 0x2291

// VAddressMarkByte is the canonical decoded byte emitted for
// AddressMarkWord.
const VAddressMarkByte = 0xa1

// Decoded mark values.
var (
	VAddressMark = []byte{0xa1, 0xa1, 0xa1, 0xfe}
	VDataMark    = []byte{0xa1, 0xa1, 0xa1, 0xfb}
)

// Raw (already MFM-encoded) field byte sequences, exactly as they are
// stored on the media.
var (
	Leadin  = repeatPair(0x49, 0x2a, 32)
	Leadout = repeatPair(0x49, 0x2a, 84)

	AddressMark = []byte{0x22, 0x91, 0x22, 0x91, 0x22, 0x91, 0xaa, 0x2a}
	DataMark    = []byte{0x22, 0x91, 0x22, 0x91, 0x22, 0x91, 0xaa, 0xa2}

	Pregap = repeat(0x55, 2*12)
	Gap1   = append(repeatPair(0x49, 0x2a, 22), repeat(0x55, 2*12)...)
	Gap2   = repeatPair(0x49, 0x2a, 24)
)

func repeat(b byte, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = b
	}
	return out
}

func repeatPair(a, b byte, n int) []byte {
	out := make([]byte, 0, 2*n)
	for i := 0; i < n; i++ {
		out = append(out, a, b)
	}
	return out
}

// SectorInterleave is the DD sector-interleave table (spec.md §6):
// sector*11 mod Sectors, precomputed.
var SectorInterleave = [Sectors]int{
	0, 11, 4, 15, 8, 1, 12, 5, 16, 9, 2, 13, 6, 17, 10, 3, 14, 7,
}

// Codes is the 256-entry lookup table mapping a decoded byte to its
// 2-byte MFM-encoded (clock+data interleaved) representation. Reproduced
// verbatim from xhm99.py's MVM_CODES.
var Codes = [256][2]byte{
	{0x55, 0x55}, {0x55, 0x95}, {0x55, 0x25}, {0x55, 0xa5}, {0x55, 0x49}, {0x55, 0x89}, {0x55, 0x29}, {0x55, 0xa9},
	{0x55, 0x52}, {0x55, 0x92}, {0x55, 0x22}, {0x55, 0xa2}, {0x55, 0x4a}, {0x55, 0x8a}, {0x55, 0x2a}, {0x55, 0xaa},
	{0x95, 0x54}, {0x95, 0x94}, {0x95, 0x24}, {0x95, 0xa4}, {0x95, 0x48}, {0x95, 0x88}, {0x95, 0x28}, {0x95, 0xa8},
	{0x95, 0x52}, {0x95, 0x92}, {0x95, 0x22}, {0x95, 0xa2}, {0x95, 0x4a}, {0x95, 0x8a}, {0x95, 0x2a}, {0x95, 0xaa},
	{0x25, 0x55}, {0x25, 0x95}, {0x25, 0x25}, {0x25, 0xa5}, {0x25, 0x49}, {0x25, 0x89}, {0x25, 0x29}, {0x25, 0xa9},
	{0x25, 0x52}, {0x25, 0x92}, {0x25, 0x22}, {0x25, 0xa2}, {0x25, 0x4a}, {0x25, 0x8a}, {0x25, 0x2a}, {0x25, 0xaa},
	{0xa5, 0x54}, {0xa5, 0x94}, {0xa5, 0x24}, {0xa5, 0xa4}, {0xa5, 0x48}, {0xa5, 0x88}, {0xa5, 0x28}, {0xa5, 0xa8},
	{0xa5, 0x52}, {0xa5, 0x92}, {0xa5, 0x22}, {0xa5, 0xa2}, {0xa5, 0x4a}, {0xa5, 0x8a}, {0xa5, 0x2a}, {0xa5, 0xaa},
	{0x49, 0x55}, {0x49, 0x95}, {0x49, 0x25}, {0x49, 0xa5}, {0x49, 0x49}, {0x49, 0x89}, {0x49, 0x29}, {0x49, 0xa9},
	{0x49, 0x52}, {0x49, 0x92}, {0x49, 0x22}, {0x49, 0xa2}, {0x49, 0x4a}, {0x49, 0x8a}, {0x49, 0x2a}, {0x49, 0xaa},
	{0x89, 0x54}, {0x89, 0x94}, {0x89, 0x24}, {0x89, 0xa4}, {0x89, 0x48}, {0x89, 0x88}, {0x89, 0x28}, {0x89, 0xa8},
	{0x89, 0x52}, {0x89, 0x92}, {0x89, 0x22}, {0x89, 0xa2}, {0x89, 0x4a}, {0x89, 0x8a}, {0x89, 0x2a}, {0x89, 0xaa},
	{0x29, 0x55}, {0x29, 0x95}, {0x29, 0x25}, {0x29, 0xa5}, {0x29, 0x49}, {0x29, 0x89}, {0x29, 0x29}, {0x29, 0xa9},
	{0x29, 0x52}, {0x29, 0x92}, {0x29, 0x22}, {0x29, 0xa2}, {0x29, 0x4a}, {0x29, 0x8a}, {0x29, 0x2a}, {0x29, 0xaa},
	{0xa9, 0x54}, {0xa9, 0x94}, {0xa9, 0x24}, {0xa9, 0xa4}, {0xa9, 0x48}, {0xa9, 0x88}, {0xa9, 0x28}, {0xa9, 0xa8},
	{0xa9, 0x52}, {0xa9, 0x92}, {0xa9, 0x22}, {0xa9, 0xa2}, {0xa9, 0x4a}, {0xa9, 0x8a}, {0xa9, 0x2a}, {0xa9, 0xaa},
	{0x52, 0x55}, {0x52, 0x95}, {0x52, 0x25}, {0x52, 0xa5}, {0x52, 0x49}, {0x52, 0x89}, {0x52, 0x29}, {0x52, 0xa9},
	{0x52, 0x52}, {0x52, 0x92}, {0x52, 0x22}, {0x52, 0xa2}, {0x52, 0x4a}, {0x52, 0x8a}, {0x52, 0x2a}, {0x52, 0xaa},
	{0x92, 0x54}, {0x92, 0x94}, {0x92, 0x24}, {0x92, 0xa4}, {0x92, 0x48}, {0x92, 0x88}, {0x92, 0x28}, {0x92, 0xa8},
	{0x92, 0x52}, {0x92, 0x92}, {0x92, 0x22}, {0x92, 0xa2}, {0x92, 0x4a}, {0x92, 0x8a}, {0x92, 0x2a}, {0x92, 0xaa},
	{0x22, 0x55}, {0x22, 0x95}, {0x22, 0x25}, {0x22, 0xa5}, {0x22, 0x49}, {0x22, 0x89}, {0x22, 0x29}, {0x22, 0xa9},
	{0x22, 0x52}, {0x22, 0x92}, {0x22, 0x22}, {0x22, 0xa2}, {0x22, 0x4a}, {0x22, 0x8a}, {0x22, 0x2a}, {0x22, 0xaa},
	{0xa2, 0x54}, {0xa2, 0x94}, {0xa2, 0x24}, {0xa2, 0xa4}, {0xa2, 0x48}, {0xa2, 0x88}, {0xa2, 0x28}, {0xa2, 0xa8},
	{0xa2, 0x52}, {0xa2, 0x92}, {0xa2, 0x22}, {0xa2, 0xa2}, {0xa2, 0x4a}, {0xa2, 0x8a}, {0xa2, 0x2a}, {0xa2, 0xaa},
	{0x4a, 0x55}, {0x4a, 0x95}, {0x4a, 0x25}, {0x4a, 0xa5}, {0x4a, 0x49}, {0x4a, 0x89}, {0x4a, 0x29}, {0x4a, 0xa9},
	{0x4a, 0x52}, {0x4a, 0x92}, {0x4a, 0x22}, {0x4a, 0xa2}, {0x4a, 0x4a}, {0x4a, 0x8a}, {0x4a, 0x2a}, {0x4a, 0xaa},
	{0x8a, 0x54}, {0x8a, 0x94}, {0x8a, 0x24}, {0x8a, 0xa4}, {0x8a, 0x48}, {0x8a, 0x88}, {0x8a, 0x28}, {0x8a, 0xa8},
	{0x8a, 0x52}, {0x8a, 0x92}, {0x8a, 0x22}, {0x8a, 0xa2}, {0x8a, 0x4a}, {0x8a, 0x8a}, {0x8a, 0x2a}, {0x8a, 0xaa},
	{0x2a, 0x55}, {0x2a, 0x95}, {0x2a, 0x25}, {0x2a, 0xa5}, {0x2a, 0x49}, {0x2a, 0x89}, {0x2a, 0x29}, {0x2a, 0xa9},
	{0x2a, 0x52}, {0x2a, 0x92}, {0x2a, 0x22}, {0x2a, 0xa2}, {0x2a, 0x4a}, {0x2a, 0x8a}, {0x2a, 0x2a}, {0x2a, 0xaa},
	{0xaa, 0x54}, {0xaa, 0x94}, {0xaa, 0x24}, {0xaa, 0xa4}, {0xaa, 0x48}, {0xaa, 0x88}, {0xaa, 0x28}, {0xaa, 0xa8},
	{0xaa, 0x52}, {0xaa, 0x92}, {0xaa, 0x22}, {0xaa, 0xa2}, {0xaa, 0x4a}, {0xaa, 0x8a}, {0xaa, 0x2a}, {0xaa, 0xaa},}

// wordToByte is the inverse lookup of Codes, built once at init time (an
// immutable map after that — spec.md §5 permits lazily building this but
// requires no concurrent first-time-publication race; building it in
// init sidesteps that entirely).
var wordToByte map[uint16]byte

func init() {
	wordToByte = make(map[uint16]byte, 256)
	for i, enc := range Codes {
		w := uint16(enc[0])<<8 | uint16(enc[1])
		wordToByte[w] = byte(i)
	}

	// Open Question (a) in spec.md §9: the alternate-clock-bit fallback
	// (w | 0x0100) is only safe because no two table entries collide
	// under that operation. Assert it here rather than silently trusting
	// the transcribed table.
	for w, b := range wordToByte {
		alt := w | 0x0100
		if alt == w {
			continue
		}
		if other, collide := wordToByte[alt]; collide && other != b {
			panic("mfm: alt-clock collision in Codes table")
		}
	}
}

// Encode returns the 2-byte MFM encoding of a single decoded byte.
func Encode(b byte) [2]byte {
	return Codes[b]
}

// EncodeBytes encodes a full decoded byte slice into its MFM bitstream.
func EncodeBytes(data []byte) []byte {
	out := make([]byte, 0, len(data)*2)
	for _, b := range data {
		enc := Codes[b]
		out = append(out, enc[:]...)
	}
	return out
}

// Decode reassembles a single decoded byte from a 2-byte MFM-encoded
// group. w's high byte comes first. If w is the address-mark word, the
// canonical mark byte is returned directly; otherwise the direct lookup
// is tried, falling back to the alternate-clock-bit form (spec.md §4.2).
func Decode(group [2]byte) byte {
	w := uint16(group[0])<<8 | uint16(group[1])
	if w == AddressMarkWord {
		return VAddressMarkByte
	}
	if b, ok := wordToByte[w]; ok {
		return b
	}
	b, ok := wordToByte[w|0x0100]
	if !ok {
		panic("mfm: decode word has neither a direct nor alt-clock lookup (codec table bug)")
	}
	return b
}

// DecodeBytes decodes a full MFM bitstream (a multiple of 2 bytes long)
// into its decoded byte sequence.
func DecodeBytes(stream []byte) []byte {
	out := make([]byte, 0, len(stream)/2)
	for i := 0; i+2 <= len(stream); i += 2 {
		out = append(out, Decode([2]byte{stream[i], stream[i+1]}))
	}
	return out
}

// Interleave returns the logical sector id written at physical slot
// (side, track, slot). DD has a single formula with no side/track/80-quirk
// dependency (wtf80 is accepted only so fm and mfm share a signature).
func Interleave(side, track, slot int, wtf80 bool) int {
	return (slot * 11) % Sectors
}

// FixClocks applies the DD clock-bit correction pass in place: for every
// odd-indexed byte with bit 7 set, clear bit 0 of the following byte.
// Applied exactly once, after a track has been fully assembled.
func FixClocks(stream []byte) {
	for idx := 1; idx < len(stream); idx += 2 {
		if stream[idx]&0x80 != 0 {
			stream[idx+1] &= 0xfe
		}
	}
}
