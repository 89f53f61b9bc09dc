package hfe

import (
	"github.com/xdt99/hfe99/fm"
	"github.com/xdt99/hfe99/mfm"
)

// Constants for the HFE v1 container format (spec.md §3, §6). This module
// only ever reads and writes the fixed-track-length v1 container
// ("HXCPICFE"); the later v3 revision (variable-length tracks, opcode
// stream) has no TI 99 counterpart and is out of scope.
const (
	Signature = "HXCPICFE"

	// EncodingSD and EncodingDD are the two encoding byte values this
	// module understands; any other value is ErrUnsupportedEncoding.
	EncodingSD = 2
	EncodingDD = 0

	// InterfaceMode is the only interface-mode byte value this module
	// accepts.
	InterfaceMode = 7

	// BitRateKbps is the bit rate, in kbit/s, written into every header this
	// module emits (250 kbit/s, the TI 99 Disk Controller Card's rate for
	// both SD and DD).
	BitRateKbps = 250

	// HeaderSize and LUTSize are the fixed sizes of the header and
	// look-up-table blocks that precede the track data.
	HeaderSize = 512
	LUTSize    = 512

	// sectorChunkSize is the width of one side's slice of a track's
	// interleaved 512-byte sandwich.
	sectorChunkSize = 256
)

// Header is the subset of the 512-byte HFE v1 header this module cares
// about: the geometry, encoding and interface-mode fields read by
// ParseHFE, plus the write-protect flag BuildHeader takes. ParseHFE does
// not read the write-protect byte and leaves Protected false. The
// remaining header bytes (bit rate, RPM, LUT offset) are fixed by this
// module and never vary per-disk.
type Header struct {
	Tracks        uint8
	Sides         uint8
	Encoding      uint8
	InterfaceMode uint8
	Protected     bool
}

// TrackData holds one logical track's two sides, each already decoded to
// its plain byte-stream form (spec.md §4.4/§4.5's TRACK_LEN-sized
// records). Side1 is nil when the disk is single-sided. Physical
// side-1-track-reversal is purely a container-encoding detail, hidden
// entirely inside ParseHFE/SectorImageToHFE; Disk always stores both
// sides in natural ascending track order.
type TrackData struct {
	Side0 []byte
	Side1 []byte
}

// Disk is a fully decoded HFE image: header plus every track's decoded
// byte stream. Grounded on xhm99.py's HFEDisk, after HFEDisk.get_tracks()
// has been called (self.header/self.lut/self.trackdata, demultiplexed and
// bit-decoded).
type Disk struct {
	Header Header
	Tracks []TrackData
}

// Format is a trait-like capability record (spec.md §9 design note)
// bundling everything HFEContainer and TrackAssembler/TrackDisassembler
// need from a bit codec (fm or mfm) without branching on the encoding
// throughout the rest of the package.
type Format struct {
	Sectors  int
	TrackLen int

	EncodeBytes func([]byte) []byte
	DecodeBytes func([]byte) []byte
	Interleave  func(side, track, slot int, wtf80 bool) int
	FixClocks   func([]byte)

	Leadin, Leadout                   []byte
	Pregap, Gap1, Gap2                []byte
	AddressMark, DataMark             []byte
	VAddressMark, VDataMark           []byte
	LVLeadin, LVLeadout               int
	LVPregap, LVGap1, LVGap2          int
	LVAddressMark, LVDataMark         int
}

// SDFormat is the single-density (FM) capability record.
var SDFormat = Format{
	Sectors:       fm.Sectors,
	TrackLen:      fm.TrackLen,
	EncodeBytes:   fm.EncodeBytes,
	DecodeBytes:   fm.DecodeBytes,
	Interleave:    fm.Interleave,
	FixClocks:     fm.FixClocks,
	Leadin:        fm.Leadin,
	Leadout:       fm.Leadout,
	Pregap:        fm.Pregap,
	Gap1:          fm.Gap1,
	Gap2:          fm.Gap2,
	AddressMark:   fm.AddressMark,
	DataMark:      fm.DataMark,
	VAddressMark:  fm.VAddressMark,
	VDataMark:     fm.VDataMark,
	LVLeadin:      fm.LVLeadin,
	LVLeadout:     fm.LVLeadout,
	LVPregap:      fm.LVPregap,
	LVGap1:        fm.LVGap1,
	LVGap2:        fm.LVGap2,
	LVAddressMark: fm.LVAddressMark,
	LVDataMark:    fm.LVDataMark,
}

// DDFormat is the double-density (MFM) capability record.
var DDFormat = Format{
	Sectors:       mfm.Sectors,
	TrackLen:      mfm.TrackLen,
	EncodeBytes:   mfm.EncodeBytes,
	DecodeBytes:   mfm.DecodeBytes,
	Interleave:    mfm.Interleave,
	FixClocks:     mfm.FixClocks,
	Leadin:        mfm.Leadin,
	Leadout:       mfm.Leadout,
	Pregap:        mfm.Pregap,
	Gap1:          mfm.Gap1,
	Gap2:          mfm.Gap2,
	AddressMark:   mfm.AddressMark,
	DataMark:      mfm.DataMark,
	VAddressMark:  mfm.VAddressMark,
	VDataMark:     mfm.VDataMark,
	LVLeadin:      mfm.LVLeadin,
	LVLeadout:     mfm.LVLeadout,
	LVPregap:      mfm.LVPregap,
	LVGap1:        mfm.LVGap1,
	LVGap2:        mfm.LVGap2,
	LVAddressMark: mfm.LVAddressMark,
	LVDataMark:    mfm.LVDataMark,
}

// formatFor resolves an HFE encoding byte to its capability record.
func formatFor(encoding uint8) (Format, error) {
	switch encoding {
	case EncodingSD:
		return SDFormat, nil
	case EncodingDD:
		return DDFormat, nil
	default:
		return Format{}, wrapf(ErrUnsupportedEncoding, "encoding %d", encoding)
	}
}
