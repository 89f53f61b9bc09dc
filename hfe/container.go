package hfe

import "encoding/binary"

// BuildHeader returns the 512-byte HFE v1 header for a disk of the given
// geometry. Grounded on xhm99.py's HFEDisk.create_header; unused header
// bytes are padded with 0xFF, matching the Python source and spec.md §6's
// literal test vector.
func BuildHeader(tracks, sides, encoding uint8, protected bool) []byte {
	buf := make([]byte, HeaderSize)
	for i := range buf {
		buf[i] = 0xff
	}
	copy(buf[0:8], Signature)
	buf[8] = 0 // format revision
	buf[9] = tracks
	buf[10] = sides
	buf[11] = encoding
	binary.LittleEndian.PutUint16(buf[12:14], BitRateKbps)
	binary.LittleEndian.PutUint16(buf[14:16], 0) // RPM, unused
	buf[16] = InterfaceMode
	buf[17] = 0x01
	binary.LittleEndian.PutUint16(buf[18:20], 1) // LUT offset, in 512-byte blocks
	if protected {
		buf[20] = 0x00
	}
	return buf
}

// BuildLUT returns the 512-byte HFE v1 look-up table for a disk with the
// given number of tracks and encoding. Grounded on xhm99.py's
// HFEDisk.create_lut.
func BuildLUT(tracks uint8, dd bool) []byte {
	buf := make([]byte, LUTSize)
	for i := range buf {
		buf[i] = 0xff
	}
	for i := 0; i < int(tracks); i++ {
		off := i * 4
		binary.LittleEndian.PutUint16(buf[off:off+2], uint16(0x31*i+2))
		if dd {
			buf[off+2], buf[off+3] = 0xc0, 0x61
		} else {
			buf[off+2], buf[off+3] = 0xb0, 0x61
		}
	}
	return buf
}

// interleaveChunks zips two equal-length (or, for a single-sided disk, one
// real and one implied) byte streams into the 256-byte side-0/side-1
// sandwich the HFE container stores its track data as.
func interleaveChunks(side0, side1 []byte, singleSided bool) []byte {
	out := make([]byte, 0, 2*len(side0))
	dummy := make([]byte, sectorChunkSize)
	for i := 0; i < len(side0); i += sectorChunkSize {
		out = append(out, side0[i:i+sectorChunkSize]...)
		if singleSided {
			out = append(out, dummy...)
		} else {
			out = append(out, side1[i:i+sectorChunkSize]...)
		}
	}
	return out
}

// SectorImageToHFE builds a complete HFE v1 image from a raw sector
// image. The image's geometry is read from the disk-image header bytes at
// offsets 0x10-0x13, exactly as xhm99.py's HFEDisk.create_from_disk does:
// byte 0x10 is 'P' for write-protected, 0x11 the track count, 0x12 the
// side count, 0x13 the encoding (2 = DD, anything else = SD).
func SectorImageToHFE(image []byte) ([]byte, error) {
	tracks := image[0x11]
	sides := image[0x12]
	dd := image[0x13] == 2
	protected := image[0x10] == 'P'

	encoding := uint8(EncodingSD)
	if dd {
		encoding = EncodingDD
	}
	f, err := formatFor(encoding)
	if err != nil {
		return nil, err
	}

	header := BuildHeader(tracks, sides, encoding, protected)
	lut := BuildLUT(tracks, dd)

	side0, side1 := AssembleTracks(int(tracks), int(sides), f, image)
	sandwich := interleaveChunks(side0, side1, sides == 1)

	out := make([]byte, 0, len(header)+len(lut)+len(sandwich))
	out = append(out, header...)
	out = append(out, lut...)
	out = append(out, sandwich...)
	return out, nil
}

// chop splits data into consecutive size-byte chunks, dropping a trailing
// partial chunk (mirrors xhm99.py's Util.chop, which is a plain
// generator over len(data)//size whole chunks).
func chop(data []byte, size int) [][]byte {
	n := len(data) / size
	out := make([][]byte, n)
	for i := 0; i < n; i++ {
		out[i] = data[i*size : (i+1)*size]
	}
	return out
}

// ParseHFE parses a complete HFE v1 image into a Disk: header fields
// validated, every track bit-decoded, and side-1 tracks un-reversed back
// into natural ascending order. Grounded on xhm99.py's HFEDisk.__init__
// and HFEDisk.get_tracks. The 512-byte look-up table (bytes 512:1024) is
// never parsed or validated, matching xhm99.py, which never reads
// self.lut.
func ParseHFE(data []byte) (*Disk, error) {
	if len(data) < HeaderSize+LUTSize || string(data[0:8]) != Signature {
		return nil, ErrNotHFEImage
	}
	tracks := data[9]
	sides := data[10]
	encoding := data[11]
	ifmode := data[16]

	f, err := formatFor(encoding)
	if err != nil {
		return nil, err
	}
	if ifmode != InterfaceMode {
		return nil, wrapf(ErrUnsupportedInterfaceMode, "mode %d", ifmode)
	}

	trackdata := data[HeaderSize+LUTSize:]
	var side0Chunks, side1Chunks [][]byte
	for i := 0; i+sectorChunkSize <= len(trackdata); i += sectorChunkSize {
		chunk := trackdata[i : i+sectorChunkSize]
		if (i/sectorChunkSize)%2 == 0 {
			side0Chunks = append(side0Chunks, chunk)
		} else {
			side1Chunks = append(side1Chunks, chunk)
		}
	}

	var side0Stream, side1Stream []byte
	for _, c := range side0Chunks {
		side0Stream = append(side0Stream, c...)
	}
	for _, c := range side1Chunks {
		side1Stream = append(side1Stream, c...)
	}

	tracks0 := chop(f.DecodeBytes(side0Stream), f.TrackLen)
	var tracks1 [][]byte
	if sides == 2 {
		tracks1 = chop(f.DecodeBytes(side1Stream), f.TrackLen)
		for i, j := 0, len(tracks1)-1; i < j; i, j = i+1, j-1 {
			tracks1[i], tracks1[j] = tracks1[j], tracks1[i]
		}
	}

	if len(tracks0)+len(tracks1) != int(sides)*int(tracks) {
		return nil, ErrInvalidTrackCount
	}

	disk := &Disk{
		Header: Header{Tracks: tracks, Sides: sides, Encoding: encoding, InterfaceMode: ifmode},
		Tracks: make([]TrackData, tracks),
	}
	for j := 0; j < int(tracks); j++ {
		disk.Tracks[j].Side0 = tracks0[j]
		if sides == 2 {
			disk.Tracks[j].Side1 = tracks1[j]
		}
	}
	return disk, nil
}

// ExtractSectorImage flattens a parsed Disk back into a raw sector image,
// in (side, track, sector-id) ascending order. Grounded on xhm99.py's
// HFEDisk.extract_sectors.
func ExtractSectorImage(disk *Disk) ([]byte, error) {
	f, err := formatFor(disk.Header.Encoding)
	if err != nil {
		return nil, err
	}

	var out []byte
	for s := 0; s < int(disk.Header.Sides); s++ {
		for j := 0; j < int(disk.Header.Tracks); j++ {
			track := disk.Tracks[j].Side0
			if s == 1 {
				track = disk.Tracks[j].Side1
			}
			payload, err := DisassembleTrack(track, f)
			if err != nil {
				return nil, err
			}
			out = append(out, payload...)
		}
	}
	return out, nil
}

// Info reports the geometry and encoding of a parsed HFE image (supplements
// xhm99.py's Xhm99Processor.info verb).
type Info struct {
	Tracks        uint8
	Sides         uint8
	Encoding      uint8
	InterfaceMode uint8
}

// EncodingName returns a human-readable name for the encoding byte.
func (i Info) EncodingName() string {
	if i.Encoding == EncodingDD {
		return "DD/MFM"
	}
	return "SD/FM"
}

// ReadInfo reports the header parameters of an HFE image without fully
// decoding its track data.
func ReadInfo(data []byte) (Info, error) {
	if len(data) < HeaderSize || string(data[0:8]) != Signature {
		return Info{}, ErrNotHFEImage
	}
	return Info{
		Tracks:        data[9],
		Sides:         data[10],
		Encoding:      data[11],
		InterfaceMode: data[16],
	}, nil
}

// DumpTracks flattens every decoded track of every side, in (side, track)
// ascending order, with no separators between tracks (spec.md §9 design
// note (b)): a caller who wants to split the dump back into tracks must
// already know TrackLen and the disk's geometry. Grounded on xhm99.py's
// Xhm99Processor.dump.
func DumpTracks(disk *Disk) []byte {
	var out []byte
	for _, t := range disk.Tracks {
		out = append(out, t.Side0...)
	}
	if disk.Header.Sides == 2 {
		for _, t := range disk.Tracks {
			out = append(out, t.Side1...)
		}
	}
	return out
}
