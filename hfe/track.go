package hfe

import "bytes"

// AssembleTracks builds the two raw (already bit-encoded) per-side track
// streams from a flat sector image, for a disk of the given geometry.
// Grounded on xhm99.py's HFEDisk.create_tracks. sectorImage must hold at
// least sides*tracks*f.Sectors*256 bytes, addressed (side, track, sector
// id) major-to-minor ascending.
//
// side1 is returned in the media's physical write order — the loop below
// walks logical track index j ascending for both sides and only reverses
// the assembled side-1 track list afterward, which is what produces the
// documented side-1 physical reversal: a given 256-byte "sandwich" slot
// shared by both sides on the media holds side 0's track j alongside side
// 1's track (tracks-1-j).
func AssembleTracks(tracks, sides int, f Format, sectorImage []byte) (side0, side1 []byte) {
	wtf80 := tracks == 80

	var side0Tracks, side1Tracks [][]byte
	for s := 0; s < sides; s++ {
		for j := 0; j < tracks; j++ {
			trackID := j
			if s == 1 {
				trackID = tracks - 1 - j
			}

			var sectorData []byte
			for i := 0; i < f.Sectors; i++ {
				sectorID := f.Interleave(s, j, i, wtf80)
				offset := ((s*tracks+j)*f.Sectors + sectorID) * 256
				sector := sectorImage[offset : offset+256]

				addr := []byte{byte(trackID), byte(s), byte(sectorID), 0x01}
				crc1msb, crc1lsb := CRC16(0xffff, append(append([]byte{}, f.VAddressMark...), addr...))
				crc2msb, crc2lsb := CRC16(0xffff, append(append([]byte{}, f.VDataMark...), sector...))

				sectorData = append(sectorData, f.Pregap...)
				sectorData = append(sectorData, f.AddressMark...)
				sectorData = append(sectorData, f.EncodeBytes(append(append([]byte{}, addr...), crc1msb, crc1lsb))...)
				sectorData = append(sectorData, f.Gap1...)
				sectorData = append(sectorData, f.DataMark...)
				sectorData = append(sectorData, f.EncodeBytes(append(append([]byte{}, sector...), crc2msb, crc2lsb))...)
				sectorData = append(sectorData, f.Gap2...)
			}
			f.FixClocks(sectorData)

			track := append(append(append([]byte{}, f.Leadin...), sectorData...), f.Leadout...)
			if s == 0 {
				side0Tracks = append(side0Tracks, track)
			} else {
				side1Tracks = append(side1Tracks, track)
			}
		}
	}

	for i, j := 0, len(side1Tracks)-1; i < j; i, j = i+1, j-1 {
		side1Tracks[i], side1Tracks[j] = side1Tracks[j], side1Tracks[i]
	}

	for _, t := range side0Tracks {
		side0 = append(side0, t...)
	}
	for _, t := range side1Tracks {
		side1 = append(side1, t...)
	}
	return side0, side1
}

// DisassembleTrack extracts the 9 (SD) or 18 (DD) 256-byte sector
// payloads from one fully decoded track, in ascending sector-id order.
// Grounded on the per-track loop body of xhm99.py's
// HFEDisk.extract_sectors.
func DisassembleTrack(track []byte, f Format) ([]byte, error) {
	pos := f.LVLeadin
	bySector := make(map[int][]byte, f.Sectors)

	for i := 0; i < f.Sectors; i++ {
		pos += f.LVPregap

		mark := track[pos : pos+f.LVAddressMark]
		if !bytes.Equal(mark, f.VAddressMark) {
			return nil, wrapf(ErrMalformedTrack, "sector %d: bad address mark", i)
		}
		pos += f.LVAddressMark

		idRecord := track[pos : pos+6]
		sectorID := int(idRecord[2])
		if sectorID < 0 || sectorID >= f.Sectors {
			return nil, wrapf(ErrMalformedTrack, "sector id %d out of range", sectorID)
		}
		if _, dup := bySector[sectorID]; dup {
			return nil, wrapf(ErrMalformedTrack, "duplicate sector id %d", sectorID)
		}
		pos += 6

		pos += f.LVGap1

		dataMark := track[pos : pos+f.LVDataMark]
		if !bytes.Equal(dataMark, f.VDataMark) {
			return nil, wrapf(ErrMalformedTrack, "sector %d: bad data mark", sectorID)
		}
		pos += f.LVDataMark

		payload := make([]byte, 256)
		copy(payload, track[pos:pos+256])
		bySector[sectorID] = payload
		pos += 258

		pos += f.LVGap2
	}
	pos += f.LVLeadout

	if pos != len(track) {
		panic("hfe: track disassembly cursor did not land on track end (codec bug)")
	}

	out := make([]byte, 0, f.Sectors*256)
	for id := 0; id < f.Sectors; id++ {
		out = append(out, bySector[id]...)
	}
	return out, nil
}
