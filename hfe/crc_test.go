package hfe

import "testing"

// S3: spec.md §8 — CRC16 self-check. Appending the CRC of a stream back
// onto that stream and recomputing must yield [0, 0].
func TestCRC16SelfCheckS3(t *testing.T) {
	stream := []byte{0xa1, 0xa1, 0xa1, 0xfe, 0x00, 0x00, 0x00, 0x01}
	msb, lsb := CRC16(0xffff, stream)

	withCRC := append(append([]byte{}, stream...), msb, lsb)
	finalMSB, finalLSB := CRC16(0xffff, withCRC)
	if finalMSB != 0 || finalLSB != 0 {
		t.Errorf("CRC16 self-check = [%#x, %#x], want [0, 0]", finalMSB, finalLSB)
	}
}

func TestCRC16Deterministic(t *testing.T) {
	stream := []byte{0xfe, 0x00, 0x01, 0x02, 0x01}
	m1, l1 := CRC16(0xffff, stream)
	m2, l2 := CRC16(0xffff, stream)
	if m1 != m2 || l1 != l2 {
		t.Errorf("CRC16 not deterministic: (%#x,%#x) vs (%#x,%#x)", m1, l1, m2, l2)
	}
}
