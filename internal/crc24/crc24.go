// Package crc24 implements the CRC-24 checksum used by OpenPGP ASCII
// armor (RFC 4880, section 6.1): polynomial 0x864CFB with initial
// value 0xB704CE, producing a 24-bit value.
package crc24

const (
	initial = 0xB704CE
	poly    = 0x864CFB
	mask    = 0xFFFFFF
)

// Init returns the initial CRC state.
func Init() uint32 {
	return initial
}

// Update feeds p into the running checksum crc and returns the new
// state, already masked to 24 bits.
func Update(crc uint32, p []byte) uint32 {
	for _, b := range p {
		crc ^= uint32(b) << 16
		for i := 0; i < 8; i++ {
			crc <<= 1
			if crc&0x1000000 != 0 {
				crc ^= poly
			}
		}
	}
	return crc & mask
}

// Sum returns the CRC-24 of p in one shot.
func Sum(p []byte) uint32 {
	return Update(Init(), p)
}
