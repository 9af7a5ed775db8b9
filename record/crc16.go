// SPDX-License-Identifier: EPL-2.0

package record

// CRC-16/ARC: reflected polynomial 0x8005, zero init, zero xorout.
// The tape encoding appends the checksum little-endian, so summing a
// payload together with its embedded checksum yields zero.
const crcPoly = 0xA001

var crcTable = makeCRCTable()

func makeCRCTable() [256]uint16 {
	var table [256]uint16
	for i := range table {
		crc := uint16(i)
		for k := 0; k < 8; k++ {
			if crc&1 != 0 {
				crc = crc>>1 ^ crcPoly
			} else {
				crc >>= 1
			}
		}
		table[i] = crc
	}
	return table
}

// Checksum computes the CRC-16/ARC of data.
func Checksum(data []byte) uint16 {
	var crc uint16
	for _, b := range data {
		crc = crc>>8 ^ crcTable[byte(crc)^b]
	}
	return crc
}
