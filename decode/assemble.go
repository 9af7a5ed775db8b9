// SPDX-License-Identifier: EPL-2.0

package decode

import "github.com/ik5/tapedec/record"

// assemble packs a finished bit run into a record. Runs shorter than
// minBits are noise or mis-sync and are discarded without a trace.
// Bits are packed 8 at a time, first-collected bit in the low-order
// position; a remainder short of a full byte is dropped. A single
// trailing zero byte, the synchronizer ringing down after the last
// data byte, is stripped.
func assemble(bits []byte, minBits int) (record.Record, bool) {
	if len(bits) < minBits {
		return nil, false
	}

	octets := make([]byte, 0, len(bits)/8)
	for i := 0; i+8 <= len(bits); i += 8 {
		var b byte
		for j := 0; j < 8; j++ {
			if bits[i+j] != 0 {
				b |= 1 << j
			}
		}
		octets = append(octets, b)
	}

	if n := len(octets); n > 0 && octets[n-1] == 0 {
		octets = octets[:n-1]
	}

	return record.Record(octets), true
}
