// SPDX-License-Identifier: EPL-2.0

package record

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Marker is the framing byte expected at both ends of a record.
const Marker = 0xAA

// Record is one assembled tape record. Records are immutable once
// assembled; validation only reports, it never drops.
type Record []byte

// Flags marks framing and checksum defects found in a record.
type Flags uint8

const (
	FlagBadPreamble Flags = 1 << iota
	FlagBadPostamble
	FlagBadCRC
)

func (f Flags) String() string {
	var sb strings.Builder
	if f&FlagBadPreamble != 0 {
		sb.WriteString(" Bad_preamble")
	}
	if f&FlagBadPostamble != 0 {
		sb.WriteString(" Bad_postamble")
	}
	if f&FlagBadCRC != 0 {
		sb.WriteString(" Bad_CRC")
	}
	return sb.String()
}

// CRC computes the CRC-16/ARC residual over the record interior, the
// bytes between the preamble and postamble markers. The writing side
// embeds the checksum so an intact interior sums to zero.
func (r Record) CRC() uint16 {
	if len(r) < 2 {
		return 0
	}
	return Checksum(r[1 : len(r)-1])
}

// Validate reports the framing and checksum defects of the record.
func (r Record) Validate() Flags {
	var flags Flags
	if len(r) == 0 {
		return FlagBadPreamble | FlagBadPostamble
	}
	if r[0] != Marker {
		flags |= FlagBadPreamble
	}
	if r[len(r)-1] != Marker {
		flags |= FlagBadPostamble
	}
	if r.CRC() != 0 {
		flags |= FlagBadCRC
	}
	return flags
}

// Summary renders the one-line human-readable report of a record: byte
// count, hex dump (elided past 8 bytes), and any defect flags.
func (r Record) Summary() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%5d bytes [", len(r))
	if len(r) <= 8 {
		sb.WriteString(hex.EncodeToString(r))
	} else {
		sb.WriteString(hex.EncodeToString(r[:4]))
		sb.WriteString("…")
		sb.WriteString(hex.EncodeToString(r[len(r)-4:]))
	}
	sb.WriteString("]")
	sb.WriteString(r.Validate().String())
	return sb.String()
}
