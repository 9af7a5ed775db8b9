// SPDX-License-Identifier: EPL-2.0

// Package record models assembled tape records and their validation.
//
// A record is a byte sequence recovered from one run of bits between
// record gaps. A well-formed record is framed by 0xAA marker bytes and
// carries a CRC-16/ARC checksum embedded so that the interior span
// (everything between the two markers) sums to zero.
//
// Validation never discards: a record with a bad preamble, postamble
// or checksum is still kept and written, just annotated. Partial or
// corrupt captures retain archival value.
//
//	rec := record.Record{0xAA, 0x01, 0x02, 0xAA}
//	fmt.Println(rec.Summary())
//
// The package also interprets the tape header, the catalog record at
// the start of a tape that carries the tape label and file list, and
// the DS2089 character mapping used to display header text.
package record
