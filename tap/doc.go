// SPDX-License-Identifier: EPL-2.0

// Package tap serializes decoded tape records.
//
// Write emits the SIMH-TAP sequential tape-image format: each record
// framed by its little-endian 32-bit length on both sides (odd-length
// records padded with one zero byte), the stream closed by an
// end-of-medium marker of 0xFFFFFFFF.
//
// WriteMeta emits the plain-text Bitstore metadata sidecar that
// accompanies a tape image in the archive: fixed key/value blocks plus
// a Description carrying the interpreted tape header and one summary
// line per record.
package tap
