// SPDX-License-Identifier: EPL-2.0

package tap

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ik5/tapedec/record"
)

// endOfMedium closes a SIMH-TAP stream.
const endOfMedium = 0xFFFFFFFF

// Write serializes records into SIMH-TAP framing: a little-endian
// record length, the raw bytes, a zero pad when the length is odd, the
// length again as trailer, then the end-of-medium marker after the
// last record.
func Write(w io.Writer, records []record.Record) error {
	var word [4]byte

	for _, rec := range records {
		binary.LittleEndian.PutUint32(word[:], uint32(len(rec)))
		if _, err := w.Write(word[:]); err != nil {
			return fmt.Errorf("%w", err)
		}
		if _, err := w.Write(rec); err != nil {
			return fmt.Errorf("%w", err)
		}
		if len(rec)&1 == 1 {
			if _, err := w.Write([]byte{0}); err != nil {
				return fmt.Errorf("%w", err)
			}
		}
		if _, err := w.Write(word[:]); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	binary.LittleEndian.PutUint32(word[:], endOfMedium)
	if _, err := w.Write(word[:]); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}
