// SPDX-License-Identifier: EPL-2.0

package record

import (
	"strings"
	"unicode"
)

const (
	headerLabelOffset = 4
	headerLabelLen    = 50
	headerLabelSkip   = 13 // reserved bytes between label and file list
	fileSlotLen       = 26
	fileNameLen       = 10
	fileExtLen        = 3
)

// FileEntry is one catalog slot of the tape header.
type FileEntry struct {
	Name string
	Ext  string
}

func (e FileEntry) String() string {
	return e.Name + "." + e.Ext
}

// Header holds the interpreted fields of a tape's first record.
type Header struct {
	Label string
	Files []FileEntry

	// BadSlot holds the raw bytes of the first file slot that failed
	// ASCII decoding, if any. Interpretation stops at that slot.
	BadSlot []byte
}

// ParseHeader interprets rec as a tape header record. It returns false
// when the record does not carry a recognizable header; the record
// itself is never at fault for that, blank tapes simply have none.
// The CRC is deliberately ignored here: a header with a bad checksum
// still names the tape.
func ParseHeader(rec Record) (Header, bool) {
	if len(rec) < 3 {
		return Header{}, false
	}
	if rec[0] != Marker || rec[1] != 0 || rec[2] != 0 {
		return Header{}, false
	}

	var h Header

	// A record can end inside, or before, the label field.
	end := min(headerLabelOffset+headerLabelLen, len(rec))
	if end > headerLabelOffset {
		label, _ := asciiField(rec[headerLabelOffset:end])
		h.Label = label
	}

	index := headerLabelOffset + headerLabelLen + headerLabelSkip
	for index <= len(rec)-fileSlotLen-fileExtLen &&
		rec[index] > 0x20 && rec[index] < 0x6e {
		slot := rec[index : index+fileSlotLen]
		name, ok := asciiField(slot[:fileNameLen])
		if ok {
			var ext string
			ext, ok = asciiField(slot[fileNameLen : fileNameLen+fileExtLen])
			if ok {
				h.Files = append(h.Files, FileEntry{Name: name, Ext: ext})
			}
		}
		if !ok {
			h.BadSlot = slot
			break
		}
		index += fileSlotLen
	}

	return h, true
}

// asciiField decodes a fixed-width field, trimming trailing whitespace.
// Reports false when the field holds non-ASCII bytes.
func asciiField(b []byte) (string, bool) {
	for _, c := range b {
		if c > 0x7f {
			return "", false
		}
	}
	return strings.TrimRightFunc(string(b), unicode.IsSpace), true
}
