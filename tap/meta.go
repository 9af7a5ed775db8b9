// SPDX-License-Identifier: EPL-2.0

package tap

import (
	"fmt"
	"io"

	"github.com/ik5/tapedec/record"
)

// Fixed metadata schema values. The placeholders are filled in by the
// archive's cataloguers after ingest.
const (
	metaVersion  = "1.0"
	metaFormat   = "SIMH-TAP"
	metaAccess   = "public"
	metaLastEdit = "YYYYMMDD NN"
	metaKeyword  = "COMPANY/ICL/COMET/TAPE"
	metaSummary  = "XXX"
	metaType     = "Mini-Cassette"
)

// WriteMeta writes the Bitstore metadata sidecar for a decoded tape.
// filename is the name of the tape-image file the sidecar describes.
// The Description block carries the interpreted tape header, remapped
// through DS2089 for display, followed by one summary line per record.
func WriteMeta(w io.Writer, filename string, records []record.Record) error {
	fields := []struct {
		key, value string
	}{
		{"BitStore.Metadata_version", metaVersion},
		{"BitStore.Filename", filename},
		{"BitStore.Format", metaFormat},
		{"BitStore.Access", metaAccess},
		{"BitStore.Last_edit", metaLastEdit},
		{"DDHF.Keyword", metaKeyword},
		{"Media.Summary", metaSummary},
		{"Media.Type", metaType},
	}

	for _, field := range fields {
		if _, err := fmt.Fprintf(w, "%s:\n\t%s\n\n", field.key, field.value); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	if _, err := fmt.Fprintf(w, "%s:\n", "Media.Description"); err != nil {
		return fmt.Errorf("%w", err)
	}

	for _, line := range describeHeader(records) {
		if _, err := fmt.Fprintf(w, "\t%s\n", record.DS2089(line)); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	if _, err := fmt.Fprintf(w, "\tTape Records:\n"); err != nil {
		return fmt.Errorf("%w", err)
	}
	for _, rec := range records {
		if _, err := fmt.Fprintf(w, "\t\t%s\n", rec.Summary()); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	if _, err := fmt.Fprintf(w, "\n*END*\n"); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// describeHeader renders the interpreted tape header as indented text
// lines. An absent or unrecognizable header yields no lines; a tape is
// still a tape without one.
func describeHeader(records []record.Record) []string {
	if len(records) == 0 {
		return nil
	}

	h, ok := record.ParseHeader(records[0])
	if !ok {
		return nil
	}

	lines := []string{
		"Tape label:",
		"\t" + h.Label,
		"File list:",
	}
	for _, file := range h.Files {
		lines = append(lines, "\t"+file.String())
	}
	return lines
}
