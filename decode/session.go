// SPDX-License-Identifier: EPL-2.0

package decode

import (
	"fmt"

	"github.com/ik5/tapedec/audio"
	"github.com/ik5/tapedec/record"
)

// TraceKind classifies a diagnostic event of the bit synchronizer.
type TraceKind int

const (
	// TraceGapRise: a gap ended on a rising edge; synchronization
	// restarts here.
	TraceGapRise TraceKind = iota
	// TraceGapFall: a falling edge during a gap; dropped without
	// restarting synchronization.
	TraceGapFall
	// TraceGlitch: a pulse too short to be a bit; dropped.
	TraceGlitch
	// TraceBit: an accepted data bit.
	TraceBit
)

// String returns the single-letter code used in diagnostic dumps.
func (k TraceKind) String() string {
	switch k {
	case TraceGapRise:
		return "A"
	case TraceGapFall:
		return "B"
	case TraceGlitch:
		return "C"
	case TraceBit:
		return "D"
	}
	return "?"
}

// TraceEvent is one diagnostic sample of the synchronizer's state,
// emitted per edge when a Tracer is attached.
type TraceEvent struct {
	Kind    TraceKind
	Pos     int     // frame index of the edge
	Sign    int     // sign entered at the edge
	Width   int     // pulse width in samples (0 on gap events)
	BitTime float64 // bit-time estimate at the event
}

func (ev TraceEvent) String() string {
	ratio := 0.0
	if ev.BitTime > 0 {
		ratio = float64(ev.Width) / ev.BitTime
	}
	return fmt.Sprintf("%s %d %2d %d %.3f %.3f",
		ev.Kind, ev.Pos, ev.Sign, ev.Width, ratio, ev.BitTime)
}

// Tracer observes synchronizer diagnostics. Implementations must not
// retain the event past the call.
type Tracer interface {
	Trace(ev TraceEvent)
}

// Session decodes one track: it owns the bit-time estimate, the bit
// buffer of the record in progress, and the list of records assembled
// so far. Sessions are self-contained; tracks can be decoded by
// independent Sessions with no shared state.
type Session struct {
	params  Params
	rate    int
	tracer  Tracer
	bitTime float64
	bits    []byte
	lastPos int
	records []record.Record
}

// NewSession creates a Session for a track at the given sample rate.
// The rate must match the params' required rate when one is set;
// captures at other rates are rejected rather than resampled.
func NewSession(rate int, params Params) (*Session, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}
	if params.RequiredRate != 0 && rate != params.RequiredRate {
		return nil, fmt.Errorf("%w: %d Hz", ErrUnsupportedRate, rate)
	}

	return &Session{
		params:  params,
		rate:    rate,
		bitTime: params.NominalBitTime(rate),
	}, nil
}

// SetTracer attaches a diagnostic observer. A nil tracer disables
// tracing.
func (s *Session) SetTracer(t Tracer) { s.tracer = t }

// Run scans a whole track: every edge is fed to the synchronizer and
// the final bit run is flushed.
func (s *Session) Run(track audio.Track) {
	det := NewDetector(track, s.params.Threshold)
	for det.Next() {
		s.Feed(det.Pos(), det.Sign())
	}
	s.Flush()
}

// Feed advances the synchronizer by one edge. pos is the edge's frame
// index, sign the polarity entered (+1 or -1).
//
// Three cases, checked in order:
//
//   - Gap: the pulse is longer than 4 bit-times. The bit run so far
//     becomes a candidate record. Only a rising edge restarts
//     synchronization; the physical gap is only unambiguous when data
//     resumes with positive polarity, so a falling edge here is traced
//     and dropped without touching the synchronizer state.
//   - Glitch: the pulse is shorter than the edge fraction of a
//     bit-time and more than 7 bits are already buffered. The edge is
//     transient noise and is dropped entirely. The 7-bit guard keeps
//     genuine short pulses alive while the PLL is still acquiring at
//     the front of a record.
//   - Data: the edge is a bit transition. The bit-time estimate is
//     pulled toward the observed width and a bit is appended, 0 for
//     positive polarity, 1 for negative.
func (s *Session) Feed(pos, sign int) {
	width := pos - s.lastPos

	switch {
	case float64(width) > 4*s.bitTime:
		s.finalize()
		if sign == 1 {
			s.trace(TraceGapRise, pos, sign, 0)
			s.lastPos = pos
			s.bits = append(s.bits[:0], 0)
			s.bitTime = s.params.NominalBitTime(s.rate)
		} else {
			s.trace(TraceGapFall, pos, sign, 0)
		}

	case float64(width) < s.params.Edge*s.bitTime && len(s.bits) > 7:
		s.trace(TraceGlitch, pos, sign, width)

	default:
		s.trace(TraceBit, pos, sign, width)
		s.lastPos = pos
		s.bitTime += (float64(width) - s.bitTime) / s.params.Avg
		if sign > 0 {
			s.bits = append(s.bits, 0)
		} else {
			s.bits = append(s.bits, 1)
		}
	}
}

// Flush finalizes the bit run still buffered at end of stream.
func (s *Session) Flush() {
	s.finalize()
}

// BitTime returns the current bit-time estimate in samples.
func (s *Session) BitTime() float64 { return s.bitTime }

// PendingBits returns the size of the record-in-progress bit buffer.
func (s *Session) PendingBits() int { return len(s.bits) }

// Records returns the records assembled so far, in arrival order.
func (s *Session) Records() []record.Record { return s.records }

func (s *Session) finalize() {
	rec, ok := assemble(s.bits, s.params.MinRecordBits)
	s.bits = s.bits[:0]
	if ok {
		s.records = append(s.records, rec)
	}
}

func (s *Session) trace(kind TraceKind, pos, sign, width int) {
	if s.tracer == nil {
		return
	}
	s.tracer.Trace(TraceEvent{
		Kind:    kind,
		Pos:     pos,
		Sign:    sign,
		Width:   width,
		BitTime: s.bitTime,
	})
}
