// SPDX-License-Identifier: EPL-2.0

// Package decode turns tape-audio samples back into byte records.
//
// The pipeline has three stages, each a pure producer:
//
//	samples -> Detector -> Session (bit synchronizer) -> records
//
// The Detector scans one track for zero-crossings with a hysteresis
// band: a sample must leave ±Threshold to flip the sign, so noise near
// zero amplitude never fabricates edges.
//
// The Session is a software PLL. It keeps an adaptive estimate of the
// bit duration, seeded from the nominal baud rates and corrected by
// first-order exponential smoothing after every accepted bit. Each
// inter-edge interval is classified as a data bit, a record gap, or a
// glitch. Gaps finalize the record in progress; glitches are dropped.
// Two policies are deliberate and load-bearing, not incidental:
//
//   - Only a rising edge restarts synchronization after a gap. A
//     falling edge seen during a gap is traced and ignored. This can
//     lose a legitimate record's closing edge in unusual timing
//     patterns; the behavior is kept as is, a known limitation.
//   - A short pulse is only discarded as a glitch once more than 7
//     bits are buffered, so genuine short pulses at the front of a
//     record survive the PLL's acquisition phase.
//
// Finished bit runs are packed LSB-first into bytes; runs under 48
// bits are discarded silently as noise.
//
// Diagnostics are an observer, not inline writes: attach a Tracer with
// Session.SetTracer to see every synchronizer decision.
//
//	sess, err := decode.NewSession(track.Rate, decode.DefaultParams())
//	if err != nil {
//	    // wrong sample rate, bad params
//	}
//	sess.Run(track)
//	for _, rec := range sess.Records() {
//	    fmt.Println(rec.Summary())
//	}
package decode
