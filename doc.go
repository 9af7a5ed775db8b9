// SPDX-License-Identifier: EPL-2.0

// Package tapedec recovers digital data from audio recordings of
// magnetic tape drives.
//
// The recordings are frequency-shift-keyed bitstreams captured as
// 16-bit PCM WAV files at 44100 Hz. The decoder turns the analog
// signal back into byte records: zero-crossing detection with a
// hysteresis band, a software PLL tracking the bit duration, edge
// classification into bits, gaps and glitches, LSB-first bit packing,
// and framing/checksum validation. Accepted records are written as a
// SIMH-TAP tape image with a plain-text metadata sidecar.
//
// # Quick Start
//
// The simplest way to decode a capture is the top-level pipeline:
//
//	file, _ := os.Open("capture.wav")
//	result, err := tapedec.Decode(file, decode.DefaultParams())
//	if err != nil {
//	    // wrong container, wrong rate, read failure
//	}
//	if result == nil {
//	    // no track yielded records
//	}
//	for _, rec := range result.Records {
//	    fmt.Println(rec.Summary())
//	}
//
// Each audio channel is one logical tape track. Tracks are examined in
// order and the first one that yields records wins.
//
// # Pipeline
//
// For more control, compose the stages directly:
//
//	src, _ := wav.Decoder{}.Decode(file)
//	tracks, _ := audio.ReadTracks(src)
//	sess, _ := decode.NewSession(tracks[0].Rate, decode.DefaultParams())
//	sess.Run(tracks[0])
//
// # Outputs
//
// The tap subpackage serializes records:
//
//	tap.Write(tapFile, result.Records)
//	tap.WriteMeta(metaFile, "capture.wav.TAP", result.Records)
//
// # Validation
//
// Records with a bad preamble, postamble or CRC are kept and written,
// only annotated in their summaries; partial captures still have
// archival value. See the record subpackage.
//
// # Tuning
//
// Decode parameters (threshold, PLL smoothing, baud rates) default to
// the reference drive and can be overridden from a YAML file via
// decode.LoadParams.
package tapedec
