// SPDX-License-Identifier: EPL-2.0

// Package audio provides the PCM primitives the tape decoder is built on.
//
// This package contains the core building blocks:
//   - Source interface for PCM input
//   - Track for strided per-channel access over interleaved samples
//   - Format registry for decoder registration
//
// # Source Interface
//
// The Source interface is the foundation of the pipeline:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []int16) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// All container decoders implement this interface. Samples are signed
// 16-bit PCM, interleaved by channel, matching the capture format of
// tape-audio field recordings.
//
// # Tracks
//
// Tape decoding works one channel at a time: each channel of a capture
// is one logical tape track. ReadTracks drains a Source into memory and
// returns a Track per channel:
//
//	tracks, err := audio.ReadTracks(src)
//	for _, track := range tracks {
//	    // track.At(i) is the i-th frame of this channel
//	}
//
// All tracks share one interleaved buffer; Track.At applies the stride.
//
// # Format Registry
//
// The registry allows dynamic decoder registration:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, _ := registry.Get("wav")
//
// This keeps the command-line front end open to additional container
// formats without hard-wiring any of them.
//
// # Error Handling
//
// ReadSamples returns io.EOF when no more data is available. Other
// errors indicate problems with the source:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    if err == io.EOF {
//	        break // Normal end of stream
//	    }
//	    if err != nil {
//	        return err // Processing error
//	    }
//	    // Process n samples from buf
//	}
package audio
