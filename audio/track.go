// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// Track is a single-channel view over an interleaved PCM capture.
// Sample positions are frame indices, shared across all tracks of the
// same capture.
type Track struct {
	Data     []int16 // interleaved samples for all channels
	Channel  int     // channel this track reads (0-based)
	Channels int     // channel count of the capture
	Rate     int     // sample rate in Hz
}

// Len returns the number of frames in the track.
func (t Track) Len() int {
	if t.Channels <= 0 {
		return 0
	}
	return len(t.Data) / t.Channels
}

// At returns the sample of this track at frame index i.
func (t Track) At(i int) int16 {
	return t.Data[i*t.Channels+t.Channel]
}

// ReadTracks drains src into memory and returns one Track per channel,
// all sharing the same interleaved buffer.
func ReadTracks(src Source) ([]Track, error) {
	channels := src.Channels()
	if channels <= 0 {
		return nil, ErrNoChannels
	}

	data := make([]int16, 0, 1<<16)
	buf := make([]int16, 4096)

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			data = append(data, buf[:n]...)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}

	// Drop a trailing partial frame, if the source produced one.
	data = data[:len(data)/channels*channels]

	tracks := make([]Track, channels)
	for c := 0; c < channels; c++ {
		tracks[c] = Track{
			Data:     data,
			Channel:  c,
			Channels: channels,
			Rate:     src.SampleRate(),
		}
	}
	return tracks, nil
}
