package tapedec

import (
	"fmt"
	"io"

	"github.com/ik5/tapedec/audio"
	"github.com/ik5/tapedec/decode"
	"github.com/ik5/tapedec/formats/wav"
	"github.com/ik5/tapedec/record"
)

// Result is the outcome of decoding one capture file.
type Result struct {
	Track   int             // channel the records came from
	Records []record.Record // in arrival order
}

// TracerFor supplies a per-track diagnostic observer. A nil function,
// or a nil return value, disables tracing for the run or the track.
type TracerFor func(track int) decode.Tracer

// Decode runs the full pipeline over one WAV capture: container
// decode, per-track edge scan and bit synchronization, record
// assembly. Tracks are examined in channel order and the first track
// that yields records wins; the rest are not analyzed. A capture where
// no track yields records returns a nil Result and no error.
func Decode(r io.Reader, params decode.Params) (*Result, error) {
	return DecodeTrace(r, params, nil)
}

// DecodeTrace is Decode with a diagnostic observer attached per track.
func DecodeTrace(r io.Reader, params decode.Params, tracerFor TracerFor) (*Result, error) {
	src, err := wav.Decoder{}.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	defer src.Close()

	return DecodeSource(src, params, tracerFor)
}

// DecodeSource runs the pipeline over an already-decoded Source. It is
// the hook for container formats beyond WAV.
func DecodeSource(src audio.Source, params decode.Params, tracerFor TracerFor) (*Result, error) {
	tracks, err := audio.ReadTracks(src)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	for i, track := range tracks {
		sess, err := decode.NewSession(track.Rate, params)
		if err != nil {
			return nil, fmt.Errorf("track %d: %w", i, err)
		}
		if tracerFor != nil {
			sess.SetTracer(tracerFor(i))
		}

		sess.Run(track)

		if records := sess.Records(); len(records) > 0 {
			return &Result{Track: i, Records: records}, nil
		}
	}

	return nil, nil
}
