// SPDX-License-Identifier: EPL-2.0

package tapedec_test

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/ik5/tapedec"
	"github.com/ik5/tapedec/decode"
	"github.com/ik5/tapedec/formats/wav"
	"github.com/ik5/tapedec/internal/audiotest"
	"github.com/ik5/tapedec/tap"
)

const (
	testRate  = 44100
	testWidth = 196 // one bit-time at 44100 Hz and 225 baud
	testAmp   = 20000
)

// captureSamples builds a mono capture holding the given record bursts,
// each burst a train of half-cycles one bit-time wide. Alternating
// polarity starting positive synchronizes as bits 0,1,0,1,... which
// pack to 0xAA bytes.
func captureSamples(bursts ...int) []int16 {
	var samples []int16
	samples = audiotest.Silence(samples, 1000)
	for _, halfCycles := range bursts {
		samples = audiotest.SquareTrain(samples, testAmp, testWidth, halfCycles)
		samples = audiotest.Silence(samples, 1500)
	}
	return samples
}

func TestDecode_SingleRecord(t *testing.T) {
	t.Parallel()

	wavData := audiotest.WAVBytes(testRate, 1, captureSamples(48))

	result, err := tapedec.Decode(bytes.NewReader(wavData), decode.DefaultParams())
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if result == nil {
		t.Fatal("Decode() result = nil, want records")
	}

	if result.Track != 0 {
		t.Errorf("Track = %d, want 0", result.Track)
	}
	if len(result.Records) != 1 {
		t.Fatalf("len(Records) = %d, want 1", len(result.Records))
	}

	want := bytes.Repeat([]byte{0xAA}, 6)
	if !bytes.Equal(result.Records[0], want) {
		t.Errorf("Records[0] = %x, want %x", result.Records[0], want)
	}
}

func TestDecode_TwoRecords(t *testing.T) {
	t.Parallel()

	wavData := audiotest.WAVBytes(testRate, 1, captureSamples(48, 56))

	result, err := tapedec.Decode(bytes.NewReader(wavData), decode.DefaultParams())
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if result == nil {
		t.Fatal("Decode() result = nil, want records")
	}

	if len(result.Records) != 2 {
		t.Fatalf("len(Records) = %d, want 2", len(result.Records))
	}
	if len(result.Records[0]) != 6 {
		t.Errorf("len(Records[0]) = %d, want 6", len(result.Records[0]))
	}
	if len(result.Records[1]) != 7 {
		t.Errorf("len(Records[1]) = %d, want 7", len(result.Records[1]))
	}
}

func TestDecode_FirstTrackWins(t *testing.T) {
	t.Parallel()

	// Signal on channel 1 only; channel 0 is silent and yields
	// nothing, so the scan moves on.
	mono := captureSamples(48)
	stereo := make([]int16, 0, len(mono)*2)
	for _, s := range mono {
		stereo = append(stereo, 0, s)
	}
	wavData := audiotest.WAVBytes(testRate, 2, stereo)

	result, err := tapedec.Decode(bytes.NewReader(wavData), decode.DefaultParams())
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if result == nil {
		t.Fatal("Decode() result = nil, want records")
	}

	if result.Track != 1 {
		t.Errorf("Track = %d, want 1", result.Track)
	}
	if len(result.Records) != 1 {
		t.Errorf("len(Records) = %d, want 1", len(result.Records))
	}
}

func TestDecode_NoRecords(t *testing.T) {
	t.Parallel()

	var samples []int16
	samples = audiotest.Silence(samples, 8000)
	wavData := audiotest.WAVBytes(testRate, 1, samples)

	result, err := tapedec.Decode(bytes.NewReader(wavData), decode.DefaultParams())
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if result != nil {
		t.Errorf("Decode() result = %+v, want nil", result)
	}
}

func TestDecode_WrongSampleRate(t *testing.T) {
	t.Parallel()

	wavData := audiotest.WAVBytes(22050, 1, captureSamples(48))

	_, err := tapedec.Decode(bytes.NewReader(wavData), decode.DefaultParams())
	if !errors.Is(err, decode.ErrUnsupportedRate) {
		t.Errorf("Decode() error = %v, want ErrUnsupportedRate", err)
	}
}

func TestDecode_NotWav(t *testing.T) {
	t.Parallel()

	_, err := tapedec.Decode(bytes.NewReader([]byte("not a capture")), decode.DefaultParams())
	if !errors.Is(err, wav.ErrNotWavFile) {
		t.Errorf("Decode() error = %v, want ErrNotWavFile", err)
	}
}

type countingTracer struct {
	events []decode.TraceEvent
}

func (c *countingTracer) Trace(ev decode.TraceEvent) {
	c.events = append(c.events, ev)
}

func TestDecodeTrace_ObserverSeesEdges(t *testing.T) {
	t.Parallel()

	wavData := audiotest.WAVBytes(testRate, 1, captureSamples(48))

	var tracer countingTracer
	tracked := -1
	result, err := tapedec.DecodeTrace(bytes.NewReader(wavData), decode.DefaultParams(),
		func(track int) decode.Tracer {
			tracked = track
			return &tracer
		})
	if err != nil {
		t.Fatalf("DecodeTrace() error = %v", err)
	}
	if result == nil {
		t.Fatal("DecodeTrace() result = nil, want records")
	}

	if tracked != 0 {
		t.Errorf("tracer requested for track %d, want 0", tracked)
	}
	// One sync restart plus one event per remaining edge.
	if len(tracer.events) != 48 {
		t.Fatalf("len(events) = %d, want 48", len(tracer.events))
	}
	if tracer.events[0].Kind != decode.TraceGapRise {
		t.Errorf("events[0].Kind = %v, want TraceGapRise", tracer.events[0].Kind)
	}
	for i, ev := range tracer.events[1:] {
		if ev.Kind != decode.TraceBit {
			t.Errorf("events[%d].Kind = %v, want TraceBit", i+1, ev.Kind)
		}
	}
}

func TestDecode_NilTracerDisablesTracing(t *testing.T) {
	t.Parallel()

	wavData := audiotest.WAVBytes(testRate, 1, captureSamples(48))

	result, err := tapedec.DecodeTrace(bytes.NewReader(wavData), decode.DefaultParams(),
		func(track int) decode.Tracer { return nil })
	if err != nil {
		t.Fatalf("DecodeTrace() error = %v", err)
	}
	if result == nil || len(result.Records) != 1 {
		t.Fatalf("DecodeTrace() result = %+v, want one record", result)
	}
}

func TestDecode_ToTAPContainer(t *testing.T) {
	t.Parallel()

	wavData := audiotest.WAVBytes(testRate, 1, captureSamples(48))

	result, err := tapedec.Decode(bytes.NewReader(wavData), decode.DefaultParams())
	if err != nil || result == nil {
		t.Fatalf("Decode() = %+v, %v", result, err)
	}

	buf := new(bytes.Buffer)
	if err := tap.Write(buf, result.Records); err != nil {
		t.Fatalf("tap.Write() error = %v", err)
	}

	data := buf.Bytes()
	length := binary.LittleEndian.Uint32(data[0:4])
	if length != 6 {
		t.Errorf("record length word = %d, want 6", length)
	}
	mirrored := binary.LittleEndian.Uint32(data[10:14])
	if mirrored != 6 {
		t.Errorf("mirrored length word = %d, want 6", mirrored)
	}
	tail := binary.LittleEndian.Uint32(data[len(data)-4:])
	if tail != 0xFFFFFFFF {
		t.Errorf("end of medium = %#x, want 0xFFFFFFFF", tail)
	}
}
