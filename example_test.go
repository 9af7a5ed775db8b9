// SPDX-License-Identifier: EPL-2.0

package tapedec_test

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/ik5/tapedec"
	"github.com/ik5/tapedec/decode"
	"github.com/ik5/tapedec/formats/wav"
	"github.com/ik5/tapedec/tap"
)

// fskCapture builds an in-memory WAV capture holding one record burst.
// Half-cycles one bit-time wide with alternating polarity synchronize
// as bits 0,1,0,1,... which pack to 0xAA bytes.
func fskCapture(halfCycles int) []byte {
	const (
		rate  = 44100
		width = 196
		amp   = 20000
	)

	samples := make([]int16, 0, 1000+halfCycles*width+1500)
	samples = append(samples, make([]int16, 1000)...)
	level := int16(amp)
	for i := 0; i < halfCycles; i++ {
		for j := 0; j < width; j++ {
			samples = append(samples, level)
		}
		level = -level
	}
	samples = append(samples, make([]int16, 1500)...)

	buf := new(bytes.Buffer)
	wav.WriteWAV16(buf, rate, 1, samples)
	return buf.Bytes()
}

// Example_basicUsage demonstrates the most common use case: decoding a
// tape capture into records.
func Example_basicUsage() {
	capture := fskCapture(48)

	result, err := tapedec.Decode(bytes.NewReader(capture), decode.DefaultParams())
	if err != nil {
		fmt.Printf("decode error: %v\n", err)
		return
	}
	if result == nil {
		fmt.Println("no records found")
		return
	}

	fmt.Printf("Track %d: %d record(s)\n", result.Track, len(result.Records))
	for i, rec := range result.Records {
		fmt.Printf("Record %d: %x\n", i, []byte(rec))
	}
	// Output:
	// Track 0: 1 record(s)
	// Record 0: aaaaaaaaaaaa
}

// Example_tapContainer shows converting a decoded capture into a
// SIMH-TAP container.
func Example_tapContainer() {
	capture := fskCapture(48)

	result, err := tapedec.Decode(bytes.NewReader(capture), decode.DefaultParams())
	if err != nil || result == nil {
		fmt.Println("decode failed")
		return
	}

	container := new(bytes.Buffer)
	if err := tap.Write(container, result.Records); err != nil {
		fmt.Printf("write error: %v\n", err)
		return
	}

	// One 6-byte record framed by two length words, plus the
	// end-of-medium marker.
	fmt.Printf("TAP container: %d bytes\n", container.Len())
	// Output: TAP container: 18 bytes
}

// Example_metadataSidecar shows the Bitstore sidecar written next to a
// TAP container.
func Example_metadataSidecar() {
	capture := fskCapture(48)

	result, err := tapedec.Decode(bytes.NewReader(capture), decode.DefaultParams())
	if err != nil || result == nil {
		fmt.Println("decode failed")
		return
	}

	sidecar := new(bytes.Buffer)
	if err := tap.WriteMeta(sidecar, "capture.TAP", result.Records); err != nil {
		fmt.Printf("write error: %v\n", err)
		return
	}

	lines := strings.Split(strings.TrimRight(sidecar.String(), "\n"), "\n")
	fmt.Println(lines[0])
	fmt.Println(lines[1])
	fmt.Println(lines[len(lines)-1])
	// Output:
	// BitStore.Metadata_version:
	// 	1.0
	// *END*
}

// Example_tuningParameters shows overriding decoder parameters for a
// capture digitized off-speed.
func Example_tuningParameters() {
	params := decode.DefaultParams()
	params.Threshold = 1800

	fmt.Printf("threshold: %d\n", params.Threshold)
	fmt.Printf("bit time: %.0f samples\n", params.NominalBitTime(44100))
	// Output:
	// threshold: 1800
	// bit time: 196 samples
}

// Example_errorHandling demonstrates proper error handling.
func Example_errorHandling() {
	invalidData := bytes.NewReader([]byte("not an audio file"))

	_, err := tapedec.Decode(invalidData, decode.DefaultParams())
	if err != nil {
		if errors.Is(err, wav.ErrNotWavFile) {
			fmt.Println("Not a valid WAV file")
		} else {
			fmt.Printf("Decode error: %v\n", err)
		}
		return
	}
	// Output: Not a valid WAV file
}
