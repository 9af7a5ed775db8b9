// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"bytes"
	"encoding/binary"
)

// Silence appends n zero samples.
func Silence(dst []int16, n int) []int16 {
	for i := 0; i < n; i++ {
		dst = append(dst, 0)
	}
	return dst
}

// SquareTrain appends count half-cycles of width samples each, alternating
// polarity. The first half-cycle is positive so an edge detector entering
// from silence or from a negative level sees a rising edge.
func SquareTrain(dst []int16, amp int16, width, count int) []int16 {
	level := amp
	for i := 0; i < count; i++ {
		for j := 0; j < width; j++ {
			dst = append(dst, level)
		}
		level = -level
	}
	return dst
}

// WAVBytes builds a canonical 44-byte-header PCM WAV file around the given
// interleaved samples.
func WAVBytes(sampleRate, channels int, samples []int16) []byte {
	buf := new(bytes.Buffer)

	numChannels := uint16(channels)
	bits := uint16(16)
	byteRate := uint32(sampleRate) * uint32(numChannels) * uint32(bits/8)
	blockAlign := uint16(numChannels) * uint16(bits/8)
	dataSize := uint32(len(samples) * 2)
	riffSize := 36 + dataSize

	// RIFF header
	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, riffSize)
	buf.WriteString("WAVE")

	// fmt chunk
	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(16)) // chunk size
	binary.Write(buf, binary.LittleEndian, uint16(1))  // PCM format
	binary.Write(buf, binary.LittleEndian, numChannels)
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(buf, binary.LittleEndian, byteRate)
	binary.Write(buf, binary.LittleEndian, blockAlign)
	binary.Write(buf, binary.LittleEndian, bits)

	// data chunk
	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, dataSize)

	// Samples
	for _, s := range samples {
		binary.Write(buf, binary.LittleEndian, s)
	}

	return buf.Bytes()
}
