// SPDX-License-Identifier: EPL-2.0

package decode

import "github.com/ik5/tapedec/audio"

// Detector scans a track for threshold crossings and yields one edge
// per true zero-crossing. Samples inside the ±threshold band keep the
// previous sign, so chatter around zero amplitude never produces edges.
type Detector struct {
	track     audio.Track
	threshold int16

	idx  int
	pos  int
	sign int
}

// NewDetector returns a Detector over one track. The sign starts
// undefined (0) until the signal first leaves the threshold band.
func NewDetector(track audio.Track, threshold int16) *Detector {
	return &Detector{
		track:     track,
		threshold: threshold,
	}
}

// Next advances to the next sign change. It returns false when the
// track is exhausted.
func (d *Detector) Next() bool {
	sign := d.sign
	for ; d.idx < d.track.Len(); d.idx++ {
		s := d.track.At(d.idx)
		if s > d.threshold {
			sign = 1
		} else if s < -d.threshold {
			sign = -1
		}
		if sign != d.sign {
			d.sign = sign
			d.pos = d.idx
			d.idx++
			return true
		}
	}
	return false
}

// Pos returns the frame index of the current edge.
func (d *Detector) Pos() int { return d.pos }

// Sign returns the sign entered at the current edge: +1 or -1.
func (d *Detector) Sign() int { return d.sign }
