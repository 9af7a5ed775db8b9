// SPDX-License-Identifier: EPL-2.0

package decode

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Params are the decoder tuning constants. The defaults match the tape
// drives the decoder was written for; captures from misadjusted or
// off-speed drives can override them from a YAML file.
type Params struct {
	// Threshold is the zero-crossing amplitude band on the 16-bit
	// signed scale. Samples inside ±Threshold never flip the sign.
	Threshold int16 `yaml:"threshold"`

	// Avg is the exponential smoothing divisor of the bit-time PLL.
	Avg float64 `yaml:"avg"`

	// Edge is the glitch decision threshold as a fraction of the
	// current bit-time estimate.
	Edge float64 `yaml:"edge"`

	// BaudHigh and BaudLow are the two supported bit rates. Their
	// average seeds the bit-time estimate before the PLL locks.
	BaudHigh float64 `yaml:"baud_high"`
	BaudLow  float64 `yaml:"baud_low"`

	// MinRecordBits is the shortest bit run accepted as a record.
	MinRecordBits int `yaml:"min_record_bits"`

	// RequiredRate is the only sample rate accepted, in Hz. Zero
	// disables the gate.
	RequiredRate int `yaml:"required_rate"`
}

// DefaultParams returns the reference tuning.
func DefaultParams() Params {
	return Params{
		Threshold:     2500,
		Avg:           2,
		Edge:          0.72,
		BaudHigh:      300,
		BaudLow:       150,
		MinRecordBits: 48,
		RequiredRate:  44100,
	}
}

// NominalBitTime returns the a-priori bit duration in samples at the
// given sample rate.
func (p Params) NominalBitTime(rate int) float64 {
	return float64(rate) / ((p.BaudHigh + p.BaudLow) / 2)
}

func (p Params) validate() error {
	if p.Threshold <= 0 {
		return fmt.Errorf("%w: threshold %d", ErrInvalidParams, p.Threshold)
	}
	if p.Avg < 1 {
		return fmt.Errorf("%w: avg %g", ErrInvalidParams, p.Avg)
	}
	if p.Edge <= 0 || p.Edge >= 1 {
		return fmt.Errorf("%w: edge %g", ErrInvalidParams, p.Edge)
	}
	if p.BaudHigh <= 0 || p.BaudLow <= 0 {
		return fmt.Errorf("%w: baud rates %g/%g", ErrInvalidParams, p.BaudHigh, p.BaudLow)
	}
	if p.MinRecordBits < 8 {
		return fmt.Errorf("%w: min record bits %d", ErrInvalidParams, p.MinRecordBits)
	}
	if p.RequiredRate < 0 {
		return fmt.Errorf("%w: required rate %d", ErrInvalidParams, p.RequiredRate)
	}
	return nil
}

// LoadParams reads a YAML override file on top of the defaults. Fields
// absent from the file keep their default values.
func LoadParams(path string) (Params, error) {
	params := DefaultParams()

	data, err := os.ReadFile(path)
	if err != nil {
		return params, fmt.Errorf("reading params: %w", err)
	}

	if err := yaml.Unmarshal(data, &params); err != nil {
		return params, fmt.Errorf("parsing params: %w", err)
	}

	if err := params.validate(); err != nil {
		return params, err
	}

	return params, nil
}
