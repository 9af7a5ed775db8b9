// SPDX-License-Identifier: EPL-2.0

package decode

import "errors"

var (
	// ErrInvalidParams indicates a params field outside its valid range
	ErrInvalidParams = errors.New("invalid decode params")

	// ErrUnsupportedRate indicates a capture at a sample rate the
	// decoder does not accept
	ErrUnsupportedRate = errors.New("unsupported sample rate")
)
