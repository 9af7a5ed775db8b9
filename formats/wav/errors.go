package wav

import "errors"

var (
	// ErrNotWavFile indicates the input is not a valid WAV file
	ErrNotWavFile = errors.New("not a WAV file")

	// ErrUnsupportedWavLayout indicates an unsupported WAV structure
	ErrUnsupportedWavLayout = errors.New("unsupported WAV layout")

	// ErrOnlyPCM16bitSupported indicates only 16-bit PCM is supported
	ErrOnlyPCM16bitSupported = errors.New("only PCM 16-bit supported")

	// ErrNoChannelsToWrite indicates a channel count below one was
	// passed to WriteWAV16
	ErrNoChannelsToWrite = errors.New("no channels to write")
)
