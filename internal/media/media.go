// Package media decodes audio files into interleaved float32 samples and
// encodes processed samples back to WAV. It exists to feed the offline
// render tool; the tape processor itself never touches files.
package media

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Source is a streaming decoder of interleaved float32 samples in [-1, 1].
type Source interface {
	SampleRate() int
	Channels() int
	// ReadSamples fills dst with interleaved samples and returns the number
	// of samples written. io.EOF signals end of stream.
	ReadSamples(dst []float32) (int, error)
	Close() error
}

// Open opens path and selects a decoder by file extension.
// Supported: .wav, .mp3, .ogg.
func Open(path string) (Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("media: open %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		return newWAVSource(f)
	case ".mp3":
		return newMP3Source(f)
	case ".ogg":
		return newVorbisSource(f)
	default:
		f.Close()
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}
