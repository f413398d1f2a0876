package media

import (
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// WriteWAV encodes interleaved samples as a 16-bit PCM WAV file.
// Samples outside [-1, 1] are clamped before quantization.
func WriteWAV(path string, samples []float32, sampleRate, channels int) error {
	if channels <= 0 {
		return fmt.Errorf("media: channel count must be > 0: %d", channels)
	}

	if sampleRate <= 0 {
		return fmt.Errorf("media: sample rate must be > 0: %d", sampleRate)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("media: create %s: %w", path, err)
	}
	defer f.Close()

	enc := wav.NewEncoder(f, sampleRate, 16, channels, 1)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: channels,
			SampleRate:  sampleRate,
		},
		Data:           make([]int, len(samples)),
		SourceBitDepth: 16,
	}

	for i, s := range samples {
		if s > 1 {
			s = 1
		}
		if s < -1 {
			s = -1
		}
		buf.Data[i] = int(s * 32767)
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("media: encode %s: %w", path, err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("media: finalize %s: %w", path, err)
	}

	return nil
}
