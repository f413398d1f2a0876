package media

import (
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
)

// mp3Reader is the subset of gomp3.Decoder used here, split out so tests
// can substitute a fake stream.
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type mp3Source struct {
	closer io.Closer
	dec    mp3Reader
	buf    []byte

	sampleRate int
}

func newMP3Source(f io.ReadCloser) (*mp3Source, error) {
	dec, err := gomp3.NewDecoder(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("media: decode mp3: %w", err)
	}

	return &mp3Source{
		closer:     f,
		dec:        dec,
		sampleRate: dec.SampleRate(),
		buf:        make([]byte, 8192),
	}, nil
}

func (s *mp3Source) SampleRate() int { return s.sampleRate }

// Channels is always 2: go-mp3 outputs interleaved stereo PCM.
func (s *mp3Source) Channels() int { return 2 }

func (s *mp3Source) Close() error { return s.closer.Close() }

func (s *mp3Source) ReadSamples(dst []float32) (int, error) {
	// go-mp3 yields 16-bit little-endian PCM, two bytes per sample.
	bytesNeeded := len(dst) * 2
	if cap(s.buf) < bytesNeeded {
		s.buf = make([]byte, bytesNeeded)
	}
	s.buf = s.buf[:bytesNeeded]

	n, err := s.dec.Read(s.buf)
	if n == 0 {
		if err != nil {
			return 0, err
		}
		return 0, nil
	}

	samples := n / 2
	for i := range samples {
		low := uint16(s.buf[2*i])
		high := uint16(s.buf[2*i+1])
		val := int16(low | (high << 8))
		dst[i] = float32(val) / 32768.0
	}

	return samples, err
}
