package media

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const wavChunkSamples = 8192

type wavSource struct {
	f      *os.File
	dec    *wav.Decoder
	buf    *audio.IntBuffer
	factor float64

	sampleRate int
	channels   int
}

func newWAVSource(f *os.File) (*wavSource, error) {
	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		f.Close()
		return nil, ErrInvalidWAV
	}

	if err := dec.FwdToPCM(); err != nil {
		f.Close()
		return nil, fmt.Errorf("media: seek to PCM data: %w", err)
	}

	bitDepth := int(dec.SampleBitDepth())
	if bitDepth == 0 {
		f.Close()
		return nil, fmt.Errorf("%w: unknown bit depth", ErrInvalidWAV)
	}

	format := dec.Format()

	return &wavSource{
		f:          f,
		dec:        dec,
		factor:     math.Pow(2, float64(bitDepth-1)),
		sampleRate: format.SampleRate,
		channels:   format.NumChannels,
		buf: &audio.IntBuffer{
			Format:         format,
			Data:           make([]int, wavChunkSamples),
			SourceBitDepth: bitDepth,
		},
	}, nil
}

func (s *wavSource) SampleRate() int { return s.sampleRate }
func (s *wavSource) Channels() int   { return s.channels }
func (s *wavSource) Close() error    { return s.f.Close() }

func (s *wavSource) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	want := len(dst)
	if want > cap(s.buf.Data) {
		want = cap(s.buf.Data)
	}
	s.buf.Data = s.buf.Data[:want]

	n, err := s.dec.PCMBuffer(s.buf)
	if n == 0 {
		if err != nil {
			return 0, err
		}
		return 0, io.EOF
	}

	for i := range n {
		dst[i] = float32(float64(s.buf.Data[i]) / s.factor)
	}

	return n, err
}
