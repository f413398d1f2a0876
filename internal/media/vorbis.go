package media

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"
)

// oggReader is the subset of oggvorbis.Reader used here, split out so tests
// can substitute a fake stream.
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type vorbisSource struct {
	closer io.Closer
	dec    oggReader

	sampleRate int
	channels   int
}

func newVorbisSource(f io.ReadCloser) (*vorbisSource, error) {
	dec, err := oggvorbis.NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("media: decode ogg vorbis: %w", err)
	}

	return &vorbisSource{
		closer:     f,
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   dec.Channels(),
	}, nil
}

func (s *vorbisSource) SampleRate() int { return s.sampleRate }
func (s *vorbisSource) Channels() int   { return s.channels }
func (s *vorbisSource) Close() error    { return s.closer.Close() }

func (s *vorbisSource) ReadSamples(dst []float32) (int, error) {
	// The decoder reads whole frames only; trim dst to a frame multiple.
	want := len(dst) - len(dst)%s.channels
	if want == 0 {
		return 0, nil
	}

	n, err := s.dec.Read(dst[:want])
	if n == 0 && err != nil {
		return 0, err
	}

	return n, err
}
