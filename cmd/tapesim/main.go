// Command tapesim runs audio files through the tape emulation chain.
//
// Usage:
//
//	tapesim -in input.wav -out warmed.wav
//	tapesim -in song.mp3 -out warmed.wav -drive 2.5 -cutoff 9000
//	tapesim -in input.ogg -play
//
// Stereo and multichannel files are processed with one independent
// processor per channel; there is no channel linking.
package main

import (
	"bytes"
	"encoding/binary"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/cwbudde/algo-tape/dsp/block"
	"github.com/cwbudde/algo-tape/dsp/tape"
	"github.com/cwbudde/algo-tape/internal/media"
)

const chunkFrames = 4096

func main() {
	var (
		inPath  = flag.String("in", "", "input audio file (.wav, .mp3, .ogg)")
		outPath = flag.String("out", "", "output WAV file")
		drive   = flag.Float64("drive", 1.5, "pre-saturation input gain")
		cutoff  = flag.Float64("cutoff", 0, "warmth lowpass cutoff in Hz (0 keeps the default coefficient)")
		ceiling = flag.Float64("ceiling", 0.9, "gain into the final soft limiter")
		play    = flag.Bool("play", false, "play the processed audio")
	)

	flag.Parse()

	if *inPath == "" || (*outPath == "" && !*play) {
		fmt.Fprintln(os.Stderr, "tapesim: -in and at least one of -out / -play are required")
		flag.Usage()
		os.Exit(2)
	}

	src, err := media.Open(*inPath)
	if err != nil {
		log.Fatalf("tapesim: %v", err)
	}
	defer src.Close()

	procs, err := buildProcessors(src.Channels(), *drive, *cutoff, *ceiling, float64(src.SampleRate()))
	if err != nil {
		log.Fatalf("tapesim: %v", err)
	}

	out, err := render(src, procs)
	if err != nil {
		log.Fatalf("tapesim: %v", err)
	}

	if *outPath != "" {
		if err := media.WriteWAV(*outPath, out, src.SampleRate(), src.Channels()); err != nil {
			log.Fatalf("tapesim: %v", err)
		}

		fmt.Printf("wrote %s (%d samples, %d Hz, %d ch)\n",
			*outPath, len(out), src.SampleRate(), src.Channels())
	}

	if *play {
		if err := playback(out, src.SampleRate(), src.Channels()); err != nil {
			log.Fatalf("tapesim: %v", err)
		}
	}
}

func buildProcessors(channels int, drive, cutoff, ceiling, sampleRate float64) ([]*tape.Processor, error) {
	opts := []tape.Option{
		tape.WithDrive(drive),
		tape.WithLimiterGain(ceiling),
	}

	if cutoff > 0 {
		opts = append(opts, tape.WithWarmthCutoff(cutoff, sampleRate))
	}

	procs := make([]*tape.Processor, channels)
	for ch := range procs {
		p, err := tape.New(opts...)
		if err != nil {
			return nil, err
		}

		procs[ch] = p
	}

	return procs, nil
}

// render streams the source through per-channel processors and collects the
// full interleaved output. The channel cursor persists across chunks so
// decoders that return partial frames keep channel assignment intact.
func render(src media.Source, procs []*tape.Processor) ([]float32, error) {
	pool := block.NewPool()

	chunk := pool.Get(chunkFrames * len(procs))
	defer pool.Put(chunk)

	var out []float32

	ch := 0

	for {
		n, err := src.ReadSamples(chunk.Samples())
		if n > 0 {
			samples := chunk.Samples()[:n]
			for i := range samples {
				samples[i] = procs[ch].ProcessSample(samples[i])
				ch = (ch + 1) % len(procs)
			}

			out = append(out, samples...)
		}

		if err == io.EOF {
			return out, nil
		}

		if err != nil {
			return nil, fmt.Errorf("read samples: %w", err)
		}

		if n == 0 {
			return out, nil
		}
	}
}

func playback(samples []float32, sampleRate, channels int) error {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: channels,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return fmt.Errorf("audio context: %w", err)
	}
	<-ready

	pcm := make([]byte, len(samples)*2)
	for i, s := range samples {
		if s > 1 {
			s = 1
		}
		if s < -1 {
			s = -1
		}

		binary.LittleEndian.PutUint16(pcm[2*i:2*i+2], uint16(int16(s*32767)))
	}

	player := ctx.NewPlayer(bytes.NewReader(pcm))
	defer player.Close()

	player.Play()
	for player.IsPlaying() {
		time.Sleep(10 * time.Millisecond)
	}

	return nil
}
