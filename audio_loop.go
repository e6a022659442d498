package main

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
)

// startAudioLoop decodes the WAV at path, plays it on repeat, and feeds each
// streamed block's loudness into the queue. Playback volume follows the
// settings; muting keeps the loudness measurements flowing.
func startAudioLoop(path string, volume float64, mute bool, queue *loudnessQueue) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	streamer, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return fmt.Errorf("decoding %q: %w", path, err)
	}
	if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10)); err != nil {
		streamer.Close()
		return fmt.Errorf("initializing speaker: %w", err)
	}

	tap := &loudnessTap{source: beep.Loop(-1, streamer), queue: queue}
	out := &effects.Volume{Streamer: tap, Base: 2, Volume: 0, Silent: mute}
	if !mute {
		if volume <= 0 {
			out.Silent = true
		} else {
			out.Volume = math.Log2(volume)
		}
	}
	speaker.Play(out)
	return nil
}

// loudnessTap forwards samples unchanged while measuring each block's energy
// norm divided by the block length, the loudness definition the injector
// expects.
type loudnessTap struct {
	source beep.Streamer
	queue  *loudnessQueue
}

func (t *loudnessTap) Stream(samples [][2]float64) (int, bool) {
	n, ok := t.source.Stream(samples)
	if n > 0 {
		var sum float64
		for i := 0; i < n; i++ {
			l, r := samples[i][0], samples[i][1]
			sum += l*l + r*r
		}
		t.queue.Push(float32(math.Sqrt(sum) / float64(n)))
	}
	return n, ok
}

func (t *loudnessTap) Err() error {
	return t.source.Err()
}
