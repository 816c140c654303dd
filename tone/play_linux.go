//go:build linux

package tone

import (
	"github.com/jfreymuth/pulse"
	"github.com/jfreymuth/pulse/proto"
)

// PulsePlayer streams FLAC assets to PulseAudio. Each Play runs in its
// own goroutine, detached from the render loop; any failure along the
// way is discarded so visual pacing is never interrupted.
type PulsePlayer struct{}

func NewPlayer() Player { return PulsePlayer{} }

func (PulsePlayer) Play(path string) {
	go func() {
		samples, err := readFLAC(path)
		if err != nil || len(samples) == 0 {
			return
		}
		playSamples(samples)
	}()
}

func playSamples(samples []int16) {
	c, err := pulse.NewClient()
	if err != nil {
		return
	}
	defer c.Close()

	pos := 0
	reader := pulse.Int16Reader(func(buf []int16) (int, error) {
		if pos >= len(samples) {
			return 0, pulse.EndOfData
		}
		n := copy(buf, samples[pos:])
		pos += n
		return n, nil
	})
	stream, err := c.NewPlayback(reader,
		pulse.PlaybackMono,
		pulse.PlaybackSampleRate(SampleRate),
		pulse.PlaybackLatency(0.1),
		pulse.PlaybackRawOption(func(p *proto.CreatePlaybackStream) {
			p.ChannelVolumes = proto.ChannelVolumes{uint32(proto.VolumeNorm)}
		}),
	)
	if err != nil {
		return
	}
	stream.Start()
	stream.Drain()
	stream.Stop()
	stream.Close()
}
