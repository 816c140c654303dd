package tone

import (
	"fmt"
	"os"

	"github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"
	"github.com/mewkiz/flac/meta"
)

const (
	bitsPerSample = 16
	blockSize     = 4096
)

func writeFLAC(path string, samples []int16) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating asset file: %w", err)
	}
	defer f.Close()

	info := &meta.StreamInfo{
		BlockSizeMin:  blockSize,
		BlockSizeMax:  blockSize,
		SampleRate:    SampleRate,
		NChannels:     1,
		BitsPerSample: bitsPerSample,
		NSamples:      uint64(len(samples)),
	}
	enc, err := flac.NewEncoder(f, info)
	if err != nil {
		return fmt.Errorf("creating flac encoder: %w", err)
	}

	for pos := 0; pos < len(samples); pos += blockSize {
		end := min(pos+blockSize, len(samples))
		if err := writeBlock(enc, samples[pos:end]); err != nil {
			enc.Close()
			return err
		}
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("closing flac encoder: %w", err)
	}
	return nil
}

func writeBlock(enc *flac.Encoder, block []int16) error {
	samples32 := make([]int32, len(block))
	for i, s := range block {
		samples32[i] = int32(s)
	}

	subframe := &frame.Subframe{
		SubHeader: frame.SubHeader{
			Pred: frame.PredVerbatim,
		},
		Samples:  samples32,
		NSamples: len(block),
	}

	fr := &frame.Frame{
		Header: frame.Header{
			BlockSize:     uint16(len(block)),
			SampleRate:    SampleRate,
			Channels:      frame.ChannelsMono,
			BitsPerSample: bitsPerSample,
		},
		Subframes: []*frame.Subframe{subframe},
	}

	if err := enc.WriteFrame(fr); err != nil {
		return fmt.Errorf("writing flac frame: %w", err)
	}
	return nil
}

func readFLAC(path string) ([]int16, error) {
	stream, err := flac.ParseFile(path)
	if err != nil {
		return nil, err
	}
	defer stream.Close()

	var samples []int16
	for {
		fr, err := stream.ParseNext()
		if err != nil {
			break
		}
		for _, s := range fr.Subframes[0].Samples {
			samples = append(samples, int16(s))
		}
	}
	return samples, nil
}
