package audio

import (
	"encoding/binary"
	"fmt"
	"math"
	"time"

	"github.com/ebitengine/oto/v3"
)

const otoBufferSize = 50 * time.Millisecond

// OtoSink plays the output of a Mixer through oto. oto pulls audio by
// reading from the sink, so Read runs on oto's audio goroutine.
type OtoSink struct {
	context *oto.Context
	player  *oto.Player
	mixer   *Mixer
	buf     [][]float32
}

func NewOtoSink(m *Mixer) (*OtoSink, error) {
	context, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   int(m.sampleRate),
		ChannelCount: 2,
		Format:       oto.FormatFloat32LE,
		BufferSize:   otoBufferSize,
	})
	if err != nil {
		return nil, fmt.Errorf("cannot create oto context: %w", err)
	}
	<-ready
	s := &OtoSink{context: context, mixer: m}
	s.player = context.NewPlayer(s)
	return s, nil
}

// Read fills p with interleaved little-endian float32 stereo frames.
func (s *OtoSink) Read(p []byte) (int, error) {
	const frameSize = 2 * 4
	frames := len(p) / frameSize
	if frames == 0 {
		return 0, nil
	}
	if len(s.buf) == 0 || cap(s.buf[0]) < frames {
		s.buf = [][]float32{make([]float32, frames), make([]float32, frames)}
	}
	out := [][]float32{s.buf[0][:frames], s.buf[1][:frames]}
	s.mixer.Process(out)
	for i := 0; i < frames; i++ {
		binary.LittleEndian.PutUint32(p[i*frameSize:], math.Float32bits(out[0][i]))
		binary.LittleEndian.PutUint32(p[i*frameSize+4:], math.Float32bits(out[1][i]))
	}
	return frames * frameSize, nil
}

func (s *OtoSink) Start() error {
	s.player.Play()
	return nil
}

func (s *OtoSink) Close() error {
	if err := s.player.Close(); err != nil {
		return fmt.Errorf("error closing player: %w", err)
	}
	return nil
}
