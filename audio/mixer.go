package audio

import (
	"log"

	"github.com/mrdg/ambient/volume"
)

const (
	defaultChannels = 8
	bufferSize      = 512
)

// Mixer plays any number of looping sounds. Loops are started from the UI
// thread and mixed in Process, which runs on the audio thread.
type Mixer struct {
	sampleRate float64
	starts     *eventBuffer
	capacity   int

	// owned by the audio thread
	loops []*Loop
}

func NewMixer(sampleRate int) *Mixer {
	m := &Mixer{sampleRate: float64(sampleRate)}
	m.SetChannelCapacity(defaultChannels)
	return m
}

// SetChannelCapacity sets the number of loops that can play at once. It must
// be called before the output is started.
func (m *Mixer) SetChannelCapacity(n int) {
	m.capacity = max(n, 0)
	m.starts = newEventBuffer(nextPow2(max(n, 1)))
	m.loops = make([]*Loop, 0, m.capacity)
}

// Load decodes a sound file into a loop that is not yet playing.
func (m *Mixer) Load(path string) (volume.Voice, error) {
	snd, err := LoadSound(path)
	if err != nil {
		return nil, err
	}
	return newLoop(m, snd), nil
}

func (m *Mixer) start(l *Loop) {
	if !m.starts.push(l) {
		log.Printf("mixer: too many loops starting, dropped %s", l.sound.file)
	}
}

// Process fills out with the sum of all playing loops. out holds one buffer
// per channel.
func (m *Mixer) Process(out [][]float32) {
	for i := range out {
		for j := range out[i] {
			out[i][j] = 0.
		}
	}
	m.starts.iter(func(l *Loop) {
		if len(m.loops) >= m.capacity {
			log.Printf("mixer: no free channel for %s", l.sound.file)
			return
		}
		m.loops = append(m.loops, l)
	})
	for _, l := range m.loops {
		l.process(out)
	}
}
