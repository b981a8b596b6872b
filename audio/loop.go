package audio

import (
	"math"
	"sync/atomic"
	"time"
)

// Loop plays a sound over and over. Its gain may be changed from any
// goroutine while the audio thread is playing it.
type Loop struct {
	mixer   *Mixer
	sound   *Sound
	gain    atomic.Uint64 // float64 bits
	started atomic.Bool

	// owned by the audio thread once started
	env  envelope
	pos  float64
	step float64
}

func newLoop(m *Mixer, snd *Sound) *Loop {
	return &Loop{
		mixer: m,
		sound: snd,
		step:  snd.sampleRate / m.sampleRate,
	}
}

// PlayLoop starts playing, ramping up over fadeIn. Calls after the first one
// do nothing.
func (l *Loop) PlayLoop(fadeIn time.Duration) {
	if l.started.Swap(true) {
		return
	}
	l.env.startAttack(fadeIn.Seconds() * l.mixer.sampleRate)
	l.mixer.start(l)
}

func (l *Loop) SetGain(gain float64) {
	gain = max(0, min(gain, 1))
	l.gain.Store(math.Float64bits(gain))
}

func (l *Loop) Gain() float64 {
	return math.Float64frombits(l.gain.Load())
}

func (l *Loop) Playing() bool { return l.started.Load() }

// process adds the next len(out[0]) frames of the loop to out, resampling
// linearly if the sound's sample rate differs from the mixer's.
func (l *Loop) process(out [][]float32) {
	if len(out) == 0 {
		return
	}
	gain := l.Gain()
	snd := l.sound
	n := snd.Len()
	for i := range out[0] {
		k := int(l.pos)
		next := k + 1
		if next >= n {
			next = 0
		}
		frac := l.pos - float64(k)
		amp := gain * l.env.value()
		left := lerp(snd.left[k], snd.left[next], frac) * amp
		right := lerp(snd.right[k], snd.right[next], frac) * amp
		out[0][i] += float32(left)
		if len(out) > 1 {
			out[1][i] += float32(right)
		}
		l.pos += l.step
		for l.pos >= float64(n) {
			l.pos -= float64(n)
		}
	}
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
