package audio

import (
	"math"
	"testing"
	"time"
)

func testSound(rate float64, samples ...float64) *Sound {
	return &Sound{
		file:       "test.wav",
		sampleRate: rate,
		left:       samples,
		right:      samples,
	}
}

func process(m *Mixer, frames int) [][]float32 {
	out := [][]float32{make([]float32, frames), make([]float32, frames)}
	m.Process(out)
	return out
}

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-6
}

func TestLoopRepeats(t *testing.T) {
	m := NewMixer(4)
	l := newLoop(m, testSound(4, 0.1, 0.2, 0.3))
	l.SetGain(1)
	l.PlayLoop(0)

	out := process(m, 7)
	want := []float32{0.1, 0.2, 0.3, 0.1, 0.2, 0.3, 0.1}
	for i := range want {
		if !approx(want[i], out[0][i]) || !approx(want[i], out[1][i]) {
			t.Fatalf("wrong output:\nwant: %v\ngot:  %v", want, out[0])
		}
	}
}

func TestLoopGain(t *testing.T) {
	m := NewMixer(4)
	l := newLoop(m, testSound(4, 1, 1))
	l.SetGain(0.25)
	l.PlayLoop(0)
	if out := process(m, 2); !approx(0.25, out[0][1]) {
		t.Errorf("want 0.25, got %v", out[0][1])
	}
	l.SetGain(0)
	if out := process(m, 2); out[0][0] != 0 || out[1][1] != 0 {
		t.Errorf("muted loop should be silent, got %v", out)
	}
	if !l.Playing() {
		t.Errorf("muted loop should keep playing")
	}
	l.SetGain(3)
	if want, got := 1.0, l.Gain(); want != got {
		t.Errorf("gain should be clamped: want %v, got %v", want, got)
	}
}

func TestLoopFadeIn(t *testing.T) {
	m := NewMixer(4)
	l := newLoop(m, testSound(4, 1))
	l.SetGain(1)
	l.PlayLoop(time.Second) // 4 samples

	out := process(m, 6)
	want := []float32{0.25, 0.5, 0.75, 1, 1, 1}
	for i := range want {
		if !approx(want[i], out[0][i]) {
			t.Fatalf("wrong fade:\nwant: %v\ngot:  %v", want, out[0])
		}
	}
}

func TestLoopResamples(t *testing.T) {
	m := NewMixer(8)
	l := newLoop(m, testSound(4, 0, 1))
	l.SetGain(1)
	l.PlayLoop(0)

	out := process(m, 6)
	want := []float32{0, 0.5, 1, 0.5, 0, 0.5}
	for i := range want {
		if !approx(want[i], out[0][i]) {
			t.Fatalf("wrong output:\nwant: %v\ngot:  %v", want, out[0])
		}
	}
}

func TestPlayLoopOnce(t *testing.T) {
	m := NewMixer(4)
	l := newLoop(m, testSound(4, 1))
	l.SetGain(1)
	l.PlayLoop(0)
	l.PlayLoop(0)
	if out := process(m, 1); !approx(1, out[0][0]) {
		t.Errorf("a loop started twice should play once, got %v", out[0][0])
	}
	if want, got := 1, len(m.loops); want != got {
		t.Errorf("want %d loops, got %d", want, got)
	}
}

func TestChannelCapacity(t *testing.T) {
	m := NewMixer(4)
	m.SetChannelCapacity(2)
	for i := 0; i < 3; i++ {
		l := newLoop(m, testSound(4, 1))
		l.SetGain(1)
		l.PlayLoop(0)
	}
	out := process(m, 1)
	if want, got := 2, len(m.loops); want != got {
		t.Errorf("want %d loops, got %d", want, got)
	}
	if !approx(2, out[0][0]) {
		t.Errorf("want 2 loops mixed, got %v", out[0][0])
	}
}

func TestProcessClearsOutput(t *testing.T) {
	m := NewMixer(4)
	out := [][]float32{{1, 2}, {3, 4}}
	m.Process(out)
	for _, ch := range out {
		for _, v := range ch {
			if v != 0 {
				t.Fatalf("output not cleared: %v", out)
			}
		}
	}
}
