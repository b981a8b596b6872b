package audio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jfreymuth/oggvorbis"
	"github.com/youpy/go-wav"
)

// Sound is a decoded sound file, one buffer per channel.
type Sound struct {
	file        string
	sampleRate  float64
	left, right []float64
}

func (s *Sound) Len() int { return len(s.left) }

// LoadSound decodes a .wav or .ogg file. Mono files are played on both
// channels, channels beyond the second are ignored.
func LoadSound(file string) (*Sound, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var snd *Sound
	switch ext := strings.ToLower(filepath.Ext(file)); ext {
	case ".wav":
		snd, err = decodeWav(f)
	case ".ogg":
		snd, err = decodeOgg(f)
	default:
		return nil, fmt.Errorf("unsupported sound format %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", file, err)
	}
	if snd.Len() == 0 {
		return nil, fmt.Errorf("decode %s: no samples", file)
	}
	snd.file = file
	return snd, nil
}

func decodeWav(f *os.File) (*Sound, error) {
	r := wav.NewReader(f)
	format, err := r.Format()
	if err != nil {
		return nil, err
	}
	snd := Sound{sampleRate: float64(format.SampleRate)}
	for {
		samples, err := r.ReadSamples()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		for _, sample := range samples {
			l := r.FloatValue(sample, 0)
			rt := l
			if format.NumChannels > 1 {
				rt = r.FloatValue(sample, 1)
			}
			snd.left = append(snd.left, l)
			snd.right = append(snd.right, rt)
		}
	}
	return &snd, nil
}

func decodeOgg(f *os.File) (*Sound, error) {
	data, format, err := oggvorbis.ReadAll(f)
	if err != nil {
		return nil, err
	}
	if format.Channels < 1 {
		return nil, errors.New("no channels")
	}
	n := len(data) / format.Channels
	snd := Sound{
		sampleRate: float64(format.SampleRate),
		left:       make([]float64, n),
		right:      make([]float64, n),
	}
	for i := 0; i < n; i++ {
		frame := data[i*format.Channels:]
		snd.left[i] = float64(frame[0])
		snd.right[i] = snd.left[i]
		if format.Channels > 1 {
			snd.right[i] = float64(frame[1])
		}
	}
	return &snd, nil
}
