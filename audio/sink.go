package audio

import (
	"github.com/gordonklaus/portaudio"
)

// Sink plays the output of a Mixer on the default portaudio device.
type Sink struct {
	stream *portaudio.Stream
}

func NewSink(m *Mixer) (*Sink, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, err
	}
	var s Sink
	stream, err := portaudio.OpenDefaultStream(0, 2, m.sampleRate, bufferSize, m.Process)
	if err != nil {
		portaudio.Terminate()
		return nil, err
	}
	s.stream = stream
	return &s, nil
}

func (s *Sink) Start() error {
	return s.stream.Start()
}

func (s *Sink) Close() error {
	err := s.stream.Close()
	portaudio.Terminate()
	return err
}
