package audio

import (
	"errors"
	"log"
	"os"
	"strings"

	"github.com/dhowden/tag"
)

// Tags reads titles and track numbers from the tags of sound files. Files
// without tags, such as most wav files, have neither.
type Tags struct {
	cache map[string]tag.Metadata
}

func NewTags() *Tags {
	return &Tags{cache: make(map[string]tag.Metadata)}
}

func (t *Tags) Title(path string) (string, bool) {
	m := t.read(path)
	if m == nil {
		return "", false
	}
	title := strings.TrimSpace(m.Title())
	return title, title != ""
}

func (t *Tags) TrackIndex(path string) (int, bool) {
	m := t.read(path)
	if m == nil {
		return 0, false
	}
	n, _ := m.Track()
	return n, n != 0
}

func (t *Tags) read(path string) tag.Metadata {
	if m, ok := t.cache[path]; ok {
		return m
	}
	m, err := readTags(path)
	if err != nil {
		if !errors.Is(err, tag.ErrNoTagsFound) {
			log.Printf("tags: %s: %v", path, err)
		}
		m = nil
	}
	t.cache[path] = m
	return m
}

func readTags(path string) (tag.Metadata, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return tag.ReadFrom(f)
}
