package notemap

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYAML(t *testing.T) {
	m, err := Parse(strings.NewReader(sampleNotemap), "sample.drums")
	require.NoError(t, err)

	data, err := MarshalYAML(m)
	require.NoError(t, err)
	assert.Contains(t, string(data), "mapType: drums")
	assert.Contains(t, string(data), "devName: Bass Drum Gated Reverb")

	back, err := UnmarshalYAML(data)
	require.NoError(t, err)
	assert.Equal(t, m.Entries(), back.Entries())
	assert.Equal(t, 16, back.DevChannel)
}

func TestUnmarshalYAMLErrors(t *testing.T) {
	_, err := UnmarshalYAML([]byte("mapType: drums\n"))
	assert.ErrorIs(t, err, ErrNoDrumSections)

	_, err = UnmarshalYAML([]byte("drums:\n  - devNote: 1\n    gmNote: 2\n  - devNote: 1\n    gmNote: 3\n"))
	assert.ErrorIs(t, err, ErrDuplicateNote)

	_, err = UnmarshalYAML([]byte("drums: [oops"))
	assert.Error(t, err)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("stdout closed")
}

func TestWriteYAML(t *testing.T) {
	m, err := Parse(strings.NewReader(sampleNotemap), "sample.drums")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteYAML(&buf, m))
	assert.Contains(t, buf.String(), "gmChannel: 10")

	err = WriteYAML(failingWriter{}, m)
	assert.EqualError(t, err, "stdout closed")
}
