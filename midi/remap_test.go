package midi

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"go-notemap/notemap"
)

func testMapper(t *testing.T) *notemap.Mapper {
	t.Helper()
	m := notemap.NewMapper()
	require.NoError(t, m.Add(notemap.Entry{DevNote: 36, GMNote: 35}))
	require.NoError(t, m.Add(notemap.Entry{DevNote: 40, GMNote: 38}))
	return m
}

func TestRemapNoteOn(t *testing.T) {
	m := testMapper(t)

	out, ok := Remap(m, gomidi.NoteOn(3, 36, 100))
	require.True(t, ok)

	var ch, key, vel uint8
	require.True(t, out.GetNoteOn(&ch, &key, &vel))
	assert.Equal(t, uint8(3), ch)
	assert.Equal(t, uint8(35), key)
	assert.Equal(t, uint8(100), vel)
}

func TestRemapNoteOff(t *testing.T) {
	m := testMapper(t)

	m.DevChannel = 1
	out, ok := Remap(m, gomidi.NoteOffVelocity(0, 40, 64))
	require.True(t, ok)

	var ch, key, vel uint8
	require.True(t, out.GetNoteOff(&ch, &key, &vel))
	assert.Equal(t, uint8(9), ch)
	assert.Equal(t, uint8(38), key)
	assert.Equal(t, uint8(64), vel)
}

func TestRemapKeepsNonDrumChannels(t *testing.T) {
	tests := []struct {
		name       string
		devChannel int
		in         gomidi.Message
		wantCh     uint8
		wantKey    uint8
	}{
		{"any channel unmapped note", 0, gomidi.NoteOn(0, 60, 100), 0, 60},
		{"any channel mapped note", 0, gomidi.NoteOn(0, 36, 100), 0, 35},
		{"melodic channel with drum channel set", 16, gomidi.NoteOn(0, 36, 100), 0, 36},
		{"drum channel unmapped note", 16, gomidi.NoteOn(15, 60, 100), 9, 60},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := testMapper(t)
			m.DevChannel = tt.devChannel

			out, ok := Remap(m, tt.in)
			require.True(t, ok)

			var ch, key, vel uint8
			require.True(t, out.GetNoteOn(&ch, &key, &vel))
			assert.Equal(t, tt.wantCh, ch)
			assert.Equal(t, tt.wantKey, key)
		})
	}
}

func TestRemapIgnoresOtherMessages(t *testing.T) {
	m := testMapper(t)
	cc := gomidi.ControlChange(0, 7, 100)

	out, ok := Remap(m, cc)
	assert.False(t, ok)
	assert.Equal(t, cc, out)
}

func TestRemapFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.mid")
	out := filepath.Join(dir, "out.mid")

	var track smf.Track
	track.Add(0, gomidi.NoteOn(15, 36, 100))
	track.Add(120, gomidi.NoteOff(15, 36))
	track.Add(0, gomidi.NoteOn(15, 40, 90))
	track.Add(120, gomidi.NoteOff(15, 40))
	track.Add(0, gomidi.ControlChange(15, 7, 100))
	track.Add(0, gomidi.NoteOn(0, 36, 80))
	track.Add(0, gomidi.NoteOn(0, 60, 80))
	track.Add(240, gomidi.NoteOff(0, 36))
	track.Add(0, gomidi.NoteOff(0, 60))
	track.Close(0)

	s := smf.New()
	require.NoError(t, s.Add(track))
	require.NoError(t, s.WriteFile(in))

	m := testMapper(t)
	m.DevChannel = 16
	count, err := RemapFile(m, in, out)
	require.NoError(t, err)
	assert.Equal(t, 8, count)

	result, err := smf.ReadFile(out)
	require.NoError(t, err)
	require.Len(t, result.Tracks, 1)

	notes := map[uint8][]uint8{}
	var ch, key, vel uint8
	for _, ev := range result.Tracks[0] {
		if ev.Message.GetNoteOn(&ch, &key, &vel) {
			notes[ch] = append(notes[ch], key)
		}
	}
	assert.Equal(t, map[uint8][]uint8{
		9: {35, 38},
		0: {36, 60},
	}, notes)
}

func TestRemapFileMissing(t *testing.T) {
	_, err := RemapFile(testMapper(t), filepath.Join(t.TempDir(), "nope.mid"), "out.mid")
	assert.Error(t, err)
}
