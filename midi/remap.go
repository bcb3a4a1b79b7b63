package midi

import (
	"fmt"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"go-notemap/debug"
	"go-notemap/notemap"
)

// Remap returns msg with its note and channel run through the mapper.
// Only note on/off messages change; ok reports whether msg was a note.
func Remap(m *notemap.Mapper, msg gomidi.Message) (out gomidi.Message, ok bool) {
	var channel, key, velocity uint8
	switch {
	case msg.GetNoteOn(&channel, &key, &velocity):
		ch, note := m.Repitch(int(channel), int(key))
		return gomidi.NoteOn(uint8(ch), uint8(note), velocity), true
	case msg.GetNoteOff(&channel, &key, &velocity):
		ch, note := m.Repitch(int(channel), int(key))
		return gomidi.NoteOffVelocity(uint8(ch), uint8(note), velocity), true
	}
	return msg, false
}

// RemapSMF rewrites the note messages of every track in place and
// returns how many were rewritten
func RemapSMF(s *smf.SMF, m *notemap.Mapper) int {
	count := 0
	for i, track := range s.Tracks {
		for j, ev := range track {
			out, ok := Remap(m, gomidi.Message(ev.Message))
			if !ok {
				continue
			}
			s.Tracks[i][j].Message = smf.Message(out)
			count++
		}
	}
	return count
}

// RemapFile reads the MIDI file at in, remaps its notes and writes the
// result to out
func RemapFile(m *notemap.Mapper, in, out string) (int, error) {
	s, err := smf.ReadFile(in)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", in, err)
	}

	count := RemapSMF(s, m)
	debug.Log("remap", "%s: %d note events in %d tracks", in, count, len(s.Tracks))

	if err := s.WriteFile(out); err != nil {
		return count, fmt.Errorf("write %s: %w", out, err)
	}
	return count, nil
}
