package notemap

import (
	"fmt"
	"sort"
	"sync"
)

// DefaultGMChannel is the General MIDI percussion channel (1-16 scale)
const DefaultGMChannel = 10

// MapTypeDrums is the only map type that is applied
const MapTypeDrums = "drums"

type mapping struct {
	entry Entry
	count int
}

// Mapper converts device drum notes to GM notes, or back when reversed.
// Channels are on the 1-16 scale; 0 means unset.
type Mapper struct {
	MapType    string
	GMChannel  int
	DevChannel int

	mu      sync.Mutex
	reverse bool
	notes   map[int]*mapping

	// channels given explicitly by the notemap file
	gmChannelSet  bool
	devChannelSet bool
}

// NewMapper creates an empty drum mapper on the GM percussion channel
func NewMapper() *Mapper {
	return &Mapper{
		MapType:   MapTypeDrums,
		GMChannel: DefaultGMChannel,
		notes:     make(map[int]*mapping),
	}
}

func (m *Mapper) key(e Entry) int {
	if m.reverse {
		return e.GMNote
	}
	return e.DevNote
}

// Add inserts an entry. Two entries with the same source note are
// rejected with ErrDuplicateNote.
func (m *Mapper) Add(e Entry) error {
	if err := e.validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	k := m.key(e)
	if _, exists := m.notes[k]; exists {
		return fmt.Errorf("note pair %d & %d: %w", e.DevNote, e.GMNote, ErrDuplicateNote)
	}
	m.notes[k] = &mapping{entry: e}
	return nil
}

// Reverse reports whether notes map from GM back to the device
func (m *Mapper) Reverse() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.reverse
}

// SetReverse changes the mapping direction. It fails if the new
// direction would have two entries for the same source note.
func (m *Mapper) SetReverse(reverse bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if reverse == m.reverse {
		return nil
	}

	old := m.reverse
	m.reverse = reverse
	notes := make(map[int]*mapping, len(m.notes))
	for _, mp := range m.notes {
		k := m.key(mp.entry)
		if _, exists := notes[k]; exists {
			m.reverse = old
			return fmt.Errorf("reverse note %d: %w", k, ErrDuplicateNote)
		}
		notes[k] = mp
	}
	m.notes = notes
	return nil
}

// ChannelsSet reports which channels were given by the notemap itself
func (m *Mapper) ChannelsSet() (gm, dev bool) {
	return m.gmChannelSet, m.devChannelSet
}

// Len returns the number of entries
func (m *Mapper) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.notes)
}

// Convert returns the mapped note, or note itself when it is not mapped
func (m *Mapper) Convert(note int) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	mp, ok := m.notes[note]
	if !ok {
		return note
	}
	mp.count++
	if m.reverse {
		return mp.entry.DevNote
	}
	return mp.entry.GMNote
}

// Repitch maps a note on a 0-based channel. Without a source channel
// only the pitch changes. With one, notes on other channels pass through
// untouched and notes on it move to the target channel when one is set.
func (m *Mapper) Repitch(channel, note int) (int, int) {
	m.mu.Lock()
	src, dst := m.DevChannel, m.GMChannel
	if m.reverse {
		src, dst = m.GMChannel, m.DevChannel
	}
	m.mu.Unlock()

	if src == 0 {
		return channel, m.Convert(note)
	}
	if channel != src-1 {
		return channel, note
	}
	mapped := m.Convert(note)
	if dst > 0 {
		channel = dst - 1
	}
	return channel, mapped
}

// Entries returns all entries ascending by source note
func (m *Mapper) Entries() []Entry {
	m.mu.Lock()
	defer m.mu.Unlock()

	keys := m.sortedKeys()
	entries := make([]Entry, 0, len(keys))
	for _, k := range keys {
		entries = append(entries, m.notes[k].entry)
	}
	return entries
}

// Counts returns how often each source note was converted
func (m *Mapper) Counts() map[int]int {
	m.mu.Lock()
	defer m.mu.Unlock()

	counts := make(map[int]int, len(m.notes))
	for k, mp := range m.notes {
		counts[k] = mp.count
	}
	return counts
}

// Source returns the note an entry is keyed by in the current direction
func (m *Mapper) Source(e Entry) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.key(e)
}

func (m *Mapper) sortedKeys() []int {
	keys := make([]int, 0, len(m.notes))
	for k := range m.notes {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
