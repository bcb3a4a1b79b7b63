package notemap

// General MIDI percussion key map, notes 35-81 on channel 10
var gmDrums = [...]string{
	"Acoustic Bass Drum", // 35
	"Bass Drum 1",
	"Side Stick",
	"Acoustic Snare",
	"Hand Clap",
	"Electric Snare", // 40
	"Low Floor Tom",
	"Closed Hi-Hat",
	"High Floor Tom",
	"Pedal Hi-Hat",
	"Low Tom", // 45
	"Open Hi-Hat",
	"Low-Mid Tom",
	"Hi-Mid Tom",
	"Crash Cymbal 1",
	"High Tom", // 50
	"Ride Cymbal 1",
	"Chinese Cymbal",
	"Ride Bell",
	"Tambourine",
	"Splash Cymbal", // 55
	"Cowbell",
	"Crash Cymbal 2",
	"Vibraslap",
	"Ride Cymbal 2",
	"Hi Bongo", // 60
	"Low Bongo",
	"Mute Hi Conga",
	"Open Hi Conga",
	"Low Conga",
	"High Timbale", // 65
	"Low Timbale",
	"High Agogo",
	"Low Agogo",
	"Cabasa",
	"Maracas", // 70
	"Short Whistle",
	"Long Whistle",
	"Short Guiro",
	"Long Guiro",
	"Claves", // 75
	"Hi Wood Block",
	"Low Wood Block",
	"Mute Cuica",
	"Open Cuica",
	"Mute Triangle", // 80
	"Open Triangle",
}

const gmDrumFirst = 35

// GMDrumName returns the General MIDI percussion name for note, or ""
// outside 35-81
func GMDrumName(note int) string {
	i := note - gmDrumFirst
	if i < 0 || i >= len(gmDrums) {
		return ""
	}
	return gmDrums[i]
}
