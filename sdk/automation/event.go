package automation

// EventKind identifies the variant of a decoded MIDI event.
type EventKind int

const (
	// EventUnknown marks a frame the engine does not act on. Unknown
	// frames are inert, never an error.
	EventUnknown EventKind = iota
	// EventNoteOn is a key press with non-zero velocity.
	EventNoteOn
	// EventNoteOff is a key release, including zero-velocity note-ons.
	EventNoteOff
	// EventControlChange carries a controller number and a 0-127 value.
	EventControlChange
	// EventProgramChange carries a program number.
	EventProgramChange
)

// Event is one decoded MIDI message. Only the fields relevant to the Kind
// are populated; an Event is constructed once per incoming frame and never
// mutated.
type Event struct {
	Kind       EventKind
	Note       byte // EventNoteOn, EventNoteOff
	Velocity   byte // EventNoteOn
	Controller byte // EventControlChange
	Value      byte // EventControlChange
	Program    byte // EventProgramChange
}

// DecodeMessage classifies a raw three-byte frame by the high nibble of its
// status byte. It is pure and total: a status outside the channel-voice
// range, or a command the engine has no use for, decodes to EventUnknown.
// Data bytes are masked to 7 bits in case the source misbehaves.
//
// A note-on with zero velocity decodes to EventNoteOff, per the
// zero-velocity note-off convention used by most hardware.
func DecodeMessage(status, data1, data2 byte) Event {
	if status < 0x80 || status > 0xEF {
		return Event{Kind: EventUnknown}
	}

	data1 &= 0x7F
	data2 &= 0x7F

	switch status & 0xF0 {
	case 0x80:
		return Event{Kind: EventNoteOff, Note: data1}
	case 0x90:
		if data2 == 0 {
			return Event{Kind: EventNoteOff, Note: data1}
		}
		return Event{Kind: EventNoteOn, Note: data1, Velocity: data2}
	case 0xB0:
		return Event{Kind: EventControlChange, Controller: data1, Value: data2}
	case 0xC0:
		return Event{Kind: EventProgramChange, Program: data1}
	default:
		return Event{Kind: EventUnknown}
	}
}
