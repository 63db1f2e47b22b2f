package contracts

// Layout is the static partition of the controller's note and CC space
// into disjoint functional bands. The bands never overlap, so mapping an
// incoming event is a constant-time range check with no ambiguity, and
// the defaults line up with octave-sized banks on physical controllers.
type Layout struct {
	// Transport notes.
	PlayNote   byte
	StopNote   byte
	RecordNote byte

	// Pattern trigger band, inclusive on both ends. NoteOn selects the
	// pattern (note - PatternNoteStart); NoteOff releases the hold.
	PatternNoteStart byte
	PatternNoteEnd   byte

	// Generator-channel volume band, inclusive on both ends. NoteOn
	// velocity becomes the channel volume.
	ChannelNoteStart byte
	ChannelNoteEnd   byte

	// Dedicated continuous controllers.
	CCMasterVolume byte
	CCTrackVolume  byte
	CCTrackPan     byte
	CCTempo        byte
}

// Standard MIDI controller numbers recognized in addition to the
// dedicated Layout assignments.
const (
	// CCVolume is the standard channel-volume controller, aliased to the
	// selected track's volume.
	CCVolume byte = 7
	// CCPan is the standard pan controller, aliased to the selected
	// track's pan.
	CCPan byte = 10
	// CCSustain toggles the automation-enabled flag: value >= 64 enables.
	CCSustain byte = 64
)

// DefaultLayout returns the layout the reference controller ships with:
// transport on C3..D3, patterns on C1..D#2, channel volumes on E3..G4,
// and the four dedicated CCs on 1..4.
func DefaultLayout() Layout {
	return Layout{
		PlayNote:   60,
		StopNote:   61,
		RecordNote: 62,

		PatternNoteStart: 36,
		PatternNoteEnd:   51,

		ChannelNoteStart: 64,
		ChannelNoteEnd:   79,

		CCMasterVolume: 1,
		CCTrackVolume:  2,
		CCTrackPan:     3,
		CCTempo:        4,
	}
}

// InPatternRange reports whether the note falls in the pattern band.
func (l Layout) InPatternRange(note byte) bool {
	return note >= l.PatternNoteStart && note <= l.PatternNoteEnd
}

// InChannelRange reports whether the note falls in the channel-volume band.
func (l Layout) InChannelRange(note byte) bool {
	return note >= l.ChannelNoteStart && note <= l.ChannelNoteEnd
}
