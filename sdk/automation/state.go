package automation

import "sort"

// State defaults. The tempo matches the host sequencer's project default.
const (
	defaultTempoBPM = 120.0
	minTempoBPM     = 20.0
	maxTempoBPM     = 300.0
)

// State is the engine's record of last-known values: volume caches, the
// set of pattern notes currently held down, the automation-enabled flag
// and the last tempo hint.
//
// It has exactly one owner, the engine, which mutates it from the
// dispatcher only. The mapper and the feedback path get read access. All
// mutators are total: out-of-range inputs are clamped or ignored so the
// documented invariants survive malformed upstream input.
type State struct {
	trackVolume    map[int]float64
	channelVolume  map[int]float64
	activePatterns map[int]struct{}
	automationOn   bool
	tempoBPM       float64
}

// NewState returns a State with automation enabled and the default tempo.
func NewState() *State {
	return &State{
		trackVolume:    make(map[int]float64),
		channelVolume:  make(map[int]float64),
		activePatterns: make(map[int]struct{}),
		automationOn:   true,
		tempoBPM:       defaultTempoBPM,
	}
}

// RecordNoteDown adds a pattern index to the held set. Negative indices
// are ignored.
func (s *State) RecordNoteDown(patternIndex int) {
	if patternIndex < 0 {
		return
	}
	s.activePatterns[patternIndex] = struct{}{}
}

// RecordNoteUp removes a pattern index from the held set. Removing an
// absent index is a no-op: a note-off that arrives before its note-on is
// tolerated, not an error.
func (s *State) RecordNoteUp(patternIndex int) {
	delete(s.activePatterns, patternIndex)
}

// SetTrackVolume caches a mixer track's volume, clamped to [0,1].
// Negative indices are ignored; entries are only ever written for tracks
// the dispatcher actually addressed.
func (s *State) SetTrackVolume(index int, level float64) {
	if index < 0 {
		return
	}
	s.trackVolume[index] = clamp(level, 0, 1)
}

// SetChannelVolume caches a generator channel's volume, clamped to [0,1].
func (s *State) SetChannelVolume(index int, level float64) {
	if index < 0 {
		return
	}
	s.channelVolume[index] = clamp(level, 0, 1)
}

// SetTempo records the last tempo hint, clamped to [20,300] BPM.
func (s *State) SetTempo(bpm float64) {
	s.tempoBPM = clamp(bpm, minTempoBPM, maxTempoBPM)
}

// SetAutomationEnabled flips the automation flag.
func (s *State) SetAutomationEnabled(enabled bool) {
	s.automationOn = enabled
}

// TrackVolume returns the cached volume for a mixer track, if any.
func (s *State) TrackVolume(index int) (float64, bool) {
	level, ok := s.trackVolume[index]
	return level, ok
}

// ChannelVolume returns the cached volume for a generator channel, if any.
func (s *State) ChannelVolume(index int) (float64, bool) {
	level, ok := s.channelVolume[index]
	return level, ok
}

// ActivePatterns returns the held pattern indices in ascending order.
func (s *State) ActivePatterns() []int {
	patterns := make([]int, 0, len(s.activePatterns))
	for index := range s.activePatterns {
		patterns = append(patterns, index)
	}
	sort.Ints(patterns)
	return patterns
}

// AutomationEnabled reports whether mapped actions are currently applied.
func (s *State) AutomationEnabled() bool {
	return s.automationOn
}

// Tempo returns the last recorded tempo hint in BPM.
func (s *State) Tempo() float64 {
	return s.tempoBPM
}

// Reset restores the freshly-constructed state: caches cleared, holds
// released, automation enabled, default tempo.
func (s *State) Reset() {
	s.trackVolume = make(map[int]float64)
	s.channelVolume = make(map[int]float64)
	s.activePatterns = make(map[int]struct{})
	s.automationOn = true
	s.tempoBPM = defaultTempoBPM
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
