// Package surface provides an in-memory control surface for tests and
// demos: the same role the dummy MIDI clients play for platforms without
// hardware, but for the host-sequencer side of the engine.
package surface

import (
	"fmt"

	"github.com/lfarias/dawautomation/sdk/contracts"
)

type simTrack struct {
	volume float64
	pan    float64
}

// Simulated is a contracts.ControlSurface backed by plain memory: a fixed
// number of mixer tracks, generator channels and patterns. It refuses bad
// indices with contracts.ErrIndexOutOfRange and can be taken offline to
// exercise the engine's unavailability handling.
//
// Host-side helpers (SelectTrack, Playing, CurrentPattern, LastTempoHint)
// are not part of the ControlSurface contract; they exist so tests and
// demos can steer and observe the simulated host.
type Simulated struct {
	tracks         []simTrack
	channelVolumes []float64
	patternCount   int

	selected       int // -1 when nothing is selected
	currentPattern int
	playing        bool
	lastTempoHint  float64
	offline        bool
}

// NewSimulated creates a surface with the given number of mixer tracks
// (track 0 is the master), generator channels and patterns. Tracks start
// at volume 0.8, pan centered, nothing selected.
func NewSimulated(tracks, channels, patterns int) *Simulated {
	s := &Simulated{
		tracks:         make([]simTrack, tracks),
		channelVolumes: make([]float64, channels),
		patternCount:   patterns,
		selected:       -1,
	}
	for i := range s.tracks {
		s.tracks[i].volume = 0.8
	}
	return s
}

// SetOffline toggles simulated unavailability: while offline every
// ControlSurface operation fails with contracts.ErrSurfaceUnavailable.
func (s *Simulated) SetOffline(offline bool) {
	s.offline = offline
}

// SelectTrack sets the selected mixer track; pass a negative index to
// deselect.
func (s *Simulated) SelectTrack(index int) {
	if index < 0 || index >= len(s.tracks) {
		s.selected = -1
		return
	}
	s.selected = index
}

// Playing reports whether the transport is running.
func (s *Simulated) Playing() bool { return s.playing }

// CurrentPattern returns the pattern most recently selected.
func (s *Simulated) CurrentPattern() int { return s.currentPattern }

// LastTempoHint returns the BPM most recently shown, 0 if none.
func (s *Simulated) LastTempoHint() float64 { return s.lastTempoHint }

// ChannelLevel returns the simulated volume of a generator channel.
func (s *Simulated) ChannelLevel(index int) float64 { return s.channelVolumes[index] }

func (s *Simulated) StartTransport() error {
	if s.offline {
		return contracts.ErrSurfaceUnavailable
	}
	s.playing = true
	return nil
}

func (s *Simulated) StopTransport() error {
	if s.offline {
		return contracts.ErrSurfaceUnavailable
	}
	s.playing = false
	return nil
}

func (s *Simulated) SelectPattern(index int) error {
	if s.offline {
		return contracts.ErrSurfaceUnavailable
	}
	if index < 0 || index >= s.patternCount {
		return fmt.Errorf("%w: pattern %d", contracts.ErrIndexOutOfRange, index)
	}
	s.currentPattern = index
	return nil
}

func (s *Simulated) SetChannelVolume(index int, level float64) error {
	if s.offline {
		return contracts.ErrSurfaceUnavailable
	}
	if index < 0 || index >= len(s.channelVolumes) {
		return fmt.Errorf("%w: channel %d", contracts.ErrIndexOutOfRange, index)
	}
	s.channelVolumes[index] = level
	return nil
}

func (s *Simulated) SetTrackVolume(index int, level float64) error {
	if s.offline {
		return contracts.ErrSurfaceUnavailable
	}
	if index < 0 || index >= len(s.tracks) {
		return fmt.Errorf("%w: track %d", contracts.ErrIndexOutOfRange, index)
	}
	s.tracks[index].volume = level
	return nil
}

func (s *Simulated) SetTrackPan(index int, pan float64) error {
	if s.offline {
		return contracts.ErrSurfaceUnavailable
	}
	if index < 0 || index >= len(s.tracks) {
		return fmt.Errorf("%w: track %d", contracts.ErrIndexOutOfRange, index)
	}
	s.tracks[index].pan = pan
	return nil
}

func (s *Simulated) SelectedTrack() (int, error) {
	if s.offline {
		return 0, contracts.ErrSurfaceUnavailable
	}
	if s.selected < 0 {
		return 0, contracts.ErrNoTrackSelected
	}
	return s.selected, nil
}

func (s *Simulated) TrackVolume(index int) (float64, error) {
	if s.offline {
		return 0, contracts.ErrSurfaceUnavailable
	}
	if index < 0 || index >= len(s.tracks) {
		return 0, fmt.Errorf("%w: track %d", contracts.ErrIndexOutOfRange, index)
	}
	return s.tracks[index].volume, nil
}

func (s *Simulated) TrackPan(index int) (float64, error) {
	if s.offline {
		return 0, contracts.ErrSurfaceUnavailable
	}
	if index < 0 || index >= len(s.tracks) {
		return 0, fmt.Errorf("%w: track %d", contracts.ErrIndexOutOfRange, index)
	}
	return s.tracks[index].pan, nil
}

func (s *Simulated) ShowTempoHint(bpm float64) {
	if s.offline {
		return
	}
	s.lastTempoHint = bpm
}
