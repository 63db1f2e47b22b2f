package contracts

import "errors"

// Error definitions for control-surface refusals. They are recoverable by
// design: the engine logs them and keeps processing subsequent events.
var (
	ErrIndexOutOfRange    = errors.New("index out of range for control surface")
	ErrNoTrackSelected    = errors.New("no mixer track selected")
	ErrSurfaceUnavailable = errors.New("control surface unavailable")
)

// ControlSurface is the host sequencer boundary the automation engine
// drives: transport, pattern selection, mixer tracks and generator
// channels. Index validation belongs to the surface, not the caller;
// a refused index comes back as ErrIndexOutOfRange.
type ControlSurface interface {
	StartTransport() error
	StopTransport() error

	// SelectPattern makes the given pattern the current one.
	SelectPattern(index int) error

	// SetChannelVolume sets a generator channel's volume, level in [0,1].
	SetChannelVolume(index int, level float64) error

	// SetTrackVolume sets a mixer track's volume, level in [0,1].
	// Track 0 is the master track.
	SetTrackVolume(index int, level float64) error

	// SetTrackPan sets a mixer track's pan, pan in [-0.5,0.5].
	SetTrackPan(index int, pan float64) error

	// SelectedTrack reports the currently selected mixer track, or
	// ErrNoTrackSelected when there is none.
	SelectedTrack() (int, error)

	TrackVolume(index int) (float64, error)
	TrackPan(index int) (float64, error)

	// ShowTempoHint displays a tempo suggestion to the user. Display
	// only; it has no failure mode worth reporting.
	ShowTempoHint(bpm float64)
}
