package automation

import (
	"errors"

	"github.com/lfarias/dawautomation/sdk/contracts"
)

// Snapshot is a read-only projection of current control-surface values,
// taken for outward display (LED rings, motorized faders, UIs). It is
// never written back into the automation state.
type Snapshot struct {
	MasterVolume float64

	// Selected-track fields are meaningful only when TrackSelected is true.
	TrackSelected bool
	SelectedTrack int
	TrackVolume   float64
	TrackPan      float64
}

// OnIdleTick is the periodic refresh callback. It samples the surface's
// master volume and, when a track is selected, that track's volume and
// pan. The tick is skipped (ok == false) when the surface is unavailable;
// having no selected track is a normal snapshot, not a skip.
func (e *Engine) OnIdleTick() (Snapshot, bool) {
	var snap Snapshot

	master, err := e.surface.TrackVolume(0)
	if err != nil {
		e.logger.Debug("feedback tick skipped",
			e.logger.Field().Error("error", err))
		return Snapshot{}, false
	}
	snap.MasterVolume = master

	selected, err := e.surface.SelectedTrack()
	if err != nil {
		if errors.Is(err, contracts.ErrNoTrackSelected) {
			return snap, true
		}
		e.logger.Debug("feedback tick skipped",
			e.logger.Field().Error("error", err))
		return Snapshot{}, false
	}

	volume, err := e.surface.TrackVolume(selected)
	if err != nil {
		e.logger.Debug("feedback tick skipped",
			e.logger.Field().Error("error", err))
		return Snapshot{}, false
	}
	pan, err := e.surface.TrackPan(selected)
	if err != nil {
		e.logger.Debug("feedback tick skipped",
			e.logger.Field().Error("error", err))
		return Snapshot{}, false
	}

	snap.TrackSelected = true
	snap.SelectedTrack = selected
	snap.TrackVolume = volume
	snap.TrackPan = pan
	return snap, true
}
