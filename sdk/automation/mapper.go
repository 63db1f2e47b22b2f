package automation

import (
	"github.com/lfarias/dawautomation/sdk/contracts"
)

// ActionKind identifies the variant of a mapped domain action.
type ActionKind int

const (
	// ActionNone means the event maps to nothing; the dispatcher skips it.
	ActionNone ActionKind = iota
	ActionStartTransport
	ActionStopTransport
	ActionSelectPattern
	ActionSetChannelVolume
	ActionSetTrackVolume
	ActionSetTrackPan
	ActionSetTempoHint
	ActionToggleAutomation
)

// Action is one concrete operation for the dispatcher to issue against the
// control surface. Only the fields relevant to the Kind are populated.
type Action struct {
	Kind    ActionKind
	Index   int     // pattern, channel or track index
	Level   float64 // volume in [0,1]
	Pan     float64 // pan in [-0.5,0.5]
	BPM     float64 // tempo hint in [20,300]
	Enabled bool    // ActionToggleAutomation
}

// NoTrackSelected is the selected-track context value meaning no mixer
// track is currently selected; selected-track CCs map to ActionNone.
const NoTrackSelected = -1

// MapEvent turns a decoded event into at most one action. It is pure: it
// reads the state view and the selected-track context but mutates nothing.
//
// While automation is disabled every event maps to ActionNone except the
// sustain toggle itself, so the controller can always re-enable it.
// Pattern note-off tracking is handled by the engine before mapping and is
// therefore never gated here.
func MapEvent(layout contracts.Layout, ev Event, state *State, selectedTrack int) Action {
	if !state.AutomationEnabled() {
		if ev.Kind == EventControlChange && ev.Controller == contracts.CCSustain {
			return Action{Kind: ActionToggleAutomation, Enabled: ev.Value >= 64}
		}
		return Action{Kind: ActionNone}
	}

	switch ev.Kind {
	case EventNoteOn:
		return mapNoteOn(layout, ev)
	case EventControlChange:
		return mapControlChange(layout, ev, selectedTrack)
	case EventProgramChange:
		// Range validity is the surface's call, not the mapper's.
		return Action{Kind: ActionSelectPattern, Index: int(ev.Program)}
	default:
		// Note-offs carry no action: pattern releases are tracked by the
		// engine, and releases in the channel-volume band are inert.
		return Action{Kind: ActionNone}
	}
}

func mapNoteOn(layout contracts.Layout, ev Event) Action {
	switch ev.Note {
	case layout.PlayNote:
		return Action{Kind: ActionStartTransport}
	case layout.StopNote:
		return Action{Kind: ActionStopTransport}
	case layout.RecordNote:
		// The reference controller arms recording by making sure the
		// transport is running; there is no separate record state.
		return Action{Kind: ActionStartTransport}
	}

	switch {
	case layout.InPatternRange(ev.Note):
		return Action{
			Kind:  ActionSelectPattern,
			Index: int(ev.Note - layout.PatternNoteStart),
		}
	case layout.InChannelRange(ev.Note):
		return Action{
			Kind:  ActionSetChannelVolume,
			Index: int(ev.Note - layout.ChannelNoteStart),
			Level: float64(ev.Velocity) / 127.0,
		}
	}

	return Action{Kind: ActionNone}
}

func mapControlChange(layout contracts.Layout, ev Event, selectedTrack int) Action {
	normalized := float64(ev.Value) / 127.0

	switch ev.Controller {
	case layout.CCMasterVolume:
		// Track 0 is the master track.
		return Action{Kind: ActionSetTrackVolume, Index: 0, Level: normalized}

	case layout.CCTrackVolume, contracts.CCVolume:
		if selectedTrack < 0 {
			return Action{Kind: ActionNone}
		}
		return Action{Kind: ActionSetTrackVolume, Index: selectedTrack, Level: normalized}

	case layout.CCTrackPan, contracts.CCPan:
		if selectedTrack < 0 {
			return Action{Kind: ActionNone}
		}
		return Action{Kind: ActionSetTrackPan, Index: selectedTrack, Pan: normalized - 0.5}

	case layout.CCTempo:
		return Action{Kind: ActionSetTempoHint, BPM: 20.0 + normalized*280.0}

	case contracts.CCSustain:
		return Action{Kind: ActionToggleAutomation, Enabled: ev.Value >= 64}
	}

	return Action{Kind: ActionNone}
}
