// Package automation implements the MIDI automation engine: it decodes raw
// three-byte frames into typed events, maps them onto transport, pattern,
// mixer and tempo actions, dispatches those actions against a control
// surface and tracks the resulting automation state.
package automation

import (
	"errors"

	"github.com/lfarias/dawautomation/sdk/contracts"
)

// ErrNoSurface is returned by NewEngine when no control surface was
// configured; the engine is useless without one.
var ErrNoSurface = errors.New("automation engine requires a control surface")

// Engine is the MIDI automation core: it decodes raw frames, maps them to
// control-surface actions, dispatches those actions and keeps the
// automation state in step with what was actually applied.
//
// The engine is driven entirely by its host through OnMessage and
// OnIdleTick. It assumes the host never invokes two callbacks
// simultaneously (the cooperative model of sequencer scripting hosts), so
// it takes no locks and spawns nothing. Every callback completes
// synchronously and never lets an error escape.
type Engine struct {
	logger  contracts.Logger
	surface contracts.ControlSurface
	layout  contracts.Layout
	state   *State
}

// NewEngine creates an automation engine with the specified options.
// A control surface is required; logger and layout default.
func NewEngine(opts ...contracts.EngineOption) (*Engine, error) {
	options := applyDefaultEngineOptions(opts...)
	if options.Surface == nil {
		return nil, ErrNoSurface
	}

	return &Engine{
		logger:  options.Logger,
		surface: options.Surface,
		layout:  *options.Layout,
		state:   NewState(),
	}, nil
}

// State exposes the engine's automation state for reading. The engine
// stays the sole writer; callers must not mutate it.
func (e *Engine) State() *State {
	return e.state
}

// Layout returns the note/CC partition the engine maps with.
func (e *Engine) Layout() contracts.Layout {
	return e.layout
}

// Reset clears the automation state back to its defaults. Hosts call this
// when the script is unloaded or the project changes.
func (e *Engine) Reset() {
	e.state.Reset()
	e.logger.Debug("automation state reset")
}

// OnMessage is the message-arrival callback: one raw three-byte frame per
// invocation, in host delivery order. Unknown frames are inert; surface
// refusals are logged and never abort processing of subsequent events.
func (e *Engine) OnMessage(status, data1, data2 byte) {
	ev := DecodeMessage(status, data1, data2)
	if ev.Kind == EventUnknown {
		e.logger.Debug("unrecognized frame ignored",
			e.logger.Field().Uint8("status", status))
		return
	}

	// A pattern release clears the hold unconditionally, even while
	// automation is disabled and even if the note was never held.
	if ev.Kind == EventNoteOff && e.layout.InPatternRange(ev.Note) {
		e.state.RecordNoteUp(int(ev.Note - e.layout.PatternNoteStart))
	}

	action := MapEvent(e.layout, ev, e.state, e.selectedTrack())
	if action.Kind == ActionNone {
		return
	}
	e.dispatch(ev, action)
}

// selectedTrack resolves the "currently selected track" mapping context.
func (e *Engine) selectedTrack() int {
	index, err := e.surface.SelectedTrack()
	if err != nil {
		return NoTrackSelected
	}
	return index
}

// dispatch issues one action against the control surface and, on success,
// mirrors the change into the automation state. A refusal leaves the
// state untouched: the cache only ever reflects values the surface took.
func (e *Engine) dispatch(ev Event, action Action) {
	var err error

	switch action.Kind {
	case ActionStartTransport:
		err = e.surface.StartTransport()

	case ActionStopTransport:
		err = e.surface.StopTransport()

	case ActionSelectPattern:
		err = e.surface.SelectPattern(action.Index)
		if err == nil && ev.Kind == EventNoteOn && e.layout.InPatternRange(ev.Note) {
			// Only note-driven selection is a hold; ProgramChange
			// switches the pattern without touching the held set.
			e.state.RecordNoteDown(action.Index)
		}

	case ActionSetChannelVolume:
		err = e.surface.SetChannelVolume(action.Index, action.Level)
		if err == nil {
			e.state.SetChannelVolume(action.Index, action.Level)
		}

	case ActionSetTrackVolume:
		err = e.surface.SetTrackVolume(action.Index, action.Level)
		if err == nil {
			e.state.SetTrackVolume(action.Index, action.Level)
		}

	case ActionSetTrackPan:
		err = e.surface.SetTrackPan(action.Index, action.Pan)

	case ActionSetTempoHint:
		// Display only; no failure mode.
		e.surface.ShowTempoHint(action.BPM)
		e.state.SetTempo(action.BPM)

	case ActionToggleAutomation:
		e.state.SetAutomationEnabled(action.Enabled)
		e.logger.Info("automation toggled",
			e.logger.Field().Bool("enabled", action.Enabled))
	}

	if err != nil {
		e.logger.Warn("control surface refused action",
			e.logger.Field().Int("kind", int(action.Kind)),
			e.logger.Field().Int("index", action.Index),
			e.logger.Field().Error("error", err))
	}
}
