package contracts

// MIDICommand represents a MIDI status command nibble for event filtering.
type MIDICommand byte

const (
	// NoteOn is the MIDI command for a Note On event (0x90).
	NoteOn MIDICommand = 0x90
	// NoteOff is the MIDI command for a Note Off event (0x80).
	NoteOff MIDICommand = 0x80
	// ControlChange is the MIDI command for a Control Change event (0xB0).
	ControlChange MIDICommand = 0xB0
	// ProgramChange is the MIDI command for a Program Change event (0xC0).
	ProgramChange MIDICommand = 0xC0
)

// MIDIEventFilter allows users to specify which MIDI commands to capture.
// Frames whose command nibble is not listed are dropped at the source.
type MIDIEventFilter struct {
	Commands []MIDICommand // List of MIDI commands to keep.
}

// Allows reports whether the status byte's command nibble passes the filter.
func (f *MIDIEventFilter) Allows(status byte) bool {
	if f == nil {
		return true
	}
	for _, cmd := range f.Commands {
		if status&0xF0 == byte(cmd) {
			return true
		}
	}
	return false
}

// CoreMIDIConfig holds configuration for the CoreMIDI backend.
type CoreMIDIConfig struct {
	ClientName string // Name of the MIDI client.
}

// ClientOptions defines the configuration options for a message source.
type ClientOptions struct {
	Logger          Logger           // Logger for logging events and errors.
	LogLevel        LogLevel         // Level of logging to use.
	MIDIEventFilter *MIDIEventFilter // Optional filter for MIDI events to capture.
	CoreMIDIConfig  *CoreMIDIConfig  // Configuration specific to CoreMIDI.
}

// Option is a function that modifies ClientOptions.
type Option func(*ClientOptions)

// WithLogger sets the logger for the message source.
func WithLogger(l Logger) Option {
	return func(opts *ClientOptions) {
		opts.Logger = l
	}
}

// WithLogLevel sets the logging level for the message source.
func WithLogLevel(level LogLevel) Option {
	return func(opts *ClientOptions) {
		opts.LogLevel = level
	}
}

// WithMIDIEventFilter sets the MIDI event filter for the message source.
func WithMIDIEventFilter(filter MIDIEventFilter) Option {
	return func(opts *ClientOptions) {
		opts.MIDIEventFilter = &filter
	}
}

// WithCoreMIDIConfig sets the CoreMIDI configuration for the message source.
func WithCoreMIDIConfig(config CoreMIDIConfig) Option {
	return func(opts *ClientOptions) {
		opts.CoreMIDIConfig = &config
	}
}

// EngineOptions defines the configuration options for the automation engine.
type EngineOptions struct {
	Logger   Logger         // Logger for logging actions and refusals.
	LogLevel LogLevel       // Level of logging to use.
	Surface  ControlSurface // Control surface the engine drives. Required.
	Layout   *Layout        // Note/CC partition; defaults to DefaultLayout.
}

// EngineOption is a function that modifies EngineOptions.
type EngineOption func(*EngineOptions)

// WithEngineLogger sets the logger for the automation engine.
func WithEngineLogger(l Logger) EngineOption {
	return func(opts *EngineOptions) {
		opts.Logger = l
	}
}

// WithEngineLogLevel sets the logging level for the automation engine.
func WithEngineLogLevel(level LogLevel) EngineOption {
	return func(opts *EngineOptions) {
		opts.LogLevel = level
	}
}

// WithSurface sets the control surface the engine drives.
func WithSurface(s ControlSurface) EngineOption {
	return func(opts *EngineOptions) {
		opts.Surface = s
	}
}

// WithLayout overrides the default note/CC layout.
func WithLayout(layout Layout) EngineOption {
	return func(opts *EngineOptions) {
		opts.Layout = &layout
	}
}
