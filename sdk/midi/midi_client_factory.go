package midi

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/lfarias/dawautomation/internal/midi/mididarwin"
	"github.com/lfarias/dawautomation/internal/midi/midilinux"
	"github.com/lfarias/dawautomation/internal/midi/midiwindows"
	"github.com/lfarias/dawautomation/sdk/contracts"
)

// ErrUnsupportedOS is returned when the operating system is not supported
// by any MIDI backend.
var ErrUnsupportedOS = errors.New("unsupported operating system")

// clientInitializers maps OS names to corresponding MIDI backend initializers.
var clientInitializers = map[string]func(*contracts.ClientOptions) (contracts.MessageSource, error){
	"darwin":  mididarwin.NewMIDIClient,  // macOS via CoreMIDI.
	"windows": midiwindows.NewMIDIClient, // Windows via winmm.
	"linux":   midilinux.NewMIDIClient,   // Linux via rtmidi (ALSA/JACK).
}

// NewClient initializes a MIDI message source for the current operating
// system, returning ErrUnsupportedOS when no backend exists for it.
func NewClient(opts *contracts.ClientOptions) (contracts.MessageSource, error) {
	if initializer, exists := clientInitializers[runtime.GOOS]; exists {
		return initializer(opts)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedOS, runtime.GOOS)
}
