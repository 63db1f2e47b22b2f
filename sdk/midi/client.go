package midi

import (
	"github.com/lfarias/dawautomation/sdk/contracts"
)

// NewMIDIClient creates a new MIDI message source with the specified
// options. It applies default options and picks the backend for the
// current operating system.
//
// opts ...contracts.Option: A variadic list of option functions to customize the client configuration.
//
// Returns:
//   - contracts.MessageSource: An instance of the MIDI message source.
//   - error: An error, if any occurred during the creation of the client.
func NewMIDIClient(opts ...contracts.Option) (contracts.MessageSource, error) {
	options, err := applyDefaultOptions(opts...)
	if err != nil {
		return nil, err
	}

	client, err := NewClient(&options)
	if err != nil {
		return nil, err
	}

	return client, nil
}
