//go:build linux && cgo
// +build linux,cgo

package midilinux

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lfarias/dawautomation/sdk/contracts"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	"gitlab.com/gomidi/midi/v2/drivers/rtmididrv"
)

// Error definitions for MIDI connection and handling issues.
var (
	ErrNoMIDIDevices     = errors.New("no MIDI devices found")
	ErrInvalidMIDIDevice = errors.New("invalid MIDI device")
	ErrOpenInputPort     = errors.New("error opening input port")
)

// Client manages MIDI capture on Linux via rtmidi (ALSA or JACK),
// delivering raw status/data1/data2 triples.
type Client struct {
	logger       contracts.Logger
	eventChannel atomic.Value
	driver       *rtmididrv.Driver
	inPort       drivers.In
	stopListen   func()
	filter       *contracts.MIDIEventFilter
	mu           sync.Mutex
	stopOnce     sync.Once
}

// NewMIDIClient initializes an rtmidi-backed message source.
func NewMIDIClient(options *contracts.ClientOptions) (contracts.MessageSource, error) {
	driver, err := rtmididrv.New()
	if err != nil {
		return nil, fmt.Errorf("rtmididrv: %w", err)
	}
	options.Logger.Info("rtmidi message source created")

	return &Client{
		logger: options.Logger,
		driver: driver,
		filter: options.MIDIEventFilter,
	}, nil
}

// ListDevices retrieves and returns available MIDI input ports.
func (m *Client) ListDevices() ([]contracts.DeviceInfo, error) {
	ins, err := m.driver.Ins()
	if err != nil {
		return nil, fmt.Errorf("error listing MIDI inputs: %w", err)
	}
	if len(ins) == 0 {
		m.logger.Warn(ErrNoMIDIDevices.Error())
		return nil, ErrNoMIDIDevices
	}

	devices := make([]contracts.DeviceInfo, len(ins))
	for i, in := range ins {
		devices[i] = contracts.DeviceInfo{
			Name:       in.String(),
			EntityName: in.String(),
		}
	}
	return devices, nil
}

// SelectDevice opens a MIDI input port by ID and starts listening. Frames
// are forwarded once StartCapture provides a channel.
func (m *Client) SelectDevice(deviceID int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	ins, err := m.driver.Ins()
	if err != nil {
		return fmt.Errorf("error retrieving MIDI inputs: %w", err)
	}
	if deviceID < 0 || deviceID >= len(ins) {
		m.logger.Error(ErrInvalidMIDIDevice.Error())
		return ErrInvalidMIDIDevice
	}

	m.closeInput()

	in := ins[deviceID]
	if err = in.Open(); err != nil {
		m.logger.Error(ErrOpenInputPort.Error())
		return fmt.Errorf("%w: %v", ErrOpenInputPort, err)
	}

	stop, err := midi.ListenTo(in, func(msg midi.Message, timestampms int32) {
		m.handleMessage(msg.Bytes())
	})
	if err != nil {
		_ = in.Close()
		return fmt.Errorf("error listening to MIDI input: %w", err)
	}

	m.inPort = in
	m.stopListen = stop
	m.logger.Info("MIDI device successfully connected",
		m.logger.Field().Int("deviceID", deviceID),
		m.logger.Field().String("deviceName", in.String()))
	return nil
}

// handleMessage forwards one incoming message as a raw triple, applying
// the command filter. Messages shorter than three bytes are padded with
// zero data bytes.
func (m *Client) handleMessage(data []byte) {
	eventChannel, _ := m.eventChannel.Load().(chan contracts.RawMessage)
	if eventChannel == nil || len(data) == 0 {
		return
	}

	msg := contracts.RawMessage{
		Timestamp: uint64(time.Now().UTC().UnixNano()),
		Status:    data[0],
	}
	if len(data) > 1 {
		msg.Data1 = data[1]
	}
	if len(data) > 2 {
		msg.Data2 = data[2]
	}

	if !m.filter.Allows(msg.Status) {
		return
	}
	select {
	case eventChannel <- msg:
	default:
		m.logger.Warn("Event buffer full; dropping MIDI frame")
	}
}

// StartCapture begins delivering captured frames to the given channel.
func (m *Client) StartCapture(eventChannel chan contracts.RawMessage) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if eventChannel == nil {
		m.logger.Error("StartCapture called with nil eventChannel")
		return
	}

	m.logger.Info("Starting MIDI capture")
	m.eventChannel.Store(eventChannel)
}

// Stop halts capture, closes the input port and the driver. Executes only once.
func (m *Client) Stop() error {
	m.stopOnce.Do(func() {
		m.logger.Info("Stopping MIDI capture")
		m.mu.Lock()
		defer m.mu.Unlock()

		m.closeInput()
		m.eventChannel.Store(make(chan contracts.RawMessage))
		if err := m.driver.Close(); err != nil {
			m.logger.Error("Failed to close rtmidi driver",
				m.logger.Field().Error("error", err))
		}
		m.logger.Info("MIDI capture stopped")
	})
	return nil
}

// closeInput stops listening and closes the current input port, if any.
// Callers must hold the mutex.
func (m *Client) closeInput() {
	if m.stopListen != nil {
		m.stopListen()
		m.stopListen = nil
	}
	if m.inPort != nil {
		_ = m.inPort.Close()
		m.inPort = nil
	}
}
