//go:build darwin
// +build darwin

package mididarwin

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lfarias/dawautomation/sdk/contracts"
	"github.com/youpy/go-coremidi"
)

// Error definitions for MIDI connection and handling issues.
var (
	ErrNoMIDIDevices       = errors.New("no MIDI devices found")
	ErrInvalidMIDIDevice   = errors.New("invalid MIDI device")
	ErrMIDIConnectionError = errors.New("error connecting to MIDI device")
	ErrCreateInputPort     = errors.New("error creating input port")
	ErrShortMIDIPacket     = errors.New("MIDI packet shorter than three bytes")
)

// internalPortConnection is an interface for handling disconnection from a MIDI port.
type internalPortConnection interface {
	Disconnect()
}

// Client manages MIDI capture on Darwin (macOS) via CoreMIDI. It delivers
// each incoming frame as a raw status/data1/data2 triple, leaving all
// interpretation to the consumer.
type Client struct {
	logger       contracts.Logger
	eventChannel atomic.Value // Event channel, stored atomically for callback safety.
	client       coremidi.Client
	inputPort    coremidi.InputPort
	portConn     internalPortConnection
	filter       *contracts.MIDIEventFilter
	mu           sync.Mutex
	capturing    bool
	wg           sync.WaitGroup
	stopOnce     sync.Once
}

// NewMIDIClient initializes a CoreMIDI-backed message source.
func NewMIDIClient(options *contracts.ClientOptions) (contracts.MessageSource, error) {
	client, err := coremidi.NewClient(options.CoreMIDIConfig.ClientName)
	if err != nil {
		return nil, err
	}
	options.Logger.Info("CoreMIDI message source created")

	return &Client{
		logger: options.Logger,
		client: client,
		filter: options.MIDIEventFilter,
	}, nil
}

// ListDevices retrieves and returns available MIDI input devices.
func (m *Client) ListDevices() ([]contracts.DeviceInfo, error) {
	sources, err := coremidi.AllSources()
	if err != nil {
		return nil, fmt.Errorf("error listing MIDI sources: %w", err)
	}
	if len(sources) == 0 {
		m.logger.Warn(ErrNoMIDIDevices.Error())
		return nil, ErrNoMIDIDevices
	}

	devices := make([]contracts.DeviceInfo, len(sources))
	for i, source := range sources {
		sourceEntity := source.Entity()
		devices[i] = contracts.DeviceInfo{
			Name:         source.Name(),
			EntityName:   sourceEntity.Name(),
			Manufacturer: sourceEntity.Manufacturer(),
		}
	}
	return devices, nil
}

// SelectDevice selects a MIDI device by ID and connects to it. An already
// connected device is disconnected first.
func (m *Client) SelectDevice(deviceID int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	sources, err := coremidi.AllSources()
	if err != nil {
		return fmt.Errorf("error retrieving MIDI sources: %w", err)
	}
	if deviceID < 0 || deviceID >= len(sources) {
		m.logger.Error(ErrInvalidMIDIDevice.Error())
		return ErrInvalidMIDIDevice
	}

	if m.portConn != nil {
		m.portConn.Disconnect()
		m.portConn = nil
	}

	source := sources[deviceID]
	m.logger.Info("MIDI device selected",
		m.logger.Field().Int("deviceID", deviceID),
		m.logger.Field().String("deviceName", source.Name()))

	m.inputPort, err = coremidi.NewInputPort(m.client, "Input Port", m.handleMIDIMessage)
	if err != nil {
		m.logger.Error(ErrCreateInputPort.Error())
		return fmt.Errorf("%w: %v", ErrCreateInputPort, err)
	}

	m.portConn, err = m.inputPort.Connect(source)
	if err != nil {
		m.logger.Error(ErrMIDIConnectionError.Error())
		return fmt.Errorf("%w: %v", ErrMIDIConnectionError, err)
	}

	m.logger.Info("MIDI device successfully connected")
	return nil
}

// handleMIDIMessage forwards each incoming packet as a raw triple,
// applying the command filter. Packets shorter than three bytes are
// padded with zero data bytes so single-data commands (Program Change)
// still arrive.
func (m *Client) handleMIDIMessage(source coremidi.Source, packet coremidi.Packet) {
	m.wg.Add(1)
	defer m.wg.Done()

	eventChannel, _ := m.eventChannel.Load().(chan contracts.RawMessage)
	if eventChannel == nil {
		m.logger.Warn("event channel not initialized or of invalid type")
		return
	}

	if len(packet.Data) == 0 {
		m.logger.Warn(ErrShortMIDIPacket.Error())
		return
	}

	msg := contracts.RawMessage{
		Timestamp: uint64(time.Now().UTC().UnixNano()),
		Status:    packet.Data[0],
	}
	if len(packet.Data) > 1 {
		msg.Data1 = packet.Data[1]
	}
	if len(packet.Data) > 2 {
		msg.Data2 = packet.Data[2]
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

// StartCapture begins capturing MIDI frames by storing the event channel
// and marking capturing as active. Any ongoing capture is stopped first.
func (m *Client) StartCapture(eventChannel chan contracts.RawMessage) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if eventChannel == nil {
		m.logger.Error("StartCapture called with nil eventChannel")
		return
	}

	if m.capturing {
		m.logger.Warn("Capture already started; attempting to stop existing capture")
		if err := m.Stop(); err != nil {
			m.logger.Error("Failed to stop existing capture", m.logger.Field().Error("error", err))
		}
	}

	m.logger.Info("Starting MIDI capture")
	m.eventChannel.Store(eventChannel)
	m.capturing = true
}

// Stop halts capture, disconnects from the device, and waits for in-flight
// packet handling to finish. Executes only once.
func (m *Client) Stop() error {
	m.stopOnce.Do(func() {
		m.logger.Info("Stopping MIDI capture")
		m.mu.Lock()
		defer m.mu.Unlock()

		if m.capturing {
			m.capturing = false

			if m.portConn != nil {
				m.portConn.Disconnect()
				m.portConn = nil
			}

			// Swap in a fresh channel no one reads so late callbacks hit
			// the non-blocking default instead of a closed channel.
			m.eventChannel.Store(make(chan contracts.RawMessage))

			m.logger.Info("MIDI capture stopped")
			m.wg.Wait()
		}
	})
	return nil
}
