package contracts

// RawMessage is one three-byte MIDI frame exactly as it arrived from the
// hardware. Status carries the command nibble and channel; Data1 and Data2
// are the two 7-bit data bytes (Data2 is 0 for single-data-byte commands
// such as Program Change).
type RawMessage struct {
	Timestamp uint64 // Nanoseconds since the Unix epoch at arrival time.
	Status    byte
	Data1     byte
	Data2     byte
}

// Command returns the status byte's command nibble (0x80, 0x90, 0xB0, ...).
func (m RawMessage) Command() byte {
	return m.Status & 0xF0
}

// Channel returns the zero-based MIDI channel encoded in the status byte.
func (m RawMessage) Channel() byte {
	return m.Status & 0x0F
}

// MessageSource defines a platform MIDI input client that delivers raw
// frames, one per callback, in hardware order.
type MessageSource interface {
	Stop() error                               // Stops capture and releases resources.
	ListDevices() ([]DeviceInfo, error)        // Lists all available MIDI input devices.
	SelectDevice(deviceID int) error           // Selects a MIDI device by its ID.
	StartCapture(eventChannel chan RawMessage) // Starts capture, sending frames to the channel.
}
