package automation

import "testing"

func TestDecodeMessage(t *testing.T) {
	tests := []struct {
		name   string
		status byte
		data1  byte
		data2  byte
		want   Event
	}{
		{
			name:   "note on",
			status: 0x90, data1: 60, data2: 100,
			want: Event{Kind: EventNoteOn, Note: 60, Velocity: 100},
		},
		{
			name:   "note on, channel 3",
			status: 0x93, data1: 60, data2: 100,
			want: Event{Kind: EventNoteOn, Note: 60, Velocity: 100},
		},
		{
			name:   "note off",
			status: 0x80, data1: 60, data2: 64,
			want: Event{Kind: EventNoteOff, Note: 60},
		},
		{
			name:   "zero-velocity note on is a note off",
			status: 0x90, data1: 60, data2: 0,
			want: Event{Kind: EventNoteOff, Note: 60},
		},
		{
			name:   "control change",
			status: 0xB0, data1: 7, data2: 127,
			want: Event{Kind: EventControlChange, Controller: 7, Value: 127},
		},
		{
			name:   "program change",
			status: 0xC0, data1: 5, data2: 0,
			want: Event{Kind: EventProgramChange, Program: 5},
		},
		{
			name:   "polyphonic aftertouch is unknown",
			status: 0xA0, data1: 60, data2: 50,
			want: Event{Kind: EventUnknown},
		},
		{
			name:   "channel pressure is unknown",
			status: 0xD0, data1: 50, data2: 0,
			want: Event{Kind: EventUnknown},
		},
		{
			name:   "pitch bend is unknown",
			status: 0xE0, data1: 0, data2: 64,
			want: Event{Kind: EventUnknown},
		},
		{
			name:   "status below voice range is unknown",
			status: 0x45, data1: 60, data2: 100,
			want: Event{Kind: EventUnknown},
		},
		{
			name:   "system realtime is unknown",
			status: 0xF8, data1: 0, data2: 0,
			want: Event{Kind: EventUnknown},
		},
		{
			name:   "data bytes masked to 7 bits",
			status: 0x90, data1: 0x85, data2: 0x90,
			want: Event{Kind: EventNoteOn, Note: 0x05, Velocity: 0x10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecodeMessage(tt.status, tt.data1, tt.data2)
			if got != tt.want {
				t.Errorf("DecodeMessage(%#x, %d, %d) = %+v, want %+v",
					tt.status, tt.data1, tt.data2, got, tt.want)
			}
		})
	}
}

func TestDecodeZeroVelocityMatchesNoteOff(t *testing.T) {
	for note := byte(0); note < 128; note++ {
		asNoteOn := DecodeMessage(0x90, note, 0)
		asNoteOff := DecodeMessage(0x80, note, 64)
		if asNoteOn != asNoteOff {
			t.Fatalf("note %d: 0x90 vel 0 decoded %+v, 0x80 decoded %+v",
				note, asNoteOn, asNoteOff)
		}
	}
}
