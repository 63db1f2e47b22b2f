package main

import (
	"fmt"
	"time"

	"github.com/lfarias/dawautomation/sdk/automation"
	"github.com/lfarias/dawautomation/sdk/contracts"
	"github.com/lfarias/dawautomation/sdk/midi"
	"github.com/lfarias/dawautomation/sdk/surface"
)

func main() {
	// The simulated surface stands in for the host sequencer: 8 mixer
	// tracks (0 is master), 16 generator channels, 16 patterns.
	sim := surface.NewSimulated(8, 16, 16)
	sim.SelectTrack(1)

	engine, err := automation.NewEngine(
		contracts.WithSurface(sim),
		contracts.WithEngineLogLevel(contracts.InfoLevel),
	)
	if err != nil {
		fmt.Println("Failed to initialize automation engine:", err)
		return
	}
	defer engine.Reset()

	client, err := midi.NewMIDIClient(
		contracts.WithLogLevel(contracts.InfoLevel),
		contracts.WithMIDIEventFilter(contracts.MIDIEventFilter{
			Commands: []contracts.MIDICommand{
				contracts.NoteOn, contracts.NoteOff,
				contracts.ControlChange, contracts.ProgramChange,
			},
		}),
	)
	if err != nil {
		fmt.Println("Failed to initialize MIDI client:", err)
		return
	}

	devices, err := client.ListDevices()
	if err != nil || len(devices) == 0 {
		fmt.Println("No MIDI devices found or error listing devices:", err)
		return
	}
	fmt.Println("Available MIDI devices:", devices)

	if err = client.SelectDevice(0); err != nil {
		fmt.Println("Failed to select MIDI device:", err)
		return
	}

	eventChannel := make(chan contracts.RawMessage, 100)
	client.StartCapture(eventChannel)
	defer client.Stop()

	// The host would drive these callbacks; here a ticker plays that role.
	refresh := time.NewTicker(250 * time.Millisecond)
	defer refresh.Stop()

	fmt.Println("Driving the automation engine... Press Ctrl+C to exit.")
	for {
		select {
		case msg := <-eventChannel:
			engine.OnMessage(msg.Status, msg.Data1, msg.Data2)

		case <-refresh.C:
			if snap, ok := engine.OnIdleTick(); ok {
				fmt.Printf("master %.2f | playing %v | pattern %d | held %v",
					snap.MasterVolume, sim.Playing(), sim.CurrentPattern(),
					engine.State().ActivePatterns())
				if snap.TrackSelected {
					fmt.Printf(" | track %d vol %.2f pan %+.2f",
						snap.SelectedTrack, snap.TrackVolume, snap.TrackPan)
				}
				fmt.Println()
			}
		}
	}
}
