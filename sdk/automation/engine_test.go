package automation

import (
	"math"
	"testing"
	"time"

	"github.com/lfarias/dawautomation/sdk/contracts"
	"github.com/lfarias/dawautomation/sdk/surface"
)

// nopLogger keeps engine tests quiet.
type nopLogger struct{}

func (nopLogger) Debug(string, ...contracts.Field) {}
func (nopLogger) Info(string, ...contracts.Field)  {}
func (nopLogger) Warn(string, ...contracts.Field)  {}
func (nopLogger) Error(string, ...contracts.Field) {}
func (nopLogger) Fatal(string, ...contracts.Field) {}
func (nopLogger) Field() contracts.Field           { return nopField{} }
func (nopLogger) SetLevel(contracts.LogLevel)      {}

type nopField struct{}

func (f nopField) Bool(string, bool) contracts.Field       { return f }
func (f nopField) Int(string, int) contracts.Field         { return f }
func (f nopField) Float64(string, float64) contracts.Field { return f }
func (f nopField) String(string, string) contracts.Field   { return f }
func (f nopField) Time(string, time.Time) contracts.Field  { return f }
func (f nopField) Int64(string, int64) contracts.Field     { return f }
func (f nopField) Error(string, error) contracts.Field     { return f }
func (f nopField) Uint64(string, uint64) contracts.Field   { return f }
func (f nopField) Uint8(string, uint8) contracts.Field     { return f }

func newTestEngine(t *testing.T, sim *surface.Simulated) *Engine {
	t.Helper()
	engine, err := NewEngine(
		contracts.WithSurface(sim),
		contracts.WithEngineLogger(nopLogger{}),
	)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return engine
}

func TestNewEngineRequiresSurface(t *testing.T) {
	if _, err := NewEngine(contracts.WithEngineLogger(nopLogger{})); err != ErrNoSurface {
		t.Fatalf("NewEngine without surface: err = %v, want ErrNoSurface", err)
	}
}

func TestPatternHoldLifecycle(t *testing.T) {
	sim := surface.NewSimulated(4, 16, 16)
	engine := newTestEngine(t, sim)
	layout := engine.Layout()

	// Press then release every note of the pattern band: the held set
	// must come back empty each time.
	for note := layout.PatternNoteStart; note <= layout.PatternNoteEnd; note++ {
		engine.OnMessage(0x90, note, 100)

		index := int(note - layout.PatternNoteStart)
		if got := engine.State().ActivePatterns(); len(got) != 1 || got[0] != index {
			t.Fatalf("after press of note %d: holds = %v, want [%d]", note, got, index)
		}
		if sim.CurrentPattern() != index {
			t.Fatalf("current pattern = %d, want %d", sim.CurrentPattern(), index)
		}

		engine.OnMessage(0x80, note, 0)
		if got := engine.State().ActivePatterns(); len(got) != 0 {
			t.Fatalf("after release of note %d: holds = %v, want empty", note, got)
		}
	}
}

func TestLoneNoteOffIsNoOp(t *testing.T) {
	sim := surface.NewSimulated(4, 16, 16)
	engine := newTestEngine(t, sim)

	engine.OnMessage(0x80, 36, 0)
	if got := engine.State().ActivePatterns(); len(got) != 0 {
		t.Errorf("holds after lone note off = %v, want empty", got)
	}
}

func TestZeroVelocityNoteOnReleasesHold(t *testing.T) {
	sim := surface.NewSimulated(4, 16, 16)
	engine := newTestEngine(t, sim)

	engine.OnMessage(0x90, 40, 100)
	engine.OnMessage(0x90, 40, 0) // note-off by convention
	if got := engine.State().ActivePatterns(); len(got) != 0 {
		t.Errorf("holds = %v, want empty", got)
	}
}

func TestRefusedActionLeavesStateAndProcessingIntact(t *testing.T) {
	// Only 4 patterns: note 46 asks for pattern 10, which the surface
	// refuses.
	sim := surface.NewSimulated(4, 16, 4)
	engine := newTestEngine(t, sim)

	engine.OnMessage(0x90, 46, 100)
	if got := engine.State().ActivePatterns(); len(got) != 0 {
		t.Errorf("refused selection must not be held: %v", got)
	}
	if sim.CurrentPattern() != 0 {
		t.Errorf("current pattern = %d, want unchanged 0", sim.CurrentPattern())
	}

	// The next event must still take effect.
	engine.OnMessage(0x90, 38, 100)
	if sim.CurrentPattern() != 2 {
		t.Errorf("current pattern = %d, want 2", sim.CurrentPattern())
	}
	if got := engine.State().ActivePatterns(); len(got) != 1 || got[0] != 2 {
		t.Errorf("holds = %v, want [2]", got)
	}
}

func TestProgramChangeSelectsWithoutHold(t *testing.T) {
	sim := surface.NewSimulated(4, 16, 16)
	engine := newTestEngine(t, sim)

	engine.OnMessage(0xC0, 5, 0)
	if sim.CurrentPattern() != 5 {
		t.Errorf("current pattern = %d, want 5", sim.CurrentPattern())
	}
	if got := engine.State().ActivePatterns(); len(got) != 0 {
		t.Errorf("program change must not hold: %v", got)
	}

	// Out of range: refused by the surface, nothing changes, and the
	// engine keeps going.
	engine.OnMessage(0xC0, 99, 0)
	if sim.CurrentPattern() != 5 {
		t.Errorf("current pattern = %d, want still 5", sim.CurrentPattern())
	}
	engine.OnMessage(0xC0, 1, 0)
	if sim.CurrentPattern() != 1 {
		t.Errorf("current pattern = %d, want 1", sim.CurrentPattern())
	}
}

func TestChannelVolumeDispatch(t *testing.T) {
	sim := surface.NewSimulated(4, 16, 16)
	engine := newTestEngine(t, sim)

	engine.OnMessage(0x90, 64, 127)
	if got := sim.ChannelLevel(0); got != 1.0 {
		t.Errorf("channel 0 level = %v, want 1.0", got)
	}
	if got, ok := engine.State().ChannelVolume(0); !ok || got != 1.0 {
		t.Errorf("cached channel volume = %v, %v; want 1.0, true", got, ok)
	}

	engine.OnMessage(0x90, 67, 64)
	want := 64.0 / 127.0
	if got := sim.ChannelLevel(3); math.Abs(got-want) > 1e-12 {
		t.Errorf("channel 3 level = %v, want %v", got, want)
	}
}

func TestSelectedTrackControllers(t *testing.T) {
	sim := surface.NewSimulated(8, 16, 16)
	engine := newTestEngine(t, sim)
	sim.SelectTrack(2)

	engine.OnMessage(0xB0, 7, 127)
	if got, err := sim.TrackVolume(2); err != nil || got != 1.0 {
		t.Errorf("track 2 volume = %v, %v; want 1.0", got, err)
	}
	if got, ok := engine.State().TrackVolume(2); !ok || got != 1.0 {
		t.Errorf("cached track volume = %v, %v; want 1.0, true", got, ok)
	}

	engine.OnMessage(0xB0, 10, 0)
	if got, err := sim.TrackPan(2); err != nil || got != -0.5 {
		t.Errorf("track 2 pan = %v, %v; want -0.5", got, err)
	}

	// Without a selection the selected-track controllers do nothing.
	sim.SelectTrack(-1)
	engine.OnMessage(0xB0, 7, 0)
	if got, _ := sim.TrackVolume(2); got != 1.0 {
		t.Errorf("track 2 volume = %v, want untouched 1.0", got)
	}
}

func TestMasterVolumeController(t *testing.T) {
	sim := surface.NewSimulated(8, 16, 16)
	engine := newTestEngine(t, sim)

	engine.OnMessage(0xB0, 1, 0)
	if got, err := sim.TrackVolume(0); err != nil || got != 0.0 {
		t.Errorf("master volume = %v, %v; want 0.0", got, err)
	}
	if got, ok := engine.State().TrackVolume(0); !ok || got != 0.0 {
		t.Errorf("cached master volume = %v, %v; want 0.0, true", got, ok)
	}
}

func TestTempoController(t *testing.T) {
	sim := surface.NewSimulated(4, 16, 16)
	engine := newTestEngine(t, sim)

	engine.OnMessage(0xB0, 4, 127)
	if got := sim.LastTempoHint(); got != 300.0 {
		t.Errorf("tempo hint = %v, want 300", got)
	}
	if got := engine.State().Tempo(); got != 300.0 {
		t.Errorf("cached tempo = %v, want 300", got)
	}

	engine.OnMessage(0xB0, 4, 0)
	if got := engine.State().Tempo(); got != 20.0 {
		t.Errorf("cached tempo = %v, want 20", got)
	}
}

func TestTransportNotes(t *testing.T) {
	sim := surface.NewSimulated(4, 16, 16)
	engine := newTestEngine(t, sim)

	engine.OnMessage(0x90, 60, 100)
	if !sim.Playing() {
		t.Error("play note should start transport")
	}
	engine.OnMessage(0x90, 61, 100)
	if sim.Playing() {
		t.Error("stop note should stop transport")
	}
	// Record arms by ensuring the transport runs.
	engine.OnMessage(0x90, 62, 100)
	if !sim.Playing() {
		t.Error("record note should start transport")
	}
}

func TestAutomationToggleGatesDispatch(t *testing.T) {
	sim := surface.NewSimulated(4, 16, 16)
	engine := newTestEngine(t, sim)

	// Hold a pattern, then disable automation.
	engine.OnMessage(0x90, 36, 100)
	engine.OnMessage(0xB0, 64, 63)
	if engine.State().AutomationEnabled() {
		t.Fatal("CC64 value 63 should disable automation")
	}

	// Actions are gated while disabled.
	engine.OnMessage(0x90, 64, 127)
	if got := sim.ChannelLevel(0); got != 0.0 {
		t.Errorf("channel volume applied while disabled: %v", got)
	}
	engine.OnMessage(0x90, 60, 100)
	if sim.Playing() {
		t.Error("transport started while disabled")
	}

	// The release of the held pattern still clears the hold.
	engine.OnMessage(0x80, 36, 0)
	if got := engine.State().ActivePatterns(); len(got) != 0 {
		t.Errorf("holds = %v, want empty even while disabled", got)
	}

	// Inclusive boundary: 64 re-enables.
	engine.OnMessage(0xB0, 64, 64)
	if !engine.State().AutomationEnabled() {
		t.Fatal("CC64 value 64 should enable automation")
	}
	engine.OnMessage(0x90, 64, 127)
	if got := sim.ChannelLevel(0); got != 1.0 {
		t.Errorf("channel volume after re-enable = %v, want 1.0", got)
	}
}

func TestUnknownFramesAreInert(t *testing.T) {
	sim := surface.NewSimulated(4, 16, 16)
	engine := newTestEngine(t, sim)

	engine.OnMessage(0xF8, 0, 0)  // realtime clock
	engine.OnMessage(0xE0, 0, 64) // pitch bend
	engine.OnMessage(0x12, 34, 56)

	if sim.Playing() || sim.CurrentPattern() != 0 {
		t.Error("unknown frames must not touch the surface")
	}
	if got := engine.State().ActivePatterns(); len(got) != 0 {
		t.Error("unknown frames must not touch the state")
	}
}

func TestOnIdleTickSnapshot(t *testing.T) {
	sim := surface.NewSimulated(8, 16, 16)
	engine := newTestEngine(t, sim)

	// Nothing selected: still a valid tick, just no track fields.
	snap, ok := engine.OnIdleTick()
	if !ok {
		t.Fatal("tick with no selection should not be skipped")
	}
	if snap.TrackSelected {
		t.Error("TrackSelected = true, want false")
	}
	if snap.MasterVolume != 0.8 {
		t.Errorf("master volume = %v, want 0.8", snap.MasterVolume)
	}

	sim.SelectTrack(3)
	engine.OnMessage(0xB0, 7, 127) // volume 1.0 on track 3
	engine.OnMessage(0xB0, 10, 0)  // pan -0.5 on track 3

	snap, ok = engine.OnIdleTick()
	if !ok || !snap.TrackSelected {
		t.Fatalf("snapshot = %+v, %v; want selected tick", snap, ok)
	}
	if snap.SelectedTrack != 3 || snap.TrackVolume != 1.0 || snap.TrackPan != -0.5 {
		t.Errorf("snapshot = %+v, want track 3, volume 1.0, pan -0.5", snap)
	}
}

func TestOnIdleTickSkipsWhileUnavailable(t *testing.T) {
	sim := surface.NewSimulated(8, 16, 16)
	engine := newTestEngine(t, sim)

	sim.SetOffline(true)
	if _, ok := engine.OnIdleTick(); ok {
		t.Error("tick should be skipped while the surface is offline")
	}

	sim.SetOffline(false)
	if _, ok := engine.OnIdleTick(); !ok {
		t.Error("tick should resume once the surface is back")
	}
}

func TestEngineReset(t *testing.T) {
	sim := surface.NewSimulated(4, 16, 16)
	engine := newTestEngine(t, sim)

	engine.OnMessage(0x90, 36, 100)
	engine.OnMessage(0xB0, 4, 127)
	engine.Reset()

	if got := engine.State().ActivePatterns(); len(got) != 0 {
		t.Errorf("holds after reset = %v, want empty", got)
	}
	if got := engine.State().Tempo(); got != 120.0 {
		t.Errorf("tempo after reset = %v, want 120", got)
	}
}
