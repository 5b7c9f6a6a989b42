package state

import "testing"

// counterSystem is a minimal System: one counter field that the test drives
// forward by incrementing it once per simulated frame, so snapshots taken at
// different frames are distinguishable.
type counterSystem struct {
	frame uint32
}

func (c *counterSystem) TransferState(w *Walker) {
	w.Uint32(&c.frame)
}

func TestEngineMeasureFillsExactlyStateSize(t *testing.T) {
	sys := &counterSystem{}
	e := NewEngine(sys)
	if err := e.InitForROM(); err != nil {
		t.Fatalf("InitForROM: %v", err)
	}
	if e.StateSize() != 4 {
		t.Fatalf("StateSize() = %d, want 4", e.StateSize())
	}
}

func TestSaveLoadRoundTripIsNoOp(t *testing.T) {
	sys := &counterSystem{}
	e := NewEngine(sys)
	if err := e.InitForROM(); err != nil {
		t.Fatalf("InitForROM: %v", err)
	}

	sys.frame = 42
	e.SaveState()
	sys.frame = 999
	e.LoadState()

	if sys.frame != 42 {
		t.Fatalf("after load, frame = %d, want 42", sys.frame)
	}
}

func TestLoadStateClearsRewindRing(t *testing.T) {
	sys := &counterSystem{}
	e := NewEngine(sys)
	e.InitForROM()

	e.SaveState()
	for i := 0; i < 10; i++ {
		sys.frame = uint32(i)
		e.HandleRewind(false)
	}
	if e.NRecordedFrames() == 0 {
		t.Fatalf("expected frames recorded before load")
	}
	e.LoadState()
	if e.NRecordedFrames() != 0 {
		t.Fatalf("NRecordedFrames() = %d after load, want 0", e.NRecordedFrames())
	}
}

func TestRewindRingCapsAtNRewindFrames(t *testing.T) {
	sys := &counterSystem{}
	e := NewEngine(sys)
	e.InitForROM()

	for i := 0; i < NRewindFrames+100; i++ {
		sys.frame = uint32(i)
		e.HandleRewind(false)
	}
	if e.NRecordedFrames() != NRewindFrames {
		t.Fatalf("NRecordedFrames() = %d, want cap %d", e.NRecordedFrames(), NRewindFrames)
	}
}

// TestRewindSeam runs frames forward, rewinds several times, then resumes
// forward, and checks the two-state machine's "replay the top frame once on
// direction flip" rule that keeps the audio stream seamless at the flip.
func TestRewindSeam(t *testing.T) {
	sys := &counterSystem{}
	e := NewEngine(sys)
	e.InitForROM()

	const forwardFrames = 120
	for i := 1; i <= forwardFrames; i++ {
		sys.frame = uint32(i)
		e.HandleRewind(false)
	}
	if sys.frame != forwardFrames {
		t.Fatalf("after forward run, frame = %d, want %d", sys.frame, forwardFrames)
	}

	// First backwards frame replays the most recently pushed frame without
	// popping it.
	e.HandleRewind(true)
	if sys.frame != forwardFrames {
		t.Fatalf("first backwards frame replayed frame %d, want %d", sys.frame, forwardFrames)
	}
	if !e.IsBackwards() {
		t.Fatalf("expected IsBackwards() true after first backwards frame")
	}

	for i := 0; i < 4; i++ {
		e.HandleRewind(true)
	}

	// Flipping back to forwards replays the top (backwards) frame once more
	// before resuming genuinely-forward playback.
	lastBackwardsFrame := sys.frame
	e.HandleRewind(false)
	if sys.frame != lastBackwardsFrame {
		t.Fatalf("first forwards frame after flip = %d, want replay of %d", sys.frame, lastBackwardsFrame)
	}
	if e.IsBackwards() {
		t.Fatalf("expected IsBackwards() false after flipping forwards")
	}
}

func TestHandleRewindWithNoRecordedFramesPushesInstead(t *testing.T) {
	sys := &counterSystem{}
	e := NewEngine(sys)
	e.InitForROM()

	sys.frame = 7
	e.HandleRewind(true) // n_recorded_frames == 0, so this must push, not rewind
	if e.NRecordedFrames() != 1 {
		t.Fatalf("NRecordedFrames() = %d, want 1", e.NRecordedFrames())
	}
}

func TestSaveAudioFrameLengthRoundTripsThroughRewind(t *testing.T) {
	sys := &counterSystem{}
	e := NewEngine(sys)
	e.InitForROM()

	sys.frame = 1
	e.HandleRewind(false)
	e.SaveAudioFrameLength(29780)

	sys.frame = 2
	e.HandleRewind(false)
	e.SaveAudioFrameLength(29781)

	e.HandleRewind(true)
	if e.AudioFrameLen() != 29781 {
		t.Fatalf("AudioFrameLen() = %d, want 29781", e.AudioFrameLen())
	}
}
