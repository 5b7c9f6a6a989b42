package state

import "fmt"

// Rewind configuration: a ring buffer holding half a minute of frames.
const (
	FramesPerSecond = 60
	NRewindSeconds  = 30
	NRewindFrames   = NRewindSeconds * FramesPerSecond // 1800
)

// System is the thing an Engine transfers: a fixed-order walk over every
// subsystem that carries mutable emulator state (APU, CPU, PPU, controller,
// input, CPU memory, mapper). Implementations are expected to call each
// subsystem's own TransferState in that order.
type System interface {
	TransferState(w *Walker)
}

// Engine owns the explicit save slot and the rewind ring, and drives both
// through the System's TransferState. It holds no opinion about what the
// bytes mean; that's the System's job.
type Engine struct {
	system System

	stateSize int
	saveSlot  []byte
	hasSave   bool

	rewindBuf       []byte
	rewindBufI      int
	frameLen        []uint32
	nRecordedFrames int
	isBackwards     bool

	audioFrameLen uint32
}

// NewEngine constructs an Engine bound to system. Call InitForROM before use.
func NewEngine(system System) *Engine {
	return &Engine{system: system}
}

// InitForROM measures the system's state size and allocates the save slot
// and rewind ring. Allocation failure is fatal in the source; Go's allocator
// panics on OOM instead, which this reports as an error for callers that
// want to fail the ROM load cleanly.
func (e *Engine) InitForROM() error {
	w := NewWalker(Measure, nil)
	e.system.TransferState(w)
	e.stateSize = w.Len()
	if e.stateSize < 0 {
		return fmt.Errorf("state: measured a negative state size")
	}

	e.saveSlot = make([]byte, e.stateSize)
	e.rewindBuf = make([]byte, e.stateSize*NRewindFrames)
	e.frameLen = make([]uint32, NRewindFrames)
	e.rewindBufI = 0
	e.nRecordedFrames = 0
	e.hasSave = false
	e.isBackwards = false
	e.audioFrameLen = 0
	return nil
}

// DeinitForROM releases the save slot and rewind ring at ROM unload.
func (e *Engine) DeinitForROM() {
	e.saveSlot = nil
	e.rewindBuf = nil
	e.frameLen = nil
	e.nRecordedFrames = 0
	e.hasSave = false
}

// StateSize reports the measured size of one snapshot, in bytes.
func (e *Engine) StateSize() int { return e.stateSize }

// SaveState copies the current system state into the explicit save slot.
func (e *Engine) SaveState() {
	w := NewWalker(Save, e.saveSlot)
	e.system.TransferState(w)
	e.hasSave = true
}

// LoadState restores the system from the explicit save slot and clears the
// rewind ring, if a save has been made.
func (e *Engine) LoadState() {
	if !e.hasSave {
		return
	}
	e.nRecordedFrames = 0
	w := NewWalker(Load, e.saveSlot)
	e.system.TransferState(w)
}

// SaveAudioFrameLength records the audio length, in CPU ticks, of the frame
// that just finished, so a reversed frame can smoothly splice the audio.
func (e *Engine) SaveAudioFrameLength(n uint32) {
	e.frameLen[e.rewindBufI] = n
}

// AudioFrameLen reports the audio length of the frame most recently loaded
// from the rewind ring (via HandleRewind).
func (e *Engine) AudioFrameLen() uint32 { return e.audioFrameLen }

// pushState advances the write index and stores the current system state,
// capping the recorded-frame count at NRewindFrames.
func (e *Engine) pushState() {
	if e.nRecordedFrames < NRewindFrames {
		e.nRecordedFrames++
	}
	e.rewindBufI = (e.rewindBufI + 1) % NRewindFrames
	w := NewWalker(Save, e.slot(e.rewindBufI))
	e.system.TransferState(w)
}

// popState removes the most recently pushed state from the ring.
func (e *Engine) popState() {
	if e.nRecordedFrames == 0 {
		return
	}
	if e.rewindBufI == 0 {
		e.rewindBufI = NRewindFrames - 1
	} else {
		e.rewindBufI--
	}
	e.nRecordedFrames--
}

// loadTopState restores the system from the most recently pushed state.
func (e *Engine) loadTopState() {
	w := NewWalker(Load, e.slot(e.rewindBufI))
	e.system.TransferState(w)
	e.audioFrameLen = e.frameLen[e.rewindBufI]
}

func (e *Engine) slot(i int) []byte {
	return e.rewindBuf[e.stateSize*i : e.stateSize*(i+1)]
}

func (e *Engine) handleForwardsFrame() {
	if e.isBackwards {
		// Just stopped rewinding: replay the top frame forward once more
		// to give the audio stream a clean transition at the seam.
		e.loadTopState()
		e.isBackwards = false
	} else {
		e.pushState()
	}
}

func (e *Engine) handleBackwardsFrame() {
	// Don't pop the top state on the first backwards frame: it gets run
	// again (backwards) first, for the same audio-seam reason.
	if e.isBackwards && e.nRecordedFrames > 1 {
		e.popState()
	}
	e.loadTopState()
	e.isBackwards = true
}

// HandleRewind is the per-frame rewind driver: call once per emulated frame
// with doRewind set to whether the user is holding the rewind input.
func (e *Engine) HandleRewind(doRewind bool) {
	if doRewind && e.nRecordedFrames > 0 {
		e.handleBackwardsFrame()
	} else {
		e.handleForwardsFrame()
	}
}

// NRecordedFrames reports how many frames are currently held in the ring.
func (e *Engine) NRecordedFrames() int { return e.nRecordedFrames }

// IsBackwards reports whether the most recent HandleRewind call moved time
// backwards.
func (e *Engine) IsBackwards() bool { return e.isBackwards }
